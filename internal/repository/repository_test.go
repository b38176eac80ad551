package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"biblio/internal/config"
	"biblio/internal/db"
	"biblio/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Default().Database
	cfg.DSN = filepath.Join(t.TempDir(), "biblio_test.db")
	cfg.LogLevel = "silent"

	gormDB, err := db.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gormDB) })

	require.NoError(t, Migrate(context.Background(), gormDB))
	return gormDB
}

func stamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func TestBookRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	book := &model.Book{Title: "Dune", Author: "Herbert", ISBN: "001", Available: true, CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, book))
	assert.Equal(t, uint(1), book.ID)

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, found.ID)
	assert.Equal(t, book.Title, found.Title)
	assert.Equal(t, book.Author, found.Author)
	assert.Equal(t, book.ISBN, found.ISBN)
	assert.True(t, found.Available)
	assert.True(t, book.CreatedAt.Equal(found.CreatedAt))

	byISBN, err := repo.FindByISBN(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, book.ID, byISBN.ID)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookRepository_DuplicateISBN(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	first := &model.Book{Title: "Dune", Author: "Herbert", ISBN: "001", Available: true, CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &model.Book{Title: "Other", Author: "Someone", ISBN: "001", Available: true, CreatedAt: stamp()})
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKey(err), "unexpected error: %v", err)

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Title)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestBookRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)

	for _, isbn := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &model.Book{Title: "T", Author: "A", ISBN: isbn, Available: true, CreatedAt: stamp()}))
	}

	books, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestBookRepository_UpdateKeepsISBN(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	book := &model.Book{Title: "Dune", Author: "Herbert", ISBN: "001", Available: true, CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, book))

	require.NoError(t, repo.Update(ctx, &model.Book{ID: book.ID, Title: "Dune Messiah", Author: "F. Herbert", ISBN: "999"}))

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", found.Title)
	assert.Equal(t, "F. Herbert", found.Author)
	assert.Equal(t, "001", found.ISBN)
	assert.True(t, found.Available)
}

func TestBookRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	assert.ErrorIs(t, repo.Delete(ctx, 7), gorm.ErrRecordNotFound)

	book := &model.Book{Title: "Dune", Author: "Herbert", ISBN: "001", Available: true, CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, book))
	require.NoError(t, repo.Delete(ctx, book.ID))

	_, err := repo.FindByID(ctx, book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, book.ID), gorm.ErrRecordNotFound)
}

func TestBookRepository_WithTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	book := &model.Book{Title: "Dune", Author: "Herbert", ISBN: "001", Available: true, CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, book))

	boom := errors.New("boom")
	err := repo.WithTransaction(ctx, func(ctx context.Context, tx BookRepository) error {
		if err := tx.Update(ctx, &model.Book{ID: book.ID, Title: "Changed", Author: "Changed"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Title)
}

func TestBookRepository_WithTransactionRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	book := &model.Book{Title: "Dune", Author: "Herbert", ISBN: "001", Available: true, CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, book))

	assert.Panics(t, func() {
		_ = repo.WithTransaction(ctx, func(ctx context.Context, tx BookRepository) error {
			_ = tx.Update(ctx, &model.Book{ID: book.ID, Title: "Changed", Author: "Changed"})
			panic("handler blew up")
		})
	})

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Title)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{Name: "Ana", Email: "ana@example.com", Phone: "555-0100", CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", found.Email)

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	err = repo.Create(ctx, &model.User{Name: "Other", Email: "ana@example.com", Phone: "555-0199", CreatedAt: stamp()})
	assert.True(t, db.IsDuplicateKey(err), "email: %v", err)

	err = repo.Create(ctx, &model.User{Name: "Other", Email: "other@example.com", Phone: "555-0100", CreatedAt: stamp()})
	assert.True(t, db.IsDuplicateKey(err), "phone: %v", err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	desc := "Speculative fiction"
	withDesc := &model.Category{Name: "Sci-Fi", Description: &desc, CreatedAt: stamp()}
	require.NoError(t, repo.Create(ctx, withDesc))
	require.NoError(t, repo.Create(ctx, &model.Category{Name: "Poetry", CreatedAt: stamp()}))

	found, err := repo.FindByName(ctx, "Sci-Fi")
	require.NoError(t, err)
	require.NotNil(t, found.Description)
	assert.Equal(t, desc, *found.Description)

	poetry, err := repo.FindByName(ctx, "Poetry")
	require.NoError(t, err)
	assert.Nil(t, poetry.Description)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestLoanRepository_NoReferentialCheck(t *testing.T) {
	ctx := context.Background()
	repo := NewLoanRepository(newTestDB(t))

	now := stamp()
	loan := &model.Loan{UserID: 10, BookID: 20, LoanDate: now, CreatedAt: now}
	require.NoError(t, repo.Create(ctx, loan))
	assert.NotZero(t, loan.ID)

	loans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, uint(10), loans[0].UserID)
	assert.Equal(t, uint(20), loans[0].BookID)
	assert.False(t, loans[0].Returned)
	assert.Nil(t, loans[0].ReturnDate)
	assert.True(t, now.Equal(loans[0].LoanDate))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	repo := NewBookRepository(gormDB)
	require.NoError(t, repo.Create(ctx, &model.Book{Title: "T", Author: "A", ISBN: "1", Available: true, CreatedAt: stamp()}))

	require.NoError(t, Reset(ctx, gormDB))
	assert.False(t, gormDB.Migrator().HasTable("books"))

	require.NoError(t, Migrate(ctx, gormDB))
	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}
