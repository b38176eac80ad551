package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"biblio/internal/model"
	"biblio/internal/repository"
)

// Catalogue is the seed document. JSON sources parse too, since yaml.v3
// accepts JSON input.
type Catalogue struct {
	Books      []SeedBook     `yaml:"books"`
	Users      []SeedUser     `yaml:"users"`
	Categories []SeedCategory `yaml:"categories"`
}

type SeedBook struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	ISBN   string `yaml:"isbn"`
}

type SeedUser struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type SeedCategory struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

type result struct {
	BooksCreated      int
	BooksUpdated      int
	UsersCreated      int
	UsersSkipped      int
	CategoriesCreated int
	CategoriesSkipped int
}

func loadCatalogue(ctx context.Context, source string) (*Catalogue, error) {
	var (
		body []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}
	return parseCatalogue(body)
}

func parseCatalogue(body []byte) (*Catalogue, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(body, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}
	return &cat, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalogue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalogue source returned status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

type seeder struct {
	books      repository.BookRepository
	users      repository.UserRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

func (s *seeder) stamp() time.Time {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	return now().UTC().Truncate(time.Millisecond)
}

// run upserts books by ISBN, then inserts users and categories that are not
// already present. Books are written in one transaction.
func (s *seeder) run(ctx context.Context, cat *Catalogue) (result, error) {
	var res result

	err := s.books.WithTransaction(ctx, func(ctx context.Context, repo repository.BookRepository) error {
		for _, b := range cat.Books {
			existing, err := repo.FindByISBN(ctx, b.ISBN)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("error checking book %s: %w", b.ISBN, err)
			}
			if existing != nil {
				existing.Title = b.Title
				existing.Author = b.Author
				if err := repo.Update(ctx, existing); err != nil {
					return fmt.Errorf("error updating book %s: %w", b.ISBN, err)
				}
				res.BooksUpdated++
				continue
			}
			book := &model.Book{
				Title:     b.Title,
				Author:    b.Author,
				ISBN:      b.ISBN,
				Available: true,
				CreatedAt: s.stamp(),
			}
			if err := repo.Create(ctx, book); err != nil {
				return fmt.Errorf("error creating book %s: %w", b.ISBN, err)
			}
			res.BooksCreated++
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	for _, u := range cat.Users {
		_, err := s.users.FindByEmail(ctx, u.Email)
		switch {
		case err == nil:
			res.UsersSkipped++
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return res, fmt.Errorf("error checking user %s: %w", u.Email, err)
		}
		user := &model.User{Name: u.Name, Email: u.Email, Phone: u.Phone, CreatedAt: s.stamp()}
		if err := s.users.Create(ctx, user); err != nil {
			return res, fmt.Errorf("error creating user %s: %w", u.Email, err)
		}
		res.UsersCreated++
	}

	for _, c := range cat.Categories {
		_, err := s.categories.FindByName(ctx, c.Name)
		switch {
		case err == nil:
			res.CategoriesSkipped++
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return res, fmt.Errorf("error checking category %s: %w", c.Name, err)
		}
		category := &model.Category{Name: c.Name, Description: c.Description, CreatedAt: s.stamp()}
		if err := s.categories.Create(ctx, category); err != nil {
			return res, fmt.Errorf("error creating category %s: %w", c.Name, err)
		}
		res.CategoriesCreated++
	}

	return res, nil
}
