package main

import (
	"context"
	"flag"
	"log"
	"os"

	"biblio/internal/config"
	"biblio/internal/db"
	"biblio/internal/repository"
)

func main() {
	source := flag.String("source", os.Getenv("SEED_SOURCE"), "catalogue file path or http(s) URL (YAML or JSON)")
	flag.Parse()
	if *source == "" {
		log.Fatal("missing -source (or SEED_SOURCE)")
	}

	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	ctx := context.Background()
	if err := repository.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Loading catalogue from: %s", *source)
	cat, err := loadCatalogue(ctx, *source)
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}
	log.Printf("Catalogue has %d books, %d users, %d categories", len(cat.Books), len(cat.Users), len(cat.Categories))

	seeder := &seeder{
		books:      repository.NewBookRepository(gormDB),
		users:      repository.NewUserRepository(gormDB),
		categories: repository.NewCategoryRepository(gormDB),
	}
	res, err := seeder.run(ctx, cat)
	if err != nil {
		log.Fatalf("Failed to seed catalogue: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Books created: %d, updated: %d", res.BooksCreated, res.BooksUpdated)
	log.Printf("  - Users created: %d, skipped: %d", res.UsersCreated, res.UsersSkipped)
	log.Printf("  - Categories created: %d, skipped: %d", res.CategoriesCreated, res.CategoriesSkipped)
}
