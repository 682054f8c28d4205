package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/config"
	"marketplace/internal/db"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// Fixed IDs so re-running the script updates rows instead of duplicating them.
var (
	demoUserID       = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")
	companyUserID    = uuid.MustParse("1ca4a6f2-0b36-4a93-9c2f-2f1b2a7c8e01")
	furnitureID      = uuid.MustParse("6f1b2a7c-8e01-4a93-9c2f-1ca4a6f20b36")
	sofasID          = uuid.MustParse("2f1b2a7c-8e01-4a93-9c2f-1ca4a6f20b37")
	electronicsID    = uuid.MustParse("3f1b2a7c-8e01-4a93-9c2f-1ca4a6f20b38")
	sofaItemID       = uuid.MustParse("4f1b2a7c-8e01-4a93-9c2f-1ca4a6f20b39")
	trailerItemID    = uuid.MustParse("5f1b2a7c-8e01-4a93-9c2f-1ca4a6f20b3a")
	televisionItemID = uuid.MustParse("7f1b2a7c-8e01-4a93-9c2f-1ca4a6f20b3b")
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	categories := repository.NewCategoryRepository(gormDB)
	items := repository.NewItemRepository(gormDB)

	created, updated := 0, 0

	track := func(c, u int, err error) {
		if err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		created += c
		updated += u
	}

	track(seedUsers(ctx, users))
	track(seedCategories(ctx, categories))
	track(seedItems(ctx, items, cfg.ItemTTLDays))

	log.Printf("Seed completed successfully!")
	log.Printf("  - New rows created: %d", created)
	log.Printf("  - Existing rows updated: %d", updated)
}

func seedUsers(ctx context.Context, repo repository.UserRepository) (created int, updated int, err error) {
	companyID := "1234567-8"
	seed := []model.User{
		{
			ID:             demoUserID,
			Name:           "Maija Meikäläinen",
			Address:        "Esimerkkikatu 1, 70100 Kuopio",
			Email:          "maija@example.com",
			PhoneNumber:    "+358401234567",
			CreatorID:      demoUserID,
			LastModifierID: demoUserID,
		},
		{
			ID:             companyUserID,
			Name:           "Kiertotalous Oy",
			Address:        "Yrityskatu 12, 70200 Kuopio",
			Email:          "myynti@kiertotalous.example.com",
			PhoneNumber:    "+358447654321",
			CompanyAccount: true,
			Verified:       true,
			CompanyID:      &companyID,
			CreatorID:      companyUserID,
			LastModifierID: companyUserID,
		},
	}

	for i := range seed {
		user := seed[i]
		existing, err := repo.FindByID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("error checking user %s: %w", user.ID, err)
		}

		if existing != nil {
			existing.Name = user.Name
			existing.Address = user.Address
			existing.Email = user.Email
			existing.PhoneNumber = user.PhoneNumber
			existing.CompanyAccount = user.CompanyAccount
			existing.Verified = user.Verified
			existing.CompanyID = user.CompanyID
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating user %s: %w", user.ID, err)
			}
			updated++
		} else {
			if err := repo.Create(ctx, &user); err != nil {
				return created, updated, fmt.Errorf("error creating user %s: %w", user.ID, err)
			}
			created++
		}
	}

	return created, updated, nil
}

func seedCategories(ctx context.Context, repo repository.CategoryRepository) (created int, updated int, err error) {
	seed := []model.Category{
		{
			ID:             furnitureID,
			Name:           "Huonekalut",
			CreatorID:      demoUserID,
			LastModifierID: demoUserID,
		},
		{
			ID:               sofasID,
			Name:             "Sohvat",
			ParentCategoryID: &furnitureID,
			CreatorID:        demoUserID,
			LastModifierID:   demoUserID,
		},
		{
			ID:             electronicsID,
			Name:           "Elektroniikka",
			Properties:     model.CategoryProperties{{Name: "Merkki", Type: "text"}},
			CreatorID:      demoUserID,
			LastModifierID: demoUserID,
		},
	}

	for i := range seed {
		category := seed[i]
		existing, err := repo.FindByID(ctx, category.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("error checking category %s: %w", category.ID, err)
		}

		if existing != nil {
			existing.Name = category.Name
			existing.ParentCategoryID = category.ParentCategoryID
			existing.Properties = category.Properties
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating category %s: %w", category.ID, err)
			}
			updated++
		} else {
			if err := repo.Create(ctx, &category); err != nil {
				return created, updated, fmt.Errorf("error creating category %s: %w", category.ID, err)
			}
			created++
		}
	}

	return created, updated, nil
}

func seedItems(ctx context.Context, repo repository.ItemRepository, ttlDays int) (created int, updated int, err error) {
	expiresAt := time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)
	deliveryPrice := decimal.NewFromInt(15)
	amount := 1

	seed := []model.Item{
		{
			ID:         sofaItemID,
			Title:      "Kolmen istuttava kulmasohva",
			CategoryID: sofasID,
			UserID:     demoUserID,
			ItemType:   model.ItemTypeSell,
			Metadata: model.Metadata{
				LocationInfo: model.LocationInfo{
					Address: "Esimerkkikatu 1, 70100 Kuopio",
					Email:   "maija@example.com",
					Phone:   "+358401234567",
				},
				Amount: &amount,
			},
			Price:          decimal.NewFromInt(120),
			PriceUnit:      "EUR",
			PaymentMethod:  "Käteinen tai MobilePay",
			Delivery:       true,
			DeliveryPrice:  &deliveryPrice,
			ExpiresAt:      expiresAt,
			CreatorID:      demoUserID,
			LastModifierID: demoUserID,
		},
		{
			ID:         trailerItemID,
			Title:      "Peräkärry vuokralle",
			CategoryID: furnitureID,
			UserID:     companyUserID,
			ItemType:   model.ItemTypeRent,
			Metadata: model.Metadata{
				LocationInfo: model.LocationInfo{
					Address: "Yrityskatu 12, 70200 Kuopio",
					Email:   "myynti@kiertotalous.example.com",
					Phone:   "+358447654321",
				},
			},
			Price:            decimal.NewFromInt(25),
			PriceUnit:        "EUR/vrk",
			PaymentMethod:    "Lasku",
			OnlyForCompanies: true,
			ExpiresAt:        expiresAt,
			CreatorID:        companyUserID,
			LastModifierID:   companyUserID,
		},
		{
			ID:         televisionItemID,
			Title:      "Ostetaan käytetty televisio",
			CategoryID: electronicsID,
			UserID:     demoUserID,
			ItemType:   model.ItemTypeBuy,
			Metadata: model.Metadata{
				LocationInfo: model.LocationInfo{
					Email: "maija@example.com",
				},
			},
			Properties:     model.ItemProperties{{Key: "Merkki", Value: "Mikä tahansa"}},
			Price:          decimal.NewFromInt(50),
			PriceUnit:      "EUR",
			PaymentMethod:  "Käteinen",
			ExpiresAt:      expiresAt,
			CreatorID:      demoUserID,
			LastModifierID: demoUserID,
		},
	}

	for i := range seed {
		item := seed[i]
		existing, err := repo.FindByID(ctx, item.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("error checking item %s: %w", item.ID, err)
		}

		if existing != nil {
			existing.Title = item.Title
			existing.CategoryID = item.CategoryID
			existing.ItemType = item.ItemType
			existing.Metadata = item.Metadata
			existing.Properties = item.Properties
			existing.Price = item.Price
			existing.PriceUnit = item.PriceUnit
			existing.PaymentMethod = item.PaymentMethod
			existing.Delivery = item.Delivery
			existing.DeliveryPrice = item.DeliveryPrice
			existing.OnlyForCompanies = item.OnlyForCompanies
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating item %s: %w", item.ID, err)
			}
			updated++
		} else {
			if err := repo.Create(ctx, &item); err != nil {
				return created, updated, fmt.Errorf("error creating item %s: %w", item.ID, err)
			}
			created++
		}
	}

	return created, updated, nil
}
