package database

import (
	"context"
	"log"
	"strings"
	"time"

	"muebleria_xpto/internal/adapter/persistence/repository"
	"muebleria_xpto/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

// SeedCatalog loads a small demo catalog (three variants, three
// furniture items) when SEED_ON_STARTUP is enabled and the tables are
// still empty. Quotations are never seeded.
func SeedCatalog(ddb *dynamodb.Client) {
	if !isSeedEnabled() {
		return
	}

	ctx := context.Background()
	seedVariants(ctx, repository.NewVariantDynamoRepository(ddb))
	seedFurniture(ctx, repository.NewFurnitureDynamoRepository(ddb))
}

func seedVariants(ctx context.Context, repo *repository.VariantDynamoRepository) {
	existing, err := repo.List(ctx)
	if err != nil {
		log.Printf("[seed] variant list failed, skipping variant seed: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	now := time.Now().UTC()
	variants := []entities.Variant{
		{ID: uuid.NewString(), Name: "Normal", PriceDelta: 0, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Barniz Premium", PriceDelta: 3500, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Acabado Mate", PriceDelta: 2000, CreatedAt: now},
	}
	for _, v := range variants {
		if _, err := repo.Create(ctx, v); err != nil {
			log.Printf("[seed] variant %q failed: %v", v.Name, err)
		}
	}
	log.Printf("[seed] loaded %d variants", len(variants))
}

func seedFurniture(ctx context.Context, repo *repository.FurnitureDynamoRepository) {
	existing, err := repo.ListActive(ctx)
	if err != nil {
		log.Printf("[seed] furniture list failed, skipping furniture seed: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	now := time.Now().UTC()
	items := []entities.FurnitureItem{
		{
			ID: uuid.NewString(), Name: "Silla de Roble", Type: "Silla", Material: "Roble",
			BasePrice: 15000, Stock: 20, Size: entities.SizeClassMedium,
			Status: entities.FurnitureStatusActive, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Mesa Comedor Familiar", Type: "Mesa", Material: "Pino",
			BasePrice: 85000, Stock: 5, Size: entities.SizeClassLarge,
			Status: entities.FurnitureStatusActive, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Sofá 3 Cuerpos", Type: "Sofá", Material: "Tela Premium",
			BasePrice: 120000, Stock: 3, Size: entities.SizeClassLarge,
			Status: entities.FurnitureStatusActive, CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, item := range items {
		if _, err := repo.Create(ctx, item); err != nil {
			log.Printf("[seed] furniture %q failed: %v", item.Name, err)
		}
	}
	log.Printf("[seed] loaded %d furniture items", len(items))
}

func isSeedEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(getenvDefault("SEED_ON_STARTUP", ""))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
