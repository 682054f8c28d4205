package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// ItemImageRepository defines item image persistence operations.
type ItemImageRepository interface {
	Create(ctx context.Context, image *model.ItemImage) error
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.ItemImage, error)
	Delete(ctx context.Context, image *model.ItemImage) error
}

type itemImageRepository struct {
	db *gorm.DB
}

// NewItemImageRepository creates a new item image repository.
func NewItemImageRepository(db *gorm.DB) ItemImageRepository {
	return &itemImageRepository{db: db}
}

func (r *itemImageRepository) Create(ctx context.Context, image *model.ItemImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *itemImageRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.ItemImage, error) {
	var images []model.ItemImage
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *itemImageRepository) Delete(ctx context.Context, image *model.ItemImage) error {
	return r.db.WithContext(ctx).Delete(image).Error
}
