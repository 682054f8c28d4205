package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// ItemListFilter narrows item listing. Unless IncludeExpired is true, expired
// items are filtered out.
type ItemListFilter struct {
	UserID         *uuid.UUID
	CategoryID     *uuid.UUID
	ItemType       *model.ItemType
	IncludeExpired bool
	FirstResult    *int
	MaxResults     *int
	OldestFirst    bool
}

// ItemRepository defines item persistence operations.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	Update(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	List(ctx context.Context, filter ItemListFilter) ([]model.Item, error)
	ListOverdue(ctx context.Context, now time.Time) ([]model.Item, error)
	Delete(ctx context.Context, item *model.Item) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, filter ItemListFilter) ([]model.Item, error) {
	query := r.db.WithContext(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ItemType != nil {
		query = query.Where("item_type = ?", *filter.ItemType)
	}
	if !filter.IncludeExpired {
		query = query.Where("expired = ?", false)
	}
	if filter.OldestFirst {
		query = query.Order("created_at asc")
	} else {
		query = query.Order("created_at desc")
	}
	if filter.FirstResult != nil {
		query = query.Offset(*filter.FirstResult)
	}
	if filter.MaxResults != nil {
		query = query.Limit(*filter.MaxResults)
	}
	var items []model.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListOverdue returns active items whose expiry time has passed.
func (r *itemRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("expired = ? AND expires_at <= ?", false, now).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Delete(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Delete(item).Error
}
