package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// SearchHoundListFilter narrows search hound listing.
type SearchHoundListFilter struct {
	UserID          *uuid.UUID
	CategoryID      *uuid.UUID
	NotificationsOn *bool
}

// SearchHoundRepository defines search hound persistence operations.
type SearchHoundRepository interface {
	Create(ctx context.Context, hound *model.SearchHound) error
	Update(ctx context.Context, hound *model.SearchHound) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SearchHound, error)
	List(ctx context.Context, filter SearchHoundListFilter) ([]model.SearchHound, error)
	Delete(ctx context.Context, hound *model.SearchHound) error
}

type searchHoundRepository struct {
	db *gorm.DB
}

// NewSearchHoundRepository creates a new search hound repository.
func NewSearchHoundRepository(db *gorm.DB) SearchHoundRepository {
	return &searchHoundRepository{db: db}
}

func (r *searchHoundRepository) Create(ctx context.Context, hound *model.SearchHound) error {
	return r.db.WithContext(ctx).Create(hound).Error
}

func (r *searchHoundRepository) Update(ctx context.Context, hound *model.SearchHound) error {
	return r.db.WithContext(ctx).Save(hound).Error
}

func (r *searchHoundRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SearchHound, error) {
	var hound model.SearchHound
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&hound).Error; err != nil {
		return nil, err
	}
	return &hound, nil
}

func (r *searchHoundRepository) List(ctx context.Context, filter SearchHoundListFilter) ([]model.SearchHound, error) {
	query := r.db.WithContext(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.NotificationsOn != nil {
		query = query.Where("notifications_on = ?", *filter.NotificationsOn)
	}
	var hounds []model.SearchHound
	if err := query.Order("created_at").Find(&hounds).Error; err != nil {
		return nil, err
	}
	return hounds, nil
}

func (r *searchHoundRepository) Delete(ctx context.Context, hound *model.SearchHound) error {
	return r.db.WithContext(ctx).Delete(hound).Error
}
