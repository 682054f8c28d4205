package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// CategoryService handles the category tree and the application-level cascade
// that removes a category's items and search hounds with it.
type CategoryService interface {
	Create(ctx context.Context, category *model.Category, creatorID uuid.UUID) (*model.Category, error)
	Find(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, parentCategoryID *uuid.UUID) ([]model.Category, error)
	Update(ctx context.Context, id uuid.UUID, category *model.Category, modifierID uuid.UUID) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	houndRepo    repository.SearchHoundRepository
	items        ItemService
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	houndRepo repository.SearchHoundRepository,
	items ItemService,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		houndRepo:    houndRepo,
		items:        items,
	}
}

func (s *categoryService) Create(ctx context.Context, category *model.Category, creatorID uuid.UUID) (*model.Category, error) {
	if category.ParentCategoryID != nil {
		if _, err := s.Find(ctx, *category.ParentCategoryID); err != nil {
			return nil, err
		}
	}

	category.ID = uuid.New()
	category.CreatorID = creatorID
	category.LastModifierID = creatorID

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Find(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, parentCategoryID *uuid.UUID) ([]model.Category, error) {
	return s.categoryRepo.List(ctx, parentCategoryID)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, category *model.Category, modifierID uuid.UUID) (*model.Category, error) {
	found, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.ParentCategoryID != nil {
		if _, err := s.Find(ctx, *category.ParentCategoryID); err != nil {
			return nil, err
		}
		if err := s.checkCycle(ctx, id, *category.ParentCategoryID); err != nil {
			return nil, err
		}
	}

	found.Name = category.Name
	found.ParentCategoryID = category.ParentCategoryID
	found.Properties = category.Properties
	found.LastModifierID = modifierID

	if err := s.categoryRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return found, nil
}

// Delete cascades: the category's items (and their images) go first, then the
// search hounds watching it, then the category row itself.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	items, err := s.items.List(ctx, repository.ItemListFilter{
		CategoryID:     &category.ID,
		IncludeExpired: true,
	})
	if err != nil {
		return fmt.Errorf("list category items: %w", err)
	}
	for _, item := range items {
		if err := s.items.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("delete category item: %w", err)
		}
	}

	hounds, err := s.houndRepo.List(ctx, repository.SearchHoundListFilter{CategoryID: &category.ID})
	if err != nil {
		return fmt.Errorf("list category search hounds: %w", err)
	}
	for i := range hounds {
		if err := s.houndRepo.Delete(ctx, &hounds[i]); err != nil {
			return fmt.Errorf("delete category search hound: %w", err)
		}
	}

	return s.categoryRepo.Delete(ctx, category)
}

// checkCycle walks up from the proposed parent; hitting the category being
// reparented means the new parent is one of its own descendants.
func (s *categoryService) checkCycle(ctx context.Context, id, parentID uuid.UUID) error {
	seen := map[uuid.UUID]bool{}
	current := parentID
	for {
		if current == id {
			return errors.ErrCategoryCycle
		}
		if seen[current] {
			return nil
		}
		seen[current] = true

		node, err := s.categoryRepo.FindByID(ctx, current)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("find category: %w", err)
		}
		if node.ParentCategoryID == nil {
			return nil
		}
		current = *node.ParentCategoryID
	}
}
