package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/notify"
	"marketplace/internal/repository"
)

// searchHoundTTL is the default lifetime of a hound from creation.
const searchHoundTTL = 30 * 24 * time.Hour

// SearchHoundService handles saved searches and the notification fan-out that
// runs after an item is created or updated.
type SearchHoundService interface {
	Create(ctx context.Context, hound *model.SearchHound, creatorID uuid.UUID) (*model.SearchHound, error)
	Find(ctx context.Context, id uuid.UUID) (*model.SearchHound, error)
	List(ctx context.Context, filter repository.SearchHoundListFilter) ([]model.SearchHound, error)
	Update(ctx context.Context, id uuid.UUID, hound *model.SearchHound, modifierID uuid.UUID) (*model.SearchHound, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// NotifyMatches finds every hound watching the item's category with
	// notifications enabled and mails each hound's owner once. Failures are
	// logged per hound and never returned.
	NotifyMatches(ctx context.Context, item *model.Item)
}

type searchHoundService struct {
	houndRepo    repository.SearchHoundRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	sink         notify.Sink
	uiHost       string
	now          func() time.Time
}

// NewSearchHoundService creates a new search hound service.
func NewSearchHoundService(
	houndRepo repository.SearchHoundRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	sink notify.Sink,
	uiHost string,
) SearchHoundService {
	return &searchHoundService{
		houndRepo:    houndRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		sink:         sink,
		uiHost:       uiHost,
		now:          time.Now,
	}
}

func (s *searchHoundService) Create(ctx context.Context, hound *model.SearchHound, creatorID uuid.UUID) (*model.SearchHound, error) {
	if err := s.checkReferences(ctx, hound); err != nil {
		return nil, err
	}

	hound.ID = uuid.New()
	hound.ExpiresAt = s.now().Add(searchHoundTTL)
	hound.CreatorID = creatorID
	hound.LastModifierID = creatorID

	if err := s.houndRepo.Create(ctx, hound); err != nil {
		return nil, fmt.Errorf("create search hound: %w", err)
	}
	return hound, nil
}

func (s *searchHoundService) Find(ctx context.Context, id uuid.UUID) (*model.SearchHound, error) {
	hound, err := s.houndRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrSearchHoundNotFound
		}
		return nil, fmt.Errorf("find search hound: %w", err)
	}
	return hound, nil
}

func (s *searchHoundService) List(ctx context.Context, filter repository.SearchHoundListFilter) ([]model.SearchHound, error) {
	return s.houndRepo.List(ctx, filter)
}

func (s *searchHoundService) Update(ctx context.Context, id uuid.UUID, hound *model.SearchHound, modifierID uuid.UUID) (*model.SearchHound, error) {
	found, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, hound); err != nil {
		return nil, err
	}

	found.Name = hound.Name
	found.NotificationsOn = hound.NotificationsOn
	found.CategoryID = hound.CategoryID
	found.Expires = hound.Expires
	found.MinPrice = hound.MinPrice
	found.MaxPrice = hound.MaxPrice
	found.LastModifierID = modifierID

	if err := s.houndRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update search hound: %w", err)
	}
	return found, nil
}

func (s *searchHoundService) Delete(ctx context.Context, id uuid.UUID) error {
	hound, err := s.Find(ctx, id)
	if err != nil {
		return err
	}
	return s.houndRepo.Delete(ctx, hound)
}

// NotifyMatches matches on category equality and notificationsOn alone. The
// hound's min/max price bounds are intentionally not part of the predicate;
// they are stored and exposed but have never been applied as a filter.
func (s *searchHoundService) NotifyMatches(ctx context.Context, item *model.Item) {
	on := true
	hounds, err := s.houndRepo.List(ctx, repository.SearchHoundListFilter{
		CategoryID:      &item.CategoryID,
		NotificationsOn: &on,
	})
	if err != nil {
		zap.L().Error("list search hounds for item", zap.String("item", item.ID.String()), zap.Error(err))
		return
	}

	for _, hound := range hounds {
		owner, err := s.userRepo.FindByID(ctx, hound.UserID)
		if err != nil {
			zap.L().Warn("search hound owner lookup failed",
				zap.String("hound", hound.ID.String()), zap.Error(err))
			continue
		}
		if owner.Email == "" {
			continue
		}
		subject, body := notify.HoundItemFoundMessage(s.uiHost, item.Title, item.ID.String())
		if err := s.sink.Send(owner.Email, subject, body); err != nil {
			zap.L().Warn("search hound notification failed",
				zap.String("hound", hound.ID.String()),
				zap.String("item", item.ID.String()),
				zap.Error(err))
		}
	}
}

func (s *searchHoundService) checkReferences(ctx context.Context, hound *model.SearchHound) error {
	if _, err := s.categoryRepo.FindByID(ctx, hound.CategoryID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}
	if _, err := s.userRepo.FindByID(ctx, hound.UserID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	return nil
}
