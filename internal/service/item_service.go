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

// Matcher is the search hound fan-out triggered after an item create or
// update commits.
type Matcher interface {
	NotifyMatches(ctx context.Context, item *model.Item)
}

// ItemService owns the item lifecycle: expiry bookkeeping on create and
// update, the hourly expiration sweep, image reconciliation, and the matcher
// trigger.
type ItemService interface {
	Create(ctx context.Context, item *model.Item, images []string, creatorID uuid.UUID) (*model.Item, error)
	Find(ctx context.Context, id uuid.UUID) (*model.Item, error)
	List(ctx context.Context, filter repository.ItemListFilter) ([]model.Item, error)
	Update(ctx context.Context, id uuid.UUID, in *model.Item, images []string, modifierID uuid.UUID) (*model.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Images(ctx context.Context, itemID uuid.UUID) ([]string, error)

	// ExpireOverdueItems flips every active item whose expiry time has passed
	// to expired and mails the owner. Items are processed independently; a
	// failure on one never blocks the rest. Returns the number of items
	// expired.
	ExpireOverdueItems(ctx context.Context) (int, error)
}

type itemService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	images       ImageReconciler
	matcher      Matcher
	sink         notify.Sink
	ttl          time.Duration
	now          func() time.Time
}

// NewItemService creates a new item service. ttlDays is the retention window
// granted on creation and renewal.
func NewItemService(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	images ImageReconciler,
	matcher Matcher,
	sink notify.Sink,
	ttlDays int,
) ItemService {
	return &itemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		images:       images,
		matcher:      matcher,
		sink:         sink,
		ttl:          time.Duration(ttlDays) * 24 * time.Hour,
		now:          time.Now,
	}
}

// Create persists a new listing. The item always starts active with a fresh
// expiry window, whatever the caller put in the expired/expiresAt fields.
func (s *itemService) Create(ctx context.Context, item *model.Item, images []string, creatorID uuid.UUID) (*model.Item, error) {
	if item.CategoryID == uuid.Nil {
		return nil, errors.ErrMissingCategory
	}
	if !item.ItemType.Valid() {
		return nil, errors.ErrInvalidItemType
	}
	if err := s.checkReferences(ctx, item); err != nil {
		return nil, err
	}

	item.ID = uuid.New()
	item.Expired = false
	item.ExpiresAt = s.now().Add(s.ttl)
	item.CreatorID = creatorID
	item.LastModifierID = creatorID

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	if err := s.images.Reconcile(ctx, item.ID, images); err != nil {
		return nil, fmt.Errorf("set item images: %w", err)
	}

	s.matcher.NotifyMatches(ctx, item)
	return item, nil
}

func (s *itemService) Find(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, filter repository.ItemListFilter) ([]model.Item, error) {
	return s.itemRepo.List(ctx, filter)
}

// Update stores the supplied fields over the found item. Expiry handling is
// asymmetric on purpose: only the transition from expired to not-expired (a
// renewal) resets the expiry window. Any other update stores the expiresAt
// the caller supplied untouched, even a value in the past; a zero expiresAt
// keeps the current one.
func (s *itemService) Update(ctx context.Context, id uuid.UUID, in *model.Item, images []string, modifierID uuid.UUID) (*model.Item, error) {
	found, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID == uuid.Nil {
		return nil, errors.ErrMissingCategory
	}
	if !in.ItemType.Valid() {
		return nil, errors.ErrInvalidItemType
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	expiresAt := found.ExpiresAt
	if !in.ExpiresAt.IsZero() {
		expiresAt = in.ExpiresAt
	}
	if found.Expired && !in.Expired {
		// Renewal: the expiry clock starts over.
		expiresAt = s.now().Add(s.ttl)
	}

	found.Title = in.Title
	found.CategoryID = in.CategoryID
	found.OnlyForCompanies = in.OnlyForCompanies
	found.Metadata = in.Metadata
	found.ItemType = in.ItemType
	found.ThumbnailURL = in.ThumbnailURL
	found.Properties = in.Properties
	found.Price = in.Price
	found.PriceUnit = in.PriceUnit
	found.PaymentMethod = in.PaymentMethod
	found.Delivery = in.Delivery
	found.DeliveryPrice = in.DeliveryPrice
	found.Expired = in.Expired
	found.ExpiresAt = expiresAt
	found.LastModifierID = modifierID

	if err := s.itemRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if err := s.images.Reconcile(ctx, found.ID, images); err != nil {
		return nil, fmt.Errorf("set item images: %w", err)
	}

	s.matcher.NotifyMatches(ctx, found)
	return found, nil
}

// Delete removes the item's images first so no orphaned image rows remain.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.Find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.images.Clear(ctx, item.ID); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, item)
}

func (s *itemService) Images(ctx context.Context, itemID uuid.UUID) ([]string, error) {
	return s.images.ListURLs(ctx, itemID)
}

func (s *itemService) ExpireOverdueItems(ctx context.Context) (int, error) {
	items, err := s.itemRepo.ListOverdue(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("list overdue items: %w", err)
	}

	expired := 0
	for i := range items {
		item := &items[i]
		item.Expired = true
		if err := s.itemRepo.Update(ctx, item); err != nil {
			zap.L().Error("mark item expired", zap.String("item", item.ID.String()), zap.Error(err))
			continue
		}
		expired++
		s.notifyExpired(ctx, item)
	}
	return expired, nil
}

// notifyExpired mails the item owner. Best effort: a missing owner or a sink
// error only produces a log line.
func (s *itemService) notifyExpired(ctx context.Context, item *model.Item) {
	owner, err := s.userRepo.FindByID(ctx, item.UserID)
	if err != nil {
		zap.L().Warn("expired item owner lookup failed",
			zap.String("item", item.ID.String()), zap.Error(err))
		return
	}
	if owner.Email == "" {
		return
	}
	subject, body := notify.ItemExpiredMessage(item.Title)
	if err := s.sink.Send(owner.Email, subject, body); err != nil {
		zap.L().Warn("item expiration notification failed",
			zap.String("item", item.ID.String()), zap.Error(err))
	}
}

func (s *itemService) checkReferences(ctx context.Context, item *model.Item) error {
	if _, err := s.categoryRepo.FindByID(ctx, item.CategoryID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}
	if _, err := s.userRepo.FindByID(ctx, item.UserID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	return nil
}
