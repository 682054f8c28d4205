package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// MockItemRepository is a mock implementation of ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, filter repository.ItemListFilter) ([]model.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Item, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, parentCategoryID *uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, parentCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter repository.UserListFilter) ([]model.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSearchHoundRepository is a mock implementation of SearchHoundRepository.
type MockSearchHoundRepository struct {
	mock.Mock
}

func (m *MockSearchHoundRepository) Create(ctx context.Context, hound *model.SearchHound) error {
	args := m.Called(ctx, hound)
	return args.Error(0)
}

func (m *MockSearchHoundRepository) Update(ctx context.Context, hound *model.SearchHound) error {
	args := m.Called(ctx, hound)
	return args.Error(0)
}

func (m *MockSearchHoundRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SearchHound, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchHound), args.Error(1)
}

func (m *MockSearchHoundRepository) List(ctx context.Context, filter repository.SearchHoundListFilter) ([]model.SearchHound, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchHound), args.Error(1)
}

func (m *MockSearchHoundRepository) Delete(ctx context.Context, hound *model.SearchHound) error {
	args := m.Called(ctx, hound)
	return args.Error(0)
}

// MockItemImageRepository is a mock implementation of ItemImageRepository.
type MockItemImageRepository struct {
	mock.Mock
}

func (m *MockItemImageRepository) Create(ctx context.Context, image *model.ItemImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockItemImageRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.ItemImage, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemImage), args.Error(1)
}

func (m *MockItemImageRepository) Delete(ctx context.Context, image *model.ItemImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

// MockImageReconciler is a mock implementation of ImageReconciler.
type MockImageReconciler struct {
	mock.Mock
}

func (m *MockImageReconciler) Reconcile(ctx context.Context, itemID uuid.UUID, desired []string) error {
	args := m.Called(ctx, itemID, desired)
	return args.Error(0)
}

func (m *MockImageReconciler) Clear(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockImageReconciler) ListURLs(ctx context.Context, itemID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockMatcher is a mock implementation of Matcher.
type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) NotifyMatches(ctx context.Context, item *model.Item) {
	m.Called(ctx, item)
}

// MockSink is a mock implementation of notify.Sink.
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// MockItemService is a mock implementation of ItemService.
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, item *model.Item, images []string, creatorID uuid.UUID) (*model.Item, error) {
	args := m.Called(ctx, item, images, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) Find(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, filter repository.ItemListFilter) ([]model.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, id uuid.UUID, in *model.Item, images []string, modifierID uuid.UUID) (*model.Item, error) {
	args := m.Called(ctx, id, in, images, modifierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemService) Images(ctx context.Context, itemID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockItemService) ExpireOverdueItems(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
