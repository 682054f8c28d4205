package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"marketplace/internal/errors"
	"marketplace/internal/model"
)

func newTestItemService(
	itemRepo *MockItemRepository,
	categoryRepo *MockCategoryRepository,
	userRepo *MockUserRepository,
	images *MockImageReconciler,
	matcher *MockMatcher,
	sink *MockSink,
	now time.Time,
) ItemService {
	svc := NewItemService(itemRepo, categoryRepo, userRepo, images, matcher, sink, 30).(*itemService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestItemService_Create(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	categoryID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		item          *model.Item
		setupMock     func(*MockItemRepository, *MockCategoryRepository, *MockUserRepository, *MockImageReconciler, *MockMatcher)
		expectedError error
	}{
		{
			name: "successful create starts a fresh expiry window",
			item: &model.Item{
				Title:      "Kulmasohva",
				CategoryID: categoryID,
				UserID:     userID,
				ItemType:   model.ItemTypeSell,
				Price:      decimal.NewFromInt(100),
				// Caller-supplied expiry state is ignored on create.
				Expired:   true,
				ExpiresAt: now.Add(-time.Hour),
			},
			setupMock: func(mItem *MockItemRepository, mCat *MockCategoryRepository, mUser *MockUserRepository, mImg *MockImageReconciler, mMatch *MockMatcher) {
				mCat.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID}, nil)
				mUser.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
				mItem.On("Create", mock.Anything, mock.AnythingOfType("*model.Item")).Return(nil)
				mImg.On("Reconcile", mock.Anything, mock.AnythingOfType("uuid.UUID"), []string{"https://cdn.example.com/a.jpg"}).Return(nil)
				mMatch.On("NotifyMatches", mock.Anything, mock.AnythingOfType("*model.Item")).Return()
			},
		},
		{
			name: "missing category",
			item: &model.Item{
				Title:    "Kulmasohva",
				UserID:   userID,
				ItemType: model.ItemTypeSell,
			},
			setupMock:     func(*MockItemRepository, *MockCategoryRepository, *MockUserRepository, *MockImageReconciler, *MockMatcher) {},
			expectedError: errors.ErrMissingCategory,
		},
		{
			name: "invalid item type",
			item: &model.Item{
				Title:      "Kulmasohva",
				CategoryID: categoryID,
				UserID:     userID,
				ItemType:   model.ItemType("TRADE"),
			},
			setupMock:     func(*MockItemRepository, *MockCategoryRepository, *MockUserRepository, *MockImageReconciler, *MockMatcher) {},
			expectedError: errors.ErrInvalidItemType,
		},
		{
			name: "unknown category",
			item: &model.Item{
				Title:      "Kulmasohva",
				CategoryID: categoryID,
				UserID:     userID,
				ItemType:   model.ItemTypeSell,
			},
			setupMock: func(mItem *MockItemRepository, mCat *MockCategoryRepository, mUser *MockUserRepository, mImg *MockImageReconciler, mMatch *MockMatcher) {
				mCat.On("FindByID", mock.Anything, categoryID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockItems := new(MockItemRepository)
			mockCategories := new(MockCategoryRepository)
			mockUsers := new(MockUserRepository)
			mockImages := new(MockImageReconciler)
			mockMatcher := new(MockMatcher)
			mockSink := new(MockSink)
			tt.setupMock(mockItems, mockCategories, mockUsers, mockImages, mockMatcher)

			service := newTestItemService(mockItems, mockCategories, mockUsers, mockImages, mockMatcher, mockSink, now)
			created, err := service.Create(context.Background(), tt.item, []string{"https://cdn.example.com/a.jpg"}, userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.NotEqual(t, uuid.Nil, created.ID)
				assert.False(t, created.Expired)
				assert.Equal(t, now.Add(30*24*time.Hour), created.ExpiresAt)
				assert.Equal(t, userID, created.CreatorID)
			}

			mockItems.AssertExpectations(t)
			mockCategories.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
			mockImages.AssertExpectations(t)
			mockMatcher.AssertExpectations(t)
		})
	}
}

func TestItemService_UpdateExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	categoryID := uuid.New()
	userID := uuid.New()
	itemID := uuid.New()
	currentExpiry := now.Add(10 * 24 * time.Hour)

	tests := []struct {
		name          string
		foundExpired  bool
		inExpired     bool
		inExpiresAt   time.Time
		wantExpiresAt time.Time
	}{
		{
			name:          "renewal resets the expiry window",
			foundExpired:  true,
			inExpired:     false,
			inExpiresAt:   now.Add(-5 * 24 * time.Hour),
			wantExpiresAt: now.Add(30 * 24 * time.Hour),
		},
		{
			name:          "plain update stores the supplied expiry verbatim",
			foundExpired:  false,
			inExpired:     false,
			inExpiresAt:   now.Add(-time.Hour),
			wantExpiresAt: now.Add(-time.Hour),
		},
		{
			name:          "zero expiry keeps the current one",
			foundExpired:  false,
			inExpired:     false,
			wantExpiresAt: currentExpiry,
		},
		{
			name:          "marking expired does not touch the clock",
			foundExpired:  false,
			inExpired:     true,
			inExpiresAt:   currentExpiry,
			wantExpiresAt: currentExpiry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockItems := new(MockItemRepository)
			mockCategories := new(MockCategoryRepository)
			mockUsers := new(MockUserRepository)
			mockImages := new(MockImageReconciler)
			mockMatcher := new(MockMatcher)
			mockSink := new(MockSink)

			found := &model.Item{
				ID:         itemID,
				Title:      "Kulmasohva",
				CategoryID: categoryID,
				UserID:     userID,
				ItemType:   model.ItemTypeSell,
				Expired:    tt.foundExpired,
				ExpiresAt:  currentExpiry,
			}
			mockItems.On("FindByID", mock.Anything, itemID).Return(found, nil)
			mockCategories.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID}, nil)
			mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
			mockItems.On("Update", mock.Anything, mock.AnythingOfType("*model.Item")).Return(nil)
			mockImages.On("Reconcile", mock.Anything, itemID, []string(nil)).Return(nil)
			mockMatcher.On("NotifyMatches", mock.Anything, mock.AnythingOfType("*model.Item")).Return()

			service := newTestItemService(mockItems, mockCategories, mockUsers, mockImages, mockMatcher, mockSink, now)
			updated, err := service.Update(context.Background(), itemID, &model.Item{
				Title:      "Kulmasohva",
				CategoryID: categoryID,
				UserID:     userID,
				ItemType:   model.ItemTypeSell,
				Expired:    tt.inExpired,
				ExpiresAt:  tt.inExpiresAt,
			}, nil, userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantExpiresAt, updated.ExpiresAt)
			assert.Equal(t, tt.inExpired, updated.Expired)
			mockItems.AssertExpectations(t)
		})
	}
}

func TestItemService_Delete(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()
	item := &model.Item{ID: itemID, Title: "Kulmasohva"}

	mockItems := new(MockItemRepository)
	mockImages := new(MockImageReconciler)
	mockItems.On("FindByID", mock.Anything, itemID).Return(item, nil)
	mockImages.On("Clear", mock.Anything, itemID).Return(nil)
	mockItems.On("Delete", mock.Anything, item).Return(nil)

	service := newTestItemService(mockItems, new(MockCategoryRepository), new(MockUserRepository), mockImages, new(MockMatcher), new(MockSink), now)
	err := service.Delete(context.Background(), itemID)

	assert.NoError(t, err)
	mockItems.AssertExpectations(t)
	mockImages.AssertExpectations(t)
}

func TestItemService_ExpireOverdueItems(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 1, 0, 0, time.UTC)
	userA := uuid.New()
	userC := uuid.New()

	itemA := model.Item{ID: uuid.New(), Title: "A", UserID: userA, ExpiresAt: now.Add(-time.Hour)}
	itemB := model.Item{ID: uuid.New(), Title: "B", UserID: uuid.New(), ExpiresAt: now.Add(-time.Hour)}
	itemC := model.Item{ID: uuid.New(), Title: "C", UserID: userC, ExpiresAt: now.Add(-time.Hour)}

	mockItems := new(MockItemRepository)
	mockUsers := new(MockUserRepository)
	mockSink := new(MockSink)

	mockItems.On("ListOverdue", mock.Anything, now).Return([]model.Item{itemA, itemB, itemC}, nil)
	mockItems.On("Update", mock.Anything, mock.MatchedBy(func(i *model.Item) bool {
		return i.ID == itemA.ID && i.Expired
	})).Return(nil)
	// Persisting B fails; the sweep carries on with C.
	mockItems.On("Update", mock.Anything, mock.MatchedBy(func(i *model.Item) bool {
		return i.ID == itemB.ID
	})).Return(assert.AnError)
	mockItems.On("Update", mock.Anything, mock.MatchedBy(func(i *model.Item) bool {
		return i.ID == itemC.ID && i.Expired
	})).Return(nil)

	mockUsers.On("FindByID", mock.Anything, userA).Return(&model.User{ID: userA, Email: "a@example.com"}, nil)
	mockUsers.On("FindByID", mock.Anything, userC).Return(&model.User{ID: userC, Email: "c@example.com"}, nil)

	mockSink.On("Send", "a@example.com", mock.Anything, mock.Anything).Return(nil)
	// The mail for C bounces; the item still counts as expired.
	mockSink.On("Send", "c@example.com", mock.Anything, mock.Anything).Return(assert.AnError)

	service := newTestItemService(mockItems, new(MockCategoryRepository), mockUsers, new(MockImageReconciler), new(MockMatcher), mockSink, now)
	expired, err := service.ExpireOverdueItems(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, expired)
	mockItems.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
	mockSink.AssertExpectations(t)
}

func TestItemService_ExpireOverdueItemsSkipsOwnerWithoutEmail(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 1, 0, 0, time.UTC)
	ownerID := uuid.New()
	item := model.Item{ID: uuid.New(), Title: "A", UserID: ownerID, ExpiresAt: now.Add(-time.Hour)}

	mockItems := new(MockItemRepository)
	mockUsers := new(MockUserRepository)
	mockSink := new(MockSink)

	mockItems.On("ListOverdue", mock.Anything, now).Return([]model.Item{item}, nil)
	mockItems.On("Update", mock.Anything, mock.AnythingOfType("*model.Item")).Return(nil)
	mockUsers.On("FindByID", mock.Anything, ownerID).Return(&model.User{ID: ownerID}, nil)

	service := newTestItemService(mockItems, new(MockCategoryRepository), mockUsers, new(MockImageReconciler), new(MockMatcher), mockSink, now)
	expired, err := service.ExpireOverdueItems(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, expired)
	mockSink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
