package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

func TestCategoryService_Create(t *testing.T) {
	parentID := uuid.New()
	creatorID := uuid.New()

	tests := []struct {
		name          string
		category      *model.Category
		setupMock     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:     "root category",
			category: &model.Category{Name: "Huonekalut"},
			setupMock: func(m *MockCategoryRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
		},
		{
			name:     "child category",
			category: &model.Category{Name: "Sohvat", ParentCategoryID: &parentID},
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByID", mock.Anything, parentID).Return(&model.Category{ID: parentID}, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
		},
		{
			name:     "unknown parent",
			category: &model.Category{Name: "Sohvat", ParentCategoryID: &parentID},
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByID", mock.Anything, parentID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := new(MockCategoryRepository)
			tt.setupMock(mockCategories)

			service := NewCategoryService(mockCategories, new(MockSearchHoundRepository), new(MockItemService))
			created, err := service.Create(context.Background(), tt.category, creatorID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.NotEqual(t, uuid.Nil, created.ID)
				assert.Equal(t, creatorID, created.CreatorID)
			}

			mockCategories.AssertExpectations(t)
		})
	}
}

func TestCategoryService_UpdateCycleCheck(t *testing.T) {
	rootID := uuid.New()
	childID := uuid.New()
	grandchildID := uuid.New()
	modifierID := uuid.New()

	root := &model.Category{ID: rootID, Name: "Huonekalut"}
	child := &model.Category{ID: childID, Name: "Sohvat", ParentCategoryID: &rootID}
	grandchild := &model.Category{ID: grandchildID, Name: "Kulmasohvat", ParentCategoryID: &childID}

	tests := []struct {
		name          string
		targetID      uuid.UUID
		newParentID   uuid.UUID
		setupMock     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:        "reparenting under own descendant is rejected",
			targetID:    rootID,
			newParentID: grandchildID,
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByID", mock.Anything, rootID).Return(root, nil)
				m.On("FindByID", mock.Anything, grandchildID).Return(grandchild, nil)
				m.On("FindByID", mock.Anything, childID).Return(child, nil)
			},
			expectedError: errors.ErrCategoryCycle,
		},
		{
			name:        "reparenting itself is rejected",
			targetID:    childID,
			newParentID: childID,
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByID", mock.Anything, childID).Return(child, nil)
			},
			expectedError: errors.ErrCategoryCycle,
		},
		{
			name:        "valid reparent",
			targetID:    grandchildID,
			newParentID: rootID,
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByID", mock.Anything, grandchildID).Return(grandchild, nil)
				m.On("FindByID", mock.Anything, rootID).Return(root, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := new(MockCategoryRepository)
			tt.setupMock(mockCategories)

			service := NewCategoryService(mockCategories, new(MockSearchHoundRepository), new(MockItemService))
			updated, err := service.Update(context.Background(), tt.targetID, &model.Category{
				Name:             "Siirretty",
				ParentCategoryID: &tt.newParentID,
			}, modifierID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.newParentID, *updated.ParentCategoryID)
			}

			mockCategories.AssertExpectations(t)
		})
	}
}

func TestCategoryService_DeleteCascade(t *testing.T) {
	categoryID := uuid.New()
	category := &model.Category{ID: categoryID, Name: "Huonekalut"}

	activeItem := model.Item{ID: uuid.New(), CategoryID: categoryID}
	expiredItem := model.Item{ID: uuid.New(), CategoryID: categoryID, Expired: true}
	hound := model.SearchHound{ID: uuid.New(), CategoryID: categoryID}

	mockCategories := new(MockCategoryRepository)
	mockHounds := new(MockSearchHoundRepository)
	mockItems := new(MockItemService)

	mockCategories.On("FindByID", mock.Anything, categoryID).Return(category, nil)
	// Expired items go with the category too.
	mockItems.On("List", mock.Anything, mock.MatchedBy(func(f repository.ItemListFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID && f.IncludeExpired
	})).Return([]model.Item{activeItem, expiredItem}, nil)
	mockItems.On("Delete", mock.Anything, activeItem.ID).Return(nil)
	mockItems.On("Delete", mock.Anything, expiredItem.ID).Return(nil)
	mockHounds.On("List", mock.Anything, mock.MatchedBy(func(f repository.SearchHoundListFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID
	})).Return([]model.SearchHound{hound}, nil)
	mockHounds.On("Delete", mock.Anything, mock.MatchedBy(func(h *model.SearchHound) bool {
		return h.ID == hound.ID
	})).Return(nil)
	mockCategories.On("Delete", mock.Anything, category).Return(nil)

	service := NewCategoryService(mockCategories, mockHounds, mockItems)
	err := service.Delete(context.Background(), categoryID)

	assert.NoError(t, err)
	mockCategories.AssertExpectations(t)
	mockHounds.AssertExpectations(t)
	mockItems.AssertExpectations(t)
}

func TestCategoryService_DeleteStopsOnItemFailure(t *testing.T) {
	categoryID := uuid.New()
	category := &model.Category{ID: categoryID, Name: "Huonekalut"}
	item := model.Item{ID: uuid.New(), CategoryID: categoryID}

	mockCategories := new(MockCategoryRepository)
	mockItems := new(MockItemService)

	mockCategories.On("FindByID", mock.Anything, categoryID).Return(category, nil)
	mockItems.On("List", mock.Anything, mock.AnythingOfType("repository.ItemListFilter")).Return([]model.Item{item}, nil)
	mockItems.On("Delete", mock.Anything, item.ID).Return(assert.AnError)

	service := NewCategoryService(mockCategories, new(MockSearchHoundRepository), mockItems)
	err := service.Delete(context.Background(), categoryID)

	assert.Error(t, err)
	mockCategories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
