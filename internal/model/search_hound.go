package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SearchHound is a saved search watching a single category. When an item is
// created or updated in that category and notifications are on, the hound's
// owner gets an email.
//
// MinPrice and MaxPrice are persisted and round-tripped but are not part of
// the matching predicate; matching is category + notificationsOn only.
type SearchHound struct {
	ID              uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Name            string           `json:"name" gorm:"size:255;not null"`
	NotificationsOn bool             `json:"notificationsOn" gorm:"not null;default:false;index"`
	CategoryID      uuid.UUID        `json:"categoryId" gorm:"type:char(36);not null;index"`
	UserID          uuid.UUID        `json:"userId" gorm:"type:char(36);not null;index"`
	Expires         *time.Time       `json:"expires,omitempty"`
	MinPrice        *decimal.Decimal `json:"minPrice,omitempty" gorm:"type:decimal(20,2)"`
	MaxPrice        *decimal.Decimal `json:"maxPrice,omitempty" gorm:"type:decimal(20,2)"`
	ExpiresAt       time.Time        `json:"expiresAt" gorm:"not null"`
	CreatorID       uuid.UUID        `json:"creatorId" gorm:"type:char(36);not null"`
	LastModifierID  uuid.UUID        `json:"lastModifierId" gorm:"type:char(36);not null"`
	CreatedAt       time.Time        `json:"createdAt"`
	ModifiedAt      time.Time        `json:"modifiedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (s *SearchHound) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
