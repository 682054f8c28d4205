package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item represents a single marketplace listing.
//
// Expired and ExpiresAt are owned by the item lifecycle rules: creation always
// starts a fresh expiry window, renewal (expired true -> false) resets it, and
// the hourly sweep flips overdue active items to expired.
type Item struct {
	ID               uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Title            string           `json:"title" gorm:"size:255;not null;index"`
	CategoryID       uuid.UUID        `json:"category" gorm:"type:char(36);not null;index"`
	UserID           uuid.UUID        `json:"userId" gorm:"type:char(36);not null;index"`
	OnlyForCompanies bool             `json:"onlyForCompanies" gorm:"not null;default:false"`
	Metadata         Metadata         `json:"metadata" gorm:"type:text"`
	ItemType         ItemType         `json:"itemType" gorm:"type:varchar(16);not null;index"`
	ThumbnailURL     *string          `json:"thumbnailUrl,omitempty" gorm:"size:1024"`
	Properties       ItemProperties   `json:"properties,omitempty" gorm:"type:text"`
	Price            decimal.Decimal  `json:"price" gorm:"type:decimal(20,2);not null"`
	PriceUnit        string           `json:"priceUnit" gorm:"size:64;not null"`
	PaymentMethod    string           `json:"paymentMethod" gorm:"size:255;not null"`
	Delivery         bool             `json:"delivery" gorm:"not null;default:false"`
	DeliveryPrice    *decimal.Decimal `json:"deliveryPrice,omitempty" gorm:"type:decimal(20,2)"`
	Expired          bool             `json:"expired" gorm:"not null;default:false;index"`
	ExpiresAt        time.Time        `json:"expiresAt" gorm:"not null;index"`
	CreatorID        uuid.UUID        `json:"creatorId" gorm:"type:char(36);not null"`
	LastModifierID   uuid.UUID        `json:"lastModifierId" gorm:"type:char(36);not null"`
	CreatedAt        time.Time        `json:"createdAt" gorm:"index"`
	ModifiedAt       time.Time        `json:"modifiedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
