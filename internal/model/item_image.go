package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemImage is a single image URL attached to an item. Images carry no
// persisted ordering beyond creation time; the reconciler keeps rows matching
// the last desired list and nothing else.
type ItemImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ItemID    uuid.UUID `json:"itemId" gorm:"type:char(36);not null;index"`
	URL       string    `json:"url" gorm:"size:1024;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (i *ItemImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
