package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a node in the tree used to classify items and search hounds.
// ParentCategoryID is a weak reference: no foreign key, the parent may be
// deleted independently.
type Category struct {
	ID               uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string             `json:"name" gorm:"size:255;not null;index"`
	ParentCategoryID *uuid.UUID         `json:"parentCategoryId,omitempty" gorm:"type:char(36);index"`
	Properties       CategoryProperties `json:"properties,omitempty" gorm:"type:text"`
	CreatorID        uuid.UUID          `json:"creatorId" gorm:"type:char(36);not null"`
	LastModifierID   uuid.UUID          `json:"lastModifierId" gorm:"type:char(36);not null"`
	CreatedAt        time.Time          `json:"createdAt"`
	ModifiedAt       time.Time          `json:"modifiedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
