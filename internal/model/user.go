package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a marketplace account. The ID doubles as the account id
// issued by the external identity provider.
type User struct {
	ID             uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string       `json:"name" gorm:"size:255;not null"`
	Address        string       `json:"address" gorm:"size:255;not null"`
	Email          string       `json:"email" gorm:"size:255;not null;index"`
	PhoneNumber    string       `json:"phoneNumber" gorm:"size:64;not null"`
	CompanyAccount bool         `json:"companyAccount" gorm:"not null;default:false;index"`
	Verified       bool         `json:"verified" gorm:"not null;default:false;index"`
	CompanyID      *string      `json:"companyId,omitempty" gorm:"size:64"`
	OfficeInfo     *string      `json:"officeInfo,omitempty" gorm:"type:text"`
	Coordinates    *Coordinates `json:"coordinates,omitempty" gorm:"type:text"`
	Description    *string      `json:"description,omitempty" gorm:"type:text"`
	LogoURL        *string      `json:"logoUrl,omitempty" gorm:"size:1024"`
	CreatorID      uuid.UUID    `json:"creatorId" gorm:"type:char(36);not null"`
	LastModifierID uuid.UUID    `json:"lastModifierId" gorm:"type:char(36);not null"`
	CreatedAt      time.Time    `json:"createdAt"`
	ModifiedAt     time.Time    `json:"modifiedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
