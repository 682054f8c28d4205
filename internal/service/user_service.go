package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// PublicUser is the profile view of a user exposed without authentication.
// Account flags (companyAccount, verified) stay private.
type PublicUser struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Address        string             `json:"address"`
	Email          string             `json:"email"`
	PhoneNumber    string             `json:"phoneNumber"`
	CompanyID      *string            `json:"companyId,omitempty"`
	OfficeInfo     *string            `json:"officeInfo,omitempty"`
	Coordinates    *model.Coordinates `json:"coordinates,omitempty"`
	Description    *string            `json:"description,omitempty"`
	LogoURL        *string            `json:"logoUrl,omitempty"`
	CreatorID      uuid.UUID          `json:"creatorId"`
	LastModifierID uuid.UUID          `json:"lastModifierId"`
	CreatedAt      time.Time          `json:"createdAt"`
	ModifiedAt     time.Time          `json:"modifiedAt"`
}

// UserService handles marketplace accounts. Account provisioning in the
// identity provider is out of scope; user ids are the IdP-issued account ids.
type UserService interface {
	Create(ctx context.Context, user *model.User, creatorID uuid.UUID) (*model.User, error)
	Find(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindPublic(ctx context.Context, id uuid.UUID) (*PublicUser, error)
	List(ctx context.Context, filter repository.UserListFilter) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, user *model.User, modifierID uuid.UUID) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, user *model.User, creatorID uuid.UUID) (*model.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatorID = creatorID
	user.LastModifierID = creatorID

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Find(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) FindPublic(ctx context.Context, id uuid.UUID) (*PublicUser, error) {
	user, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PublicUser{
		ID:             user.ID,
		Name:           user.Name,
		Address:        user.Address,
		Email:          user.Email,
		PhoneNumber:    user.PhoneNumber,
		CompanyID:      user.CompanyID,
		OfficeInfo:     user.OfficeInfo,
		Coordinates:    user.Coordinates,
		Description:    user.Description,
		LogoURL:        user.LogoURL,
		CreatorID:      user.CreatorID,
		LastModifierID: user.LastModifierID,
		CreatedAt:      user.CreatedAt,
		ModifiedAt:     user.ModifiedAt,
	}, nil
}

func (s *userService) List(ctx context.Context, filter repository.UserListFilter) ([]model.User, error) {
	return s.userRepo.List(ctx, filter)
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, user *model.User, modifierID uuid.UUID) (*model.User, error) {
	found, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	found.Name = user.Name
	found.Address = user.Address
	found.Email = user.Email
	found.PhoneNumber = user.PhoneNumber
	found.CompanyAccount = user.CompanyAccount
	found.Verified = user.Verified
	found.CompanyID = user.CompanyID
	found.OfficeInfo = user.OfficeInfo
	found.Coordinates = user.Coordinates
	found.Description = user.Description
	found.LogoURL = user.LogoURL
	found.LastModifierID = modifierID

	if err := s.userRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return found, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.Find(ctx, id)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, user)
}
