package services

import (
	"errors"
	"time"

	"github.com/volunteerhub/volunteerhub-api/models"
	"gorm.io/gorm"
)

// UsersService manages volunteer accounts and profiles
type UsersService struct {
	DB *gorm.DB
}

// GetByID gets the user with the provided identifier
func (s *UsersService) GetByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("id = ?", id).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError(err)
	}
	return &user, nil
}

// GetByEmail gets the user with the provided email address
func (s *UsersService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("email LIKE ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError(err)
	}
	return &user, nil
}

// FindByLogin finds a user with the provided login credentials
func (s *UsersService) FindByLogin(email, password string) (*models.User, error) {

	// Find the user with the email
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	// Verify the password
	if !user.VerifyPassword(password) {
		return nil, nil
	}

	return user, nil

}

// Register creates a new user account
func (s *UsersService) Register(name, email, password string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, &ValidationError{Reason: "name and email are required"}
	}
	if password == "" {
		return nil, &ValidationError{Reason: "password is required"}
	}

	existing, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Reason: "an account with this email already exists"}
	}

	user := models.User{
		Name:        name,
		Email:       email,
		CreatedDate: time.Now().UTC(),
	}
	user.SetPassword(password)
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, storageError(err)
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields
type ProfileUpdate struct {
	Name  string
	Image string
	Bio   string
}

// UpdateProfile updates the user's display profile
func (s *UsersService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "user", ID: id}
	}
	if update.Name == "" {
		return nil, &ValidationError{Reason: "name is required"}
	}

	user.Name = update.Name
	user.Bio = update.Bio
	user.Image = optionalString(update.Image)
	if err := s.DB.Save(user).Error; err != nil {
		return nil, storageError(err)
	}
	return user, nil
}

// ListOtherVolunteers lists every user except the one provided
func (s *UsersService) ListOtherVolunteers(userID string) ([]*models.User, error) {
	var users []*models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("id != ?", userID).
		Find(&users).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return users, nil
}
