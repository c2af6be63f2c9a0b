package services

import (
	"errors"
	"time"

	"github.com/volunteerhub/volunteerhub-api/models"
	"gorm.io/gorm"
)

// OrganizationsService manages organization profiles
type OrganizationsService struct {
	DB *gorm.DB
}

// GetByID gets the organization with the provided identifier
func (s *OrganizationsService) GetByID(id string) (*models.Organization, error) {
	var organization models.Organization
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("id = ?", id).
		First(&organization).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError(err)
	}
	return &organization, nil
}

// OrganizationInput carries the fields of a new or updated organization
type OrganizationInput struct {
	Name        string
	Thumbnail   string
	Email       string
	Address     string
	PhoneNumber string
	Bio         string
}

// Create creates a new organization owned by the creator
func (s *OrganizationsService) Create(creatorID string, input OrganizationInput) (*models.Organization, error) {
	if input.Name == "" {
		return nil, &ValidationError{Reason: "organization name is required"}
	}
	organization := models.Organization{
		CreatorID:   creatorID,
		Name:        input.Name,
		Thumbnail:   optionalString(input.Thumbnail),
		Email:       optionalString(input.Email),
		Address:     optionalString(input.Address),
		PhoneNumber: optionalString(input.PhoneNumber),
		Bio:         optionalString(input.Bio),
		CreatedDate: time.Now().UTC(),
	}
	if err := s.DB.Create(&organization).Error; err != nil {
		return nil, storageError(err)
	}
	return &organization, nil
}

// ListByCreator lists the organizations created by the user
func (s *OrganizationsService) ListByCreator(userID string) ([]*models.Organization, error) {
	var organizations []*models.Organization
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("creator_id = ?", userID).
		Find(&organizations).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return organizations, nil
}

// ListOthers lists organizations not created by the user
func (s *OrganizationsService) ListOthers(userID string) ([]*models.Organization, error) {
	var organizations []*models.Organization
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("creator_id != ?", userID).
		Find(&organizations).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return organizations, nil
}

// Delete removes an organization and everything that depends on it:
// conversation memberships, messages it sent, and its listings. The actor
// must be the creator. Runs in one transaction so a half-deleted
// organization is never observable.
func (s *OrganizationsService) Delete(actorID, organizationID string) error {

	organization, err := s.GetByID(organizationID)
	if err != nil {
		return err
	}
	if organization == nil {
		return &NotFoundError{Resource: "organization", ID: organizationID}
	}
	if organization.CreatorID != actorID {
		return &AuthorizationError{Reason: "you are not the creator of this organization"}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("organization_id = ?", organizationID).
			Delete(&models.Participant{}).
			Error; err != nil {
			return err
		}
		if err := tx.
			Where("sender_organization_id = ?", organizationID).
			Delete(&models.Message{}).
			Error; err != nil {
			return err
		}
		var listingIDs []string
		if err := tx.
			Model(&models.Listing{}).
			Where("organization_id = ?", organizationID).
			Pluck("id", &listingIDs).
			Error; err != nil {
			return err
		}
		if len(listingIDs) > 0 {
			if err := tx.
				Where("listing_id IN ?", listingIDs).
				Delete(&models.ListingSignup{}).
				Error; err != nil {
				return err
			}
			if err := tx.
				Where("listing_id IN ?", listingIDs).
				Delete(&models.ListingSkill{}).
				Error; err != nil {
				return err
			}
			if err := tx.
				Where("organization_id = ?", organizationID).
				Delete(&models.Listing{}).
				Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Organization{}, "id = ?", organizationID).Error
	})
	if err != nil {
		return storageError(err)
	}
	return nil
}
