package services

import (
	"errors"
	"time"

	"github.com/volunteerhub/volunteerhub-api/metrics"
	"github.com/volunteerhub/volunteerhub-api/models"
	"gorm.io/gorm"
)

// ListingsService manages volunteering opportunities posted by organizations
type ListingsService struct {
	DB *gorm.DB

	// Guard supplies the organization ownership predicate so the check lives
	// in one place instead of being reimplemented per action
	Guard *ConversationsService
}

// ListingInput carries the fields of a new listing
type ListingInput struct {
	Name        string
	Description string
	Thumbnail   string
	Address     string
	SkillIDs    []string
}

// Create posts a new listing under an organization the actor created
func (s *ListingsService) Create(
	actorID string,
	organizationID string,
	input ListingInput,
) (*models.Listing, error) {

	if input.Name == "" || input.Description == "" {
		return nil, &ValidationError{Reason: "listing name and description are required"}
	}

	ok, err := s.Guard.CanActAsOrganization(actorID, organizationID)
	if err := s.Guard.authorize(ok, err, "you are not the creator of this organization"); err != nil {
		return nil, err
	}

	listing := models.Listing{
		OrganizationID: organizationID,
		Name:           input.Name,
		Description:    input.Description,
		Thumbnail:      optionalString(input.Thumbnail),
		Address:        optionalString(input.Address),
		CreatedDate:    time.Now().UTC(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}
		for _, skillID := range input.SkillIDs {
			if skillID == "" {
				continue
			}
			link := models.ListingSkill{ListingID: listing.ID, SkillID: skillID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageError(err)
	}
	return &listing, nil
}

// ListAll lists every open listing with its organization preloaded
func (s *ListingsService) ListAll() ([]*models.Listing, error) {
	var listings []*models.Listing
	err := s.DB.
		Preload("Organization").
		Where("deleted_date IS NULL").
		Order("created_date DESC").
		Find(&listings).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return listings, nil
}

// ListForOrganization lists the listings posted by one organization
func (s *ListingsService) ListForOrganization(organizationID string) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("organization_id = ?", organizationID).
		Order("created_date DESC").
		Find(&listings).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return listings, nil
}

// SignUp records the volunteer on a listing. Signing up twice is a conflict.
func (s *ListingsService) SignUp(userID, listingID string) (*models.ListingSignup, error) {

	var listing models.Listing
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("id = ?", listingID).
		First(&listing).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "listing", ID: listingID}
		}
		return nil, storageError(err)
	}

	var count int64
	err = s.DB.
		Model(&models.ListingSignup{}).
		Where("listing_id = ?", listingID).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	if count > 0 {
		return nil, &ConflictError{Reason: "already signed up for this listing"}
	}

	signup := models.ListingSignup{
		ListingID:    listingID,
		UserID:       userID,
		SignedUpDate: time.Now().UTC(),
	}
	if err := s.DB.Create(&signup).Error; err != nil {
		return nil, storageError(err)
	}

	metrics.ListingSignups.Inc()
	return &signup, nil
}
