package services

import (
	"github.com/volunteerhub/volunteerhub-api/models"
	"gorm.io/gorm"
)

// SkillsService manages the skill catalog and volunteer skill links
type SkillsService struct {
	DB *gorm.DB
}

// ListAll lists every skill in the catalog
func (s *SkillsService) ListAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	if err := s.DB.Find(&skills).Error; err != nil {
		return nil, storageError(err)
	}
	return skills, nil
}

// ListForUser lists the skills on a volunteer's profile
func (s *SkillsService) ListForUser(userID string) ([]*models.Skill, error) {
	linked := s.DB.
		Model(&models.VolunteerSkill{}).
		Select("skill_id").
		Where("user_id = ?", userID)

	var skills []*models.Skill
	err := s.DB.
		Where("id IN (?)", linked).
		Find(&skills).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return skills, nil
}

// ListAvailableForUser lists skills the volunteer hasn't added yet
func (s *SkillsService) ListAvailableForUser(userID string) ([]*models.Skill, error) {
	linked := s.DB.
		Model(&models.VolunteerSkill{}).
		Select("skill_id").
		Where("user_id = ?", userID)

	var skills []*models.Skill
	err := s.DB.
		Where("id NOT IN (?)", linked).
		Find(&skills).
		Error
	if err != nil {
		return nil, storageError(err)
	}
	return skills, nil
}

// AddUserSkills attaches skills to a volunteer's profile. Already-linked
// skills are skipped rather than duplicated.
func (s *SkillsService) AddUserSkills(userID string, skillIDs []string) error {
	if len(skillIDs) == 0 {
		return &ValidationError{Reason: "at least one skill is required"}
	}

	existing, err := s.ListForUser(userID)
	if err != nil {
		return err
	}
	linked := map[string]bool{}
	for _, skill := range existing {
		linked[skill.ID] = true
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, skillID := range skillIDs {
			if skillID == "" || linked[skillID] {
				continue
			}
			link := models.VolunteerSkill{UserID: userID, SkillID: skillID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			linked[skillID] = true
		}
		return nil
	})
	if err != nil {
		return storageError(err)
	}
	return nil
}

// RemoveUserSkills detaches skills from a volunteer's profile
func (s *SkillsService) RemoveUserSkills(userID string, skillIDs []string) error {
	if len(skillIDs) == 0 {
		return &ValidationError{Reason: "at least one skill is required"}
	}
	err := s.DB.
		Where("user_id = ?", userID).
		Where("skill_id IN ?", skillIDs).
		Delete(&models.VolunteerSkill{}).
		Error
	if err != nil {
		return storageError(err)
	}
	return nil
}
