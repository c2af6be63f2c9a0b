package hooks

import (
	"github.com/volunteerhub/volunteerhub-api/models"
)

func serializeUser(user *models.User) map[string]interface{} {
	var image *string
	if user.Image.Valid {
		image = &user.Image.String
	}
	return map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"image": image,
		"bio":   user.Bio,
	}
}

func serializeOrganization(organization *models.Organization) map[string]interface{} {
	var thumbnail *string
	if organization.Thumbnail.Valid {
		thumbnail = &organization.Thumbnail.String
	}
	return map[string]interface{}{
		"id":        organization.ID,
		"name":      organization.Name,
		"thumbnail": thumbnail,
		"creator":   organization.CreatorID,
	}
}

func serializeListing(listing *models.Listing) map[string]interface{} {
	data := map[string]interface{}{
		"id":           listing.ID,
		"name":         listing.Name,
		"description":  listing.Description,
		"organization": listing.OrganizationID,
		"created_date": listing.CreatedDate,
	}
	if listing.Thumbnail.Valid {
		data["thumbnail"] = listing.Thumbnail.String
	}
	if listing.Address.Valid {
		data["address"] = listing.Address.String
	}
	if listing.Organization != nil {
		data["organization_name"] = listing.Organization.Name
	}
	return data
}

func serializeSkill(skill *models.Skill) map[string]interface{} {
	return map[string]interface{}{
		"id":       skill.ID,
		"name":     skill.Name,
		"icon_url": skill.IconURL,
	}
}
