package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

// SkillsList returns the full skill catalog
func SkillsList(skillsService *services.SkillsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skills, err := skillsService.ListAll()
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, serializeSkills(skills))
	}
}

// ProfileSkillsList returns the skills on the requesting user's profile
func ProfileSkillsList(skillsService *services.SkillsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CtxGetUser(c)
		skills, err := skillsService.ListForUser(user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, serializeSkills(skills))
	}
}

// ProfileSkillsAvailable returns the skills the user hasn't added yet
func ProfileSkillsAvailable(skillsService *services.SkillsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CtxGetUser(c)
		skills, err := skillsService.ListAvailableForUser(user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, serializeSkills(skills))
	}
}

type ProfileSkillsReq struct {
	SkillIDs []string `json:"skill_ids"`
}

// ProfileSkillsAdd attaches skills to the requesting user's profile
func ProfileSkillsAdd(skillsService *services.SkillsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ProfileSkillsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		if err := skillsService.AddUserSkills(user.ID, req.SkillIDs); err != nil {
			respondError(c, err)
			return
		}

		respondData(c, gin.H{})

	}
}

// ProfileSkillsRemove detaches skills from the requesting user's profile
func ProfileSkillsRemove(skillsService *services.SkillsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ProfileSkillsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		if err := skillsService.RemoveUserSkills(user.ID, req.SkillIDs); err != nil {
			respondError(c, err)
			return
		}

		respondData(c, gin.H{})

	}
}

func serializeSkills(skills []*models.Skill) []map[string]interface{} {
	out := []map[string]interface{}{}
	for _, skill := range skills {
		out = append(out, serializeSkill(skill))
	}
	return out
}
