package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/hooks"
	"github.com/volunteerhub/volunteerhub-api/v1/middleware"
)

// Server is the API server instance
type Server struct {
	UsersService         *services.UsersService
	OrganizationsService *services.OrganizationsService
	SkillsService        *services.SkillsService
	ListingsService      *services.ListingsService
	ConversationsService *services.ConversationsService
	AuthTokensService    *services.AuthTokensService
}

// Setup mounts the API server to the given group
func (s *Server) Setup(g *gin.RouterGroup) {

	// Register middleware for all routes
	g.Use(middleware.CheckAuth(s.AuthTokensService, s.UsersService))

	// Register all of the public hooks that require no authentication
	s.setupPublicHooks(g)

	// Register authenticated hooks
	s.setupAuthenticatedHooks(g)

}

// setupPublicHooks mounts API hooks that are publicly accessible
func (s *Server) setupPublicHooks(g *gin.RouterGroup) {

	g.POST("/app/get-state", hooks.AppState())
	g.POST("/auth/register", hooks.AuthRegister(
		s.UsersService,
		s.AuthTokensService,
	))
	g.POST("/auth/login", hooks.AuthLogin(
		s.UsersService,
		s.AuthTokensService,
	))

}

// setupAuthenticatedHooks mounts API hooks that require login
func (s *Server) setupAuthenticatedHooks(g *gin.RouterGroup) {

	// Require login for everything after this
	g.Use(middleware.RequireLogin())

	g.POST("/auth/whoami", hooks.AuthWhoAmI(
		s.AuthTokensService,
	))

	// Profile and skills
	g.POST("/profile/get", hooks.ProfileGet())
	g.POST("/profile/update", hooks.ProfileUpdate(s.UsersService))
	g.POST("/skills/list", hooks.SkillsList(s.SkillsService))
	g.POST("/profile/skills/list", hooks.ProfileSkillsList(s.SkillsService))
	g.POST("/profile/skills/available", hooks.ProfileSkillsAvailable(s.SkillsService))
	g.POST("/profile/skills/add", hooks.ProfileSkillsAdd(s.SkillsService))
	g.POST("/profile/skills/remove", hooks.ProfileSkillsRemove(s.SkillsService))

	// Organizations
	g.POST("/orgs/create", hooks.OrgsCreate(s.OrganizationsService))
	g.POST("/orgs/mine", hooks.OrgsMine(s.OrganizationsService))
	g.POST("/orgs/others", hooks.OrgsOthers(s.OrganizationsService))
	g.POST("/orgs/delete", hooks.OrgsDelete(s.OrganizationsService))

	// Listings
	g.POST("/listings/create", hooks.ListingsCreate(s.ListingsService))
	g.POST("/listings/list", hooks.ListingsList(s.ListingsService))
	g.POST("/listings/signup", hooks.ListingsSignup(s.ListingsService))

	// Conversations and messaging
	g.POST("/conversations/create", hooks.ConversationsCreate(s.ConversationsService))
	g.POST("/conversations/mine", hooks.ConversationsMine(s.ConversationsService))
	g.POST("/conversations/org", hooks.ConversationsForOrg(s.ConversationsService))
	g.POST("/conversations/participants", hooks.ConversationParticipants(s.ConversationsService))
	g.POST("/conversations/add-participant", hooks.ConversationAddParticipant(s.ConversationsService))
	g.POST("/conversations/send-message", hooks.ConversationSendMessage(s.ConversationsService))
	g.POST("/conversations/candidates", hooks.ConversationCandidates(s.ConversationsService))

}
