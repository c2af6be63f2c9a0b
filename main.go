package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
	v1 "github.com/volunteerhub/volunteerhub-api/v1"
	"gorm.io/gorm"
)

func main() {

	// Load the .env file
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file: ", err)
	}

	// Create the application logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	//================================================================================
	// Create the database connection
	//================================================================================

	// Get the database driver for the database string
	dbDriver := ParseDatabaseDriver(os.Getenv("DB_URL"))
	if dbDriver == nil {
		log.Fatalln("Failed to create database driver. Check DB_URL environment variable")
	}

	// Create the database connection
	db, err := gorm.Open(dbDriver, &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		panic("failed to connect database")
	}

	// Migrate the schema
	db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Conversation{},
		&models.Participant{},
		&models.Message{},
		&models.Listing{},
		&models.ListingSignup{},
		&models.Skill{},
		&models.VolunteerSkill{},
		&models.ListingSkill{},
	)

	//================================================================================
	// Setup the WebSockets server
	//================================================================================

	// Get all of the allowed origins
	allowedOrigins := GetAllowedOrigins()

	// Create the server
	socketIoServer := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&polling.Transport{
				CheckOrigin: checkOrigin(allowedOrigins),
			},
			&websocket.Transport{
				CheckOrigin: checkOrigin(allowedOrigins),
			},
		},
	})
	go socketIoServer.Serve()

	//================================================================================
	// Create all the service instances
	//================================================================================

	conversationsService := &services.ConversationsService{
		DB:  db,
		Log: logger,
	}
	socketsService := &services.SocketsService{
		Server:        socketIoServer,
		Conversations: conversationsService,
		Log:           logger,
	}
	usersService := &services.UsersService{DB: db}
	organizationsService := &services.OrganizationsService{DB: db}
	skillsService := &services.SkillsService{DB: db}
	listingsService := &services.ListingsService{
		DB:    db,
		Guard: conversationsService,
	}
	authTokensService := &services.AuthTokensService{
		SigningPepper: os.Getenv("AUTH_TOKEN_SIGNING_PEPPER"),
	}

	// Wire the realtime fan-out into the conversation service and register
	// the socket event handlers. Needed in two steps because the two
	// services have a circular relationship.
	conversationsService.Notifier = socketsService
	socketsService.Setup()

	//================================================================================
	// Setup the Gin HTTP router
	//================================================================================

	// Create the Gin router
	r := gin.Default()

	// Configure CORS for the API
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Accept", "User-Agent", "Authorization")
	r.Use(cors.New(corsCfg))

	// Create the API instance
	api := &v1.Server{
		UsersService:         usersService,
		OrganizationsService: organizationsService,
		SkillsService:        skillsService,
		ListingsService:      listingsService,
		ConversationsService: conversationsService,
		AuthTokensService:    authTokensService,
	}

	// Mount the API routes
	api.Setup(r.Group("v1"))

	// Create a mux to serve the HTTP, Socket.IO and metrics endpoints
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", socketIoServer)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", r)

	// Run the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Panicln(err)
	}

}

// GetAllowedOrigins gets the slice of allowed CORS origins
func GetAllowedOrigins() []string {

	// Get the list of origins allowed
	env, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if !ok {
		return []string{}
	}

	// Create the slice for it
	origins := []string{}

	// Split up the env value
	originsRaw := strings.Split(env, ",")
	for _, originRaw := range originsRaw {
		origin := strings.TrimSpace(originRaw)
		origins = append(origins, origin)
	}

	// Return the origins slice
	return origins

}

// checkOrigin creates an origin checker for the socket transports
func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if allowed == "*" || strings.EqualFold(allowed, origin) {
				return true
			}
		}
		return false
	}
}
