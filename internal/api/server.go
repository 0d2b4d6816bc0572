package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/docs"
	v1 "github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/handler/v1"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/middleware"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/config"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository/dao"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	eventHandler := s.initEventHandler(db)
	systemHandler := v1.NewSystemHandler(db)
	s.MountHandlers(authHandler, eventHandler, systemHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	organiserRepo := repository.NewOrganiserRepository(dao.NewOrganiserDAO(db))
	svc := service.NewAuthService(userRepo, organiserRepo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	registrationRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	svc := service.NewEventService(eventRepo)
	regSvc := service.NewRegistrationService(registrationRepo)
	handler := v1.NewEventHandler(svc, regSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, eventHandler *v1.EventHandler, systemHandler *v1.SystemHandler) {
	const basePath = "/api"

	auth := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.GET("/test", systemHandler.HandleDBTest)
		public.GET("/events", eventHandler.HandleListEvents)
		public.POST("/register", authHandler.HandleRegisterStudent)
		public.POST("/login", authHandler.HandleLoginStudent)
		public.POST("/organiser/register", authHandler.HandleRegisterOrganiser)
		public.POST("/organiser/login", authHandler.HandleLoginOrganiser)
	}

	authenticated := s.Router.Group(basePath, auth.VerifyJWT())
	{
		authenticated.POST("/events/:id/register", eventHandler.HandleRegisterForEvent)
	}

	organiserOnly := s.Router.Group(basePath, auth.VerifyJWT(), auth.RequireOrganiser())
	{
		organiserOnly.GET("/organiser/events", eventHandler.HandleOrganiserEvents)
		organiserOnly.POST("/events", eventHandler.HandleCreateEvent)
		organiserOnly.PUT("/events/:id", eventHandler.HandleUpdateEvent)
		organiserOnly.DELETE("/events/:id", eventHandler.HandleDeleteEvent)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "College Event Management API"
	docs.SwaggerInfo.Description = "Backend for the college event-management application."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
