package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/config"
	"github.com/pankajneema/curiousdevs0.1/internal/middleware"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/notify"
	"github.com/pankajneema/curiousdevs0.1/internal/repository"
	"github.com/pankajneema/curiousdevs0.1/internal/security"
	"github.com/pankajneema/curiousdevs0.1/internal/service"
)

type HandlerSet struct {
	log            zerolog.Logger
	cfg            *config.AppConfig
	authService    *service.AuthService
	projectService *service.ProjectService
	billingService *service.BillingService
	leadService    *service.LeadService
	db             *pgxpool.Pool
	cache          *redis.Client
	users          *repository.UserRepository
	contacts       *repository.ContactRepository
	subscribers    *repository.NewsletterRepository
	revoker        security.TokenRevoker
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, mailer *notify.Mailer, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	contactRepo := repository.NewContactRepository(db)
	billRepo := repository.NewBillRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)

	revoker := security.NewRedisRevoker(cache)

	return HandlerSet{
		log:            log,
		cfg:            cfg,
		authService:    service.NewAuthService(userRepo, revoker, cfg, log),
		projectService: service.NewProjectService(projectRepo, messageRepo, log),
		billingService: service.NewBillingService(billRepo, projectRepo),
		leadService:    service.NewLeadService(leadRepo, mailer, log),
		db:             db,
		cache:          cache,
		users:          userRepo,
		contacts:       contactRepo,
		subscribers:    newsletterRepo,
		revoker:        revoker,
	}
}

func (h HandlerSet) Register(router *gin.Engine) {
	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.Auth(h.cfg.Security.JWTSecret, h.users, h.revoker, h.log)
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", authRequired, h.Logout)
		auth.GET("/me", authRequired, h.Me)
	}

	project := router.Group("/project", authRequired)
	{
		project.GET("/all", h.ListProjects)
		project.POST("/create", h.CreateProject)
		project.GET("/details/:id", h.ProjectDetails)
		project.PUT("/update/:id", adminOnly, h.UpdateProject)
		project.POST("/message", h.SendProjectMessage)
		project.GET("/messages/:id", h.ListProjectMessages)
		project.POST("/payment/:id", h.ProcessProjectPayment)
	}

	lead := router.Group("/lead")
	{
		lead.POST("/create", h.CreateLead)
		lead.GET("/all", authRequired, adminOnly, h.ListLeads)
	}

	router.POST("/contact", h.CreateContactRequest)
	router.GET("/contact", authRequired, adminOnly, h.ListContactRequests)

	router.POST("/newsletter/subscribe", h.SubscribeNewsletter)

	bill := router.Group("/bill", authRequired)
	{
		bill.GET("/my", h.ListMyBills)
		bill.GET("/all", adminOnly, h.ListAllBills)
		bill.POST("/create", adminOnly, h.CreateBill)
		bill.PUT("/payment/:id", h.PayBill)
	}
}
