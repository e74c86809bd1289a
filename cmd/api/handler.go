package api

import (
	"log"

	summaryDelivery "aimeet-backend/internal/summary/delivery"
	summaryRepo "aimeet-backend/internal/summary/repository"
	summaryUsecasePkg "aimeet-backend/internal/summary/usecase"
	"aimeet-backend/pkg/ai"
	"aimeet-backend/pkg/config"
	"aimeet-backend/pkg/mailer"
	"aimeet-backend/pkg/markdown"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	config         *config.Config
	summaryHandler *summaryDelivery.SummaryHandler
}

func NewHandler(cfg *config.Config, db *gorm.DB) *Handler {
	// Initialize AI service from process config
	aiService, err := ai.NewSummarizerService(ai.Config{
		Provider:    ai.ProviderType(cfg.AIProvider),
		GroqAPIKey:  cfg.GroqAPIKey,
		GroqBaseURL: cfg.GroqBaseURL,
		GroqModel:   cfg.GroqModel,
	})
	if err != nil {
		log.Fatalf("Failed to initialize AI service: %v", err)
	}
	log.Printf("AI service initialized with provider: %s", cfg.AIProvider)

	// Pipeline stages: renderer, mail transport, history store
	renderer := markdown.NewRenderer()
	mailService := mailer.NewService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailFrom)
	historyRepository := summaryRepo.NewHistoryRepository(db)

	summaryUsecase := summaryUsecasePkg.NewSummaryUsecase(aiService, renderer, mailService, historyRepository)
	summaryHandler := summaryDelivery.NewSummaryHandler(summaryUsecase)

	return &Handler{
		config:         cfg,
		summaryHandler: summaryHandler,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.summaryHandler)

	return r.Run(addr)
}
