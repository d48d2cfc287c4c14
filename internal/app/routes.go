package app

import (
	"net/http"

	"qbit/internal/auth"
	"qbit/internal/cache"
	"qbit/internal/config"
	"qbit/internal/handlers"
	"qbit/internal/llm"
	"qbit/internal/repo"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, logger hclog.Logger) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Auth.SessionTTL.Duration())
	kakao := auth.NewKakao(cfg.Auth.KakaoClientID, cfg.Auth.KakaoClientSecret, cfg.Auth.KakaoRedirectURL)
	userSvc := service.NewUserService(repo.NewPGUserRepo(db))
	authHandler := handlers.NewAuthHandler(sessionStore, kakao, userSvc, handlers.CookieConfig{
		TTL:       sessionStore.TTL(),
		Secure:    cfg.Auth.CookieSecure,
		ClientURL: cfg.Auth.ClientURL,
	}, logger.Named("auth"))
	requireSession := auth.RequireSession(sessionStore)
	registerAuthRoutes(api, authHandler, handlers.NewUserHandler(userSvc), requireSession)

	protected := api.Group("", requireSession)

	todoRepo := repo.NewPGTodoRepo(db)
	memoRepo := repo.NewPGMemoRepo(db)
	registerTodoRoutes(protected, handlers.NewTodoHandler(service.NewTodoService(todoRepo, memoRepo)))
	registerMemoRoutes(protected, handlers.NewMemoHandler(service.NewMemoService(memoRepo)))

	certRepo := repo.NewPGCertRepo(db)
	certCache := cache.NewCertCache(rdb, cfg.Redis.DefaultTTL.Duration())
	certSvc := service.NewCertService(certRepo, certCache, logger.Named("certs"))
	registerCertRoutes(api, protected, handlers.NewCertHandler(certSvc))

	registerPassedCertRoutes(protected, handlers.NewPassedCertHandler(service.NewPassedCertService(repo.NewPGPassedCertRepo(db))))

	aiLog := logger.Named("ai")
	gen := llm.New(llm.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout.Duration(),
	}, aiLog)
	if !gen.Enabled() {
		aiLog.Warn("XAI_API_KEY is not set, AI endpoints will answer 503")
	}
	aiSvc := service.NewAIService(gen, certRepo, todoRepo, repo.NewPGReportRepo(db), aiLog)
	registerAIRoutes(protected, handlers.NewAIHandler(aiSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Qbit API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, uh *handlers.UserHandler, requireSession gin.HandlerFunc) {
	api.GET("/auth/kakao", h.KakaoLogin)
	api.GET("/auth/kakao/callback", h.KakaoCallback)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", requireSession, h.Me)
	api.PATCH("/users/me", requireSession, uh.UpdateMe)
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.POST("/todos", h.ReplaceDay)
	api.POST("/todos/item", h.Create)
	api.GET("/todos", h.List)
	api.GET("/todos/date", h.GetDay)
	api.GET("/todos/week", h.GetWeek)
	api.GET("/todos/month", h.GetMonth)
	api.GET("/todos/year-stats", h.GetYearStats)
	api.GET("/todos/streak", h.GetStreak)
	api.GET("/todos/exists", h.Exists)
	api.GET("/todos/:id", h.GetByID)
	api.PATCH("/todos/:id", h.Update)
	api.PATCH("/todos/:id/complete", h.Complete)
	api.DELETE("/todos/:id", h.Delete)
}

func registerMemoRoutes(api *gin.RouterGroup, h *handlers.MemoHandler) {
	api.POST("/memos", h.Upsert)
	api.GET("/memos", h.List)
	api.GET("/memos/date", h.GetByDate)
	api.PATCH("/memos/:id", h.Update)
	api.DELETE("/memos/:id", h.Delete)
}

func registerCertRoutes(public, protected *gin.RouterGroup, h *handlers.CertHandler) {
	public.GET("/certs/search", h.Search)
	public.GET("/certs/search/keyword", h.SearchKeyword)
	public.GET("/certs/popular", h.Popular)
	public.GET("/certs/upcoming", h.Upcoming)
	protected.GET("/certs/remind/list", h.ListReminded)
	protected.POST("/certs/remind/:id", h.AddRemind)
	protected.DELETE("/certs/remind/:id", h.RemoveRemind)
	public.GET("/certs/:id", h.GetByID)
}

func registerPassedCertRoutes(api *gin.RouterGroup, h *handlers.PassedCertHandler) {
	api.POST("/passed-certs", h.Create)
	api.GET("/passed-certs", h.List)
	api.GET("/passed-certs/:id", h.GetByID)
	api.PATCH("/passed-certs/:id", h.Update)
	api.DELETE("/passed-certs/:id", h.Delete)
}

func registerAIRoutes(api *gin.RouterGroup, h *handlers.AIHandler) {
	api.POST("/ai/generate", h.Generate)
	api.POST("/ai/chat", h.Chat)
	api.POST("/ai/recommend", h.Recommend)
	api.POST("/ai/weekly-report", h.WeeklyReport)
}
