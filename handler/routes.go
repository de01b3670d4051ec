package handler

import (
	"log/slog"

	"quicknotes/middleware"
	"quicknotes/services"
	"quicknotes/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Users  *usecase.UserService
	Notes  *usecase.NotesService
	Tokens *services.TokenService
	Store  Pinger
	Logger *slog.Logger

	CORSOrigin   string
	MaxBodyBytes int64
}

// NewRouter builds the engine with the global middleware chain and every
// route. Protected routes sit behind AuthMiddleware.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(deps.CORSOrigin))
	router.Use(middleware.RequestSizeLimiter(deps.MaxBodyBytes))

	// Operational
	router.GET("/health", func(c *gin.Context) {
		HealthHandler(c, deps.Store)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	router.POST("/create-account", func(c *gin.Context) {
		RegistrationHandler(c, deps.Users)
	})
	router.POST("/login", func(c *gin.Context) {
		LoginHandler(c, deps.Users)
	})

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	protected.Use(middleware.CacheControlMiddleware("no-store"))
	{
		getUser := func(c *gin.Context) {
			GetUserHandler(c, deps.Users)
		}
		protected.GET("/get-user", getUser)
		protected.GET("/user", getUser)

		protected.POST("/add-note", func(c *gin.Context) {
			CreateNoteHandler(c, deps.Notes)
		})
		protected.PUT("/edit-note/:noteId", func(c *gin.Context) {
			EditNoteHandler(c, deps.Notes)
		})
		protected.PUT("/update-note-pinned/:noteId", func(c *gin.Context) {
			UpdateNotePinnedHandler(c, deps.Notes)
		})
		protected.GET("/get-all-notes", func(c *gin.Context) {
			GetAllNotesHandler(c, deps.Notes)
		})
		protected.DELETE("/delete-note/:noteId", func(c *gin.Context) {
			DeleteNoteHandler(c, deps.Notes)
		})
		protected.POST("/search-notes", func(c *gin.Context) {
			SearchNotesHandler(c, deps.Notes)
		})
	}

	return router
}
