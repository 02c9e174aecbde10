package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carevacay/internal/handler/api"
	"carevacay/internal/handler/middleware"
	"carevacay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, bookingHandler *api.BookingHandler, conversationHandler *api.ConversationHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, bookingHandler, conversationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, bookingHandler *api.BookingHandler, conversationHandler *api.ConversationHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/search", Handler: catalogHandler.Search},
		})

		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetProperty},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: bookingHandler.Quote},
			})
		}

		conversations := apiGroup.Group("/conversations")
		{
			addRoutes(conversations, []route{
				{Method: http.MethodPost, Path: "/find-or-create", Handler: conversationHandler.FindOrCreate},
				{Method: http.MethodGet, Path: "", Handler: conversationHandler.List},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: conversationHandler.ListMessages},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: conversationHandler.AppendMessage},
				{Method: http.MethodPost, Path: "/:id/read", Handler: conversationHandler.MarkRead},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
