package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Appointment *api.AppointmentHandler
	Catalog     *api.CatalogHandler
	Account     *api.AccountHandler
}

func NewHandlers(
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	catalogHandler *api.CatalogHandler,
	accountHandler *api.AccountHandler,
) Handlers {
	return Handlers{
		Auth:        authHandler,
		Appointment: appointmentHandler,
		Catalog:     catalogHandler,
		Account:     accountHandler,
	}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, rateLimiter, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	gatherer prometheus.Gatherer,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		auth.Use(rateLimiter.Middleware())
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/code", Handler: h.Auth.RequestCode},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.Verify},
				{Method: http.MethodGet, Path: "/resend-status", Handler: h.Auth.ResendStatus},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			})
		}

		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/outlets", Handler: h.Catalog.ListOutlets},
				{Method: http.MethodGet, Path: "/outlets/:id/staff", Handler: h.Catalog.ListStaff},
				{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
				{Method: http.MethodGet, Path: "/time-slots", Handler: h.Catalog.ListTimeSlots},
				{Method: http.MethodGet, Path: "/dates", Handler: h.Catalog.BookableDates},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Cancel},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: h.Appointment.Reschedule},
			})
		}

		account := apiGroup.Group("/account")
		account.Use(authMiddleware.RequireAuth())
		{
			addRoutes(account, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Account.Register},
				{Method: http.MethodGet, Path: "", Handler: h.Account.Get},
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
