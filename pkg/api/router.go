package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"homenet/pkg/api/handlers"
	"homenet/pkg/discovery"
	"homenet/pkg/registry"
	"homenet/pkg/registry/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	store      *registry.Store
	discoverer discovery.Discoverer
	assistant  handlers.Assistant
	validator  *schema.Validator
}

// NewRouter creates a new API router
func NewRouter(store *registry.Store, discoverer discovery.Discoverer, asst handlers.Assistant) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		store:      store,
		discoverer: discoverer,
		assistant:  asst,
		validator:  schema.NewValidator(),
	}

	registerDeviceGauge(store.Len)
	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Prometheus
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.store, r.assistant)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		// Devices
		devicesHandler := handlers.NewDevicesHandler(r.store, r.validator)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.POST("/:id/toggle", devicesHandler.ToggleDevice)
			devices.PATCH("/:id/room", devicesHandler.AssignRoom)
			devices.POST("/import", devicesHandler.ImportDevices)
		}

		// Automations
		automationsHandler := handlers.NewAutomationsHandler(r.store)
		v1.GET("/automations", automationsHandler.ListAutomations)

		// Discovery
		discoveryHandler := handlers.NewDiscoveryHandler(r.discoverer)
		disc := v1.Group("/discovery")
		{
			disc.POST("/scan", discoveryHandler.NetworkScan)
			disc.POST("/pairing", discoveryHandler.Pairing)
		}

		// Assistant
		assistantHandler := handlers.NewAssistantHandler(r.assistant)
		asst := v1.Group("/assistant")
		{
			asst.POST("/suggestions", assistantHandler.Suggestions)
			asst.POST("/chat", assistantHandler.Chat)
		}
	}
}

// Handler exposes the underlying engine, mainly for tests.
func (r *Router) Handler() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
