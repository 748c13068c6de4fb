package api

import (
	"net/http"

	"github.com/Conceptual-Machines/music-creator/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/music-creator/internal/api/middleware"
	"github.com/Conceptual-Machines/music-creator/internal/config"
	"github.com/Conceptual-Machines/music-creator/internal/engine"
	"github.com/Conceptual-Machines/music-creator/internal/metrics"
	webhandlers "github.com/Conceptual-Machines/music-creator/internal/web/handlers"
	"github.com/Conceptual-Machines/music-creator/pkg/embedded"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, e *engine.Engine, recorder *metrics.Recorder, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())
	router.Use(apimiddleware.SentryMiddleware())
	router.Use(apimiddleware.RequestTracking(recorder))

	// Embedded browser script and stylesheet
	router.StaticFS("/static", http.FS(embedded.Static()))

	webHandler := webhandlers.NewWebHandler(cfg.Locale)
	router.GET("/", webHandler.Home)

	api := router.Group("/api")
	api.Use(apimiddleware.CORS())
	{
		api.GET("/health", handlers.HealthCheck)

		metricsHandler := handlers.NewMetricsHandler(version, e)
		api.GET("/metrics", metricsHandler.GetMetrics)

		creatorHandler := handlers.NewCreatorHandler(cfg, e)
		api.POST("/analyze-audio", creatorHandler.AnalyzeAudio)
		api.POST("/generate-prompt", creatorHandler.GeneratePrompt)
		api.POST("/generate-lyrics", creatorHandler.GenerateLyrics)

		// preflight requests never reach a POST route otherwise
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}

	return router
}
