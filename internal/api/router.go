package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "community-pulse/docs"
	"community-pulse/internal/api/handler"
	"community-pulse/internal/config"
	"community-pulse/pkg/router"
)

// NewRouter builds the API router with every cleaning route registered.
func NewRouter(cfg config.Config) *router.Router {
	handler.Init(cfg)

	r := router.New()
	RegisterRoutes(r)
	return r
}

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/cleanings", handler.CreateCleaning)
	r.GET("/api/v1/cleanings", handler.ListCleanings)
	// More specific routes first
	r.GET("/api/v1/cleanings/*/logs", handler.GetCleaningLogs)
	r.GET("/api/v1/cleanings/*/metrics", handler.GetCleaningMetrics)
	r.GET("/api/v1/cleanings/*/errors", handler.GetCleaningErrors)
	r.GET("/api/v1/cleanings/*/files", handler.GetCleaningFiles)
	r.GET("/api/v1/cleanings/*/summary", handler.GetCleaningSummary)
	// Generic cleaning routes last
	r.GET("/api/v1/cleanings/*", handler.GetCleaning)
	r.DELETE("/api/v1/cleanings/*", handler.DeleteCleaning)

	r.GET("/api/v1/download/*/*", handler.DownloadFile)

	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		httpSwagger.WrapHandler(w, req)
	})
}
