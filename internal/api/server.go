// Package api assembles the gin router for the dashboard backend.
package api

import (
	"os"

	"battery-atlas/internal/api/handlers"
	"battery-atlas/internal/api/middleware"
	"battery-atlas/internal/config"
	"battery-atlas/internal/derive"
	"battery-atlas/internal/observability"
	"battery-atlas/internal/registry"
	"battery-atlas/internal/selection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Server bundles the router with the pieces callers need to shut it down
// or inspect it in tests.
type Server struct {
	Router    *gin.Engine
	Selection *selection.Controller
	Hub       *handlers.StreamHub
	Metrics   *observability.Collector
}

// New wires registries, selection, metrics, and routes into a ready
// router. The selection controller's change listener feeds both the
// websocket stream and the selection-change counter. reg may be nil to
// use the global Prometheus registry; tests pass their own.
func New(cfg *config.Config, assets *registry.AssetRegistry, zones *registry.ZoneRegistry, reg prometheus.Registerer) (*Server, error) {
	col, err := observability.NewCollector(reg)
	if err != nil {
		return nil, err
	}
	col.SetRegistrySizes(assets.Len(), zones.Len(), derive.TotalCapacity(assets.List()))

	sel := selection.NewController(assets, zones)
	hub := handlers.NewStreamHub(col)
	sel.OnChange(func(axis selection.Axis, s selection.State) {
		col.SelectionChanges.WithLabelValues(string(axis)).Inc()
		hub.Broadcast(axis, s)
	})

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Metrics(col))

	assetHandler := handlers.NewAssetHandler(assets)
	zoneHandler := handlers.NewZoneHandler(zones)
	summaryHandler := handlers.NewSummaryHandler(assets, zones)
	selectionHandler := handlers.NewSelectionHandler(sel)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(col.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/assets", assetHandler.List)
		v1.GET("/assets/:id", assetHandler.Get)
		v1.GET("/zones", zoneHandler.List)
		v1.GET("/zones/:id", zoneHandler.Get)
		v1.GET("/summary", summaryHandler.Get)

		v1.GET("/selection", selectionHandler.Get)
		v1.PUT("/selection/asset", selectionHandler.SelectAsset)
		v1.PUT("/selection/zone", selectionHandler.SelectZone)
		v1.DELETE("/selection", selectionHandler.Clear)

		v1.GET("/stream", hub.ServeWS)

		// The frontend map engine needs its access token; the backend
		// passes it through without interpreting it.
		v1.GET("/map-config", func(c *gin.Context) {
			c.JSON(200, gin.H{"access_token": cfg.Map.AccessToken})
		})
	}

	serveStatic(router, cfg.Server.StaticDir)

	return &Server{Router: router, Selection: sel, Hub: hub, Metrics: col}, nil
}

// serveStatic serves the built dashboard SPA when its dist directory
// exists, with API-path-aware fallback to index.html.
func serveStatic(router *gin.Engine, staticDir string) {
	if staticDir == "" {
		return
	}
	if _, err := os.Stat(staticDir); err != nil {
		logrus.Debugf("static directory %s not found, skipping static serving", staticDir)
		return
	}

	router.Static("/assets-static", staticDir+"/assets")
	router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if len(path) >= 4 && path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "Not found"})
			return
		}
		c.File(staticDir + "/index.html")
	})
	logrus.Infof("serving static files from %s", staticDir)
}
