package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	itemHTTP "item-catalog/internal/item/delivery/http"
	"item-catalog/internal/middleware"
	"item-catalog/internal/model"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "server mode: production")
	} else {
		srv.l.Infof(ctx, "server mode: %s", srv.environment)
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	// Stored photos are plain static assets under the public prefix.
	if srv.staticDir != "" && srv.staticPrefix != "" {
		srv.gin.Static(srv.staticPrefix, srv.staticDir)
	}
}

// registerDomainRoutes wires the item domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPM)

	h := itemHTTP.New(srv.l, srv.itemUC, itemHTTP.Config{
		MaxPhotoBytes: srv.maxPhotoBytes,
		DefaultLimit:  srv.defaultLimit,
	})
	itemHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), h, mw)

	srv.l.Infof(ctx, "item domain registered at /api/v1/items")
}
