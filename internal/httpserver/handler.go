package httpserver

import (
	"context"
	"html/template"

	"catalog-api/internal/model"
	"catalog-api/pkg/response"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(response.RouteNotFound)

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.RequestID(),
		srv.mw.RequestLogger(),
		srv.mw.Recovery(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.SetHTMLTemplate(template.Must(template.New(indexTemplateName).Parse(indexTemplate)))
	srv.gin.GET("/", srv.index)

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers one route set per configured resource.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	for _, r := range srv.resources {
		if err := srv.setupCatalogDomain(ctx, r); err != nil {
			return err
		}
	}

	return nil
}
