package httpserver

import (
	"context"

	"catalog-api/internal/catalog"
	catalogHTTP "catalog-api/internal/catalog/delivery/http"
	catalogRepo "catalog-api/internal/catalog/repository/mongodb"
	catalogUC "catalog-api/internal/catalog/usecase"
)

// setupCatalogDomain initializes the catalog domain for one resource and registers its routes.
//
// Every resource goes through the same steps:
//  1. Repository bound to the resource's collection
//  2. UseCase carrying the resource settings
//  3. HTTP Handler
//  4. Routes under the resource path
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, r catalog.Resource) error {
	// 1. Repository
	repo := catalogRepo.New(srv.store, r.Collection, srv.l)

	// 2. UseCase
	uc := catalogUC.New(repo, r, catalogUC.Options{StrictQuery: srv.strictQuery}, srv.l)

	// 3. HTTP Handler
	h := catalogHTTP.New(srv.l, uc, r)

	// 4. Routes
	catalogHTTP.RegisterRoutes(srv.gin.Group(r.Path), h, srv.mw)

	srv.l.Infof(ctx, "Catalog resource %q registered at %s (auth=%t)", r.Name, r.Path, r.RequireAuth)
	return nil
}
