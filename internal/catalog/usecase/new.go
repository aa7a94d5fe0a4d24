package usecase

import (
	"catalog-api/internal/catalog"
	"catalog-api/internal/catalog/repository"
	"catalog-api/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase for one resource.
type implUseCase struct {
	repo        repository.Repository
	resource    catalog.Resource
	strictQuery bool
	l           log.Logger
}

// Options tunes behaviour shared by every resource.
type Options struct {
	// StrictQuery rejects a non-numeric minPrice instead of querying with NaN.
	StrictQuery bool
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, resource catalog.Resource, opts Options, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		resource:    resource,
		strictQuery: opts.StrictQuery,
		l:           l,
	}
}
