package usecase

import (
	"context"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
	"catalog-api/pkg/log"
)

// fakeRepo records the options it receives and answers with canned values.
type fakeRepo struct {
	listOpt   repo.ListOptions
	getOpt    repo.GetOneOptions
	createOpt repo.CreateOptions
	updateOpt repo.UpdateOptions
	deleteOpt repo.DeleteOptions
	calls     int

	docs    []catalog.Document
	doc     catalog.Document
	id      any
	matched int64
	deleted int64
	err     error
}

func (f *fakeRepo) ListDocuments(_ context.Context, opt repo.ListOptions) ([]catalog.Document, error) {
	f.calls++
	f.listOpt = opt
	return f.docs, f.err
}

func (f *fakeRepo) GetOneDocument(_ context.Context, opt repo.GetOneOptions) (catalog.Document, error) {
	f.calls++
	f.getOpt = opt
	return f.doc, f.err
}

func (f *fakeRepo) CreateDocument(_ context.Context, opt repo.CreateOptions) (any, error) {
	f.calls++
	f.createOpt = opt
	return f.id, f.err
}

func (f *fakeRepo) UpdateDocument(_ context.Context, opt repo.UpdateOptions) (int64, error) {
	f.calls++
	f.updateOpt = opt
	return f.matched, f.err
}

func (f *fakeRepo) DeleteDocument(_ context.Context, opt repo.DeleteOptions) (int64, error) {
	f.calls++
	f.deleteOpt = opt
	return f.deleted, f.err
}

var itemsResource = catalog.Resource{
	Name:        "items",
	Collection:  "items",
	Path:        "/api/items",
	Label:       "Item",
	RequireAuth: true,
	ErrorKey:    "message",
}

func newTestUseCase(r *fakeRepo, resource catalog.Resource, strict bool) *implUseCase {
	return New(r, resource, Options{StrictQuery: strict}, log.NewNop())
}
