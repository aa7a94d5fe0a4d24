package usecase

import (
	"context"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
)

// Detail retrieves a single document by ID. Returns ErrNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailOutput, error) {
	doc, err := uc.repo.GetOneDocument(ctx, repo.GetOneOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneDocument: %v", err)
		return catalog.DetailOutput{}, uc.mapRepoError(err)
	}
	if doc == nil {
		return catalog.DetailOutput{}, catalog.ErrNotFound
	}
	return catalog.DetailOutput{Document: doc}, nil
}

// Replace sets every submitted field on the document. name is required.
// Fields missing from the input are kept as they are.
func (uc *implUseCase) Replace(ctx context.Context, input catalog.UpdateInput) error {
	if err := uc.validateName(input.Fields); err != nil {
		return err
	}
	return uc.update(ctx, "uc.Replace", input)
}

// Patch sets the submitted fields on the document. At least one field is required.
func (uc *implUseCase) Patch(ctx context.Context, input catalog.UpdateInput) error {
	if !hasSettableField(input.Fields) {
		return catalog.ErrNoFields
	}
	return uc.update(ctx, "uc.Patch", input)
}

func (uc *implUseCase) update(ctx context.Context, scope string, input catalog.UpdateInput) error {
	if err := uc.validateFieldNames(input.Fields); err != nil {
		return err
	}

	matched, err := uc.repo.UpdateDocument(ctx, repo.UpdateOptions{
		ID:     input.ID,
		Fields: input.Fields,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s UpdateDocument: %v", scope, err)
		return uc.mapRepoError(err)
	}
	if matched == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Delete removes a document by ID. Returns ErrNotFound when nothing was deleted.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteDocument(ctx, repo.DeleteOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteDocument: %v", err)
		return uc.mapRepoError(err)
	}
	if deleted == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
