package usecase

import (
	"context"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
)

// Create inserts a new document. name is the only required field.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateInput) (catalog.CreateOutput, error) {
	if err := uc.validateName(input.Fields); err != nil {
		return catalog.CreateOutput{}, err
	}
	if err := uc.validateFieldNames(input.Fields); err != nil {
		return catalog.CreateOutput{}, err
	}

	id, err := uc.repo.CreateDocument(ctx, repo.CreateOptions{Fields: input.Fields})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateDocument: %v", err)
		return catalog.CreateOutput{}, uc.mapRepoError(err)
	}

	return catalog.CreateOutput{ID: id}, nil
}
