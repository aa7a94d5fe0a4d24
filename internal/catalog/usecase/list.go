package usecase

import (
	"context"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
)

// List returns every document matching the query. There is no pagination.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListInput) (catalog.ListOutput, error) {
	opt := repo.ListOptions{
		Category:           input.Category,
		SortByPrice:        input.Sort == catalog.SortPrice,
		Fields:             uc.splitFields(input.Fields),
		CategoryProjection: uc.resource.CategoryProjection,
	}

	if err := uc.validateProjection(opt.Fields); err != nil {
		return catalog.ListOutput{}, err
	}

	if hasValue(input.MinPrice) {
		minPrice, err := uc.parseMinPrice(ctx, input.MinPrice)
		if err != nil {
			return catalog.ListOutput{}, err
		}
		opt.MinPrice = &minPrice
	}

	docs, err := uc.repo.ListDocuments(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListDocuments: %v", err)
		return catalog.ListOutput{}, uc.mapRepoError(err)
	}

	return catalog.ListOutput{Documents: docs}, nil
}
