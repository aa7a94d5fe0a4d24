package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Replace(ctx context.Context, input UpdateInput) error
	Patch(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id string) error
}
