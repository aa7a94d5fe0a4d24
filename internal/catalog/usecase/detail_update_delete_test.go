package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
)

const validID = "65a1b2c3d4e5f60718293a4b"

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		r := &fakeRepo{doc: catalog.Document{"name": "Pen"}}
		out, err := newTestUseCase(r, itemsResource, false).Detail(ctx, validID)

		require.NoError(t, err)
		assert.Equal(t, "Pen", out.Document["name"])
		assert.Equal(t, validID, r.getOpt.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := newTestUseCase(&fakeRepo{}, itemsResource, false).Detail(ctx, validID)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := newTestUseCase(&fakeRepo{err: repo.ErrInvalidID}, itemsResource, false).Detail(ctx, "bad")
		assert.ErrorIs(t, err, catalog.ErrInvalidID)
	})
}

func TestReplace(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		r := &fakeRepo{matched: 1}
		err := newTestUseCase(r, itemsResource, false).Replace(ctx, catalog.UpdateInput{
			ID: validID, Fields: catalog.Document{"name": "Pen", "price": 3.0},
		})

		require.NoError(t, err)
		assert.Equal(t, validID, r.updateOpt.ID)
		assert.Equal(t, catalog.Document{"name": "Pen", "price": 3.0}, r.updateOpt.Fields)
	})

	t.Run("name required", func(t *testing.T) {
		r := &fakeRepo{matched: 1}
		err := newTestUseCase(r, itemsResource, false).Replace(ctx, catalog.UpdateInput{
			ID: validID, Fields: catalog.Document{"price": 3.0},
		})

		assert.ErrorIs(t, err, catalog.ErrNameRequired)
		assert.Zero(t, r.calls)
	})

	t.Run("not matched", func(t *testing.T) {
		err := newTestUseCase(&fakeRepo{}, itemsResource, false).Replace(ctx, catalog.UpdateInput{
			ID: validID, Fields: catalog.Document{"name": "Pen"},
		})
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		err := newTestUseCase(&fakeRepo{err: repo.ErrInvalidID}, itemsResource, false).Replace(ctx, catalog.UpdateInput{
			ID: "bad", Fields: catalog.Document{"name": "Pen"},
		})
		assert.ErrorIs(t, err, catalog.ErrInvalidID)
	})
}

func TestPatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success without name", func(t *testing.T) {
		r := &fakeRepo{matched: 1}
		err := newTestUseCase(r, itemsResource, false).Patch(ctx, catalog.UpdateInput{
			ID: validID, Fields: catalog.Document{"price": 5.0},
		})

		require.NoError(t, err)
		assert.Equal(t, catalog.Document{"price": 5.0}, r.updateOpt.Fields)
	})

	t.Run("empty body", func(t *testing.T) {
		r := &fakeRepo{matched: 1}
		err := newTestUseCase(r, itemsResource, false).Patch(ctx, catalog.UpdateInput{
			ID: validID, Fields: catalog.Document{"_id": validID},
		})

		assert.ErrorIs(t, err, catalog.ErrNoFields)
		assert.Zero(t, r.calls)
	})

	t.Run("not matched", func(t *testing.T) {
		err := newTestUseCase(&fakeRepo{}, itemsResource, false).Patch(ctx, catalog.UpdateInput{
			ID: validID, Fields: catalog.Document{"price": 5.0},
		})
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("dotted field rejected", func(t *testing.T) {
		r := &fakeRepo{matched: 1}
		err := newTestUseCase(r, itemsResource, false).Patch(ctx, catalog.UpdateInput{
			ID: validID, Fields: catalog.Document{"a.b": 1},
		})

		assert.ErrorIs(t, err, catalog.ErrInvalidField)
		assert.Zero(t, r.calls)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	r := &fakeRepo{deleted: 1}
	require.NoError(t, newTestUseCase(r, itemsResource, false).Delete(ctx, validID))
	assert.Equal(t, validID, r.deleteOpt.ID)

	err := newTestUseCase(&fakeRepo{}, itemsResource, false).Delete(ctx, validID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	err = newTestUseCase(&fakeRepo{err: repo.ErrInvalidID}, itemsResource, false).Delete(ctx, "bad")
	assert.ErrorIs(t, err, catalog.ErrInvalidID)

	err = newTestUseCase(&fakeRepo{err: repo.ErrFailedToDelete}, itemsResource, false).Delete(ctx, validID)
	assert.ErrorIs(t, err, repo.ErrFailedToDelete)
}
