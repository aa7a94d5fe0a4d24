package mongo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgMongo "catalog-api/pkg/mongo"
)

func TestClientNotReady(t *testing.T) {
	c := pkgMongo.New(pkgMongo.Config{Database: "shop"})

	assert.False(t, c.Ready())

	coll, err := c.Collection("items")
	assert.Nil(t, coll)
	assert.True(t, errors.Is(err, pkgMongo.ErrNotReady))

	require.NoError(t, c.Disconnect(context.Background()))
}

func TestConnectRequiresURI(t *testing.T) {
	c := pkgMongo.New(pkgMongo.Config{Database: "shop"})

	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.False(t, c.Ready())
}

func TestConnectAfterDisconnect(t *testing.T) {
	c := pkgMongo.New(pkgMongo.Config{URI: "mongodb://localhost:27017", Database: "shop"})
	require.NoError(t, c.Disconnect(context.Background()))

	err := c.Connect(context.Background())
	assert.ErrorIs(t, err, pkgMongo.ErrClosed)
	assert.False(t, c.Ready())

	_, err = c.Collection("items")
	assert.ErrorIs(t, err, pkgMongo.ErrNotReady)
}
