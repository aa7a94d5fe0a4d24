package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	// ErrNotReady is returned by Collection before Connect has succeeded.
	ErrNotReady = errors.New("mongo: client not connected")
	// ErrClosed is returned by Connect once Disconnect has been called.
	ErrClosed = errors.New("mongo: client closed")
)

// Config holds connection settings.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Client owns the process-wide *mongo.Client. It is safe for concurrent use;
// the database handle is published atomically once Connect succeeds.
type Client struct {
	cfg    Config
	client atomic.Pointer[mongo.Client]
	db     atomic.Pointer[mongo.Database]

	mu     sync.Mutex
	closed bool
}

// New returns an unconnected Client.
func New(cfg Config) *Client {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	return &Client{cfg: cfg}
}

// Connect dials the server and pings the primary. On success the client becomes ready.
// A client dialed after Disconnect is closed again and never published.
func (c *Client) Connect(ctx context.Context) error {
	if c.cfg.URI == "" {
		return errors.New("mongo: uri is required")
	}
	if c.isClosed() {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(c.cfg.URI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("mongo: connect: %w", err)
	}
	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return fmt.Errorf("mongo: ping: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = cli.Disconnect(context.Background())
		return ErrClosed
	}
	c.client.Store(cli)
	c.db.Store(cli.Database(c.cfg.Database))
	c.mu.Unlock()
	return nil
}

// Ready reports whether Connect has succeeded.
func (c *Client) Ready() bool {
	return c.db.Load() != nil
}

// Collection returns the named collection of the configured database.
func (c *Client) Collection(name string) (*mongo.Collection, error) {
	db := c.db.Load()
	if db == nil {
		return nil, ErrNotReady
	}
	return db.Collection(name), nil
}

// Disconnect closes the underlying client and makes later Connect calls fail.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.db.Store(nil)
	cli := c.client.Swap(nil)
	c.mu.Unlock()

	if cli == nil {
		return nil
	}
	return cli.Disconnect(ctx)
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
