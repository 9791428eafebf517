package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoURI is returned when the manager has no connection string to dial.
var ErrNoURI = errors.New("mongodb uri is not configured")

// DialFunc opens a new client, PingFunc reports whether a client is usable
// and CloseFunc releases one.
type (
	DialFunc  func(ctx context.Context) (*mongo.Client, error)
	PingFunc  func(ctx context.Context, client *mongo.Client) error
	CloseFunc func(ctx context.Context, client *mongo.Client) error
)

// Manager owns the process-wide MongoDB client. The client is created lazily on
// first use, reused while it answers pings and replaced when it goes stale.
// Concurrent callers never dial more than once per generation.
type Manager struct {
	dial   DialFunc
	ping   PingFunc
	close  CloseFunc
	logger *zap.Logger

	mu     sync.RWMutex
	client *mongo.Client
	group  singleflight.Group
}

// NewManager builds a manager for uri. Server selection (and therefore the
// first dial) is bounded by selectionTimeout.
func NewManager(uri string, selectionTimeout time.Duration, logger *zap.Logger) *Manager {
	if selectionTimeout <= 0 {
		selectionTimeout = 5 * time.Second
	}
	dial := func(ctx context.Context) (*mongo.Client, error) {
		if uri == "" {
			return nil, ErrNoURI
		}
		opts := options.Client().
			ApplyURI(uri).
			SetServerSelectionTimeout(selectionTimeout)
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, selectionTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return client, nil
	}
	ping := func(ctx context.Context, client *mongo.Client) error {
		pingCtx, cancel := context.WithTimeout(ctx, selectionTimeout)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	}
	closeFn := func(ctx context.Context, client *mongo.Client) error {
		return client.Disconnect(ctx)
	}
	return NewManagerWithDialer(dial, ping, closeFn, logger)
}

// NewManagerWithDialer builds a manager around custom connection functions.
func NewManagerWithDialer(dial DialFunc, ping PingFunc, closeFn CloseFunc, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{dial: dial, ping: ping, close: closeFn, logger: logger}
}

// Client returns a live client, connecting or reconnecting as needed.
func (m *Manager) Client(ctx context.Context) (*mongo.Client, error) {
	m.mu.RLock()
	current := m.client
	m.mu.RUnlock()

	if current != nil {
		if err := m.ping(ctx, current); err == nil {
			return current, nil
		}
		m.logger.Warn("MongoDB client is stale, reconnecting")
	}

	v, err, _ := m.group.Do("connect", func() (interface{}, error) {
		// Another caller may have replaced the client while we were pinging.
		m.mu.RLock()
		latest := m.client
		m.mu.RUnlock()
		if latest != nil && latest != current {
			return latest, nil
		}

		client, err := m.dial(ctx)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		stale := m.client
		m.client = client
		m.mu.Unlock()

		if stale != nil {
			go m.disconnect(stale)
		}
		m.logger.Info("Database connected successfully")
		return client, nil
	})
	if err != nil {
		m.logger.Error("Error while connecting database", zap.Error(err))
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	return v.(*mongo.Client), nil
}

// Ping reports whether the cached client (if any) is reachable, without dialing.
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.RLock()
	current := m.client
	m.mu.RUnlock()
	if current == nil {
		return errors.New("mongodb client not initialised")
	}
	return m.ping(ctx, current)
}

// Close disconnects the cached client.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	current := m.client
	m.client = nil
	m.mu.Unlock()
	if current == nil {
		return nil
	}
	return m.close(ctx, current)
}

func (m *Manager) disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.close(ctx, client); err != nil {
		m.logger.Debug("Disconnecting stale MongoDB client failed", zap.Error(err))
	}
}
