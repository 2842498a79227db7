package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/api"
	"github.com/SkDevilS/E-Commerce-Web-Application/internal/config"
	"github.com/SkDevilS/E-Commerce-Web-Application/internal/session"
	"github.com/SkDevilS/E-Commerce-Web-Application/internal/snapshot"
	"github.com/SkDevilS/E-Commerce-Web-Application/internal/store"
	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/health"
	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/httpclient"
	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/logger"
)

// App wires the API client, item stores, snapshot persistence, and session
// bridge into one shopping session.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	SessionID string

	API      *api.Client
	Cart     *store.CartStore
	Wishlist *store.WishlistStore
	Session  *session.Bridge

	redis *redis.Client
}

// New builds the application from configuration. Snapshot slots live in
// Redis when configured, otherwise in process memory. Persisted snapshots
// for the session are hydrated into the stores before New returns, so
// callers see cached state immediately.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New("shopsync", cfg.LogLevel)

	sessionID := cfg.Snapshot.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx = logger.WithSessionID(ctx, sessionID)

	a := &App{
		Config:    cfg,
		Logger:    log,
		SessionID: sessionID,
	}

	cartSlot, wishlistSlot, err := a.buildSlots(ctx, cfg)
	if err != nil {
		return nil, err
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.API.Timeout
	httpCfg.MaxRetries = cfg.API.MaxRetries

	var doer api.HTTPDoer = httpclient.New(httpCfg)
	if cfg.API.BreakerEnabled {
		doer = httpclient.NewBreakerClient(
			httpclient.New(httpCfg),
			httpclient.DefaultBreakerConfig("storefront-api"),
			log,
		)
	}

	// The bridge is both the token source and the auth driver, so it is
	// created first and attached to the stores afterwards.
	bridge := session.NewBridge(nil, log)
	client := api.NewClient(cfg.API.BaseURL, doer, bridge, log)

	cart := store.NewCartStore(client, log)
	wishlist := store.NewWishlistStore(client, log)
	bridge.Bind(client, cart, wishlist)
	a.Session = bridge

	guard := snapshot.NewGuard(log)
	cart.Hydrate(guard.HydrateCart(ctx, cartSlot))
	wishlist.Hydrate(guard.HydrateWishlist(ctx, wishlistSlot))

	cart.SetOnChange(snapshot.NewCartPersister(cartSlot, log))
	wishlist.SetOnChange(snapshot.NewWishlistPersister(wishlistSlot, log))

	a.API = client
	a.Cart = cart
	a.Wishlist = wishlist

	log.InfoContext(ctx, "application initialized",
		slog.String("session_id", sessionID),
		slog.String("api_base_url", cfg.API.BaseURL),
		slog.Bool("breaker_enabled", cfg.API.BreakerEnabled),
		slog.Bool("redis_snapshots", cfg.Redis.Addr != ""),
	)
	return a, nil
}

func (a *App) buildSlots(ctx context.Context, cfg *config.Config) (snapshot.Slot, snapshot.Slot, error) {
	if cfg.Redis.Addr == "" {
		return snapshot.NewMemorySlot("cart"), snapshot.NewMemorySlot("wishlist"), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
	}
	a.redis = client

	cartKey := snapshotKey(cfg.Snapshot.Namespace, "cart", a.SessionID)
	wishlistKey := snapshotKey(cfg.Snapshot.Namespace, "wishlist", a.SessionID)
	return snapshot.NewRedisSlot(client, cartKey, cfg.Snapshot.TTL),
		snapshot.NewRedisSlot(client, wishlistKey, cfg.Snapshot.TTL),
		nil
}

func snapshotKey(namespace, store, sessionID string) string {
	return fmt.Sprintf("%s:snapshot:%s:%s", namespace, store, sessionID)
}

// Health returns a probe registry covering the session's collaborators: the
// storefront API (via the public sections endpoint) and the snapshot backend
// when it lives in Redis.
func (a *App) Health() *health.Registry {
	registry := health.NewRegistry(5 * time.Second)
	registry.Register("storefront-api", func(ctx context.Context) error {
		_, err := a.API.ListSections(ctx)
		return err
	})
	if a.redis != nil {
		registry.Register("snapshots", func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		})
	}
	return registry
}

// Close releases held connections.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
