package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sunshare/internal/repositories"
)

// ErrUnsupportedScheme is returned for a datastore URI that is neither
// MongoDB nor PostgreSQL.
var ErrUnsupportedScheme = errors.New("unsupported datastore scheme")

// ConnectFunc opens the primary datastore. The returned close func releases
// it at shutdown.
type ConnectFunc func(ctx context.Context) (repositories.PropertyRepository, func(), error)

// Selection is the backend chosen at startup.
type Selection struct {
	Repository repositories.PropertyRepository
	Fallback   bool
	Close      func()
}

// SelectRepository tries connect once. On success the primary serves the
// whole process lifetime; on failure the fallback does, and the primary is not
// tried again.
func SelectRepository(ctx context.Context, connect ConnectFunc, fallback repositories.PropertyRepository, log *slog.Logger) Selection {
	repo, closeFn, err := connect(ctx)
	if err != nil {
		log.Warn("Primary datastore unavailable, using in-memory mock data",
			"backend", fallback.Name(),
			"error", err,
		)
		return Selection{Repository: fallback, Fallback: true, Close: func() {}}
	}

	if closeFn == nil {
		closeFn = func() {}
	}
	log.Info("Primary datastore selected", "backend", repo.Name())
	return Selection{Repository: repo, Close: closeFn}
}

// Open picks the primary datastore driver from the URI scheme and selects it,
// falling back to the mock store when it cannot be reached within timeout.
func Open(ctx context.Context, uri string, timeout time.Duration, log *slog.Logger) Selection {
	connect := func(ctx context.Context) (repositories.PropertyRepository, func(), error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return Dial(ctx, uri, log)
	}
	return SelectRepository(ctx, connect, repositories.NewMockPropertyRepository(), log)
}

// Dial connects to the datastore named by uri.
func Dial(ctx context.Context, uri string, log *slog.Logger) (repositories.PropertyRepository, func(), error) {
	switch scheme(uri) {
	case "mongodb", "mongodb+srv":
		client, db, err := ConnectMongo(ctx, uri, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("Failed to disconnect MongoDB", "error", err)
				return
			}
			log.Info("MongoDB connection closed")
		}
		return repositories.NewMongoPropertyRepository(db), closeFn, nil

	case "postgres", "postgresql":
		pool, err := Connect(ctx, uri, log)
		if err != nil {
			return nil, nil, err
		}
		if err := RunMigrations(ctx, pool, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		closeFn := func() {
			pool.Close()
			log.Info("Database connection pool closed")
		}
		return repositories.NewPostgresPropertyRepository(pool), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme(uri))
	}
}

func scheme(uri string) string {
	i := strings.Index(uri, "://")
	if i < 0 {
		return ""
	}
	return strings.ToLower(uri[:i])
}
