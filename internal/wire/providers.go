package wire

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/config"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/dbmongo"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/game"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/presence"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
)

const connectTimeout = 10 * time.Second

type Application struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Registry *realtime.Registry
	Log      *slog.Logger
}

func ProvideDatabase(cfg *config.Config, log *slog.Logger) (*gorm.DB, func(), error) {
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Warn("closing database", "error", err)
		}
	}
	return db, cleanup, nil
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.SocketTokenTTL)
}

// ProvidePresence uses Redis when enabled and falls back to process memory.
func ProvidePresence(cfg *config.Config, log *slog.Logger) (presence.Tracker, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info("redis disabled, presence kept in memory")
		return presence.NewMemoryTracker(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := presence.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	tracker := presence.NewRedisTracker(client)
	// sockets do not survive a restart, so neither does the online set
	if err := tracker.Reset(ctx); err != nil {
		client.Close()
		return nil, nil, err
	}
	log.Info("presence backed by redis", "addr", cfg.Redis.Addr)

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("closing redis", "error", err)
		}
	}
	return tracker, cleanup, nil
}

// ProvideArchive returns the MongoDB match archive, or a no-op one when
// MongoDB is disabled.
func ProvideArchive(cfg *config.Config, log *slog.Logger) (game.Archiver, func(), error) {
	if !cfg.MongoDB.Enabled {
		log.Info("mongodb disabled, finished matches are not archived")
		return game.NoopArchiver{}, func() {}, nil
	}

	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	archive := dbmongo.NewMatchArchive(mc)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := archive.EnsureIndexes(ctx); err != nil {
		_ = mc.Close(ctx)
		return nil, nil, err
	}
	log.Info("match archive connected", "database", cfg.MongoDB.Database)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := mc.Close(ctx); err != nil {
			log.Warn("closing mongodb", "error", err)
		}
	}
	return archive, cleanup, nil
}
