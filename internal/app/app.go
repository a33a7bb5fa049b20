package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/ganjoor/ganjoor"
	"github.com/five82/ganjoor/internal/config"
	"github.com/five82/ganjoor/internal/prefs"
	"github.com/five82/ganjoor/internal/transport"
	"github.com/five82/ganjoor/internal/ui"
)

// ErrCacheDisabled is returned by cache operations when the session runs without one.
var ErrCacheDisabled = errors.New("response cache is disabled")

// Options configure a Session.
type Options struct {
	ConfigPath string
	Verbose    bool
	NoCache    bool
	Logger     *zap.Logger // replaces the stderr logger when set
}

// Session holds the loaded configuration and the client built from it.
type Session struct {
	Config config.Config
	Client *ganjoor.Client
	Logger *zap.Logger

	cache *transport.Cache
}

// Open loads configuration and builds the logger, response cache and API client.
// A cache that cannot be opened is logged and skipped.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger, err = NewLogger(opts.Verbose)
		if err != nil {
			return nil, err
		}
	}

	var cache *transport.Cache
	if cfg.Cache.Enabled && !opts.NoCache {
		cache, err = transport.Open(cfg.Cache.Dir)
		if err != nil {
			logger.Warn("response cache unavailable", zap.String("dir", cfg.Cache.Dir), zap.Error(err))
			cache = nil
		}
	}

	hc := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport.Chain(nil, cache, cfg.Cache.TTL, cfg.Rate.RequestsPerSecond, logger.Named("transport")),
	}
	client, err := ganjoor.NewClient(
		ganjoor.WithBaseURL(cfg.BaseURL),
		ganjoor.WithLanguage(cfg.Language),
		ganjoor.WithAppName(cfg.AppName),
		ganjoor.WithHTTPClient(hc),
		ganjoor.WithLogger(logger.Named("ganjoor")),
	)
	if err != nil {
		_ = cache.Close()
		return nil, fmt.Errorf("init ganjoor client: %w", err)
	}

	return &Session{Config: cfg, Client: client, Logger: logger, cache: cache}, nil
}

// NewLogger builds the JSON stderr logger: warnings and up, or everything when verbose.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// Cached reports whether responses go through the on-disk cache.
func (s *Session) Cached() bool {
	return s.cache != nil
}

// PurgeCache drops every cached response.
func (s *Session) PurgeCache() error {
	if s.cache == nil {
		return ErrCacheDisabled
	}
	if err := s.cache.Purge(); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

// Login signs in with the configured username and password.
func (s *Session) Login(ctx context.Context) error {
	username := strings.TrimSpace(s.Config.Username)
	if username == "" || s.Config.Password == "" {
		return errors.New("login needs a username (config or GANJOOR_USERNAME) and GANJOOR_PASSWORD")
	}
	if err := s.Client.Login(ctx, username, s.Config.Password); err != nil {
		return fmt.Errorf("login %s: %w", username, err)
	}
	s.Logger.Debug("logged in", zap.String("username", username))
	return nil
}

// ReadOptions select what the reader opens with.
type ReadOptions struct {
	PoemID    int
	PoetID    int
	PrefsPath string // empty uses default ~/.config/ganjoor/prefs.toml
}

// Read runs the poem reader until the user quits or the context is cancelled.
func (s *Session) Read(ctx context.Context, opts ReadOptions) error {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		s.Logger.Warn("load prefs failed", zap.Error(err))
	}
	return ui.Run(ui.Options{
		Context:   ctx,
		Source:    s.Client,
		Logger:    s.Logger.Named("reader"),
		PoemID:    opts.PoemID,
		PoetID:    opts.PoetID,
		PrefsPath: opts.PrefsPath,
		Prefs:     userPrefs,
	})
}

// Close flushes the logger and releases the cache.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	_ = s.Logger.Sync()
	if err := s.cache.Close(); err != nil {
		return fmt.Errorf("close cache: %w", err)
	}
	return nil
}
