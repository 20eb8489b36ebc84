// Package app wires the CLI together: logger, config, the on-disk response
// cache and the API client.
package app

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/varoOP/go-animethemes/internal/config"
	"github.com/varoOP/go-animethemes/internal/database"
	"github.com/varoOP/go-animethemes/internal/domain"
	"github.com/varoOP/go-animethemes/internal/httpcache"
	"github.com/varoOP/go-animethemes/internal/logger"
	"github.com/varoOP/go-animethemes/internal/render"
	"github.com/varoOP/go-animethemes/pkg/animethemes"
)

// App holds the initialized dependencies of one CLI invocation.
type App struct {
	log    zerolog.Logger
	config *domain.Config
	db     *database.DB
	client *animethemes.Client
}

// NewApp loads configuration and builds the client. Unless caching is
// disabled, API responses are served from and stored in the sqlite cache.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log := logger.NewWithLevel(level)

	a := &App{
		log:    log,
		config: cfg,
	}

	transport := http.DefaultTransport
	if !cfg.NoCache {
		db, err := database.NewDB(cfg.CacheDir, log)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open response cache")
		}
		a.db = db

		transport = &httpcache.Transport{
			Repo: database.NewCacheRepo(log, db),
			TTL:  cfg.CacheTTL,
			Log:  log.With().Str("module", "httpcache").Logger(),
		}
	}

	opts := []animethemes.Option{
		animethemes.WithBaseURL(cfg.BaseURL),
		animethemes.WithLogger(log),
		animethemes.WithHTTPClient(&http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		}),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, animethemes.WithUserAgent(cfg.UserAgent))
	}
	a.client = animethemes.New(opts...)

	return a, nil
}

// Close releases the response cache and prunes entries past their TTL.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	repo := database.NewCacheRepo(a.log, a.db)
	if deleted, err := repo.Prune(context.Background(), time.Now().Add(-a.config.CacheTTL)); err != nil {
		a.log.Warn().Err(err).Msg("failed to prune response cache")
	} else if deleted > 0 {
		a.log.Debug().Int("deleted", deleted).Msg("Pruned expired cache entries")
	}

	return a.db.Close()
}

// Renderer returns a renderer for the configured output format, writing to
// stdout.
func (a *App) Renderer() *render.Renderer {
	return render.NewRenderer(os.Stdout, a.config.Output)
}

// Search queries all resource types for q.
func (a *App) Search(ctx context.Context, q string, limit int, fields []string) (*animethemes.SearchResult, error) {
	opts := []animethemes.RequestOption{}
	if limit > 0 {
		opts = append(opts, animethemes.WithLimit(limit))
	}
	if len(fields) > 0 {
		opts = append(opts, animethemes.WithSearchFields(fields...))
	}

	a.log.Debug().Str("query", q).Msg("Searching AnimeThemes")
	return a.client.Search(ctx, q, opts...)
}

// Anime looks up one anime by slug.
func (a *App) Anime(ctx context.Context, slug string, include []string) (*animethemes.Anime, error) {
	return a.client.Anime(ctx, slug, includeOption(include)...)
}

// Artist looks up one artist by slug.
func (a *App) Artist(ctx context.Context, slug string, include []string) (*animethemes.Artist, error) {
	return a.client.Artist(ctx, slug, includeOption(include)...)
}

// Theme looks up one theme by id, given as the decimal string from the
// command line.
func (a *App) Theme(ctx context.Context, idArg string, include []string) (*animethemes.Theme, error) {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return nil, errors.Errorf("invalid theme id %q", idArg)
	}
	return a.client.Theme(ctx, id, includeOption(include)...)
}

// Years lists the years covered by the API.
func (a *App) Years(ctx context.Context) ([]int, error) {
	return a.client.Years(ctx)
}

// Year lists the anime of one year grouped by season.
func (a *App) Year(ctx context.Context, year int) (*animethemes.SeasonResult, error) {
	return a.client.Year(ctx, year)
}

func includeOption(include []string) []animethemes.RequestOption {
	if len(include) == 0 {
		return nil
	}
	return []animethemes.RequestOption{animethemes.WithInclude(include...)}
}
