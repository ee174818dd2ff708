package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"wardrobe-planner/config"
	"wardrobe-planner/internal/account"
	accountRest "wardrobe-planner/internal/account/repository/rest"
	accountUC "wardrobe-planner/internal/account/usecase"
	"wardrobe-planner/internal/outfit"
	outfitRest "wardrobe-planner/internal/outfit/repository/rest"
	outfitUC "wardrobe-planner/internal/outfit/usecase"
	"wardrobe-planner/internal/planner"
	plannerUC "wardrobe-planner/internal/planner/usecase"
	"wardrobe-planner/internal/session"
	"wardrobe-planner/internal/wardrobe"
	wardrobeRest "wardrobe-planner/internal/wardrobe/repository/rest"
	wardrobeUC "wardrobe-planner/internal/wardrobe/usecase"
	"wardrobe-planner/internal/wardrobeapi"
	"wardrobe-planner/pkg/apiclient"
	"wardrobe-planner/pkg/datemath"
	"wardrobe-planner/pkg/gcalendar"
	"wardrobe-planner/pkg/idgen"
	"wardrobe-planner/pkg/imaging"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
	"wardrobe-planner/pkg/reqseq"
)

var ErrNotLoggedIn = errors.New("not logged in, run `wardrobe login` first")

// Option customises the root command, mainly for tests.
type Option func(*app)

// WithStorage replaces the configured storage driver.
func WithStorage(s localstore.Storage) Option {
	return func(a *app) { a.store = s }
}

// WithLogger replaces the logger built from configuration.
func WithLogger(l pkgLog.Logger) Option {
	return func(a *app) { a.l = l }
}

// app holds everything the commands share. It is populated by setup, which
// runs before any command.
type app struct {
	configPath string
	output     string
	verbose    bool

	cfg     *config.Config
	l       pkgLog.Logger
	out     io.Writer
	store   localstore.Storage
	closers []io.Closer

	client  *wardrobeapi.Client
	session *session.Session
	dates   *datemath.Parser
	items   wardrobe.UseCase
	outfits outfit.UseCase
	planner planner.UseCase
	account account.UseCase
}

// tokenRef lets the HTTP client read the session's token although the
// session is built after the client.
type tokenRef struct{ src apiclient.TokenSource }

func (r *tokenRef) Token() string {
	if r.src == nil {
		return ""
	}
	return r.src.Token()
}

func (a *app) setup(cmd *cobra.Command) error {
	// Load .env file if present (ignore errors)
	_ = godotenv.Load()
	ctx := cmd.Context()
	a.out = cmd.OutOrStdout()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if a.l == nil {
		level := cfg.Logger.Level
		if a.verbose {
			level = "debug"
		}
		a.l = pkgLog.Init(pkgLog.ZapConfig{
			Level:        level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	if a.store == nil {
		s, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		a.store = s
		if c, ok := s.(io.Closer); ok {
			a.closers = append(a.closers, c)
		}
	}

	tracker := reqseq.New(cfg.RequestTracking.Size, cfg.RequestTracking.TTL)

	var tokens tokenRef
	apiOpts := []apiclient.Option{
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		apiclient.WithTokenSource(&tokens),
		apiclient.WithLogger(a.l),
	}
	if cfg.Backend.RateLimitPerSec > 0 {
		apiOpts = append(apiOpts, apiclient.WithRateLimit(cfg.Backend.RateLimitPerSec, cfg.Backend.RateLimitBurst))
	}
	api := apiclient.New(cfg.Backend.BaseURL, apiOpts...)

	a.client = wardrobeapi.New(api, wardrobeapi.WithLoginForm(cfg.Backend.LoginForm))
	a.session = session.New(a.client, a.store, a.l)
	tokens.src = a.session

	bridge := localstore.NewBridge(a.store, a.l)
	images := imaging.NewProcessor(cfg.Image.MaxDimension, cfg.Image.JPEGQuality)

	a.items = wardrobeUC.New(a.l, wardrobeRest.New(a.client, images, a.l), idgen.Default, tracker)
	a.outfits = outfitUC.New(a.l, outfitRest.New(a.client, a.l), bridge, idgen.Default, tracker)
	a.account = accountUC.New(a.l, accountRest.New(a.client, a.l), a.items.Items(), a.outfits.Outfits())

	a.dates, err = datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		a.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		a.dates, _ = datemath.NewParser("UTC")
	}
	a.planner = plannerUC.New(a.l, bridge, a.dates, a.calendar(ctx), a.outfits.Outfits())
	return nil
}

// calendar returns nil when export is not configured or the credentials
// cannot be loaded.
func (a *app) calendar(ctx context.Context) plannerUC.Calendar {
	if !a.cfg.GoogleCalendar.Enabled() {
		return nil
	}
	c, err := gcalendar.NewClientFromCredentialsFile(ctx, a.cfg.GoogleCalendar.CredentialsPath, a.cfg.GoogleCalendar.TokenPath)
	if err != nil {
		a.l.Warnf(ctx, "Google Calendar not available: %v", err)
		return nil
	}
	return c
}

func (a *app) teardown() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.l.Warnf(context.Background(), "close: %v", err)
		}
	}
}

// requireAuth restores the persisted session and fails when nobody is
// logged in.
func (a *app) requireAuth(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNotLoggedIn, err)
	}
	if a.session.Snapshot().State != session.StateAuthenticated {
		return ErrNotLoggedIn
	}
	return nil
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (localstore.Storage, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		return localstore.NewMemory(), nil
	case config.StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		return localstore.OpenSQLite(cfg.Path)
	case config.StorageRedis:
		return localstore.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
	default:
		return localstore.NewFile(cfg.Path)
	}
}
