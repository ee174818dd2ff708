package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"wardrobe-planner/internal/fakebackend"
)

func newServeFakeCmd(a *app) *cobra.Command {
	var (
		port string
		cfg  fakebackend.Config
	)

	cmd := &cobra.Command{
		Use:   "serve-fake",
		Short: "Run an in-memory wardrobe backend for offline use",
		Long: `Starts an in-memory emulation of the wardrobe backend. Data is lost when
the server stops. Point backend.base_url at it to try the CLI without an
account on the real service.`,
		Example: `  wardrobe serve-fake --port 8000
  BACKEND_BASE_URL=http://localhost:8000 wardrobe register -u ada -e ada@example.com -p s3cret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Logger = a.l
			cfg.Mode = gin.ReleaseMode
			if a.verbose {
				cfg.Mode = gin.DebugMode
			}
			fake, err := fakebackend.New(cfg)
			if err != nil {
				return err
			}

			addr := ":" + port
			server := &http.Server{
				Addr:              addr,
				Handler:           fake.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				a.l.Infof(cmd.Context(), "Fake backend listening on http://localhost%s", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				a.l.Infof(context.Background(), "Shutting down fake backend...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					a.l.Errorf(shutdownCtx, "Fake backend shutdown failed: %v", err)
					return err
				}
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8000", "Port to listen on")
	cmd.Flags().StringVar(&cfg.Secret, "secret", "", "Token signing secret")
	cmd.Flags().DurationVar(&cfg.TokenTTL, "token-ttl", fakebackend.DefaultTokenTTL, "Lifetime of issued tokens")
	cmd.Flags().BoolVar(&cfg.TokenOnRegister, "token-on-register", false, "Return a token from /register")
	cmd.Flags().BoolVar(&cfg.NoStatistics, "no-statistics", false, "Disable the /statistics endpoints")
	return cmd
}
