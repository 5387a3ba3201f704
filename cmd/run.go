package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	promadapter "github.com/bnema/linkdrop-bot/internal/adapters/metrics/prom"
	"github.com/bnema/linkdrop-bot/internal/adapters/telegram"
	"github.com/bnema/linkdrop-bot/internal/application"
	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/bnema/linkdrop-bot/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const metricsShutdownTimeout = 5 * time.Second

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Telegram and start handling group messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.runBot(ctx)
		},
	}
}

func (a *app) runBot(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	token, _, err := a.resolveToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return errTokenNotConfigured
	}

	excluded, err := a.excludedUsers(ctx)
	if err != nil {
		return err
	}

	bot, err := telegram.NewBot(token, a.cfg.Telegram.Debug, a.log)
	if err != nil {
		return err
	}
	gateway, err := telegram.NewGateway(bot, a.cfg.Telegram.ChunkSize)
	if err != nil {
		return fmt.Errorf("wire telegram gateway: %w", err)
	}
	source, err := telegram.NewSource(bot, a.cfg.Telegram.PollTimeout, a.log)
	if err != nil {
		return fmt.Errorf("wire telegram source: %w", err)
	}

	recorder := promadapter.NewRecorder(prometheus.NewRegistry())
	if err := recorder.RegisterRuntimeCollectors(); err != nil {
		return fmt.Errorf("register runtime collectors: %w", err)
	}

	clock := ports.SystemClock{}
	scheduler := application.NewScheduler(gateway, clock, recorder, a.log)
	defer scheduler.Close()

	service := application.NewService(application.Deps{
		Gateway:   gateway,
		Scheduler: scheduler,
		Session:   domain.NewSession(domain.NewExtractor(a.cfg.Links.Hosts...), excluded...),
		Roster:    a.roster,
		Clock:     clock,
		Metrics:   recorder,
		Log:       a.log,
	}, application.Config{
		Admins: a.cfg.Access.Admins,
		Rules:  a.cfg.Texts.Rules,
		Slots:  a.cfg.Texts.Slots,
	})

	a.log.Info().
		Int("admins", len(a.cfg.Access.Admins)).
		Int("excluded", len(excluded)).
		Strs("hosts", a.cfg.Links.Hosts).
		Msg("linkbot starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The metrics server has nothing to serve once polling stops.
		defer cancel()
		return source.Run(gctx, service.HandleEvent)
	})

	if listen := a.cfg.Metrics.Listen; listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", recorder.Handler())
		server := &http.Server{Addr: listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			a.log.Info().Str("listen", listen).Msg("serving metrics")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve metrics: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	a.log.Info().Int("pending_restrictions", len(scheduler.Active())).Msg("linkbot stopped")
	return err
}
