package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"
	"golang.org/x/sync/errgroup"

	interaction "github.com/oklahomer/go-sarah-interaction"
)

const shutdownTimeout = 5 * time.Second

// Run runs the bot until ctx is canceled or the bot stops with a non-continuable error.
func Run(ctx context.Context, config *Configuration, logger *slog.Logger) error {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	adapter, err := interaction.NewAdapter(config.AdapterConfig(), interaction.WithSession(session))
	if err != nil {
		return err
	}

	metrics := NewMetrics()
	appCtx := NewContext(adapter, session, logger, metrics, config)
	if err := RegisterCommands(appCtx, sarah.RegisterCommandProps, DefaultCommands(appCtx)...); err != nil {
		return err
	}

	storage := sarah.NewUserContextStorage(sarah.NewCacheConfig())
	sarah.RegisterBot(sarah.NewBot(adapter, sarah.BotWithStorage(storage)))

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	sarah.RegisterAlerter(&stopAlerter{logger: logger, cancel: cancel})

	sampler, err := NewSampler(config.Metrics.Interval, func() {
		metrics.SetHeartbeatLatency(session.HeartbeatLatency())
	})
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(runCtx)

	if err := sarah.Run(gCtx, sarah.NewConfig()); err != nil {
		_ = sampler.Shutdown()
		return fmt.Errorf("failed to run go-sarah: %w", err)
	}

	sampler.Start()
	g.Go(func() error {
		<-gCtx.Done()
		return sampler.Shutdown()
	})

	if config.Metrics.Address != "" {
		listener, err := net.Listen("tcp", config.Metrics.Address)
		if err != nil {
			cancel(fmt.Errorf("failed to listen on %s: %w", config.Metrics.Address, err))
		} else {
			serveMetrics(gCtx, g, listener, metrics.Handler(), logger)
		}
	}

	logger.Info("bot is running", "commands", len(adapter.Commands()))

	if err := g.Wait(); err != nil {
		return err
	}

	if cause := context.Cause(runCtx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

// serveMetrics serves GET /metrics on the listener until ctx is done.
func serveMetrics(ctx context.Context, g *errgroup.Group, listener net.Listener, handler http.Handler, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", handler)

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Info("serving metrics", "address", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server stopped: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
}

// stopAlerter stops Run when go-sarah gives up on the bot.
type stopAlerter struct {
	logger *slog.Logger
	cancel context.CancelCauseFunc
}

var _ sarah.Alerter = (*stopAlerter)(nil)

func (a *stopAlerter) Alert(_ context.Context, botType sarah.BotType, err error) error {
	a.logger.Error("bot stopped", "bot", botType, "error", err)
	a.cancel(fmt.Errorf("%s bot stopped: %w", botType, err))
	return nil
}

// SyncCommands overwrites the application's commands with the template bot's commands.
func SyncCommands(config *Configuration, logger *slog.Logger) error {
	return withAdapter(config, logger, func(adapter *interaction.Adapter, applicationID string) error {
		return adapter.SyncCommands(applicationID)
	})
}

// ClearCommands removes all of the application's commands.
func ClearCommands(config *Configuration, logger *slog.Logger) error {
	return withAdapter(config, logger, func(adapter *interaction.Adapter, applicationID string) error {
		return adapter.ClearCommands(applicationID)
	})
}

// withAdapter prepares an adapter with every command registered without connecting to the gateway.
func withAdapter(config *Configuration, logger *slog.Logger, fn func(*interaction.Adapter, string) error) error {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	adapter, err := interaction.NewAdapter(config.AdapterConfig(), interaction.WithSession(session))
	if err != nil {
		return err
	}

	appCtx := NewContext(adapter, session, logger, NewMetrics(), config)
	if err := RegisterCommands(appCtx, func(*sarah.CommandProps) {}, DefaultCommands(appCtx)...); err != nil {
		return err
	}

	applicationID, err := resolveApplicationID(config.ApplicationID, session)
	if err != nil {
		return err
	}

	return fn(adapter, applicationID)
}

// applicationFetcher is the part of discordgo.Session that looks up an application.
type applicationFetcher interface {
	Application(appID string) (*discordgo.Application, error)
}

var _ applicationFetcher = (*discordgo.Session)(nil)

// resolveApplicationID returns the configured ID, or the ID of the application the token belongs to.
func resolveApplicationID(configured string, fetcher applicationFetcher) (string, error) {
	if configured != "" {
		return configured, nil
	}

	application, err := fetcher.Application("@me")
	if err != nil {
		return "", fmt.Errorf("failed to fetch the application: %w", err)
	}
	return application.ID, nil
}
