package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"

	interaction "github.com/oklahomer/go-sarah-interaction"
)

func TestStopAlerter_Alert(t *testing.T) {
	logs := &bytes.Buffer{}
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	alerter := &stopAlerter{
		logger: slog.New(slog.NewTextHandler(logs, nil)),
		cancel: cancel,
	}

	stopErr := errors.New("failed to open Discord session")
	if err := alerter.Alert(context.Background(), interaction.DISCORD, stopErr); err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}

	if ctx.Err() == nil {
		t.Fatal("Expected the context to be canceled")
	}
	if !errors.Is(context.Cause(ctx), stopErr) {
		t.Errorf("Expected cause to wrap the bot error, got %+v", context.Cause(ctx))
	}
	if !strings.Contains(logs.String(), "bot stopped") {
		t.Errorf("Expected the stop to be logged, got %q", logs.String())
	}
}

func TestServeMetrics(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}

	metrics := NewMetrics()
	metrics.ObserveInteraction(pingIdentifier, OutcomeOK, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)
	serveMetrics(gCtx, g, listener, metrics.Handler(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	defer transport.CloseIdleConnections()

	t.Run("serves metrics", func(t *testing.T) {
		resp, err := client.Get("http://" + listener.Addr().String() + "/metrics")
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		if !strings.Contains(string(body), "interaction_bot_interactions_total") {
			t.Errorf("Expected interaction counter in the body, got %q", body)
		}
	})

	t.Run("other paths are not served", func(t *testing.T) {
		resp, err := client.Get("http://" + listener.Addr().String() + "/")
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})

	cancel()
	if err := g.Wait(); err != nil {
		t.Errorf("Expected graceful shutdown, got %+v", err)
	}
}

type mockApplicationFetcher struct {
	applicationFunc func(appID string) (*discordgo.Application, error)
}

func (m *mockApplicationFetcher) Application(appID string) (*discordgo.Application, error) {
	return m.applicationFunc(appID)
}

func TestResolveApplicationID(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		fetcher := &mockApplicationFetcher{
			applicationFunc: func(appID string) (*discordgo.Application, error) {
				t.Error("Application must not be fetched when configured")
				return nil, nil
			},
		}

		id, err := resolveApplicationID("100", fetcher)
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		if id != "100" {
			t.Errorf("Expected 100, got %q", id)
		}
	})

	t.Run("fetched", func(t *testing.T) {
		var requested string
		fetcher := &mockApplicationFetcher{
			applicationFunc: func(appID string) (*discordgo.Application, error) {
				requested = appID
				return &discordgo.Application{ID: "200"}, nil
			},
		}

		id, err := resolveApplicationID("", fetcher)
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		if requested != "@me" {
			t.Errorf("Expected @me to be requested, got %q", requested)
		}
		if id != "200" {
			t.Errorf("Expected 200, got %q", id)
		}
	})

	t.Run("fetch error", func(t *testing.T) {
		fetchErr := errors.New("401 Unauthorized")
		fetcher := &mockApplicationFetcher{
			applicationFunc: func(appID string) (*discordgo.Application, error) {
				return nil, fetchErr
			},
		}

		if _, err := resolveApplicationID("", fetcher); !errors.Is(err, fetchErr) {
			t.Errorf("Expected fetch error, got %+v", err)
		}
	})
}

func TestWithAdapter(t *testing.T) {
	config := NewConfiguration()
	config.Token = "token"
	config.ApplicationID = "100"

	called := false
	err := withAdapter(config, slog.New(slog.NewTextHandler(io.Discard, nil)), func(adapter *interaction.Adapter, applicationID string) error {
		called = true
		if applicationID != "100" {
			t.Errorf("Expected configured application ID, got %q", applicationID)
		}

		names := make([]string, 0)
		for _, command := range adapter.Commands() {
			names = append(names, command.Name)
		}
		expected := []string{helpIdentifier, pingIdentifier, mockIdentifier, feedbackIdentifier}
		if strings.Join(names, ",") != strings.Join(expected, ",") {
			t.Errorf("Expected commands %v, got %v", expected, names)
		}
		for _, identifier := range []string{mockButtonIdentifier, feedbackModalIdentifier} {
			if !adapter.Registered(identifier) {
				t.Errorf("Expected %q to be registered", identifier)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if !called {
		t.Error("Expected the function to be called")
	}
}
