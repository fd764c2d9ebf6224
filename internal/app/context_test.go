package app

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	interaction "github.com/oklahomer/go-sarah-interaction"
)

// mockSink implements logSink for testing.
type mockSink struct {
	channelMessageSendFunc func(channelID string, content string) (*discordgo.Message, error)
	heartbeatLatency       time.Duration
}

func (m *mockSink) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.channelMessageSendFunc != nil {
		return m.channelMessageSendFunc(channelID, content)
	}
	return &discordgo.Message{}, nil
}

func (m *mockSink) HeartbeatLatency() time.Duration {
	return m.heartbeatLatency
}

func newTestContext(t *testing.T, sink *mockSink, logs *bytes.Buffer) *Context {
	t.Helper()

	config := NewConfiguration()
	config.Token = "token"

	adapter, err := interaction.NewAdapter(config.AdapterConfig(), interaction.WithSession(&discordgo.Session{}))
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}

	logger := slog.New(slog.NewTextHandler(logs, nil))
	return NewContext(adapter, sink, logger, NewMetrics(), config)
}

func TestContext_LogErr(t *testing.T) {
	t.Run("without log channel", func(t *testing.T) {
		logs := &bytes.Buffer{}
		sink := &mockSink{
			channelMessageSendFunc: func(channelID string, content string) (*discordgo.Message, error) {
				t.Error("Nothing must be posted without log channel")
				return nil, nil
			},
		}
		appCtx := newTestContext(t, sink, logs)

		appCtx.LogErr(errors.New("boom"))

		if !strings.Contains(logs.String(), "boom") {
			t.Errorf("Expected error to be logged, got %q", logs.String())
		}
	})

	t.Run("posts to log channel", func(t *testing.T) {
		var gotChannelID, gotContent string
		sink := &mockSink{
			channelMessageSendFunc: func(channelID string, content string) (*discordgo.Message, error) {
				gotChannelID = channelID
				gotContent = content
				return &discordgo.Message{}, nil
			},
		}
		appCtx := newTestContext(t, sink, &bytes.Buffer{})
		appCtx.Config.LogChannelID = "300"

		appCtx.LogErr(errors.New("boom"))

		if gotChannelID != "300" || gotContent != "boom" {
			t.Errorf("Unexpected post: %q to %q", gotContent, gotChannelID)
		}
	})

	t.Run("failure to post is logged", func(t *testing.T) {
		logs := &bytes.Buffer{}
		sink := &mockSink{
			channelMessageSendFunc: func(channelID string, content string) (*discordgo.Message, error) {
				return nil, errors.New("missing access")
			},
		}
		appCtx := newTestContext(t, sink, logs)
		appCtx.Config.LogChannelID = "300"

		appCtx.LogErr(errors.New("boom"))

		if !strings.Contains(logs.String(), "missing access") {
			t.Errorf("Expected post failure to be logged, got %q", logs.String())
		}
	})
}

func TestContext_Log(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "short message",
			message:  "hello",
			expected: "hello",
		},
		{
			name:     "long message",
			message:  strings.Repeat("a", maxMessageLength+10),
			expected: strings.Repeat("a", maxMessageLength),
		},
		{
			name:     "multi-byte message within limit",
			message:  "Feedback:\n" + strings.Repeat("日", 1000),
			expected: "Feedback:\n" + strings.Repeat("日", 1000),
		},
		{
			name:     "long multi-byte message",
			message:  strings.Repeat("日", maxMessageLength) + "🎉",
			expected: strings.Repeat("日", maxMessageLength),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotContent string
			sink := &mockSink{
				channelMessageSendFunc: func(channelID string, content string) (*discordgo.Message, error) {
					gotContent = content
					return &discordgo.Message{}, nil
				},
			}
			appCtx := newTestContext(t, sink, &bytes.Buffer{})
			appCtx.Config.LogChannelID = "300"

			if err := appCtx.Log(tt.message); err != nil {
				t.Fatalf("Unexpected error: %+v", err)
			}
			if gotContent != tt.expected {
				t.Errorf("Expected %d characters to be posted, got %d", utf8.RuneCountInString(tt.expected), utf8.RuneCountInString(gotContent))
			}
			if !utf8.ValidString(gotContent) {
				t.Error("Posted message is not valid UTF-8")
			}
		})
	}
}

func TestContext_HeartbeatLatency(t *testing.T) {
	appCtx := newTestContext(t, &mockSink{heartbeatLatency: 42 * time.Millisecond}, &bytes.Buffer{})

	if appCtx.HeartbeatLatency() != 42*time.Millisecond {
		t.Errorf("Unexpected latency: %s", appCtx.HeartbeatLatency())
	}
	if appCtx.Uptime() < 0 {
		t.Errorf("Unexpected uptime: %s", appCtx.Uptime())
	}
}
