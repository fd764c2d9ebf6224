package interaction

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"

	"github.com/oklahomer/go-sarah-interaction/extract"
)

func TestInteractionToInput(t *testing.T) {
	event := commandEvent("ping")
	handle := NewHandle(&mockSession{}, event.Interaction)

	input, err := InteractionToInput(event, handle)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}

	t.Run("SenderKey", func(t *testing.T) {
		expected := "ch-1_user-1"
		if input.SenderKey() != expected {
			t.Errorf("Expected SenderKey %q, got %q", expected, input.SenderKey())
		}
	})

	t.Run("Message", func(t *testing.T) {
		if input.Message() != "ping" {
			t.Errorf("Expected Message %q, got %q", "ping", input.Message())
		}
	})

	t.Run("SentAt", func(t *testing.T) {
		expected, _ := discordgo.SnowflakeTimestamp(event.ID)
		if !input.SentAt().Equal(expected) {
			t.Errorf("Expected SentAt %v, got %v", expected, input.SentAt())
		}
	})

	t.Run("ReplyTo", func(t *testing.T) {
		dest, ok := input.ReplyTo().(*Handle)
		if !ok {
			t.Fatalf("ReplyTo should return *Handle, got %T", input.ReplyTo())
		}
		if dest != handle {
			t.Error("Expected the given handle to be the destination")
		}
	})

	t.Run("UserID", func(t *testing.T) {
		if input.UserID() != "user-1" {
			t.Errorf("Expected UserID %q, got %q", "user-1", input.UserID())
		}
	})

	t.Run("Event preserved", func(t *testing.T) {
		if input.Event != event || input.Interaction() != event.Interaction {
			t.Error("Original event should be preserved in Input")
		}
	})
}

func TestInteractionToInput_Errors(t *testing.T) {
	t.Run("nil event", func(t *testing.T) {
		_, err := InteractionToInput(nil, nil)
		if !errors.Is(err, ErrUnknownInteraction) {
			t.Errorf("Expected ErrUnknownInteraction, got %+v", err)
		}
	})

	t.Run("no user", func(t *testing.T) {
		event := commandEvent("ping")
		event.Member = nil

		_, err := InteractionToInput(event, nil)
		if !errors.Is(err, ErrNoUser) {
			t.Errorf("Expected ErrNoUser, got %+v", err)
		}
	})

	t.Run("mismatched data", func(t *testing.T) {
		event := commandEvent("ping")
		event.Data = discordgo.ModalSubmitInteractionData{CustomID: "feedback"}

		_, err := InteractionToInput(event, nil)
		if !errors.Is(err, extract.ErrMissingCommandData) {
			t.Errorf("Expected extract.ErrMissingCommandData, got %+v", err)
		}
	})

	t.Run("invalid snowflake falls back to now", func(t *testing.T) {
		event := commandEvent("ping")
		event.ID = "not-a-snowflake"

		before := time.Now()
		input, err := InteractionToInput(event, nil)
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		if input.SentAt().Before(before) {
			t.Errorf("Expected SentAt to be now, got %v", input.SentAt())
		}
	})
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name        string
		interaction *discordgo.Interaction
		expected    string
		err         error
	}{
		{
			name: "application command",
			interaction: &discordgo.Interaction{
				Type: discordgo.InteractionApplicationCommand,
				Data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
			},
			expected: "ping",
		},
		{
			name: "autocomplete",
			interaction: &discordgo.Interaction{
				Type: discordgo.InteractionApplicationCommandAutocomplete,
				Data: discordgo.ApplicationCommandInteractionData{Name: "search"},
			},
			expected: "search",
		},
		{
			name: "message component",
			interaction: &discordgo.Interaction{
				Type: discordgo.InteractionMessageComponent,
				Data: discordgo.MessageComponentInteractionData{CustomID: "mock:3f2a"},
			},
			expected: "mock",
		},
		{
			name: "modal submit",
			interaction: &discordgo.Interaction{
				Type: discordgo.InteractionModalSubmit,
				Data: &discordgo.ModalSubmitInteractionData{CustomID: "feedback"},
			},
			expected: "feedback",
		},
		{
			name:        "ping",
			interaction: &discordgo.Interaction{Type: discordgo.InteractionPing},
			err:         ErrUnknownInteraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identifier, err := Identifier(tt.interaction)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error %v, got %+v", tt.err, err)
			}
			if identifier != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, identifier)
			}
		})
	}
}

func TestInput_ReplyError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		var got *discordgo.InteractionResponse
		mock := &mockSession{
			interactionRespondFunc: func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				got = resp
				return nil
			},
		}
		event := commandEvent("ping")
		input, err := InteractionToInput(event, NewHandle(mock, event.Interaction))
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}

		if err := input.ReplyError(); err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		if got == nil || got.Data.Content != DefaultErrorReply || got.Data.Flags != discordgo.MessageFlagsEphemeral {
			t.Errorf("Unexpected error reply: %+v", got)
		}
	})

	t.Run("autocomplete", func(t *testing.T) {
		var got *discordgo.InteractionResponse
		mock := &mockSession{
			interactionRespondFunc: func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
				got = resp
				return nil
			},
		}
		event := commandEvent("search")
		event.Type = discordgo.InteractionApplicationCommandAutocomplete
		input, err := InteractionToInput(event, NewHandle(mock, event.Interaction))
		if err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}

		if err := input.ReplyError(); err != nil {
			t.Fatalf("Unexpected error: %+v", err)
		}
		if got == nil || got.Type != discordgo.InteractionApplicationCommandAutocompleteResult {
			t.Errorf("Expected autocomplete result, got %+v", got)
		}
	})
}

func TestInput_SarahInputInterface(t *testing.T) {
	var sarahInput sarah.Input = &Input{
		identifier: "ping",
		senderKey:  "key",
		sentAt:     time.Now(),
	}

	if sarahInput.SenderKey() != "key" {
		t.Errorf("Expected SenderKey %q, got %q", "key", sarahInput.SenderKey())
	}

	if sarahInput.Message() != "ping" {
		t.Errorf("Expected Message %q, got %q", "ping", sarahInput.Message())
	}
}
