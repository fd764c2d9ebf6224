package extract

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestModalValue(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "feedback:1",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "title", Value: "Great bot"},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "body", Value: "Works fine"},
				},
			},
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "empty", Value: ""},
				},
			},
		},
	}

	tests := []struct {
		customID string
		value    string
		found    bool
	}{
		{customID: "title", value: "Great bot", found: true},
		{customID: "body", value: "Works fine", found: true},
		{customID: "empty", found: false},
		{customID: "missing", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.customID, func(t *testing.T) {
			value, ok := ModalValue(data, tt.customID)
			if ok != tt.found {
				t.Fatalf("Expected found to be %t, got %t", tt.found, ok)
			}
			if value != tt.value {
				t.Errorf("Expected %q, got %q", tt.value, value)
			}
		})
	}
}
