// Package builder constructs interaction responses and message components.
//
// Every builder produces plain discordgo values, so a response built here can be
// passed to Handle.Respond or directly to discordgo.Session.InteractionRespond.
package builder

import (
	"github.com/bwmarrin/discordgo"
)

// Pong creates a response that acknowledges a ping interaction.
func Pong() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponsePong,
	}
}

// DeferBuilder builds a deferred response.
// The user sees a loading state until the response is completed with a followup.
type DeferBuilder struct {
	responseType discordgo.InteractionResponseType
	flags        discordgo.MessageFlags
}

// DeferSendMessage starts a response that defers sending a message.
func DeferSendMessage() *DeferBuilder {
	return &DeferBuilder{responseType: discordgo.InteractionResponseDeferredChannelMessageWithSource}
}

// DeferUpdateMessage starts a response that defers updating the component's message.
// Only valid for message component interactions.
func DeferUpdateMessage() *DeferBuilder {
	return &DeferBuilder{responseType: discordgo.InteractionResponseDeferredMessageUpdate}
}

// Ephemeral makes the later message visible only to the user who created the interaction.
func (b *DeferBuilder) Ephemeral() *DeferBuilder {
	b.flags |= discordgo.MessageFlagsEphemeral
	return b
}

// SuppressEmbeds hides link previews in the later message.
func (b *DeferBuilder) SuppressEmbeds() *DeferBuilder {
	b.flags |= discordgo.MessageFlagsSuppressEmbeds
	return b
}

// Build returns the deferred response.
func (b *DeferBuilder) Build() *discordgo.InteractionResponse {
	response := &discordgo.InteractionResponse{Type: b.responseType}
	if b.flags != 0 {
		response.Data = &discordgo.InteractionResponseData{Flags: b.flags}
	}
	return response
}

// SendMessage creates a response that sends a message.
func SendMessage(data *discordgo.InteractionResponseData) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// UpdateMessage creates a response that updates the message the component is attached to.
func UpdateMessage(data *discordgo.InteractionResponseData) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	}
}

// Ephemeral creates a message that only the user who created the interaction can see.
func Ephemeral(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

// Autocomplete creates a response that suggests the given choices to the user.
func Autocomplete(choices ...*discordgo.ApplicationCommandOptionChoice) *discordgo.InteractionResponse {
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}
}

// ModalBuilder builds a response that shows a modal.
type ModalBuilder struct {
	title    string
	customID string
	rows     []discordgo.MessageComponent
}

// ShowModal starts a response that shows a modal with the given title.
// The modal's submission is routed by customID.
func ShowModal(title string, customID string) *ModalBuilder {
	return &ModalBuilder{
		title:    title,
		customID: customID,
	}
}

// TextInput adds a text input in its own row.
func (b *ModalBuilder) TextInput(input *TextInputBuilder) *ModalBuilder {
	b.rows = append(b.rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{input.Build()},
	})
	return b
}

// Build returns the modal response.
func (b *ModalBuilder) Build() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   b.customID,
			Title:      b.title,
			Components: b.rows,
		},
	}
}
