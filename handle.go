package interaction

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// HandleOption defines a function signature for Handle's functional options.
type HandleOption func(handle *Handle)

// WithLastMessageTracking makes the Handle remember the last followup message
// so that UpdateLast and LastMessageID can be used.
func WithLastMessageTracking() HandleOption {
	return func(handle *Handle) {
		handle.trackLastMessage = true
	}
}

// Handle responds to a single interaction.
//
// The first call to Respond creates the interaction response and every later call
// creates a followup message, so callers do not have to keep track of it themselves.
// A Handle is safe for concurrent use, and it is passed around by pointer so that
// every holder shares the same state. Create only one Handle per interaction.
type Handle struct {
	responder        responder
	interaction      *discordgo.Interaction
	trackLastMessage bool

	mu            sync.Mutex
	responded     bool
	lastMessageID string
}

// NewHandle creates a new Handle for the given interaction.
// *discordgo.Session can be passed as the responder.
func NewHandle(responder responder, interaction *discordgo.Interaction, options ...HandleOption) *Handle {
	handle := &Handle{
		responder:   responder,
		interaction: interaction,
	}

	for _, opt := range options {
		opt(handle)
	}

	return handle
}

// Interaction returns the interaction this Handle responds to.
func (h *Handle) Interaction() *discordgo.Interaction {
	return h.interaction
}

// Responded reports whether the interaction response was already created.
func (h *Handle) Responded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.responded
}

// Respond responds to the interaction with the given response.
//
// If this is the first response, it creates the interaction response and returns a nil message.
// Otherwise it creates a followup message from the response's data and returns the created message.
// See the builder package for constructing responses.
func (h *Handle) Respond(response *discordgo.InteractionResponse) (*discordgo.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.responded {
		if err := h.responder.InteractionRespond(h.interaction, response); err != nil {
			return nil, fmt.Errorf("failed to create interaction response: %w", err)
		}
		h.responded = true
		return nil, nil
	}

	message, err := h.responder.FollowupMessageCreate(h.interaction, true, toWebhookParams(response))
	if err != nil {
		return nil, fmt.Errorf("failed to create followup message: %w", err)
	}

	if h.trackLastMessage && message != nil {
		h.lastMessageID = message.ID
	}

	return message, nil
}

// UpdateLast updates the last response to the interaction.
//
// The last followup message is edited when there is one, otherwise the original response is.
// Content, components and embeds are replaced with the response's data.
// ErrLastMessageNotTracked is returned unless the Handle was created with WithLastMessageTracking.
func (h *Handle) UpdateLast(response *discordgo.InteractionResponse) (*discordgo.Message, error) {
	lastMessageID, err := h.LastMessageID()
	if err != nil {
		return nil, err
	}

	edit := toWebhookEdit(response)
	if lastMessageID != "" {
		message, err := h.responder.FollowupMessageEdit(h.interaction, lastMessageID, edit)
		if err != nil {
			return nil, fmt.Errorf("failed to update followup message %s: %w", lastMessageID, err)
		}
		return message, nil
	}

	message, err := h.responder.InteractionResponseEdit(h.interaction, edit)
	if err != nil {
		return nil, fmt.Errorf("failed to update interaction response: %w", err)
	}
	return message, nil
}

// LastMessageID returns the ID of the last followup message sent to the interaction.
// An empty string is returned when no followup message has been sent yet.
func (h *Handle) LastMessageID() (string, error) {
	if !h.trackLastMessage {
		return "", ErrLastMessageNotTracked
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastMessageID, nil
}

func toWebhookParams(response *discordgo.InteractionResponse) *discordgo.WebhookParams {
	params := &discordgo.WebhookParams{}
	if response == nil || response.Data == nil {
		return params
	}

	data := response.Data
	params.Content = data.Content
	params.TTS = data.TTS
	params.Files = data.Files
	params.Components = data.Components
	params.Embeds = data.Embeds
	params.AllowedMentions = data.AllowedMentions
	params.Flags = data.Flags
	if data.Attachments != nil {
		params.Attachments = *data.Attachments
	}

	return params
}

func toWebhookEdit(response *discordgo.InteractionResponse) *discordgo.WebhookEdit {
	edit := &discordgo.WebhookEdit{}
	if response == nil || response.Data == nil {
		return edit
	}

	data := response.Data
	content := data.Content
	components := data.Components
	embeds := data.Embeds
	edit.Content = &content
	edit.Components = &components
	edit.Embeds = &embeds
	edit.Files = data.Files
	edit.Attachments = data.Attachments
	edit.AllowedMentions = data.AllowedMentions

	return edit
}
