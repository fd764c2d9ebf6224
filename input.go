package interaction

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"

	"github.com/oklahomer/go-sarah-interaction/extract"
)

// Input is a sarah.Input implementation that represents a received Discord interaction.
type Input struct {
	Event      *discordgo.InteractionCreate
	identifier string
	senderKey  string
	sentAt     time.Time
	handle     *Handle
	errorReply string
}

var _ sarah.Input = (*Input)(nil)

// SenderKey returns a unique key representing the user in the channel.
func (i *Input) SenderKey() string {
	return i.senderKey
}

// Message returns the interaction's identifier.
// This is the command name for application commands
// and the custom ID's identifier part for message components and modals.
func (i *Input) Message() string {
	return i.identifier
}

// SentAt returns when the interaction was created.
func (i *Input) SentAt() time.Time {
	return i.sentAt
}

// ReplyTo returns the Handle that responds to the interaction.
func (i *Input) ReplyTo() sarah.OutputDestination {
	return i.handle
}

// Identifier returns the identifier the interaction is routed by.
func (i *Input) Identifier() string {
	return i.identifier
}

// Handle returns the Handle that responds to the interaction.
func (i *Input) Handle() *Handle {
	return i.handle
}

// Interaction returns the received interaction.
func (i *Input) Interaction() *discordgo.Interaction {
	return i.Event.Interaction
}

// UserID returns the ID of the user who created the interaction.
func (i *Input) UserID() string {
	if user := interactionUser(i.Event.Interaction); user != nil {
		return user.ID
	}
	return ""
}

// ReplyError answers the interaction with the ephemeral error reply.
// Autocomplete interactions are answered with no choices instead.
func (i *Input) ReplyError() error {
	return replyError(i.handle, i.errorReply)
}

// InteractionToInput converts a *discordgo.InteractionCreate event to *Input.
// The given Handle becomes the input's reply destination.
func InteractionToInput(event *discordgo.InteractionCreate, handle *Handle) (*Input, error) {
	if event == nil || event.Interaction == nil {
		return nil, ErrUnknownInteraction
	}

	user := interactionUser(event.Interaction)
	if user == nil {
		return nil, ErrNoUser
	}

	identifier, err := Identifier(event.Interaction)
	if err != nil {
		return nil, err
	}

	sentAt, err := discordgo.SnowflakeTimestamp(event.ID)
	if err != nil {
		sentAt = time.Now()
	}

	return &Input{
		Event:      event,
		identifier: identifier,
		senderKey:  fmt.Sprintf("%s_%s", event.ChannelID, user.ID),
		sentAt:     sentAt,
		handle:     handle,
		errorReply: DefaultErrorReply,
	}, nil
}

// Identifier returns the identifier the given interaction is routed by.
func Identifier(i *discordgo.Interaction) (string, error) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand, discordgo.InteractionApplicationCommandAutocomplete:
		data, err := extract.CommandData(i)
		if err != nil {
			return "", err
		}
		return data.Name, nil

	case discordgo.InteractionMessageComponent:
		data, err := extract.ComponentData(i)
		if err != nil {
			return "", err
		}
		identifier, _ := SplitCustomID(data.CustomID)
		return identifier, nil

	case discordgo.InteractionModalSubmit:
		data, err := extract.ModalData(i)
		if err != nil {
			return "", err
		}
		identifier, _ := SplitCustomID(data.CustomID)
		return identifier, nil

	default:
		return "", ErrUnknownInteraction
	}
}

// interactionUser returns the guild member's user for guild interactions and the user otherwise.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
