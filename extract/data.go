// Package extract reads data from Discord interactions without type switches.
//
// discordgo's accessors such as Interaction.ApplicationCommandData panic when the
// interaction is of another kind. The functions in this package return an error or
// a false flag instead, so a handler can reject a malformed interaction gracefully.
package extract

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrMissingInteractionData is returned when the interaction carries no data, e.g. a ping.
var ErrMissingInteractionData = errors.New("interaction has no data")

// ErrMissingCommandData is returned when the interaction is not an application command.
var ErrMissingCommandData = errors.New("interaction is not an application command")

// ErrMissingComponentData is returned when the interaction is not a message component.
var ErrMissingComponentData = errors.New("interaction is not a message component")

// ErrMissingModalData is returned when the interaction is not a modal submit.
var ErrMissingModalData = errors.New("interaction is not a modal submit")

// Data returns the interaction's data.
// ErrMissingInteractionData is returned for ping interactions.
func Data(i *discordgo.Interaction) (discordgo.InteractionData, error) {
	if i == nil || i.Data == nil {
		return nil, ErrMissingInteractionData
	}
	return i.Data, nil
}

// CommandData returns the data of an application command or autocomplete interaction.
func CommandData(i *discordgo.Interaction) (discordgo.ApplicationCommandInteractionData, error) {
	data, err := Data(i)
	if err != nil {
		return discordgo.ApplicationCommandInteractionData{}, err
	}

	switch d := data.(type) {
	case discordgo.ApplicationCommandInteractionData:
		return d, nil
	case *discordgo.ApplicationCommandInteractionData:
		return *d, nil
	default:
		return discordgo.ApplicationCommandInteractionData{}, ErrMissingCommandData
	}
}

// ComponentData returns the data of a message component interaction.
func ComponentData(i *discordgo.Interaction) (discordgo.MessageComponentInteractionData, error) {
	data, err := Data(i)
	if err != nil {
		return discordgo.MessageComponentInteractionData{}, err
	}

	switch d := data.(type) {
	case discordgo.MessageComponentInteractionData:
		return d, nil
	case *discordgo.MessageComponentInteractionData:
		return *d, nil
	default:
		return discordgo.MessageComponentInteractionData{}, ErrMissingComponentData
	}
}

// ModalData returns the data of a modal submit interaction.
func ModalData(i *discordgo.Interaction) (discordgo.ModalSubmitInteractionData, error) {
	data, err := Data(i)
	if err != nil {
		return discordgo.ModalSubmitInteractionData{}, err
	}

	switch d := data.(type) {
	case discordgo.ModalSubmitInteractionData:
		return d, nil
	case *discordgo.ModalSubmitInteractionData:
		return *d, nil
	default:
		return discordgo.ModalSubmitInteractionData{}, ErrMissingModalData
	}
}
