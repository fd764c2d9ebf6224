package extract

import (
	"github.com/bwmarrin/discordgo"
)

// ModalValue returns the value of the text input with the given custom ID.
// false is returned when the input is missing or was left empty.
func ModalValue(data discordgo.ModalSubmitInteractionData, customID string) (string, bool) {
	for _, component := range data.Components {
		for _, child := range rowComponents(component) {
			input, ok := textInput(child)
			if !ok || input.CustomID != customID {
				continue
			}
			if input.Value == "" {
				return "", false
			}
			return input.Value, true
		}
	}
	return "", false
}

// rowComponents returns the children of an action row.
// Decoded modal data holds pointers while manually built data usually holds values.
func rowComponents(component discordgo.MessageComponent) []discordgo.MessageComponent {
	switch row := component.(type) {
	case *discordgo.ActionsRow:
		if row == nil {
			return nil
		}
		return row.Components
	case discordgo.ActionsRow:
		return row.Components
	default:
		return nil
	}
}

func textInput(component discordgo.MessageComponent) (discordgo.TextInput, bool) {
	switch input := component.(type) {
	case *discordgo.TextInput:
		if input == nil {
			return discordgo.TextInput{}, false
		}
		return *input, true
	case discordgo.TextInput:
		return input, true
	default:
		return discordgo.TextInput{}, false
	}
}
