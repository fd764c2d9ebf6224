package app

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"

	interaction "github.com/oklahomer/go-sarah-interaction"
)

const helpIdentifier = "help"

// helpCommand only provides the definition.
// The adapter turns the interaction into sarah.HelpInput, and go-sarah answers it with every command's instruction.
type helpCommand struct{}

var _ Command = (*helpCommand)(nil)

func (*helpCommand) Identifier() string {
	return helpIdentifier
}

func (*helpCommand) Instruction() string {
	return "Use /help to get info about the bot"
}

func (*helpCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        helpIdentifier,
		Description: "Get info about the bot",
	}
}

// Run is never reached through the adapter. go-sarah answers help itself.
func (*helpCommand) Run(context.Context, *interaction.Input) (*sarah.CommandResponse, error) {
	return nil, nil
}
