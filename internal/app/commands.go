package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"

	interaction "github.com/oklahomer/go-sarah-interaction"
)

// Command handles the interactions routed to its identifier.
type Command interface {
	// Identifier is the command name, or the custom ID prefix for component and modal handlers.
	Identifier() string

	// Instruction is shown in the help listing.
	Instruction() string

	// Definition is the application command to register with Discord.
	// Handlers that are only reached through components and modals return nil.
	Definition() *discordgo.ApplicationCommand

	Run(ctx context.Context, input *interaction.Input) (*sarah.CommandResponse, error)
}

// DefaultCommands returns the commands the template bot ships with.
func DefaultCommands(appCtx *Context) []Command {
	return []Command{
		&helpCommand{},
		&pingCommand{appCtx: appCtx},
		&mockCommand{},
		&mockButton{},
		&feedbackCommand{},
		&feedbackModal{appCtx: appCtx},
	}
}

// RegisterCommands registers each command's identifier with the adapter and its props with register.
// Pass sarah.RegisterCommandProps as register to run the commands with go-sarah.
func RegisterCommands(appCtx *Context, register func(*sarah.CommandProps), commands ...Command) error {
	for _, command := range commands {
		if definition := command.Definition(); definition != nil {
			appCtx.Adapter.RegisterCommand(definition)
		} else {
			appCtx.Adapter.RegisterComponent(command.Identifier())
		}

		props, err := interaction.NewCommandPropsBuilder(command.Identifier(), appCtx.instrument(command)).
			Instruction(command.Instruction()).
			Build()
		if err != nil {
			return fmt.Errorf("failed to build command %s: %w", command.Identifier(), err)
		}

		register(props)
	}

	return nil
}

// instrument records metrics for each run and reports errors.
func (c *Context) instrument(command Command) interaction.CommandFunc {
	identifier := command.Identifier()

	return func(ctx context.Context, input *interaction.Input) (*sarah.CommandResponse, error) {
		started := time.Now()
		response, err := command.Run(ctx, input)

		outcome := OutcomeOK
		if err != nil {
			outcome = OutcomeError
			c.LogErr(fmt.Errorf("command %s failed for user %s: %w", identifier, input.UserID(), err))
		}
		c.Metrics.ObserveInteraction(identifier, outcome, time.Since(started))

		return response, err
	}
}
