package interaction

import (
	"context"
	"fmt"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
)

// CommandFunc handles an interaction routed to a command.
type CommandFunc func(ctx context.Context, input *Input) (*sarah.CommandResponse, error)

// NewCommandPropsBuilder creates a *sarah.CommandPropsBuilder that matches interactions with the given identifier.
//
// When fn returns an error, the interaction is answered with the error reply
// so the user is not left waiting, and the error is passed on to go-sarah.
// Set Instruction on the returned builder before building it.
func NewCommandPropsBuilder(identifier string, fn CommandFunc) *sarah.CommandPropsBuilder {
	return sarah.NewCommandPropsBuilder().
		BotType(DISCORD).
		Identifier(identifier).
		MatchFunc(matchIdentifier(identifier)).
		Func(commandFunc(identifier, fn))
}

func matchIdentifier(identifier string) func(sarah.Input) bool {
	return func(input sarah.Input) bool {
		i, ok := input.(*Input)
		return ok && i.Identifier() == identifier
	}
}

func commandFunc(identifier string, fn CommandFunc) func(context.Context, sarah.Input) (*sarah.CommandResponse, error) {
	return func(ctx context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
		i, ok := input.(*Input)
		if !ok {
			return nil, fmt.Errorf("%T is not a *interaction.Input", input)
		}

		response, err := fn(ctx, i)
		if err != nil {
			if replyErr := i.ReplyError(); replyErr != nil {
				logger.Errorf("Failed to send error reply for %s: %+v", identifier, replyErr)
			}
			return nil, err
		}

		return response, nil
	}
}
