package app

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"

	interaction "github.com/oklahomer/go-sarah-interaction"
	"github.com/oklahomer/go-sarah-interaction/builder"
)

const (
	mockIdentifier       = "mock"
	mockButtonIdentifier = "mock-button"
)

// mockCommand defers the response and completes it with a followup carrying a button.
type mockCommand struct{}

var _ Command = (*mockCommand)(nil)

func (*mockCommand) Identifier() string {
	return mockIdentifier
}

func (*mockCommand) Instruction() string {
	return "Use /mock to try a deferred response with a button"
}

func (*mockCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        mockIdentifier,
		Description: "mock",
	}
}

func (*mockCommand) Run(_ context.Context, input *interaction.Input) (*sarah.CommandResponse, error) {
	if _, err := input.Handle().Respond(builder.DeferSendMessage().Build()); err != nil {
		return nil, err
	}

	components := builder.NewComponents().
		Buttons(builder.NewButton(interaction.NewCustomID(mockButtonIdentifier), "Click me", discordgo.PrimaryButton).UnicodeEmoji("👋")).
		Build()

	return interaction.NewResponse(input, &discordgo.InteractionResponseData{
		Content:    "Done thinking.",
		Components: components,
	})
}

// mockButton handles clicks on the button mockCommand sends.
type mockButton struct{}

var _ Command = (*mockButton)(nil)

func (*mockButton) Identifier() string {
	return mockButtonIdentifier
}

func (*mockButton) Instruction() string {
	return "Click the button under /mock's message"
}

func (*mockButton) Definition() *discordgo.ApplicationCommand {
	return nil
}

func (*mockButton) Run(_ context.Context, input *interaction.Input) (*sarah.CommandResponse, error) {
	components := builder.NewComponents().
		Buttons(builder.NewButton(interaction.NewCustomID(mockButtonIdentifier), "Clicked", discordgo.SecondaryButton).Disable()).
		Build()

	return interaction.NewResponse(input, builder.UpdateMessage(&discordgo.InteractionResponseData{
		Content:    fmt.Sprintf("<@%s> clicked the button.", input.UserID()),
		Components: components,
	}))
}
