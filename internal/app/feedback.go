package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"

	interaction "github.com/oklahomer/go-sarah-interaction"
	"github.com/oklahomer/go-sarah-interaction/builder"
	"github.com/oklahomer/go-sarah-interaction/extract"
)

const (
	feedbackIdentifier      = "feedback"
	feedbackModalIdentifier = "feedback-modal"
	feedbackTextInputID     = "feedback-text"
	feedbackMaxLength       = 1000
)

// ErrEmptyFeedback is returned when a feedback modal is submitted without text.
var ErrEmptyFeedback = errors.New("feedback text is missing")

// feedbackCommand shows a modal asking for feedback.
type feedbackCommand struct{}

var _ Command = (*feedbackCommand)(nil)

func (*feedbackCommand) Identifier() string {
	return feedbackIdentifier
}

func (*feedbackCommand) Instruction() string {
	return "Use /feedback to send feedback to the developers"
}

func (*feedbackCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        feedbackIdentifier,
		Description: "Send feedback to the developers",
	}
}

func (*feedbackCommand) Run(_ context.Context, input *interaction.Input) (*sarah.CommandResponse, error) {
	modal := builder.ShowModal("Feedback", interaction.NewCustomID(feedbackModalIdentifier)).
		TextInput(builder.NewTextInput("What do you think about the bot?", feedbackTextInputID).
			Paragraph().
			Require().
			MaxLength(feedbackMaxLength)).
		Build()

	return interaction.NewResponse(input, modal)
}

// feedbackModal logs submitted feedback and posts it to the log channel.
type feedbackModal struct {
	appCtx *Context
}

var _ Command = (*feedbackModal)(nil)

func (*feedbackModal) Identifier() string {
	return feedbackModalIdentifier
}

func (*feedbackModal) Instruction() string {
	return "Submit the modal /feedback shows"
}

func (*feedbackModal) Definition() *discordgo.ApplicationCommand {
	return nil
}

func (c *feedbackModal) Run(_ context.Context, input *interaction.Input) (*sarah.CommandResponse, error) {
	data, err := extract.ModalData(input.Interaction())
	if err != nil {
		return nil, err
	}

	text, ok := extract.ModalValue(data, feedbackTextInputID)
	if !ok {
		return nil, ErrEmptyFeedback
	}

	// The log keeps the feedback when no log channel is configured.
	c.appCtx.Logger.Info("received feedback", "user", input.UserID(), "text", text)

	if err := c.appCtx.Log(fmt.Sprintf("Feedback from <@%s>:\n%s", input.UserID(), text)); err != nil {
		return nil, err
	}

	return interaction.NewResponse(input, builder.SendMessage(builder.Ephemeral("Thanks for the feedback!")))
}
