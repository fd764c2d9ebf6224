package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"

	interaction "github.com/oklahomer/go-sarah-interaction"
	"github.com/oklahomer/go-sarah-interaction/builder"
	"github.com/oklahomer/go-sarah-interaction/extract"
)

const (
	pingIdentifier   = "ping"
	pingPublicOption = "public"
)

type pingCommand struct {
	appCtx *Context
}

var _ Command = (*pingCommand)(nil)

func (*pingCommand) Identifier() string {
	return pingIdentifier
}

func (*pingCommand) Instruction() string {
	return "Use /ping to check whether the bot is alive"
}

func (*pingCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        pingIdentifier,
		Description: "Check the bot's latency and uptime",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        pingPublicOption,
				Description: "Show the result to everyone in the channel",
				Type:        discordgo.ApplicationCommandOptionBoolean,
			},
		},
	}
}

func (c *pingCommand) Run(_ context.Context, input *interaction.Input) (*sarah.CommandResponse, error) {
	data, err := extract.CommandData(input.Interaction())
	if err != nil {
		return nil, err
	}

	public := false
	if option, ok := extract.Option(data.Options, pingPublicOption); ok {
		public, _ = extract.Boolean(option)
	}

	response := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title: "Pong!",
				Fields: []*discordgo.MessageEmbedField{
					{
						Name:  "Uptime",
						Value: c.appCtx.Uptime().Round(time.Second).String(),
					},
					{
						Name:   "Latency",
						Value:  fmt.Sprintf("%dms", c.appCtx.HeartbeatLatency().Milliseconds()),
						Inline: true,
					},
					{
						Name:   "Go version",
						Value:  runtime.Version(),
						Inline: true,
					},
				},
			},
		},
	}
	if !public {
		response.Flags = discordgo.MessageFlagsEphemeral
	}

	return interaction.NewResponse(input, builder.SendMessage(response))
}
