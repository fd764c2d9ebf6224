package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-kasumi/retry"
	"github.com/oklahomer/go-sarah/v4"

	"github.com/oklahomer/go-sarah-interaction/builder"
)

const (
	// DISCORD is a designated sarah.BotType for Discord integration.
	DISCORD sarah.BotType = "discord"
)

const (
	syncTrial    = 3
	syncInterval = time.Second
)

// AdapterOption defines a function signature for Adapter's functional options.
type AdapterOption func(adapter *Adapter)

// WithSession creates an AdapterOption with the given *discordgo.Session.
// Use this to inject a pre-configured session.
// If this option is not given, NewAdapter creates a new session from Config.Token.
func WithSession(session *discordgo.Session) AdapterOption {
	return func(adapter *Adapter) {
		adapter.session = session
	}
}

// Adapter is a sarah.Adapter implementation for Discord interactions.
//
// An interaction is routed by its identifier: the command name for application commands
// and autocompletes, and the custom ID's prefix for message components and modals.
// Identifiers must be registered with RegisterCommand or RegisterComponent beforehand.
type Adapter struct {
	config  *Config
	session session

	mu          sync.RWMutex
	commands    map[string]*discordgo.ApplicationCommand
	components  map[string]struct{}
	commandList []string
}

var _ sarah.Adapter = (*Adapter)(nil)

// NewAdapter creates a new Adapter with the given Config and options.
func NewAdapter(config *Config, options ...AdapterOption) (*Adapter, error) {
	adapter := &Adapter{
		config:     config,
		commands:   map[string]*discordgo.ApplicationCommand{},
		components: map[string]struct{}{},
	}

	for _, opt := range options {
		opt(adapter)
	}

	if adapter.session == nil {
		if config.Token == "" {
			return nil, ErrEmptyToken
		}

		s, err := discordgo.New("Bot " + config.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		s.Identify.Intents = config.Intents
		adapter.session = s
	}

	return adapter, nil
}

// BotType returns a designated BotType for Discord integration.
func (a *Adapter) BotType() sarah.BotType {
	return DISCORD
}

// RegisterCommand registers the application command definition.
// Interactions with the command's name are routed to the sarah command with the same identifier.
// A definition with an already registered name replaces the previous one.
func (a *Adapter) RegisterCommand(definition *discordgo.ApplicationCommand) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.commands[definition.Name]; !ok {
		a.commandList = append(a.commandList, definition.Name)
	}
	a.commands[definition.Name] = definition
}

// RegisterComponent registers the identifier of message components and modals.
// See NewCustomID.
func (a *Adapter) RegisterComponent(identifier string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.components[identifier] = struct{}{}
}

// Commands returns the registered application command definitions in registration order.
func (a *Adapter) Commands() []*discordgo.ApplicationCommand {
	a.mu.RLock()
	defer a.mu.RUnlock()

	commands := make([]*discordgo.ApplicationCommand, 0, len(a.commandList))
	for _, name := range a.commandList {
		commands = append(commands, a.commands[name])
	}
	return commands
}

// Registered reports whether any command or component is registered under the identifier.
func (a *Adapter) Registered(identifier string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if _, ok := a.commands[identifier]; ok {
		return true
	}
	_, ok := a.components[identifier]
	return ok
}

// SyncCommands overwrites the application's commands with the registered definitions.
// Commands are registered to Config.GuildID when it is set, or globally otherwise.
func (a *Adapter) SyncCommands(applicationID string) error {
	return a.overwriteCommands(applicationID, a.Commands())
}

// ClearCommands removes all of the application's commands.
func (a *Adapter) ClearCommands(applicationID string) error {
	return a.overwriteCommands(applicationID, []*discordgo.ApplicationCommand{})
}

func (a *Adapter) overwriteCommands(applicationID string, commands []*discordgo.ApplicationCommand) error {
	if applicationID == "" {
		return ErrEmptyApplicationID
	}

	err := retry.WithInterval(syncTrial, func() error {
		_, err := a.session.ApplicationCommandBulkOverwrite(applicationID, a.config.GuildID, commands)
		return err
	}, syncInterval)
	if err != nil {
		return fmt.Errorf("failed to overwrite %d application commands: %w", len(commands), err)
	}

	logger.Infof("Overwrote %d application commands for application %s", len(commands), applicationID)
	return nil
}

// Run establishes a connection with Discord and blocks until the context is canceled.
//
// Each interaction is handled in its own goroutine by discordgo,
// converted to *Input and passed to enqueueInput.
func (a *Adapter) Run(ctx context.Context, enqueueInput func(sarah.Input) error, notifyErr func(error)) {
	a.session.AddHandler(func(_ *discordgo.Session, event *discordgo.InteractionCreate) {
		a.handleInteraction(event, enqueueInput)
	})

	a.session.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		a.handleReady(ready, notifyErr)
	})

	err := a.session.Open()
	if err != nil {
		notifyErr(sarah.NewBotNonContinuableError(fmt.Sprintf("failed to open Discord session: %s", err.Error())))
		return
	}

	// Block until the context is canceled.
	<-ctx.Done()

	if closeErr := a.session.Close(); closeErr != nil {
		logger.Errorf("Failed to close Discord session: %+v", closeErr)
	}
}

func (a *Adapter) handleReady(ready *discordgo.Ready, notifyErr func(error)) {
	if ready.User != nil {
		logger.Infof("Connected to Discord as %s", ready.User.Username)
	}

	if !a.config.SyncCommands {
		return
	}

	applicationID := a.config.ApplicationID
	if applicationID == "" && ready.Application != nil {
		applicationID = ready.Application.ID
	}

	if err := a.SyncCommands(applicationID); err != nil {
		notifyErr(sarah.NewBotNonContinuableError(fmt.Sprintf("failed to sync application commands: %s", err.Error())))
	}
}

// handleInteraction converts the interaction to sarah.Input and routes it to enqueueInput.
func (a *Adapter) handleInteraction(event *discordgo.InteractionCreate, enqueueInput func(sarah.Input) error) {
	if event == nil || event.Interaction == nil || event.Type == discordgo.InteractionPing {
		return
	}

	var options []HandleOption
	if a.config.TrackLastMessage {
		options = append(options, WithLastMessageTracking())
	}
	handle := NewHandle(a.session, event.Interaction, options...)

	input, err := InteractionToInput(event, handle)
	if err != nil {
		if errors.Is(err, ErrUnknownInteraction) {
			logger.Debugf("Skipping interaction %s: %+v", event.ID, err)
			return
		}
		logger.Warnf("Failed to read interaction %s: %+v", event.ID, err)
		a.replyError(handle)
		return
	}
	input.errorReply = a.config.ErrorReply

	identifier := input.Identifier()
	if a.config.HelpCommand != "" && identifier == a.config.HelpCommand {
		if err := enqueueInput(sarah.NewHelpInput(input)); err != nil {
			logger.Errorf("Failed to enqueue help input: %+v", err)
			a.replyError(handle)
		}
		return
	}

	if !a.Registered(identifier) {
		logger.Warnf("Received interaction with unknown identifier %q", identifier)
		a.replyError(handle)
		return
	}

	if err := enqueueInput(input); err != nil {
		logger.Errorf("Failed to enqueue input: %+v", err)
		a.replyError(handle)
	}
}

func (a *Adapter) replyError(handle *Handle) {
	if err := replyError(handle, a.config.ErrorReply); err != nil {
		logger.Errorf("Failed to send error reply: %+v", err)
	}
}

// replyError answers the interaction with an ephemeral message.
// Autocomplete interactions can only be answered with choices, so they get an empty list.
func replyError(handle *Handle, reply string) error {
	if handle.Interaction().Type == discordgo.InteractionApplicationCommandAutocomplete {
		_, err := handle.Respond(builder.Autocomplete())
		return err
	}

	_, err := handle.Respond(builder.SendMessage(builder.Ephemeral(reply)))
	return err
}

// SendMessage responds to the interaction the output is destined to.
//
// The content can be *discordgo.InteractionResponse, *discordgo.InteractionResponseData,
// string or *sarah.CommandHelps. Anything but *discordgo.InteractionResponse is sent as a message.
func (a *Adapter) SendMessage(_ context.Context, output sarah.Output) {
	handle, ok := output.Destination().(*Handle)
	if !ok {
		logger.Errorf("Destination is not instance of *Handle. %#v.", output.Destination())
		return
	}

	var response *discordgo.InteractionResponse
	switch content := output.Content().(type) {
	case *discordgo.InteractionResponse:
		response = content

	case *discordgo.InteractionResponseData:
		response = builder.SendMessage(content)

	case string:
		response = builder.SendMessage(&discordgo.InteractionResponseData{Content: content})

	case *sarah.CommandHelps:
		lines := make([]string, 0, len(*content))
		for _, h := range *content {
			lines = append(lines, fmt.Sprintf("**%s**: %s", h.Identifier, h.Instruction))
		}
		response = builder.SendMessage(builder.Ephemeral(strings.Join(lines, "\n")))

	default:
		logger.Warnf("Unexpected output %#v", output)
		return
	}

	if _, err := handle.Respond(response); err != nil {
		logger.Errorf("Failed to respond to interaction %s: %+v", handle.Interaction().ID, err)
	}
}
