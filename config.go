package interaction

import "github.com/bwmarrin/discordgo"

// DefaultErrorReply is the message sent when an interaction can not be handled.
const DefaultErrorReply = "Something went wrong, I reported the error to the devs. " +
	"Hopefully they'll look into it soon! Sorry for the inconvenience."

// Config contains configuration variables for the interaction Adapter.
type Config struct {
	// Token is the Discord bot token used for authentication.
	Token string `json:"token" yaml:"token"`

	// ApplicationID is the application the commands are registered to.
	// When empty, the ID delivered with the Ready event is used.
	ApplicationID string `json:"application_id" yaml:"application_id"`

	// GuildID limits command registration to a single guild.
	// Commands are registered globally when this is empty.
	GuildID string `json:"guild_id" yaml:"guild_id"`

	// HelpCommand is the identifier that triggers help.
	// An interaction with this identifier is converted to sarah.HelpInput.
	HelpCommand string `json:"help_command" yaml:"help_command"`

	// Intents declares the Gateway Intents the bot requires.
	// Interactions are delivered regardless of intents.
	Intents discordgo.Intent `json:"intents" yaml:"intents"`

	// SyncCommands overwrites the registered application commands when the session is ready.
	SyncCommands bool `json:"sync_commands" yaml:"sync_commands"`

	// TrackLastMessage makes every Handle remember the last followup message.
	// See WithLastMessageTracking.
	TrackLastMessage bool `json:"track_last_message" yaml:"track_last_message"`

	// ErrorReply is the ephemeral message sent when an interaction can not be handled.
	ErrorReply string `json:"error_reply" yaml:"error_reply"`
}

// NewConfig creates and returns a new Config instance with default settings.
// Token is empty and must be set before use.
func NewConfig() *Config {
	return &Config{
		Token:            "",
		ApplicationID:    "",
		GuildID:          "",
		HelpCommand:      "help",
		Intents:          discordgo.IntentsNone,
		SyncCommands:     true,
		TrackLastMessage: false,
		ErrorReply:       DefaultErrorReply,
	}
}
