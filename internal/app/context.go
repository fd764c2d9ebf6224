package app

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	interaction "github.com/oklahomer/go-sarah-interaction"
)

// Discord rejects messages with more characters than this.
const maxMessageLength = 2000

// logSink is the part of discordgo.Session the Context uses.
type logSink interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	HeartbeatLatency() time.Duration
}

var _ logSink = (*discordgo.Session)(nil)

// Context is the state shared by every command. It is created once and passed around by pointer.
type Context struct {
	Adapter *interaction.Adapter
	Logger  *slog.Logger
	Metrics *Metrics
	Config  *Configuration

	session   logSink
	startedAt time.Time
}

func NewContext(adapter *interaction.Adapter, session logSink, logger *slog.Logger, metrics *Metrics, config *Configuration) *Context {
	return &Context{
		Adapter:   adapter,
		Logger:    logger,
		Metrics:   metrics,
		Config:    config,
		session:   session,
		startedAt: time.Now(),
	}
}

// LogErr logs the error and reports it to the log channel when one is configured.
func (c *Context) LogErr(err error) {
	c.Logger.Error("interaction failed", "error", err)

	if err := c.Log(fmt.Sprintf("%+v", err)); err != nil {
		c.Logger.Error("failed to report error to log channel", "error", err)
	}
}

// Log posts the message to the log channel.
// Nothing is posted when no log channel is configured.
func (c *Context) Log(message string) error {
	if c.Config.LogChannelID == "" {
		return nil
	}

	if utf8.RuneCountInString(message) > maxMessageLength {
		message = string([]rune(message)[:maxMessageLength])
	}

	_, err := c.session.ChannelMessageSend(c.Config.LogChannelID, message)
	if err != nil {
		return fmt.Errorf("failed to post to log channel %s: %w", c.Config.LogChannelID, err)
	}
	return nil
}

func (c *Context) Uptime() time.Duration {
	return time.Since(c.startedAt)
}

func (c *Context) HeartbeatLatency() time.Duration {
	return c.session.HeartbeatLatency()
}
