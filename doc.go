// Package interaction provides a sarah.Adapter implementation for Discord interactions.
//
// This package bridges go-sarah's bot framework with Discord's interaction API
// using discordgo. Slash commands, message components and modal submissions are
// converted into sarah.Input and routed to the command registered under the
// interaction's identifier. Each interaction carries a Handle that tracks whether
// the interaction was already responded to, so a command can reply several times
// and the later replies turn into followup messages.
//
// Response and component builders live in the builder package, and helpers to
// read interaction payloads without panicking live in the extract package.
package interaction
