package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// OptionPathSeparator separates subcommand group, subcommand and option names in an option path.
const OptionPathSeparator = "/"

// Option returns the option at the given path.
//
// The path is either an option name, "subcommand/option" or "group/subcommand/option".
// A subcommand or subcommand group itself can be looked up by its plain name.
// false is returned when any part of the path is missing or is not of the expected kind.
func Option(options []*discordgo.ApplicationCommandInteractionDataOption, path string) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	name, subcommand, group := parseOptionPath(path)

	if group != "" {
		groupOption, ok := findOption(options, group)
		if !ok {
			return nil, false
		}
		options, ok = SubcommandGroup(groupOption)
		if !ok {
			return nil, false
		}
	}

	if subcommand != "" {
		subcommandOption, ok := findOption(options, subcommand)
		if !ok {
			return nil, false
		}
		options, ok = Subcommand(subcommandOption)
		if !ok {
			return nil, false
		}
	}

	return findOption(options, name)
}

// parseOptionPath reads the path from the right: option, then subcommand, then group.
func parseOptionPath(path string) (name string, subcommand string, group string) {
	parts := strings.Split(path, OptionPathSeparator)
	last := len(parts) - 1

	name = parts[last]
	if last >= 1 {
		subcommand = parts[last-1]
	}
	if last >= 2 {
		group = parts[last-2]
	}
	return name, subcommand, group
}

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, option := range options {
		if option != nil && option.Name == name {
			return option, true
		}
	}
	return nil, false
}

// String returns the value of a string option.
func String(option *discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	return stringValue(option, discordgo.ApplicationCommandOptionString)
}

// Integer returns the value of an integer option.
func Integer(option *discordgo.ApplicationCommandInteractionDataOption) (int64, bool) {
	if !isType(option, discordgo.ApplicationCommandOptionInteger) {
		return 0, false
	}

	// JSON numbers are decoded as float64.
	switch v := option.Value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// Number returns the value of a number option.
func Number(option *discordgo.ApplicationCommandInteractionDataOption) (float64, bool) {
	if !isType(option, discordgo.ApplicationCommandOptionNumber) {
		return 0, false
	}
	v, ok := option.Value.(float64)
	return v, ok
}

// Boolean returns the value of a boolean option.
func Boolean(option *discordgo.ApplicationCommandInteractionDataOption) (bool, bool) {
	if !isType(option, discordgo.ApplicationCommandOptionBoolean) {
		return false, false
	}
	v, ok := option.Value.(bool)
	return v, ok
}

// User returns the user ID of a user option.
func User(option *discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	return stringValue(option, discordgo.ApplicationCommandOptionUser)
}

// Channel returns the channel ID of a channel option.
func Channel(option *discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	return stringValue(option, discordgo.ApplicationCommandOptionChannel)
}

// Role returns the role ID of a role option.
func Role(option *discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	return stringValue(option, discordgo.ApplicationCommandOptionRole)
}

// Mentionable returns the user or role ID of a mentionable option.
func Mentionable(option *discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	return stringValue(option, discordgo.ApplicationCommandOptionMentionable)
}

// Attachment returns the attachment ID of an attachment option.
// The attachment itself is found in the command data's resolved attachments.
func Attachment(option *discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	return stringValue(option, discordgo.ApplicationCommandOptionAttachment)
}

// Subcommand returns the options of a subcommand option.
func Subcommand(option *discordgo.ApplicationCommandInteractionDataOption) ([]*discordgo.ApplicationCommandInteractionDataOption, bool) {
	if !isType(option, discordgo.ApplicationCommandOptionSubCommand) {
		return nil, false
	}
	return option.Options, true
}

// SubcommandGroup returns the subcommands of a subcommand group option.
func SubcommandGroup(option *discordgo.ApplicationCommandInteractionDataOption) ([]*discordgo.ApplicationCommandInteractionDataOption, bool) {
	if !isType(option, discordgo.ApplicationCommandOptionSubCommandGroup) {
		return nil, false
	}
	return option.Options, true
}

// Focused returns the partial input and the type of the option being autocompleted.
// false is returned when the option is not focused.
func Focused(option *discordgo.ApplicationCommandInteractionDataOption) (string, discordgo.ApplicationCommandOptionType, bool) {
	if option == nil || !option.Focused {
		return "", 0, false
	}

	switch v := option.Value.(type) {
	case string:
		return v, option.Type, true
	case nil:
		return "", option.Type, true
	case float64:
		// Integer and number options deliver the partial input as a JSON number.
		return strconv.FormatFloat(v, 'f', -1, 64), option.Type, true
	default:
		return fmt.Sprint(v), option.Type, true
	}
}

func stringValue(option *discordgo.ApplicationCommandInteractionDataOption, optionType discordgo.ApplicationCommandOptionType) (string, bool) {
	if !isType(option, optionType) {
		return "", false
	}
	v, ok := option.Value.(string)
	return v, ok
}

func isType(option *discordgo.ApplicationCommandInteractionDataOption, optionType discordgo.ApplicationCommandOptionType) bool {
	return option != nil && option.Type == optionType
}
