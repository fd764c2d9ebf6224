package builder

import (
	"github.com/bwmarrin/discordgo"
)

// ButtonBuilder builds a button.
type ButtonBuilder struct {
	button discordgo.Button
}

// NewButton starts a button that creates an interaction with the given custom ID when clicked.
func NewButton(customID string, label string, style discordgo.ButtonStyle) *ButtonBuilder {
	return &ButtonBuilder{
		button: discordgo.Button{
			CustomID: customID,
			Label:    label,
			Style:    style,
		},
	}
}

// NewLinkButton starts a button that opens the given URL.
// Link buttons never create interactions.
func NewLinkButton(url string, label string) *ButtonBuilder {
	return &ButtonBuilder{
		button: discordgo.Button{
			URL:   url,
			Label: label,
			Style: discordgo.LinkButton,
		},
	}
}

// Disable makes the button unclickable.
func (b *ButtonBuilder) Disable() *ButtonBuilder {
	b.button.Disabled = true
	return b
}

// CustomEmoji sets a guild emoji on the button.
func (b *ButtonBuilder) CustomEmoji(id string, name string, animated bool) *ButtonBuilder {
	b.button.Emoji = customEmoji(id, name, animated)
	return b
}

// UnicodeEmoji sets a unicode emoji on the button.
func (b *ButtonBuilder) UnicodeEmoji(emoji string) *ButtonBuilder {
	b.button.Emoji = unicodeEmoji(emoji)
	return b
}

func (b *ButtonBuilder) Build() discordgo.Button {
	return b.button
}

// SelectMenuOptionBuilder builds an option of a select menu.
type SelectMenuOptionBuilder struct {
	option discordgo.SelectMenuOption
}

func NewSelectMenuOption(label string, value string) *SelectMenuOptionBuilder {
	return &SelectMenuOptionBuilder{
		option: discordgo.SelectMenuOption{
			Label: label,
			Value: value,
		},
	}
}

// Default selects the option by default.
func (b *SelectMenuOptionBuilder) Default() *SelectMenuOptionBuilder {
	b.option.Default = true
	return b
}

func (b *SelectMenuOptionBuilder) Description(description string) *SelectMenuOptionBuilder {
	b.option.Description = description
	return b
}

func (b *SelectMenuOptionBuilder) CustomEmoji(id string, name string, animated bool) *SelectMenuOptionBuilder {
	b.option.Emoji = customEmoji(id, name, animated)
	return b
}

func (b *SelectMenuOptionBuilder) UnicodeEmoji(emoji string) *SelectMenuOptionBuilder {
	b.option.Emoji = unicodeEmoji(emoji)
	return b
}

func (b *SelectMenuOptionBuilder) Build() discordgo.SelectMenuOption {
	return b.option
}

// SelectMenuBuilder builds a string select menu.
type SelectMenuBuilder struct {
	menu discordgo.SelectMenu
}

// NewSelectMenu starts a select menu with the given options.
func NewSelectMenu(customID string, options ...*SelectMenuOptionBuilder) *SelectMenuBuilder {
	menuOptions := make([]discordgo.SelectMenuOption, 0, len(options))
	for _, option := range options {
		menuOptions = append(menuOptions, option.Build())
	}

	return &SelectMenuBuilder{
		menu: discordgo.SelectMenu{
			MenuType: discordgo.StringSelectMenu,
			CustomID: customID,
			Options:  menuOptions,
		},
	}
}

func (b *SelectMenuBuilder) Disable() *SelectMenuBuilder {
	b.menu.Disabled = true
	return b
}

// MaxValues sets how many options can be selected at most.
func (b *SelectMenuBuilder) MaxValues(max int) *SelectMenuBuilder {
	b.menu.MaxValues = max
	return b
}

// MinValues sets how many options must be selected at least.
// Zero is a valid value, so the field is a pointer in discordgo.
func (b *SelectMenuBuilder) MinValues(min int) *SelectMenuBuilder {
	b.menu.MinValues = &min
	return b
}

func (b *SelectMenuBuilder) Placeholder(placeholder string) *SelectMenuBuilder {
	b.menu.Placeholder = placeholder
	return b
}

func (b *SelectMenuBuilder) Build() discordgo.SelectMenu {
	return b.menu
}

// TextInputBuilder builds a text input of a modal.
type TextInputBuilder struct {
	input discordgo.TextInput
}

// NewTextInput starts a single line text input.
func NewTextInput(label string, customID string) *TextInputBuilder {
	return &TextInputBuilder{
		input: discordgo.TextInput{
			Label:    label,
			CustomID: customID,
			Style:    discordgo.TextInputShort,
		},
	}
}

func (b *TextInputBuilder) MaxLength(max int) *TextInputBuilder {
	b.input.MaxLength = max
	return b
}

func (b *TextInputBuilder) MinLength(min int) *TextInputBuilder {
	b.input.MinLength = min
	return b
}

func (b *TextInputBuilder) Placeholder(placeholder string) *TextInputBuilder {
	b.input.Placeholder = placeholder
	return b
}

// Require makes the input mandatory.
func (b *TextInputBuilder) Require() *TextInputBuilder {
	b.input.Required = true
	return b
}

// Paragraph turns the input into a multi line one.
func (b *TextInputBuilder) Paragraph() *TextInputBuilder {
	b.input.Style = discordgo.TextInputParagraph
	return b
}

// Value pre-fills the input.
func (b *TextInputBuilder) Value(value string) *TextInputBuilder {
	b.input.Value = value
	return b
}

func (b *TextInputBuilder) Build() discordgo.TextInput {
	return b.input
}

// ComponentsBuilder lays out components in action rows.
type ComponentsBuilder struct {
	rows []discordgo.MessageComponent
}

func NewComponents() *ComponentsBuilder {
	return &ComponentsBuilder{}
}

// Buttons adds the given buttons in one row.
// Discord allows up to five buttons per row.
func (b *ComponentsBuilder) Buttons(buttons ...*ButtonBuilder) *ComponentsBuilder {
	components := make([]discordgo.MessageComponent, 0, len(buttons))
	for _, button := range buttons {
		components = append(components, button.Build())
	}

	b.rows = append(b.rows, discordgo.ActionsRow{Components: components})
	return b
}

// SelectMenu adds the given select menu in its own row.
func (b *ComponentsBuilder) SelectMenu(menu *SelectMenuBuilder) *ComponentsBuilder {
	b.rows = append(b.rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{menu.Build()},
	})
	return b
}

func (b *ComponentsBuilder) Build() []discordgo.MessageComponent {
	return b.rows
}

func customEmoji(id string, name string, animated bool) *discordgo.ComponentEmoji {
	return &discordgo.ComponentEmoji{
		ID:       id,
		Name:     name,
		Animated: animated,
	}
}

func unicodeEmoji(emoji string) *discordgo.ComponentEmoji {
	return &discordgo.ComponentEmoji{Name: emoji}
}
