package define

import "github.com/lojasmm/definebot/internal/discord"

const (
	CommandName = "define"
	OptionTerm  = "term"
	OptionHide  = "hide"
)

// Command is the slash command surface registered with Discord.
func Command() discord.ApplicationCommand {
	return discord.ApplicationCommand{
		Name:        CommandName,
		Description: "Look up a word's definition",
		Options: []discord.ApplicationCommandOption{
			{
				Name:         OptionTerm,
				Description:  "The word to define",
				Type:         discord.OptionString,
				Required:     true,
				Autocomplete: true,
			},
			{
				Name:        OptionHide,
				Description: "Hide command output",
				Type:        discord.OptionBoolean,
			},
		},
		// guild + user installs; usable in guilds and private channels
		IntegrationTypes: []int{0, 1},
		Contexts:         []int{0, 2},
	}
}
