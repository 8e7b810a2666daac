package command

import "github.com/bwmarrin/discordgo"

// PingCommand defines the structure for the /ping command.
type PingCommand struct{}

// Definition returns the application command definition.
func (c *PingCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Responds with Pong!",
	}
}

// ResetCommand defines the structure for the /starboard-reset command, the
// administrative path for removing ledger entries.
type ResetCommand struct{}

// Definition returns the application command definition.
func (c *ResetCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "starboard-reset",
		Description: "Forget an approved message so it can be promoted again",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "message_id",
				Description: "The source message to forget (omit to wipe the whole ledger)",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    false,
			},
		},
	}
}

// StatsCommand defines the structure for the /starboard-stats command.
type StatsCommand struct{}

// Definition returns the application command definition.
func (c *StatsCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "starboard-stats",
		Description: "Show ledger size and threshold settings",
	}
}
