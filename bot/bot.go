package bot

import (
	"fmt"
	"log"

	"starboard-bot/command"
	"starboard-bot/config"
	"starboard-bot/starboard"
	"starboard-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Version is shown in the bot's presence.
const Version = "1.4.2"

// Bot encapsulates the session, settings and the curation pipeline.
type Bot struct {
	Session      *discordgo.Session
	Settings     *config.Settings
	Orchestrator *starboard.Orchestrator
}

// New creates a Bot from validated settings. The session is configured but
// not yet opened.
func New(settings *config.Settings) (*Bot, error) {
	dg, err := discordgo.New("Bot " + settings.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuilds

	return &Bot{
		Session:  dg,
		Settings: settings,
	}, nil
}

// Start registers handlers, opens the session, registers the slash commands
// and kicks off the scan scheduler.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session)

	for _, def := range command.GetCommandDefinitions() {
		if _, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", def); err != nil {
			log.Printf("Cannot create '%v' command: %v", def.Name, err)
		}
	}

	startScheduler(b)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the scheduler and the session.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}
