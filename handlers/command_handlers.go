package handlers

import (
	"fmt"
	"log"

	"starboard-bot/bot"
	"starboard-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// CommandDispatcher routes slash commands to their handlers. The ledger
// commands are admin-only; the ledger itself is only ever shrunk from here.
func CommandDispatcher(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		auth, err := utils.NewAuth()
		if err != nil {
			log.Printf("Failed to load command auth config: %v", err)
			respond(s, i, "Command configuration is broken, check the logs.")
			return
		}

		switch i.ApplicationCommandData().Name {
		case "ping":
			respond(s, i, "Pong!")
		case "starboard-reset":
			if !auth.CheckPermission(i, "admin") {
				respond(s, i, "You are not allowed to reset the starboard ledger.")
				return
			}
			handleReset(b, s, i)
		case "starboard-stats":
			if !auth.CheckPermission(i, "admin") {
				respond(s, i, "You are not allowed to view starboard stats.")
				return
			}
			handleStats(b, s, i)
		}
	}
}

// handleReset forgets one approval, or wipes the ledger when no message ID is
// given. Forgotten messages become eligible for promotion again.
func handleReset(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	ledger := b.Orchestrator.Ledger()

	var messageID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "message_id" {
			messageID = opt.StringValue()
		}
	}

	if messageID == "" {
		n := ledger.Reset()
		log.Printf("Ledger wiped by %s, %d entries removed", callerID(i), n)
		respond(s, i, fmt.Sprintf("Ledger wiped, %d entries removed.", n))
		return
	}

	if ledger.Forget(messageID) {
		log.Printf("Ledger entry %s removed by %s", messageID, callerID(i))
		respond(s, i, fmt.Sprintf("Message %s forgotten, it can be promoted again.", messageID))
	} else {
		respond(s, i, fmt.Sprintf("Message %s is not in the ledger.", messageID))
	}
}

// handleStats reports the ledger size and the active threshold.
func handleStats(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg := b.Settings.Starboard
	respond(s, i, fmt.Sprintf("Approved messages: %d\nThreshold: %d %s\nTarget channel: <#%s>",
		b.Orchestrator.Ledger().Len(), cfg.Threshold, cfg.Emoji, cfg.Channel))
}

func callerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	return "unknown"
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
