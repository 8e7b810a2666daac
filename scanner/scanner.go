package scanner

import (
	"log"

	"starboard-bot/models"
	"starboard-bot/starboard"

	"github.com/bwmarrin/discordgo"
)

// RunCycle performs one full scan pass over the watched channels: high
// priority first, then medium, then low. Each channel contributes one page of
// recent messages, and every message not authored by the bot itself goes
// through the same pipeline the reaction events use. The repeating schedule
// lives in the bot scheduler; this function is a single pass.
func RunCycle(s *discordgo.Session, orch *starboard.Orchestrator, cfg *models.StarboardConfig, pageSize int) {
	log.Println("Starting scan cycle...")

	selfID := ""
	if s.State != nil && s.State.User != nil {
		selfID = s.State.User.ID
	}

	scanned := 0
	for _, tier := range models.ScanTiers {
		for _, channelID := range cfg.ChannelsByPriority(tier) {
			scanned += scanChannel(s, orch, cfg.Guild, channelID, pageSize, selfID)
		}
	}

	log.Printf("Scan cycle finished, %d messages evaluated.", scanned)
}

// scanChannel evaluates one page of recent messages in a channel. Failures
// are logged and the cycle moves on to the next channel.
func scanChannel(s *discordgo.Session, orch *starboard.Orchestrator, guildID, channelID string, pageSize int, selfID string) int {
	messages, err := s.ChannelMessages(channelID, pageSize, "", "", "")
	if err != nil {
		log.Printf("Failed to fetch messages for channel %s: %v", channelID, err)
		return 0
	}

	evaluated := 0
	for _, m := range messages {
		if m.Author != nil && m.Author.ID == selfID {
			continue
		}
		orch.Evaluate(starboard.SnapshotFromMessage(m, guildID))
		evaluated++
	}
	return evaluated
}
