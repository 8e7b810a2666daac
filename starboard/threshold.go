package starboard

import "starboard-bot/models"

// MeetsThreshold reports whether a message has collected enough endorsement
// reactions to be promoted. The endorsement emoji must be present in the
// message's reaction tally: a message that nobody has reacted to with the
// emoji never qualifies, even at threshold 0. Without that rule a zero
// threshold would promote every message in history.
func MeetsThreshold(m *models.MessageSnapshot, emoji string, threshold int) bool {
	count, present := m.ReactionTally(emoji)
	if !present {
		return false
	}
	return count >= threshold
}
