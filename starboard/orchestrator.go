package starboard

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"slices"

	"starboard-bot/models"
	"starboard-bot/utils"
)

// ReactionTrigger is one reaction-added event from the gateway.
type ReactionTrigger struct {
	MessageID string
	ChannelID string
	GuildID   string
	ReactorID string
}

// Orchestrator runs the curation pipeline for incoming triggers: whitelist
// gate, threshold gate, ledger claim, payload synthesis, publish or update.
// It never terminates the process on a per-message failure; failed publishes
// leave the ledger untouched so a later trigger can retry.
type Orchestrator struct {
	platform Platform
	ledger   *Ledger
	config   *models.StarboardConfig

	// randInt picks the reply index; swapped out in tests.
	randInt func(n int) int
}

// NewOrchestrator wires the pipeline together. The ledger and config are
// owned by the caller and shared with the persistence and command layers.
func NewOrchestrator(platform Platform, ledger *Ledger, config *models.StarboardConfig) *Orchestrator {
	return &Orchestrator{
		platform: platform,
		ledger:   ledger,
		config:   config,
		randInt:  rand.Intn,
	}
}

// Ledger exposes the approval ledger for the command and persistence layers.
func (o *Orchestrator) Ledger() *Ledger {
	return o.ledger
}

// HandleReaction processes one reaction-added trigger.
func (o *Orchestrator) HandleReaction(t ReactionTrigger) {
	if !o.config.IsWhitelisted(t.ChannelID) {
		return
	}

	snapshot, err := o.platform.FetchMessage(t.ChannelID, t.MessageID)
	if err != nil {
		// Reactions to since-deleted messages are routine, not errors.
		if errors.Is(err, ErrMessageNotFound) {
			return
		}
		utils.Warn("starboard", "fetch", fmt.Sprintf("failed to fetch message %s: %v", t.MessageID, err))
		return
	}

	o.Evaluate(snapshot)
}

// Evaluate runs the per-message pipeline on an already-fetched snapshot. Both
// the event path and the scan cycle end up here.
func (o *Orchestrator) Evaluate(snapshot *models.MessageSnapshot) {
	if !MeetsThreshold(snapshot, o.config.Emoji, o.config.Threshold) {
		return
	}

	result := o.ledger.TryBeginApproval(snapshot.ID)
	switch result.State {
	case Approved:
		o.update(snapshot, result.PublicationID)
	case InFlight:
		// Another trigger is publishing this message right now.
	case Fresh:
		if o.hasAcknowledgement(snapshot) {
			// The platform-side marker survived a ledger reset; without a
			// stored publication ID there is nothing to update, so skip.
			o.ledger.AbortApproval(snapshot.ID)
			return
		}
		o.publish(snapshot)
	}
}

// hasAcknowledgement is the secondary dedup guard: it checks whether the bot's
// own acknowledgement reaction is already on the message. A failed lookup is
// treated as "not acknowledged" — an explicit choice of availability over
// strict dedup, logged rather than swallowed.
func (o *Orchestrator) hasAcknowledgement(snapshot *models.MessageSnapshot) bool {
	users, err := o.platform.ListReactionUsers(snapshot.ChannelID, snapshot.ID, o.config.ApprovedEmoji)
	if err != nil {
		utils.Warn("starboard", "ack-check",
			fmt.Sprintf("could not list %s reactions on %s, proceeding as unacknowledged: %v",
				o.config.ApprovedEmoji, snapshot.ID, err))
		return false
	}
	return slices.Contains(users, o.platform.SelfID())
}

// publish creates the starboard publication for a freshly claimed message.
func (o *Orchestrator) publish(snapshot *models.MessageSnapshot) {
	payload := Synthesize(snapshot, o.config.Emoji, o.platform.ResolveNickname)

	publicationID, err := o.platform.CreatePublication(o.config.Channel, payload)
	if err != nil {
		// Leave the ledger unclaimed so the next trigger retries.
		o.ledger.AbortApproval(snapshot.ID)
		utils.Error("starboard", "publish", fmt.Sprintf("failed to publish message %s: %v", snapshot.ID, err))
		return
	}

	// The publication exists from here on, so the approval is recorded even
	// if the acknowledgement reaction cannot be applied.
	if err := o.platform.ApplyReaction(snapshot.ChannelID, snapshot.ID, o.config.ApprovedEmoji); err != nil {
		utils.Warn("starboard", "acknowledge", fmt.Sprintf("failed to mark message %s: %v", snapshot.ID, err))
	}

	o.ledger.RecordApproval(snapshot.ID, publicationID)
	log.Printf("Promoted message %s to starboard as %s", snapshot.ID, publicationID)

	o.reply(snapshot)
}

// update refreshes an existing publication after a re-trigger, keeping the
// rendered star count current.
func (o *Orchestrator) update(snapshot *models.MessageSnapshot, publicationID string) {
	payload := Synthesize(snapshot, o.config.Emoji, o.platform.ResolveNickname)

	if err := o.platform.EditPublication(o.config.Channel, publicationID, payload); err != nil {
		utils.Warn("starboard", "update", fmt.Sprintf("failed to update publication %s: %v", publicationID, err))
	}
}

// reply posts a randomized reply from the configured pool. Disabled or empty
// pools are a no-op.
func (o *Orchestrator) reply(snapshot *models.MessageSnapshot) {
	if !o.config.Reply || len(o.config.Replies) == 0 {
		return
	}

	text := o.config.Replies[o.randInt(len(o.config.Replies))]
	if err := o.platform.SendReply(snapshot.ChannelID, snapshot.ID, text); err != nil {
		utils.Warn("starboard", "reply", fmt.Sprintf("failed to reply to message %s: %v", snapshot.ID, err))
	}
}
