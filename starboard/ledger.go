package starboard

import (
	"sync"
)

// ApprovalState is the outcome of TryBeginApproval.
type ApprovalState int

const (
	// Fresh means the caller won the right to publish this message. It is
	// returned exactly once per message ID until AbortApproval is called.
	Fresh ApprovalState = iota
	// InFlight means another caller is publishing this message right now.
	InFlight
	// Approved means the message already has a publication.
	Approved
)

// BeginResult is what TryBeginApproval reports back.
type BeginResult struct {
	State         ApprovalState
	PublicationID string // set when State == Approved
}

// Ledger maps source message IDs to their starboard publication IDs and
// enforces at-most-once promotion. The check-then-insert sequence runs under a
// single mutex, so two concurrent triggers for the same message can never both
// observe Fresh. Entries are only removed by an administrative reset.
type Ledger struct {
	mu       sync.Mutex
	approved map[string]string   // message ID -> publication ID
	pending  map[string]struct{} // message IDs with a publish in flight
}

// NewLedger creates a ledger seeded with previously persisted approvals.
// A nil seed starts empty.
func NewLedger(seed map[string]string) *Ledger {
	approved := make(map[string]string, len(seed))
	for id, pub := range seed {
		approved[id] = pub
	}
	return &Ledger{
		approved: approved,
		pending:  make(map[string]struct{}),
	}
}

// TryBeginApproval claims a message for publication. A Fresh result must be
// followed by RecordApproval on success or AbortApproval on failure.
func (l *Ledger) TryBeginApproval(messageID string) BeginResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	if pub, ok := l.approved[messageID]; ok {
		return BeginResult{State: Approved, PublicationID: pub}
	}
	if _, ok := l.pending[messageID]; ok {
		return BeginResult{State: InFlight}
	}
	l.pending[messageID] = struct{}{}
	return BeginResult{State: Fresh}
}

// RecordApproval completes an in-flight approval. Once it returns, every
// later TryBeginApproval for the message observes Approved.
func (l *Ledger) RecordApproval(messageID, publicationID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.pending, messageID)
	l.approved[messageID] = publicationID
}

// AbortApproval rolls back an in-flight claim after a failed publish so a
// later trigger can retry.
func (l *Ledger) AbortApproval(messageID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.pending, messageID)
}

// Forget removes one approval. This is the administrative reset path; the
// pipeline itself never deletes entries.
func (l *Ledger) Forget(messageID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.approved[messageID]
	delete(l.approved, messageID)
	return ok
}

// Reset wipes the whole ledger and returns how many entries were dropped.
func (l *Ledger) Reset() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.approved)
	l.approved = make(map[string]string)
	return n
}

// Entries returns a copy of the approved map for persistence.
func (l *Ledger) Entries() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]string, len(l.approved))
	for id, pub := range l.approved {
		out[id] = pub
	}
	return out
}

// Len returns the number of approved entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.approved)
}
