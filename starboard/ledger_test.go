package starboard

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestTryBeginApprovalFreshOnce(t *testing.T) {
	l := NewLedger(nil)

	if res := l.TryBeginApproval("m1"); res.State != Fresh {
		t.Fatalf("first claim should be Fresh, got %v", res.State)
	}
	if res := l.TryBeginApproval("m1"); res.State != InFlight {
		t.Errorf("second claim before recording should be InFlight, got %v", res.State)
	}

	l.RecordApproval("m1", "p1")
	res := l.TryBeginApproval("m1")
	if res.State != Approved {
		t.Fatalf("claim after recording should be Approved, got %v", res.State)
	}
	if res.PublicationID != "p1" {
		t.Errorf("expected publication p1, got %q", res.PublicationID)
	}
}

func TestTryBeginApprovalConcurrent(t *testing.T) {
	l := NewLedger(nil)

	var fresh atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryBeginApproval("m1").State == Fresh {
				fresh.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := fresh.Load(); got != 1 {
		t.Errorf("expected Fresh exactly once across concurrent callers, got %d", got)
	}
}

func TestAbortApprovalAllowsRetry(t *testing.T) {
	l := NewLedger(nil)

	if res := l.TryBeginApproval("m1"); res.State != Fresh {
		t.Fatalf("expected Fresh, got %v", res.State)
	}
	l.AbortApproval("m1")

	if res := l.TryBeginApproval("m1"); res.State != Fresh {
		t.Errorf("claim after abort should be Fresh again, got %v", res.State)
	}
}

func TestLedgerSeed(t *testing.T) {
	l := NewLedger(map[string]string{"m1": "p1", "m2": "p2"})

	if l.Len() != 2 {
		t.Fatalf("expected 2 seeded entries, got %d", l.Len())
	}
	res := l.TryBeginApproval("m1")
	if res.State != Approved || res.PublicationID != "p1" {
		t.Errorf("seeded entry should be Approved with p1, got %v %q", res.State, res.PublicationID)
	}
}

func TestForgetAndReset(t *testing.T) {
	l := NewLedger(map[string]string{"m1": "p1", "m2": "p2"})

	if !l.Forget("m1") {
		t.Error("forgetting a present entry should report true")
	}
	if l.Forget("m1") {
		t.Error("forgetting an absent entry should report false")
	}
	if res := l.TryBeginApproval("m1"); res.State != Fresh {
		t.Errorf("forgotten message should be claimable again, got %v", res.State)
	}
	l.AbortApproval("m1")

	if n := l.Reset(); n != 1 {
		t.Errorf("expected 1 entry dropped by reset, got %d", n)
	}
	if l.Len() != 0 {
		t.Errorf("ledger should be empty after reset, has %d", l.Len())
	}
}

func TestEntriesIsACopy(t *testing.T) {
	l := NewLedger(map[string]string{"m1": "p1"})

	entries := l.Entries()
	entries["m2"] = "p2"

	if l.Len() != 1 {
		t.Error("mutating the Entries copy must not affect the ledger")
	}
}
