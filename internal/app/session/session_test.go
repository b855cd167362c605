package session

import (
	"sync"
	"testing"

	"github.com/alqalam/college-backend/internal/app/models"
)

func TestOpenAndGet(t *testing.T) {
	store := NewStore()
	sess := store.Open(models.Program{ProgramKey: "pharmacy"})

	if sess.ID == "" {
		t.Fatal("session id is empty")
	}
	if got := store.Get(sess.ID); got != sess {
		t.Fatalf("Get returned %v, want the opened session", got)
	}
	if snap := sess.Snapshot(); snap.ProgramKey != "pharmacy" {
		t.Errorf("Snapshot().ProgramKey = %q, want %q", snap.ProgramKey, "pharmacy")
	}
}

func TestOpenSameProgramTwice(t *testing.T) {
	store := NewStore()
	first := store.Open(models.Program{ProgramKey: "pharmacy"})
	second := store.Open(models.Program{ProgramKey: "pharmacy"})

	if first.ID == second.ID {
		t.Fatal("two opens produced the same session id")
	}

	first.Apply(func(p models.Program) models.Program {
		p.TitleAr = "edited"
		return p
	})
	if second.Snapshot().TitleAr == "edited" {
		t.Error("edit in one draft leaked into the other")
	}
}

func TestGetUnknownID(t *testing.T) {
	store := NewStore()
	if got := store.Get("nope"); got != nil {
		t.Fatalf("Get(unknown) = %v, want nil", got)
	}
}

func TestDiscard(t *testing.T) {
	store := NewStore()
	sess := store.Open(models.Program{ProgramKey: "nursing"})

	store.Discard(sess.ID)
	if got := store.Get(sess.ID); got != nil {
		t.Fatalf("Get after Discard = %v, want nil", got)
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}

	// Discarding again is a no-op
	store.Discard(sess.ID)
}

func TestApplyComposes(t *testing.T) {
	store := NewStore()
	sess := store.Open(models.Program{ProgramKey: "pharmacy"})

	sess.Apply(func(p models.Program) models.Program {
		p.TitleAr = "كلية الصيدلة"
		return p
	})
	sess.Apply(func(p models.Program) models.Program {
		p.DurationYears = 5
		return p
	})

	snap := sess.Snapshot()
	if snap.TitleAr != "كلية الصيدلة" {
		t.Errorf("TitleAr = %q, first update lost", snap.TitleAr)
	}
	if snap.DurationYears != 5 {
		t.Errorf("DurationYears = %d, second update lost", snap.DurationYears)
	}
}

func TestApplyConcurrent(t *testing.T) {
	store := NewStore()
	sess := store.Open(models.Program{})

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			sess.Apply(func(p models.Program) models.Program {
				p.DurationYears++
				return p
			})
		}()
	}
	wg.Wait()

	if got := sess.Snapshot().DurationYears; got != workers {
		t.Fatalf("DurationYears = %d, want %d", got, workers)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	store := NewStore()
	sess := store.Open(models.Program{TitleAr: "original"})

	snap := sess.Snapshot()
	snap.TitleAr = "mutated copy"

	if sess.Snapshot().TitleAr != "original" {
		t.Fatal("mutating a snapshot changed the draft")
	}
}
