package seed

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/repositories"
)

// fakeProgramStore is an in-memory ProgramStore keyed by program key.
type fakeProgramStore struct {
	mu       sync.Mutex
	programs map[string]models.Program
	failKeys map[string]error
	creates  int
}

func newFakeProgramStore() *fakeProgramStore {
	return &fakeProgramStore{
		programs: make(map[string]models.Program),
		failKeys: make(map[string]error),
	}
}

func (f *fakeProgramStore) GetByKey(_ context.Context, programKey string) (*models.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.programs[programKey]; ok {
		return &p, nil
	}
	return nil, repositories.ErrProgramNotFound
}

func (f *fakeProgramStore) Create(_ context.Context, program *models.Program) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failKeys[program.ProgramKey]; ok {
		return 0, err
	}
	if _, ok := f.programs[program.ProgramKey]; ok {
		return 0, repositories.ErrProgramAlreadyExists
	}
	f.creates++
	program.ID = int64(f.creates)
	f.programs[program.ProgramKey] = *program
	return program.ID, nil
}

func TestSeedProgramCreatesOnce(t *testing.T) {
	store := newFakeProgramStore()
	ctx := context.Background()
	program := models.Program{ProgramKey: "pharmacy", TitleAr: "الصيدلة"}

	created, err := SeedProgram(ctx, store, program)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if !created {
		t.Fatal("first seed reported not created")
	}

	created, err = SeedProgram(ctx, store, program)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if created {
		t.Fatal("second seed created a duplicate")
	}
	if store.creates != 1 {
		t.Fatalf("creates = %d, want 1", store.creates)
	}
}

func TestSeedProgramConcurrentInsertLoss(t *testing.T) {
	store := newFakeProgramStore()
	ctx := context.Background()
	// Simulate losing the insert race: the exists check misses but the
	// insert hits a unique violation.
	store.failKeys["nursing"] = repositories.ErrProgramAlreadyExists

	created, err := SeedProgram(ctx, store, models.Program{ProgramKey: "nursing"})
	if err != nil {
		t.Fatalf("lost race should not error, got %v", err)
	}
	if created {
		t.Fatal("lost race reported created")
	}
}

func TestSeedProgramsIdempotent(t *testing.T) {
	store := newFakeProgramStore()
	ctx := context.Background()

	if err := SeedPrograms(ctx, store); err != nil {
		t.Fatalf("first run: %v", err)
	}
	want := len(SamplePrograms())
	if store.creates != want {
		t.Fatalf("creates after first run = %d, want %d", store.creates, want)
	}

	if err := SeedPrograms(ctx, store); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if store.creates != want {
		t.Fatalf("creates after second run = %d, want %d", store.creates, want)
	}
}

func TestSeedProgramsSettlesAll(t *testing.T) {
	store := newFakeProgramStore()
	ctx := context.Background()
	boom := errors.New("disk on fire")
	store.failKeys["pharmacy"] = boom

	err := SeedPrograms(ctx, store)
	if err == nil {
		t.Fatal("expected joined error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("joined error does not contain cause: %v", err)
	}

	// Every other program must have been attempted and stored despite the
	// failure.
	for _, p := range SamplePrograms() {
		if p.ProgramKey == "pharmacy" {
			continue
		}
		if _, ok := store.programs[p.ProgramKey]; !ok {
			t.Errorf("program %s missing after partial failure", p.ProgramKey)
		}
	}
}

func TestSamplePrograms(t *testing.T) {
	programs := SamplePrograms()
	if len(programs) == 0 {
		t.Fatal("no sample programs")
	}

	seen := make(map[string]bool)
	for _, p := range programs {
		if p.ProgramKey == "" {
			t.Error("sample program with empty key")
		}
		if seen[p.ProgramKey] {
			t.Errorf("duplicate program key %s", p.ProgramKey)
		}
		seen[p.ProgramKey] = true

		// Ordered collections must come out of the factory dense
		for i, fm := range p.FacultyMembers {
			if fm.Order != i {
				t.Errorf("%s faculty[%d].Order = %d", p.ProgramKey, i, fm.Order)
			}
			if fm.ID == "" {
				t.Errorf("%s faculty[%d] has empty id", p.ProgramKey, i)
			}
		}
		for i, year := range p.AcademicYears {
			if year.YearNumber != i+1 {
				t.Errorf("%s year[%d].YearNumber = %d", p.ProgramKey, i, year.YearNumber)
			}
			if year.TotalCreditHours != year.CreditHourSum() {
				t.Errorf("%s year %d credit total %d != sum %d",
					p.ProgramKey, year.YearNumber, year.TotalCreditHours, year.CreditHourSum())
			}
			for j, s := range year.Subjects {
				if s.Order != j {
					t.Errorf("%s year %d subject[%d].Order = %d", p.ProgramKey, year.YearNumber, j, s.Order)
				}
			}
		}
	}
}
