package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/repositories"
)

func gradeOf(year string, semester models.Semester, credits int, points float64) models.Grade {
	return models.Grade{
		AcademicYear: year,
		Semester:     semester,
		CreditHours:  credits,
		GradePoints:  points,
	}
}

func TestGroupGrades(t *testing.T) {
	grades := []models.Grade{
		gradeOf("2023-2024", models.SemesterFirst, 3, 4.0),
		gradeOf("2023-2024", models.SemesterFirst, 3, 3.0),
		gradeOf("2023-2024", models.SemesterSecond, 4, 2.0),
		gradeOf("2024-2025", models.SemesterFirst, 2, 0),
	}

	resp := groupGrades(grades)

	if len(resp.Semesters) != 3 {
		t.Fatalf("semester groups = %d, want 3", len(resp.Semesters))
	}
	first := resp.Semesters[0]
	if first.AcademicYear != "2023-2024" || first.Semester != models.SemesterFirst {
		t.Errorf("first group = %s %s", first.AcademicYear, first.Semester)
	}
	if len(first.Grades) != 2 {
		t.Errorf("first group size = %d, want 2", len(first.Grades))
	}
	if math.Abs(first.SemesterGPA-3.5) > 1e-9 {
		t.Errorf("first semester GPA = %v, want 3.5", first.SemesterGPA)
	}

	// A failed course counts toward attempted but not earned credits
	if resp.TotalCreditHours != 10 {
		t.Errorf("TotalCreditHours = %d, want 10", resp.TotalCreditHours)
	}
	if resp.CompletedCourses != 3 {
		t.Errorf("CompletedCourses = %d, want 3", resp.CompletedCourses)
	}

	wantGPA := (4.0*3 + 3.0*3 + 2.0*4) / 12.0
	if math.Abs(resp.CumulativeGPA-wantGPA) > 1e-9 {
		t.Errorf("CumulativeGPA = %v, want %v", resp.CumulativeGPA, wantGPA)
	}
}

func TestGroupGradesEmpty(t *testing.T) {
	resp := groupGrades(nil)
	if len(resp.Semesters) != 0 {
		t.Errorf("Semesters = %v, want empty", resp.Semesters)
	}
	if resp.CumulativeGPA != 0 || resp.TotalCreditHours != 0 {
		t.Errorf("totals = %v / %d, want zeros", resp.CumulativeGPA, resp.TotalCreditHours)
	}
}

func TestCurrentSemester(t *testing.T) {
	tests := []struct {
		month time.Month
		want  models.Semester
	}{
		{time.September, models.SemesterFirst},
		{time.December, models.SemesterFirst},
		{time.January, models.SemesterFirst},
		{time.February, models.SemesterSecond},
		{time.June, models.SemesterSecond},
		{time.July, models.SemesterSummer},
		{time.August, models.SemesterSummer},
	}

	for _, tt := range tests {
		date := time.Date(2025, tt.month, 15, 0, 0, 0, 0, time.UTC)
		if got := currentSemester(date); got != tt.want {
			t.Errorf("currentSemester(%s) = %s, want %s", tt.month, got, tt.want)
		}
	}
}

func TestFilterDay(t *testing.T) {
	entries := []models.ScheduleEntry{
		{ID: 1, DayOfWeek: 0},
		{ID: 2, DayOfWeek: 2},
		{ID: 3, DayOfWeek: 0},
	}

	sunday := filterDay(entries, 0)
	if len(sunday) != 2 {
		t.Fatalf("sunday entries = %d, want 2", len(sunday))
	}
	if len(filterDay(entries, 5)) != 0 {
		t.Error("expected no entries for day 5")
	}
}

func TestRetryReadRetriesTransientErrors(t *testing.T) {
	calls := 0
	out, err := retryRead(context.Background(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("connection reset")
		}
		return 7, nil
	})
	if err != nil {
		t.Fatalf("retryRead: %v", err)
	}
	if out != 7 {
		t.Errorf("out = %d, want 7", out)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryReadGivesUpAfterRetries(t *testing.T) {
	calls := 0
	boom := errors.New("still down")
	_, err := retryRead(context.Background(), func() (int, error) {
		calls++
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if calls != portalReadRetries+1 {
		t.Errorf("calls = %d, want %d", calls, portalReadRetries+1)
	}
}

func TestRetryReadDoesNotRetryDomainErrors(t *testing.T) {
	calls := 0
	_, err := retryRead(context.Background(), func() (int, error) {
		calls++
		return 0, repositories.ErrStudentNotFound
	})
	if !errors.Is(err, repositories.ErrStudentNotFound) {
		t.Fatalf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryReadStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := retryRead(ctx, func() (int, error) {
		calls++
		cancel()
		return 0, errors.New("interrupted")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
