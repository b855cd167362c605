package curriculum

import (
	"testing"

	"github.com/alqalam/college-backend/internal/app/models"
)

func sampleYears() []models.AcademicYear {
	return []models.AcademicYear{
		{
			YearNumber:       1,
			YearNameAr:       "السنة الأولى",
			TotalCreditHours: 7,
			Subjects: []models.CourseSubject{
				{ID: "s1", Code: "CHEM101", NameAr: "كيمياء عامة", CreditHours: 3, Order: 0},
				{ID: "s2", Code: "BIO101", NameAr: "أحياء عامة", CreditHours: 4, Order: 1},
			},
		},
		{
			YearNumber:       2,
			YearNameAr:       "السنة الثانية",
			TotalCreditHours: 5,
			Subjects: []models.CourseSubject{
				{ID: "s3", Code: "PHAR201", NameAr: "صيدلانيات", CreditHours: 5, Order: 0},
			},
		},
	}
}

func yearNumbers(years []models.AcademicYear) []int {
	out := make([]int, len(years))
	for i, y := range years {
		out[i] = y.YearNumber
	}
	return out
}

func TestAddYear(t *testing.T) {
	years := sampleYears()
	out := AddYear(years, "السنة الثالثة", "Third Year")

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	added := out[2]
	if added.YearNumber != 3 {
		t.Errorf("YearNumber = %d, want 3", added.YearNumber)
	}
	if added.YearNameAr != "السنة الثالثة" || added.YearNameEn != "Third Year" {
		t.Errorf("names = %q / %q", added.YearNameAr, added.YearNameEn)
	}
	if added.Subjects == nil || len(added.Subjects) != 0 {
		t.Errorf("Subjects = %v, want empty non-nil slice", added.Subjects)
	}
	if len(years) != 2 {
		t.Errorf("input length changed to %d", len(years))
	}
}

func TestUpdateYearRecomputesCredits(t *testing.T) {
	years := sampleYears()
	out := UpdateYear(years, 1, func(y models.AcademicYear) models.AcademicYear {
		y.YearNameEn = "First Year"
		// Hand-edited totals and numbers must not survive the patch
		y.TotalCreditHours = 999
		y.YearNumber = 9
		return y
	})

	if out[0].YearNameEn != "First Year" {
		t.Errorf("YearNameEn = %q", out[0].YearNameEn)
	}
	if out[0].YearNumber != 1 {
		t.Errorf("YearNumber = %d, want 1", out[0].YearNumber)
	}
	if out[0].TotalCreditHours != 7 {
		t.Errorf("TotalCreditHours = %d, want 7", out[0].TotalCreditHours)
	}
}

func TestUpdateYearUnknownNumber(t *testing.T) {
	years := sampleYears()
	out := UpdateYear(years, 5, func(y models.AcademicYear) models.AcademicYear {
		t.Fatal("patch called for unknown year")
		return y
	})
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
}

func TestRemoveYearRenumbers(t *testing.T) {
	years := sampleYears()
	years = AddYear(years, "السنة الثالثة", "")

	out := RemoveYear(years, 1)

	got := yearNumbers(out)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("year numbers = %v, want [1 2]", got)
	}
	if out[0].YearNameAr != "السنة الثانية" {
		t.Errorf("out[0] = %q, want second year first", out[0].YearNameAr)
	}
}

func TestMoveYearRenumbers(t *testing.T) {
	years := sampleYears()
	out := MoveYear(years, 0, 1)

	if out[0].YearNameAr != "السنة الثانية" || out[1].YearNameAr != "السنة الأولى" {
		t.Fatalf("order after move: %q, %q", out[0].YearNameAr, out[1].YearNameAr)
	}
	got := yearNumbers(out)
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("year numbers = %v, want [1 2]", got)
	}
}

func TestAddSubjectRecomputesCredits(t *testing.T) {
	years := sampleYears()
	out := AddSubject(years, 2, models.CourseSubject{
		ID: "s4", Code: "PHAR202", NameAr: "علم الأدوية", CreditHours: 3,
	})

	if len(out[1].Subjects) != 2 {
		t.Fatalf("subject count = %d, want 2", len(out[1].Subjects))
	}
	if out[1].Subjects[1].Order != 1 {
		t.Errorf("new subject order = %d, want 1", out[1].Subjects[1].Order)
	}
	if out[1].TotalCreditHours != 8 {
		t.Errorf("TotalCreditHours = %d, want 8", out[1].TotalCreditHours)
	}
	if out[0].TotalCreditHours != 7 {
		t.Errorf("other year credits changed to %d", out[0].TotalCreditHours)
	}
}

func TestAddSubjectUnknownYear(t *testing.T) {
	years := sampleYears()
	out := AddSubject(years, 9, models.CourseSubject{ID: "sX", CreditHours: 3})
	if TotalCreditHours(out) != TotalCreditHours(years) {
		t.Fatal("unknown year changed credit totals")
	}
}

func TestUpdateSubjectRecomputesCredits(t *testing.T) {
	years := sampleYears()
	out := UpdateSubject(years, 1, "s1", func(s models.CourseSubject) models.CourseSubject {
		s.CreditHours = 6
		return s
	})

	if out[0].Subjects[0].CreditHours != 6 {
		t.Fatalf("CreditHours = %d, want 6", out[0].Subjects[0].CreditHours)
	}
	if out[0].TotalCreditHours != 10 {
		t.Errorf("TotalCreditHours = %d, want 10", out[0].TotalCreditHours)
	}
}

func TestUpdateSubjectStaleID(t *testing.T) {
	years := sampleYears()
	out := UpdateSubject(years, 1, "gone", func(s models.CourseSubject) models.CourseSubject {
		t.Fatal("patch called for stale id")
		return s
	})
	if out[0].TotalCreditHours != 7 {
		t.Errorf("TotalCreditHours = %d, want 7", out[0].TotalCreditHours)
	}
}

func TestRemoveSubjectRecomputesCredits(t *testing.T) {
	years := sampleYears()
	out := RemoveSubject(years, 1, "s1")

	if len(out[0].Subjects) != 1 {
		t.Fatalf("subject count = %d, want 1", len(out[0].Subjects))
	}
	if out[0].Subjects[0].ID != "s2" || out[0].Subjects[0].Order != 0 {
		t.Errorf("remaining subject = %+v, want s2 with order 0", out[0].Subjects[0])
	}
	if out[0].TotalCreditHours != 4 {
		t.Errorf("TotalCreditHours = %d, want 4", out[0].TotalCreditHours)
	}
}

func TestMoveSubject(t *testing.T) {
	years := sampleYears()
	out := MoveSubject(years, 1, 0, 1)

	subjects := out[0].Subjects
	if subjects[0].ID != "s2" || subjects[1].ID != "s1" {
		t.Fatalf("subject order after move: %s, %s", subjects[0].ID, subjects[1].ID)
	}
	if subjects[0].Order != 0 || subjects[1].Order != 1 {
		t.Errorf("orders = %d, %d, want 0, 1", subjects[0].Order, subjects[1].Order)
	}
	if out[0].TotalCreditHours != 7 {
		t.Errorf("TotalCreditHours = %d, want 7", out[0].TotalCreditHours)
	}
}

func TestTotalCreditHours(t *testing.T) {
	years := sampleYears()
	if got := TotalCreditHours(years); got != 12 {
		t.Fatalf("TotalCreditHours = %d, want 12", got)
	}
	if got := TotalCreditHours(nil); got != 0 {
		t.Fatalf("TotalCreditHours(nil) = %d, want 0", got)
	}
}
