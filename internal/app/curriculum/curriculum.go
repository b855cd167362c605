// Package curriculum implements the two-level editing operations on a
// program's study plan: academic years at the outer level, course subjects
// inside each year. Subject operations reuse the generic collection editor
// and additionally keep the owning year's derived total_credit_hours
// consistent on every mutation.
package curriculum

import (
	"github.com/alqalam/college-backend/internal/app/collection"
	"github.com/alqalam/college-backend/internal/app/models"
)

// AddYear appends a new academic year numbered after the current last one.
func AddYear(years []models.AcademicYear, nameAr, nameEn string) []models.AcademicYear {
	out := cloneYears(years)
	return append(out, models.AcademicYear{
		YearNumber: len(years) + 1,
		YearNameAr: nameAr,
		YearNameEn: nameEn,
		Subjects:   []models.CourseSubject{},
	})
}

// UpdateYear patches the year with the given 1-based number. Unknown year
// numbers leave the slice unchanged. The derived credit total is recomputed
// so a patch cannot hand-edit it out of sync.
func UpdateYear(years []models.AcademicYear, yearNumber int, patch func(models.AcademicYear) models.AcademicYear) []models.AcademicYear {
	idx := yearIndex(years, yearNumber)
	if idx < 0 {
		return years
	}
	out := cloneYears(years)
	updated := patch(out[idx])
	updated.YearNumber = yearNumber
	updated.TotalCreditHours = updated.CreditHourSum()
	out[idx] = updated
	return out
}

// RemoveYear deletes the year with the given number and renumbers the
// remaining years 1..N-1 in their existing sequence.
func RemoveYear(years []models.AcademicYear, yearNumber int) []models.AcademicYear {
	idx := yearIndex(years, yearNumber)
	if idx < 0 {
		return years
	}
	out := make([]models.AcademicYear, 0, len(years)-1)
	out = append(out, years[:idx]...)
	out = append(out, years[idx+1:]...)
	return renumberYears(out)
}

// MoveYear splices the year at from into position to and renumbers every
// year's 1-based YearNumber to match its new position. The year label and
// the storage position are deliberately kept coupled here; the upstream
// admin UI renumbers them together on drag-and-drop.
func MoveYear(years []models.AcademicYear, from, to int) []models.AcademicYear {
	out := cloneYears(years)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.AcademicYear{moved}, out[to:]...)...)
	return renumberYears(out)
}

// AddSubject appends a subject to the year with the given number and
// recomputes that year's credit total.
func AddSubject(years []models.AcademicYear, yearNumber int, subject models.CourseSubject) []models.AcademicYear {
	return withYearSubjects(years, yearNumber, func(subjects []models.CourseSubject) []models.CourseSubject {
		return collection.Append(subjects, subject)
	})
}

// UpdateSubject patches the subject with the given id inside the year with
// the given number. A stale subject id is a benign no-op.
func UpdateSubject(years []models.AcademicYear, yearNumber int, subjectID string, patch func(models.CourseSubject) models.CourseSubject) []models.AcademicYear {
	return withYearSubjects(years, yearNumber, func(subjects []models.CourseSubject) []models.CourseSubject {
		return collection.Update(subjects, subjectID, patch)
	})
}

// RemoveSubject deletes the subject with the given id from the year with
// the given number, renumbering the remaining subjects.
func RemoveSubject(years []models.AcademicYear, yearNumber int, subjectID string) []models.AcademicYear {
	return withYearSubjects(years, yearNumber, func(subjects []models.CourseSubject) []models.CourseSubject {
		return collection.Remove(subjects, subjectID)
	})
}

// MoveSubject reorders subjects within one year.
func MoveSubject(years []models.AcademicYear, yearNumber, from, to int) []models.AcademicYear {
	return withYearSubjects(years, yearNumber, func(subjects []models.CourseSubject) []models.CourseSubject {
		return collection.Move(subjects, from, to)
	})
}

// TotalCreditHours sums the derived credit totals across all years.
func TotalCreditHours(years []models.AcademicYear) int {
	total := 0
	for _, y := range years {
		total += y.CreditHourSum()
	}
	return total
}

// withYearSubjects applies fn to the subject list of the addressed year and
// recomputes the year's TotalCreditHours from the result. Unknown year
// numbers leave the slice unchanged.
func withYearSubjects(years []models.AcademicYear, yearNumber int, fn func([]models.CourseSubject) []models.CourseSubject) []models.AcademicYear {
	idx := yearIndex(years, yearNumber)
	if idx < 0 {
		return years
	}
	out := cloneYears(years)
	year := out[idx]
	year.Subjects = fn(year.Subjects)
	year.TotalCreditHours = year.CreditHourSum()
	out[idx] = year
	return out
}

func yearIndex(years []models.AcademicYear, yearNumber int) int {
	for i, y := range years {
		if y.YearNumber == yearNumber {
			return i
		}
	}
	return -1
}

func renumberYears(years []models.AcademicYear) []models.AcademicYear {
	for i := range years {
		years[i].YearNumber = i + 1
	}
	return years
}

func cloneYears(years []models.AcademicYear) []models.AcademicYear {
	out := make([]models.AcademicYear, len(years))
	copy(out, years)
	return out
}
