package models

// AcademicYear groups the subjects taught in one year of a program's
// curriculum. YearNumber is the 1-based, user-facing year label; it is
// renumbered together with array position when years are reordered.
// TotalCreditHours is derived from the subjects and is recomputed on every
// subject mutation, never edited directly.
type AcademicYear struct {
	YearNumber       int             `json:"year_number"`
	YearNameAr       string          `json:"year_name_ar"`
	YearNameEn       string          `json:"year_name_en,omitempty"`
	TotalCreditHours int             `json:"total_credit_hours"`
	Subjects         []CourseSubject `json:"subjects"`
}

// CreditHourSum returns the sum of credit hours over the year's subjects.
func (y AcademicYear) CreditHourSum() int {
	total := 0
	for _, s := range y.Subjects {
		total += s.CreditHours
	}
	return total
}

// CourseSubject is one course within an academic year.
type CourseSubject struct {
	ID             string   `json:"id"`
	Code           string   `json:"code"`
	NameAr         string   `json:"name_ar"`
	NameEn         string   `json:"name_en,omitempty"`
	CreditHours    int      `json:"credit_hours"`
	TheoryHours    int      `json:"theory_hours"`
	PracticalHours int      `json:"practical_hours"`
	Prerequisites  []string `json:"prerequisites,omitempty"`
	DescriptionAr  string   `json:"description_ar,omitempty"`
	DescriptionEn  string   `json:"description_en,omitempty"`
	Order          int      `json:"order"`
}

func (s CourseSubject) Key() string { return s.ID }

func (s CourseSubject) WithOrder(order int) CourseSubject {
	s.Order = order
	return s
}
