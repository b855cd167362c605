package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Program is the full editable aggregate for one academic program.
// It is addressed by ProgramKey, a short lowercase slug unique across the
// store ("pharmacy", "nursing", ...). The whole aggregate is saved in one
// row; the ordered collections are persisted as JSONB columns.
type Program struct {
	ID         int64  `json:"id" db:"id"`
	ProgramKey string `json:"program_key" db:"program_key" example:"pharmacy"`

	TitleAr       string `json:"title_ar" db:"title_ar"`
	TitleEn       string `json:"title_en,omitempty" db:"title_en"`
	DescriptionAr string `json:"description_ar,omitempty" db:"description_ar"`
	DescriptionEn string `json:"description_en,omitempty" db:"description_en"`
	SummaryAr     string `json:"summary_ar,omitempty" db:"summary_ar"`
	SummaryEn     string `json:"summary_en,omitempty" db:"summary_en"`
	VisionAr      string `json:"vision_ar,omitempty" db:"vision_ar"`
	VisionEn      string `json:"vision_en,omitempty" db:"vision_en"`
	MissionAr     string `json:"mission_ar,omitempty" db:"mission_ar"`
	MissionEn     string `json:"mission_en,omitempty" db:"mission_en"`
	DegreeAr      string `json:"degree_ar,omitempty" db:"degree_ar"`
	DegreeEn      string `json:"degree_en,omitempty" db:"degree_en"`
	DepartmentAr  string `json:"department_ar,omitempty" db:"department_ar"`
	DepartmentEn  string `json:"department_en,omitempty" db:"department_en"`
	LanguageAr    string `json:"language_ar,omitempty" db:"language_ar"`
	LanguageEn    string `json:"language_en,omitempty" db:"language_en"`
	StudyModeAr   string `json:"study_mode_ar,omitempty" db:"study_mode_ar"`
	StudyModeEn   string `json:"study_mode_en,omitempty" db:"study_mode_en"`
	TuitionFeesAr string `json:"tuition_fees_ar,omitempty" db:"tuition_fees_ar"`
	TuitionFeesEn string `json:"tuition_fees_en,omitempty" db:"tuition_fees_en"`

	DurationYears    int `json:"duration_years,omitempty" db:"duration_years"`
	SemestersCount   int `json:"semesters_count,omitempty" db:"semesters_count"`
	TotalCreditHours int `json:"total_credit_hours,omitempty" db:"total_credit_hours"`

	ContactEmail string `json:"contact_email,omitempty" db:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty" db:"contact_phone"`
	HeroImage    string `json:"hero_image,omitempty" db:"hero_image"`
	IconName     string `json:"icon_name,omitempty" db:"icon_name"`
	BrochureURL  string `json:"brochure_url,omitempty" db:"brochure_url"`

	MetaTitleAr       string `json:"meta_title_ar,omitempty" db:"meta_title_ar"`
	MetaTitleEn       string `json:"meta_title_en,omitempty" db:"meta_title_en"`
	MetaDescriptionAr string `json:"meta_description_ar,omitempty" db:"meta_description_ar"`
	MetaDescriptionEn string `json:"meta_description_en,omitempty" db:"meta_description_en"`

	IsActive     bool `json:"is_active" db:"is_active"`
	IsFeatured   bool `json:"is_featured" db:"is_featured"`
	DisplayOrder int  `json:"display_order" db:"display_order"`

	// Free-form bilingual lists (stored as JSONB arrays).
	ObjectivesAr []string `json:"objectives_ar,omitempty" db:"objectives_ar"`
	ObjectivesEn []string `json:"objectives_en,omitempty" db:"objectives_en"`
	OutcomesAr   []string `json:"outcomes_ar,omitempty" db:"outcomes_ar"`
	OutcomesEn   []string `json:"outcomes_en,omitempty" db:"outcomes_en"`

	// Ordered collections (stored as JSONB arrays).
	FacultyMembers        []FacultyMember        `json:"faculty_members" db:"faculty_members"`
	AcademicYears         []AcademicYear         `json:"academic_years" db:"academic_years"`
	AdmissionRequirements []AdmissionRequirement `json:"admission_requirements" db:"admission_requirements"`
	Statistics            []ProgramStatistic     `json:"statistics" db:"statistics"`
	CareerOpportunities   []CareerOpportunity    `json:"career_opportunities" db:"career_opportunities"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FacultyMember is a teaching staff entry attached to a program.
// TeacherProfileID references a roster entity; when a member is created from
// the roster its fields are copied once and edited independently afterwards,
// there is no live binding back to the roster.
type FacultyMember struct {
	ID                string   `json:"id"`
	TeacherProfileID  string   `json:"teacher_profile_id,omitempty"`
	NameAr            string   `json:"name_ar"`
	NameEn            string   `json:"name_en,omitempty"`
	PositionAr        string   `json:"position_ar"`
	QualificationAr   string   `json:"qualification_ar,omitempty"`
	QualificationEn   string   `json:"qualification_en,omitempty"`
	SpecializationAr  string   `json:"specialization_ar,omitempty"`
	SpecializationEn  string   `json:"specialization_en,omitempty"`
	UniversityAr      string   `json:"university_ar,omitempty"`
	UniversityEn      string   `json:"university_en,omitempty"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	ProfileImage      string   `json:"profile_image,omitempty"`
	BioAr             string   `json:"bio_ar,omitempty"`
	BioEn             string   `json:"bio_en,omitempty"`
	ResearchInterests []string `json:"research_interests,omitempty"`
	Order             int      `json:"order"`
}

func (m FacultyMember) Key() string { return m.ID }

func (m FacultyMember) WithOrder(order int) FacultyMember {
	m.Order = order
	return m
}

// AdmissionRequirementType distinguishes academic criteria from general ones.
type AdmissionRequirementType string

const (
	RequirementAcademic AdmissionRequirementType = "academic"
	RequirementGeneral  AdmissionRequirementType = "general"
)

// AdmissionRequirement is one admission criterion of a program.
type AdmissionRequirement struct {
	ID            string                   `json:"id"`
	Type          AdmissionRequirementType `json:"type"`
	RequirementAr string                   `json:"requirement_ar"`
	RequirementEn string                   `json:"requirement_en,omitempty"`
	IsMandatory   bool                     `json:"is_mandatory"`
	Order         int                      `json:"order"`
}

func (r AdmissionRequirement) Key() string { return r.ID }

func (r AdmissionRequirement) WithOrder(order int) AdmissionRequirement {
	r.Order = order
	return r
}

// ProgramStatistic is a single headline figure shown on a program page.
type ProgramStatistic struct {
	ID            string    `json:"id"`
	LabelAr       string    `json:"label_ar"`
	Value         StatValue `json:"value"`
	IconName      string    `json:"icon_name,omitempty"`
	UnitAr        string    `json:"unit_ar,omitempty"`
	UnitEn        string    `json:"unit_en,omitempty"`
	DescriptionAr string    `json:"description_ar,omitempty"`
	DescriptionEn string    `json:"description_en,omitempty"`
	Order         int       `json:"order"`
}

func (s ProgramStatistic) Key() string { return s.ID }

func (s ProgramStatistic) WithOrder(order int) ProgramStatistic {
	s.Order = order
	return s
}

// CareerOpportunity describes one career path open to graduates.
type CareerOpportunity struct {
	ID             string   `json:"id"`
	TitleAr        string   `json:"title_ar"`
	TitleEn        string   `json:"title_en,omitempty"`
	DescriptionAr  string   `json:"description_ar,omitempty"`
	DescriptionEn  string   `json:"description_en,omitempty"`
	Sector         string   `json:"sector,omitempty"`
	IconName       string   `json:"icon_name,omitempty"`
	SalaryRangeAr  string   `json:"salary_range_ar,omitempty"`
	SalaryRangeEn  string   `json:"salary_range_en,omitempty"`
	JobLocations   []string `json:"job_locations,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Order          int      `json:"order"`
}

func (c CareerOpportunity) Key() string { return c.ID }

func (c CareerOpportunity) WithOrder(order int) CareerOpportunity {
	c.Order = order
	return c
}

// StatValue holds a statistic value that the upstream data stores either as
// a string ("95%") or a bare number (1200). It always round-trips back out
// as a JSON string.
type StatValue string

// UnmarshalJSON accepts both string and numeric JSON values.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StatValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("statistic value must be a string or a number: %w", err)
	}
	*v = StatValue(n.String())
	return nil
}

func (v StatValue) String() string { return string(v) }
