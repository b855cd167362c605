package dto

import (
	"github.com/alqalam/college-backend/internal/app/models"
)

// CreateProgramRequest creates a new, mostly empty program aggregate
type CreateProgramRequest struct {
	ProgramKey string `json:"program_key" binding:"required" example:"pharmacy"`
	TitleAr    string `json:"title_ar" binding:"required"`
	TitleEn    string `json:"title_en,omitempty"`
}

// DraftResponse wraps an open draft session and its current aggregate
type DraftResponse struct {
	SessionID string         `json:"sessionId"`
	Program   models.Program `json:"program"`
}

// ProgramOverviewRequest patches the scalar fields of a draft. All fields
// are optional; nil fields are left untouched so different form tabs can
// patch their own slice of the aggregate independently.
type ProgramOverviewRequest struct {
	TitleAr           *string `json:"title_ar,omitempty"`
	TitleEn           *string `json:"title_en,omitempty"`
	DescriptionAr     *string `json:"description_ar,omitempty"`
	DescriptionEn     *string `json:"description_en,omitempty"`
	SummaryAr         *string `json:"summary_ar,omitempty"`
	SummaryEn         *string `json:"summary_en,omitempty"`
	VisionAr          *string `json:"vision_ar,omitempty"`
	VisionEn          *string `json:"vision_en,omitempty"`
	MissionAr         *string `json:"mission_ar,omitempty"`
	MissionEn         *string `json:"mission_en,omitempty"`
	DegreeAr          *string `json:"degree_ar,omitempty"`
	DegreeEn          *string `json:"degree_en,omitempty"`
	DepartmentAr      *string `json:"department_ar,omitempty"`
	DepartmentEn      *string `json:"department_en,omitempty"`
	LanguageAr        *string `json:"language_ar,omitempty"`
	LanguageEn        *string `json:"language_en,omitempty"`
	StudyModeAr       *string `json:"study_mode_ar,omitempty"`
	StudyModeEn       *string `json:"study_mode_en,omitempty"`
	TuitionFeesAr     *string `json:"tuition_fees_ar,omitempty"`
	TuitionFeesEn     *string `json:"tuition_fees_en,omitempty"`
	DurationYears     *int    `json:"duration_years,omitempty"`
	SemestersCount    *int    `json:"semesters_count,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty"`
	ContactPhone      *string `json:"contact_phone,omitempty"`
	HeroImage         *string `json:"hero_image,omitempty"`
	IconName          *string `json:"icon_name,omitempty"`
	BrochureURL       *string `json:"brochure_url,omitempty"`
	MetaTitleAr       *string `json:"meta_title_ar,omitempty"`
	MetaTitleEn       *string `json:"meta_title_en,omitempty"`
	MetaDescriptionAr *string `json:"meta_description_ar,omitempty"`
	MetaDescriptionEn *string `json:"meta_description_en,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
	IsFeatured        *bool   `json:"is_featured,omitempty"`
	DisplayOrder      *int    `json:"display_order,omitempty"`
}

// ProgramListsRequest replaces the free-form objective/outcome lists of a draft
type ProgramListsRequest struct {
	ObjectivesAr *[]string `json:"objectives_ar,omitempty"`
	ObjectivesEn *[]string `json:"objectives_en,omitempty"`
	OutcomesAr   *[]string `json:"outcomes_ar,omitempty"`
	OutcomesEn   *[]string `json:"outcomes_en,omitempty"`
}

// FacultyMemberRequest is the create/update payload for a faculty member.
// The id and order are never client-supplied; they are assigned by the
// collection editor.
type FacultyMemberRequest struct {
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
}

// AdmissionRequirementRequest is the create/update payload for an admission requirement
type AdmissionRequirementRequest struct {
	Type          models.AdmissionRequirementType `json:"type"`
	RequirementAr string                          `json:"requirement_ar"`
	RequirementEn string                          `json:"requirement_en,omitempty"`
	IsMandatory   bool                            `json:"is_mandatory"`
}

// StatisticRequest is the create/update payload for a program statistic
type StatisticRequest struct {
	LabelAr       string           `json:"label_ar"`
	Value         models.StatValue `json:"value"`
	IconName      string           `json:"icon_name,omitempty"`
	UnitAr        string           `json:"unit_ar,omitempty"`
	UnitEn        string           `json:"unit_en,omitempty"`
	DescriptionAr string           `json:"description_ar,omitempty"`
	DescriptionEn string           `json:"description_en,omitempty"`
}

// CareerOpportunityRequest is the create/update payload for a career opportunity
type CareerOpportunityRequest struct {
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
}

// AcademicYearRequest is the create/update payload for an academic year
type AcademicYearRequest struct {
	YearNameAr string `json:"year_name_ar"`
	YearNameEn string `json:"year_name_en,omitempty"`
}

// CourseSubjectRequest is the create/update payload for a course subject
type CourseSubjectRequest struct {
	Code           string   `json:"code"`
	NameAr         string   `json:"name_ar"`
	NameEn         string   `json:"name_en,omitempty"`
	CreditHours    int      `json:"credit_hours"`
	TheoryHours    int      `json:"theory_hours"`
	PracticalHours int      `json:"practical_hours"`
	Prerequisites  []string `json:"prerequisites,omitempty"`
	DescriptionAr  string   `json:"description_ar,omitempty"`
	DescriptionEn  string   `json:"description_en,omitempty"`
}

// ReorderRequest moves a collection element from one index to another.
// The controller validates both indices against the current collection
// length before the move is applied.
type ReorderRequest struct {
	FromIndex int `json:"fromIndex" binding:"min=0"`
	ToIndex   int `json:"toIndex" binding:"min=0"`
}
