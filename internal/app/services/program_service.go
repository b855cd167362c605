package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alqalam/college-backend/internal/app/collection"
	"github.com/alqalam/college-backend/internal/app/curriculum"
	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/models/dto"
	"github.com/alqalam/college-backend/internal/app/repositories"
	"github.com/alqalam/college-backend/internal/app/session"
	"github.com/alqalam/college-backend/internal/pkg/apperrors"
	"github.com/alqalam/college-backend/internal/pkg/logger"
	"github.com/alqalam/college-backend/internal/pkg/validation"
)

// ProgramService handles program administration: stored aggregates and the
// in-memory draft sessions they are edited through. All collection edits go
// through a draft; storage only changes on commit.
type ProgramService struct {
	programRepo *repositories.ProgramRepository
	sessions    *session.Store
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo *repositories.ProgramRepository, sessions *session.Store) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		sessions:    sessions,
	}
}

// ListPrograms retrieves all stored programs
func (s *ProgramService) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	programs, err := s.programRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}
	return programs, nil
}

// GetProgram retrieves one stored program by key
func (s *ProgramService) GetProgram(ctx context.Context, programKey string) (*models.Program, error) {
	program, err := s.programRepo.GetByKey(ctx, programKey)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error getting program: %w", err)
	}
	return program, nil
}

// CreateProgram stores a new, mostly empty program aggregate
func (s *ProgramService) CreateProgram(ctx context.Context, req dto.CreateProgramRequest) (*models.Program, error) {
	key := strings.TrimSpace(strings.ToLower(req.ProgramKey))
	keyValid := validation.NewStringValidation(key).
		WithMaxLength(validation.ProgramKeyMaxLength).
		WithPattern(validation.CompiledPatterns.ProgramKey).
		Validate()
	if !keyValid {
		return nil, apperrors.ErrInvalidProgramKey
	}

	program := &models.Program{
		ProgramKey:            key,
		TitleAr:               strings.TrimSpace(req.TitleAr),
		TitleEn:               strings.TrimSpace(req.TitleEn),
		IsActive:              true,
		FacultyMembers:        []models.FacultyMember{},
		AcademicYears:         []models.AcademicYear{},
		AdmissionRequirements: []models.AdmissionRequirement{},
		Statistics:            []models.ProgramStatistic{},
		CareerOpportunities:   []models.CareerOpportunity{},
	}

	if _, err := s.programRepo.Create(ctx, program); err != nil {
		if errors.Is(err, repositories.ErrProgramAlreadyExists) {
			return nil, apperrors.ErrProgramAlreadyExists
		}
		return nil, fmt.Errorf("error creating program: %w", err)
	}

	logger.Info().Str("programKey", key).Msg("Program created")
	return program, nil
}

// DeleteProgram removes a stored program by key
func (s *ProgramService) DeleteProgram(ctx context.Context, programKey string) error {
	if err := s.programRepo.Delete(ctx, programKey); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error deleting program: %w", err)
	}
	logger.Info().Str("programKey", programKey).Msg("Program deleted")
	return nil
}

// OpenDraft loads a stored program into a fresh draft session
func (s *ProgramService) OpenDraft(ctx context.Context, programKey string) (*session.Session, error) {
	program, err := s.GetProgram(ctx, programKey)
	if err != nil {
		return nil, err
	}
	return s.sessions.Open(*program), nil
}

// GetDraft returns the current state of an open draft
func (s *ProgramService) GetDraft(sessionID string) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Snapshot(), nil
}

// CommitDraft persists the draft aggregate over the stored row. The session
// stays open so the form can keep editing after a save.
func (s *ProgramService) CommitDraft(ctx context.Context, sessionID string) (*models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return nil, err
	}

	program := sess.Apply(func(p models.Program) models.Program {
		p.TotalCreditHours = curriculum.TotalCreditHours(p.AcademicYears)
		return p
	})

	if err := s.programRepo.Update(ctx, &program); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error committing draft: %w", err)
	}

	logger.Info().Str("programKey", program.ProgramKey).Str("sessionID", sessionID).Msg("Draft committed")
	return &program, nil
}

// DiscardDraft drops a draft without saving. Unknown ids are a no-op.
func (s *ProgramService) DiscardDraft(sessionID string) {
	s.sessions.Discard(sessionID)
}

// UpdateOverview patches the scalar fields of a draft. Only non-nil request
// fields are applied, so each form tab can submit just its own section.
func (s *ProgramService) UpdateOverview(sessionID string, req dto.ProgramOverviewRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		applyOverview(&p, req)
		return p
	}), nil
}

// UpdateLists replaces the free-form objective/outcome lists of a draft
func (s *ProgramService) UpdateLists(sessionID string, req dto.ProgramListsRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		if req.ObjectivesAr != nil {
			p.ObjectivesAr = *req.ObjectivesAr
		}
		if req.ObjectivesEn != nil {
			p.ObjectivesEn = *req.ObjectivesEn
		}
		if req.OutcomesAr != nil {
			p.OutcomesAr = *req.OutcomesAr
		}
		if req.OutcomesEn != nil {
			p.OutcomesEn = *req.OutcomesEn
		}
		return p
	}), nil
}

// AddFacultyMember appends a faculty member to a draft. A blank required
// name is swallowed quietly: the draft comes back unchanged.
func (s *ProgramService) AddFacultyMember(sessionID string, req dto.FacultyMemberRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if strings.TrimSpace(req.NameAr) == "" {
		return sess.Snapshot(), nil
	}
	member := facultyMemberFromRequest(req)
	member.ID = collection.NewID()
	return sess.Apply(func(p models.Program) models.Program {
		p.FacultyMembers = collection.Append(p.FacultyMembers, member)
		return p
	}), nil
}

// UpdateFacultyMember replaces the content fields of one faculty member.
// A stale member id leaves the draft unchanged.
func (s *ProgramService) UpdateFacultyMember(sessionID, memberID string, req dto.FacultyMemberRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.FacultyMembers = collection.Update(p.FacultyMembers, memberID, func(m models.FacultyMember) models.FacultyMember {
			updated := facultyMemberFromRequest(req)
			updated.ID = m.ID
			return updated
		})
		return p
	}), nil
}

// RemoveFacultyMember deletes one faculty member from a draft
func (s *ProgramService) RemoveFacultyMember(sessionID, memberID string) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.FacultyMembers = collection.Remove(p.FacultyMembers, memberID)
		return p
	}), nil
}

// MoveFacultyMember reorders the faculty list of a draft
func (s *ProgramService) MoveFacultyMember(sessionID string, from, to int) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if !validMove(len(sess.Snapshot().FacultyMembers), from, to) {
		return models.Program{}, fmt.Errorf("%w: reorder index out of range", apperrors.ErrBadRequest)
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.FacultyMembers = collection.Move(p.FacultyMembers, from, to)
		return p
	}), nil
}

// AddAdmissionRequirement appends an admission requirement to a draft,
// quietly ignoring submissions with a blank requirement text.
func (s *ProgramService) AddAdmissionRequirement(sessionID string, req dto.AdmissionRequirementRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if strings.TrimSpace(req.RequirementAr) == "" {
		return sess.Snapshot(), nil
	}
	requirement := admissionRequirementFromRequest(req)
	requirement.ID = collection.NewID()
	return sess.Apply(func(p models.Program) models.Program {
		p.AdmissionRequirements = collection.Append(p.AdmissionRequirements, requirement)
		return p
	}), nil
}

// UpdateAdmissionRequirement replaces the content of one admission requirement
func (s *ProgramService) UpdateAdmissionRequirement(sessionID, requirementID string, req dto.AdmissionRequirementRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AdmissionRequirements = collection.Update(p.AdmissionRequirements, requirementID, func(r models.AdmissionRequirement) models.AdmissionRequirement {
			updated := admissionRequirementFromRequest(req)
			updated.ID = r.ID
			return updated
		})
		return p
	}), nil
}

// RemoveAdmissionRequirement deletes one admission requirement from a draft
func (s *ProgramService) RemoveAdmissionRequirement(sessionID, requirementID string) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AdmissionRequirements = collection.Remove(p.AdmissionRequirements, requirementID)
		return p
	}), nil
}

// MoveAdmissionRequirement reorders the admission requirement list of a draft
func (s *ProgramService) MoveAdmissionRequirement(sessionID string, from, to int) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if !validMove(len(sess.Snapshot().AdmissionRequirements), from, to) {
		return models.Program{}, fmt.Errorf("%w: reorder index out of range", apperrors.ErrBadRequest)
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AdmissionRequirements = collection.Move(p.AdmissionRequirements, from, to)
		return p
	}), nil
}

// AddStatistic appends a headline statistic to a draft, quietly ignoring
// submissions with a blank label.
func (s *ProgramService) AddStatistic(sessionID string, req dto.StatisticRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if strings.TrimSpace(req.LabelAr) == "" || strings.TrimSpace(string(req.Value)) == "" {
		return sess.Snapshot(), nil
	}
	statistic := statisticFromRequest(req)
	statistic.ID = collection.NewID()
	return sess.Apply(func(p models.Program) models.Program {
		p.Statistics = collection.Append(p.Statistics, statistic)
		return p
	}), nil
}

// UpdateStatistic replaces the content of one statistic
func (s *ProgramService) UpdateStatistic(sessionID, statisticID string, req dto.StatisticRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.Statistics = collection.Update(p.Statistics, statisticID, func(st models.ProgramStatistic) models.ProgramStatistic {
			updated := statisticFromRequest(req)
			updated.ID = st.ID
			return updated
		})
		return p
	}), nil
}

// RemoveStatistic deletes one statistic from a draft
func (s *ProgramService) RemoveStatistic(sessionID, statisticID string) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.Statistics = collection.Remove(p.Statistics, statisticID)
		return p
	}), nil
}

// MoveStatistic reorders the statistics list of a draft
func (s *ProgramService) MoveStatistic(sessionID string, from, to int) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if !validMove(len(sess.Snapshot().Statistics), from, to) {
		return models.Program{}, fmt.Errorf("%w: reorder index out of range", apperrors.ErrBadRequest)
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.Statistics = collection.Move(p.Statistics, from, to)
		return p
	}), nil
}

// AddCareerOpportunity appends a career opportunity to a draft, quietly
// ignoring submissions with a blank title.
func (s *ProgramService) AddCareerOpportunity(sessionID string, req dto.CareerOpportunityRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if strings.TrimSpace(req.TitleAr) == "" {
		return sess.Snapshot(), nil
	}
	career := careerOpportunityFromRequest(req)
	career.ID = collection.NewID()
	return sess.Apply(func(p models.Program) models.Program {
		p.CareerOpportunities = collection.Append(p.CareerOpportunities, career)
		return p
	}), nil
}

// UpdateCareerOpportunity replaces the content of one career opportunity
func (s *ProgramService) UpdateCareerOpportunity(sessionID, careerID string, req dto.CareerOpportunityRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.CareerOpportunities = collection.Update(p.CareerOpportunities, careerID, func(c models.CareerOpportunity) models.CareerOpportunity {
			updated := careerOpportunityFromRequest(req)
			updated.ID = c.ID
			return updated
		})
		return p
	}), nil
}

// RemoveCareerOpportunity deletes one career opportunity from a draft
func (s *ProgramService) RemoveCareerOpportunity(sessionID, careerID string) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.CareerOpportunities = collection.Remove(p.CareerOpportunities, careerID)
		return p
	}), nil
}

// MoveCareerOpportunity reorders the career opportunity list of a draft
func (s *ProgramService) MoveCareerOpportunity(sessionID string, from, to int) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if !validMove(len(sess.Snapshot().CareerOpportunities), from, to) {
		return models.Program{}, fmt.Errorf("%w: reorder index out of range", apperrors.ErrBadRequest)
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.CareerOpportunities = collection.Move(p.CareerOpportunities, from, to)
		return p
	}), nil
}

// AddAcademicYear appends an academic year to a draft's study plan,
// quietly ignoring submissions with a blank year name.
func (s *ProgramService) AddAcademicYear(sessionID string, req dto.AcademicYearRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if strings.TrimSpace(req.YearNameAr) == "" {
		return sess.Snapshot(), nil
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.AddYear(p.AcademicYears, strings.TrimSpace(req.YearNameAr), strings.TrimSpace(req.YearNameEn))
		return p
	}), nil
}

// UpdateAcademicYear renames the year with the given 1-based number
func (s *ProgramService) UpdateAcademicYear(sessionID string, yearNumber int, req dto.AcademicYearRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.UpdateYear(p.AcademicYears, yearNumber, func(y models.AcademicYear) models.AcademicYear {
			y.YearNameAr = req.YearNameAr
			y.YearNameEn = req.YearNameEn
			return y
		})
		return p
	}), nil
}

// RemoveAcademicYear deletes the year with the given number from a draft
func (s *ProgramService) RemoveAcademicYear(sessionID string, yearNumber int) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.RemoveYear(p.AcademicYears, yearNumber)
		return p
	}), nil
}

// MoveAcademicYear reorders the study plan years of a draft
func (s *ProgramService) MoveAcademicYear(sessionID string, from, to int) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if !validMove(len(sess.Snapshot().AcademicYears), from, to) {
		return models.Program{}, fmt.Errorf("%w: reorder index out of range", apperrors.ErrBadRequest)
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.MoveYear(p.AcademicYears, from, to)
		return p
	}), nil
}

// AddSubject appends a subject to one year of a draft's study plan,
// quietly ignoring submissions missing the course code or Arabic name.
func (s *ProgramService) AddSubject(sessionID string, yearNumber int, req dto.CourseSubjectRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.NameAr) == "" {
		return sess.Snapshot(), nil
	}
	subject := subjectFromRequest(req)
	subject.ID = collection.NewID()
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.AddSubject(p.AcademicYears, yearNumber, subject)
		return p
	}), nil
}

// UpdateSubject replaces the content of one subject inside one year
func (s *ProgramService) UpdateSubject(sessionID string, yearNumber int, subjectID string, req dto.CourseSubjectRequest) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.UpdateSubject(p.AcademicYears, yearNumber, subjectID, func(sub models.CourseSubject) models.CourseSubject {
			updated := subjectFromRequest(req)
			updated.ID = sub.ID
			return updated
		})
		return p
	}), nil
}

// RemoveSubject deletes one subject from one year of a draft
func (s *ProgramService) RemoveSubject(sessionID string, yearNumber int, subjectID string) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.RemoveSubject(p.AcademicYears, yearNumber, subjectID)
		return p
	}), nil
}

// MoveSubject reorders subjects within one year of a draft
func (s *ProgramService) MoveSubject(sessionID string, yearNumber, from, to int) (models.Program, error) {
	sess, err := s.draft(sessionID)
	if err != nil {
		return models.Program{}, err
	}
	subjects := 0
	for _, y := range sess.Snapshot().AcademicYears {
		if y.YearNumber == yearNumber {
			subjects = len(y.Subjects)
			break
		}
	}
	if !validMove(subjects, from, to) {
		return models.Program{}, fmt.Errorf("%w: reorder index out of range", apperrors.ErrBadRequest)
	}
	return sess.Apply(func(p models.Program) models.Program {
		p.AcademicYears = curriculum.MoveSubject(p.AcademicYears, yearNumber, from, to)
		return p
	}), nil
}

// draft resolves an open session by id
func (s *ProgramService) draft(sessionID string) (*session.Session, error) {
	sess := s.sessions.Get(sessionID)
	if sess == nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

// validMove checks both reorder indices against the collection length
func validMove(length, from, to int) bool {
	return from >= 0 && from < length && to >= 0 && to < length
}

func applyOverview(p *models.Program, req dto.ProgramOverviewRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&p.TitleAr, req.TitleAr)
	setString(&p.TitleEn, req.TitleEn)
	setString(&p.DescriptionAr, req.DescriptionAr)
	setString(&p.DescriptionEn, req.DescriptionEn)
	setString(&p.SummaryAr, req.SummaryAr)
	setString(&p.SummaryEn, req.SummaryEn)
	setString(&p.VisionAr, req.VisionAr)
	setString(&p.VisionEn, req.VisionEn)
	setString(&p.MissionAr, req.MissionAr)
	setString(&p.MissionEn, req.MissionEn)
	setString(&p.DegreeAr, req.DegreeAr)
	setString(&p.DegreeEn, req.DegreeEn)
	setString(&p.DepartmentAr, req.DepartmentAr)
	setString(&p.DepartmentEn, req.DepartmentEn)
	setString(&p.LanguageAr, req.LanguageAr)
	setString(&p.LanguageEn, req.LanguageEn)
	setString(&p.StudyModeAr, req.StudyModeAr)
	setString(&p.StudyModeEn, req.StudyModeEn)
	setString(&p.TuitionFeesAr, req.TuitionFeesAr)
	setString(&p.TuitionFeesEn, req.TuitionFeesEn)
	setString(&p.ContactEmail, req.ContactEmail)
	setString(&p.ContactPhone, req.ContactPhone)
	setString(&p.HeroImage, req.HeroImage)
	setString(&p.IconName, req.IconName)
	setString(&p.BrochureURL, req.BrochureURL)
	setString(&p.MetaTitleAr, req.MetaTitleAr)
	setString(&p.MetaTitleEn, req.MetaTitleEn)
	setString(&p.MetaDescriptionAr, req.MetaDescriptionAr)
	setString(&p.MetaDescriptionEn, req.MetaDescriptionEn)

	if req.DurationYears != nil {
		p.DurationYears = *req.DurationYears
	}
	if req.SemestersCount != nil {
		p.SemestersCount = *req.SemestersCount
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		p.DisplayOrder = *req.DisplayOrder
	}
}

func facultyMemberFromRequest(req dto.FacultyMemberRequest) models.FacultyMember {
	return models.FacultyMember{
		TeacherProfileID:  req.TeacherProfileID,
		NameAr:            strings.TrimSpace(req.NameAr),
		NameEn:            strings.TrimSpace(req.NameEn),
		PositionAr:        req.PositionAr,
		QualificationAr:   req.QualificationAr,
		QualificationEn:   req.QualificationEn,
		SpecializationAr:  req.SpecializationAr,
		SpecializationEn:  req.SpecializationEn,
		UniversityAr:      req.UniversityAr,
		UniversityEn:      req.UniversityEn,
		Email:             req.Email,
		Phone:             req.Phone,
		ProfileImage:      req.ProfileImage,
		BioAr:             req.BioAr,
		BioEn:             req.BioEn,
		ResearchInterests: req.ResearchInterests,
	}
}

func admissionRequirementFromRequest(req dto.AdmissionRequirementRequest) models.AdmissionRequirement {
	reqType := req.Type
	if reqType != models.RequirementAcademic && reqType != models.RequirementGeneral {
		reqType = models.RequirementGeneral
	}
	return models.AdmissionRequirement{
		Type:          reqType,
		RequirementAr: strings.TrimSpace(req.RequirementAr),
		RequirementEn: strings.TrimSpace(req.RequirementEn),
		IsMandatory:   req.IsMandatory,
	}
}

func statisticFromRequest(req dto.StatisticRequest) models.ProgramStatistic {
	return models.ProgramStatistic{
		LabelAr:       strings.TrimSpace(req.LabelAr),
		Value:         req.Value,
		IconName:      req.IconName,
		UnitAr:        req.UnitAr,
		UnitEn:        req.UnitEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
	}
}

func careerOpportunityFromRequest(req dto.CareerOpportunityRequest) models.CareerOpportunity {
	return models.CareerOpportunity{
		TitleAr:        strings.TrimSpace(req.TitleAr),
		TitleEn:        strings.TrimSpace(req.TitleEn),
		DescriptionAr:  req.DescriptionAr,
		DescriptionEn:  req.DescriptionEn,
		Sector:         req.Sector,
		IconName:       req.IconName,
		SalaryRangeAr:  req.SalaryRangeAr,
		SalaryRangeEn:  req.SalaryRangeEn,
		JobLocations:   req.JobLocations,
		RequiredSkills: req.RequiredSkills,
	}
}

func subjectFromRequest(req dto.CourseSubjectRequest) models.CourseSubject {
	return models.CourseSubject{
		Code:           strings.TrimSpace(req.Code),
		NameAr:         strings.TrimSpace(req.NameAr),
		NameEn:         strings.TrimSpace(req.NameEn),
		CreditHours:    req.CreditHours,
		TheoryHours:    req.TheoryHours,
		PracticalHours: req.PracticalHours,
		Prerequisites:  req.Prerequisites,
		DescriptionAr:  req.DescriptionAr,
		DescriptionEn:  req.DescriptionEn,
	}
}
