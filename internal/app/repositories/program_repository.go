package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/pkg/dberrors"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// Program error types
var (
	// ErrProgramNotFound is returned when a program is not found.
	ErrProgramNotFound = errors.New("program not found")
	// ErrProgramAlreadyExists is returned when a program with the same key exists.
	ErrProgramAlreadyExists = errors.New("program with this key already exists")
)

// programScalarColumns are the plain columns of the programs table, in the
// order the scan helpers expect them.
var programScalarColumns = []string{
	"id", "program_key", "title_ar", "title_en", "description_ar", "description_en",
	"summary_ar", "summary_en", "vision_ar", "vision_en", "mission_ar", "mission_en",
	"degree_ar", "degree_en", "department_ar", "department_en", "language_ar", "language_en",
	"study_mode_ar", "study_mode_en", "tuition_fees_ar", "tuition_fees_en",
	"duration_years", "semesters_count", "total_credit_hours",
	"contact_email", "contact_phone", "hero_image", "icon_name", "brochure_url",
	"meta_title_ar", "meta_title_en", "meta_description_ar", "meta_description_en",
	"is_active", "is_featured", "display_order",
	"created_at", "updated_at",
}

// programJSONColumns are the JSONB columns holding the free-form lists and
// the six ordered collections.
var programJSONColumns = []string{
	"objectives_ar", "objectives_en", "outcomes_ar", "outcomes_en",
	"faculty_members", "academic_years", "admission_requirements",
	"statistics", "career_opportunities",
}

// ProgramRepository persists whole program aggregates. The scalar fields
// live in plain columns; the collections are stored as JSONB so the
// aggregate is saved and loaded in one row.
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByKey retrieves a program aggregate by its natural key
func (r *ProgramRepository) GetByKey(ctx context.Context, programKey string) (*models.Program, error) {
	cols := append(append([]string{}, programScalarColumns...), programJSONColumns...)
	sql, args, err := r.sb.Select(cols...).
		From("programs").
		Where(squirrel.Eq{"program_key": programKey}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get program by key SQL")
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program, err := r.scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		logger.Error().Err(err).Str("programKey", programKey).Msg("Error scanning program row")
		return nil, fmt.Errorf("error getting program by key: %w", err)
	}

	return program, nil
}

// List retrieves all programs ordered by display order then key
func (r *ProgramRepository) List(ctx context.Context) ([]*models.Program, error) {
	cols := append(append([]string{}, programScalarColumns...), programJSONColumns...)
	sql, args, err := r.sb.Select(cols...).
		From("programs").
		OrderBy("display_order ASC", "program_key ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list programs SQL")
		return nil, fmt.Errorf("failed to build list programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list programs query")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.Program{}
	for rows.Next() {
		program, err := r.scanProgram(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning program row during list")
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating program rows")
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// Create inserts a new program aggregate and returns its id
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) (int64, error) {
	now := time.Now()
	program.CreatedAt = now
	program.UpdatedAt = now

	values, err := programValues(program)
	if err != nil {
		return 0, err
	}

	builder := r.sb.Insert("programs").Suffix("RETURNING id")
	cols := []string{}
	vals := []interface{}{}
	for _, col := range append(programScalarColumns[1:], programJSONColumns...) { // id is generated
		cols = append(cols, col)
		vals = append(vals, values[col])
	}
	builder = builder.Columns(cols...).Values(vals...)

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create program SQL")
		return 0, fmt.Errorf("failed to build create program query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrProgramAlreadyExists
		}
		logger.Error().Err(err).Str("programKey", program.ProgramKey).Msg("Error executing create program query")
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	program.ID = id
	return id, nil
}

// Update saves the whole aggregate over the existing row, addressed by key
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	program.UpdatedAt = time.Now()

	values, err := programValues(program)
	if err != nil {
		return err
	}

	setMap := map[string]interface{}{}
	for _, col := range append(programScalarColumns[2:], programJSONColumns...) { // id and key are immutable
		setMap[col] = values[col]
	}

	sql, args, err := r.sb.Update("programs").
		SetMap(setMap).
		Where(squirrel.Eq{"program_key": program.ProgramKey}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update program SQL")
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programKey", program.ProgramKey).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// Delete removes a program by key
func (r *ProgramRepository) Delete(ctx context.Context, programKey string) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"program_key": programKey}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete program SQL")
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programKey", programKey).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// ExistsByKey reports whether a program with the given key is stored
func (r *ProgramRepository) ExistsByKey(ctx context.Context, programKey string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("programs").
		Where(squirrel.Eq{"program_key": programKey}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building program exists SQL")
		return false, fmt.Errorf("failed to build program existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("programKey", programKey).Msg("Error checking program existence")
		return false, fmt.Errorf("error checking program existence: %w", err)
	}

	return exists, nil
}

// programValues marshals the aggregate into a column -> value map
func programValues(p *models.Program) (map[string]interface{}, error) {
	values := map[string]interface{}{
		"id":                  p.ID,
		"program_key":         p.ProgramKey,
		"title_ar":            p.TitleAr,
		"title_en":            p.TitleEn,
		"description_ar":      p.DescriptionAr,
		"description_en":      p.DescriptionEn,
		"summary_ar":          p.SummaryAr,
		"summary_en":          p.SummaryEn,
		"vision_ar":           p.VisionAr,
		"vision_en":           p.VisionEn,
		"mission_ar":          p.MissionAr,
		"mission_en":          p.MissionEn,
		"degree_ar":           p.DegreeAr,
		"degree_en":           p.DegreeEn,
		"department_ar":       p.DepartmentAr,
		"department_en":       p.DepartmentEn,
		"language_ar":         p.LanguageAr,
		"language_en":         p.LanguageEn,
		"study_mode_ar":       p.StudyModeAr,
		"study_mode_en":       p.StudyModeEn,
		"tuition_fees_ar":     p.TuitionFeesAr,
		"tuition_fees_en":     p.TuitionFeesEn,
		"duration_years":      p.DurationYears,
		"semesters_count":     p.SemestersCount,
		"total_credit_hours":  p.TotalCreditHours,
		"contact_email":       p.ContactEmail,
		"contact_phone":       p.ContactPhone,
		"hero_image":          p.HeroImage,
		"icon_name":           p.IconName,
		"brochure_url":        p.BrochureURL,
		"meta_title_ar":       p.MetaTitleAr,
		"meta_title_en":       p.MetaTitleEn,
		"meta_description_ar": p.MetaDescriptionAr,
		"meta_description_en": p.MetaDescriptionEn,
		"is_active":           p.IsActive,
		"is_featured":         p.IsFeatured,
		"display_order":       p.DisplayOrder,
		"created_at":          p.CreatedAt,
		"updated_at":          p.UpdatedAt,
	}

	jsonFields := map[string]interface{}{
		"objectives_ar":          p.ObjectivesAr,
		"objectives_en":          p.ObjectivesEn,
		"outcomes_ar":            p.OutcomesAr,
		"outcomes_en":            p.OutcomesEn,
		"faculty_members":        p.FacultyMembers,
		"academic_years":         p.AcademicYears,
		"admission_requirements": p.AdmissionRequirements,
		"statistics":             p.Statistics,
		"career_opportunities":   p.CareerOpportunities,
	}
	for col, field := range jsonFields {
		data, err := json.Marshal(field)
		if err != nil {
			return nil, fmt.Errorf("error marshaling %s: %w", col, err)
		}
		values[col] = data
	}

	return values, nil
}

// scanProgram reads one program row; the row must carry the scalar columns
// followed by the JSONB columns in declaration order.
func (r *ProgramRepository) scanProgram(row pgx.Row) (*models.Program, error) {
	p := &models.Program{}
	var (
		objectivesAr, objectivesEn, outcomesAr, outcomesEn []byte
		facultyMembers, academicYears, requirements        []byte
		statistics, careerOpportunities                    []byte
	)

	err := row.Scan(
		&p.ID, &p.ProgramKey, &p.TitleAr, &p.TitleEn, &p.DescriptionAr, &p.DescriptionEn,
		&p.SummaryAr, &p.SummaryEn, &p.VisionAr, &p.VisionEn, &p.MissionAr, &p.MissionEn,
		&p.DegreeAr, &p.DegreeEn, &p.DepartmentAr, &p.DepartmentEn, &p.LanguageAr, &p.LanguageEn,
		&p.StudyModeAr, &p.StudyModeEn, &p.TuitionFeesAr, &p.TuitionFeesEn,
		&p.DurationYears, &p.SemestersCount, &p.TotalCreditHours,
		&p.ContactEmail, &p.ContactPhone, &p.HeroImage, &p.IconName, &p.BrochureURL,
		&p.MetaTitleAr, &p.MetaTitleEn, &p.MetaDescriptionAr, &p.MetaDescriptionEn,
		&p.IsActive, &p.IsFeatured, &p.DisplayOrder,
		&p.CreatedAt, &p.UpdatedAt,
		&objectivesAr, &objectivesEn, &outcomesAr, &outcomesEn,
		&facultyMembers, &academicYears, &requirements,
		&statistics, &careerOpportunities,
	)
	if err != nil {
		return nil, err
	}

	jsonFields := []struct {
		data []byte
		dest interface{}
	}{
		{objectivesAr, &p.ObjectivesAr},
		{objectivesEn, &p.ObjectivesEn},
		{outcomesAr, &p.OutcomesAr},
		{outcomesEn, &p.OutcomesEn},
		{facultyMembers, &p.FacultyMembers},
		{academicYears, &p.AcademicYears},
		{requirements, &p.AdmissionRequirements},
		{statistics, &p.Statistics},
		{careerOpportunities, &p.CareerOpportunities},
	}
	for _, f := range jsonFields {
		if len(f.data) == 0 {
			continue
		}
		if err := json.Unmarshal(f.data, f.dest); err != nil {
			return nil, fmt.Errorf("error unmarshaling program field: %w", err)
		}
	}

	return p, nil
}
