package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// ErrGradeNotFound is returned when a grade record is not found.
var ErrGradeNotFound = errors.New("grade record not found")

var gradeColumns = []string{
	"id", "student_id", "course_code", "course_name_ar", "course_name_en",
	"academic_year", "semester", "credit_hours", "coursework", "midterm",
	"final", "total", "letter_grade", "grade_points",
}

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByStudent retrieves all grades of a student ordered by academic year
// and semester, oldest first.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	sql, args, err := r.sb.Select(gradeColumns...).
		From("grades").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("academic_year ASC", "semester ASC", "course_code ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list grades SQL")
		return nil, fmt.Errorf("failed to build list grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list grades query")
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(
			&g.ID, &g.StudentID, &g.CourseCode, &g.CourseNameAr, &g.CourseNameEn,
			&g.AcademicYear, &g.Semester, &g.CreditHours, &g.Coursework, &g.Midterm,
			&g.Final, &g.Total, &g.LetterGrade, &g.GradePoints,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning grade row")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grades = append(grades, g)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating grade rows")
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return grades, nil
}

// Create inserts a new grade record
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	sql, args, err := r.sb.Insert("grades").
		Columns(gradeColumns[1:]...).
		Values(
			grade.StudentID, grade.CourseCode, grade.CourseNameAr, grade.CourseNameEn,
			grade.AcademicYear, grade.Semester, grade.CreditHours, grade.Coursework,
			grade.Midterm, grade.Final, grade.Total, grade.LetterGrade, grade.GradePoints,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create grade SQL")
		return 0, fmt.Errorf("failed to build create grade query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create grade query")
		return 0, fmt.Errorf("error creating grade: %w", err)
	}

	grade.ID = id
	return id, nil
}
