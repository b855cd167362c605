package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/pkg/dberrors"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// Student error types
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrStudentNumberExists = errors.New("student number already exists")
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student profile
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "student_number", "program_key", "level", "enrollment_year", "status").
		Values(student.UserID, student.StudentNumber, student.ProgramKey, student.Level, student.EnrollmentYear, student.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrStudentNumberExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	return id, nil
}

// GetByUserID retrieves the student profile of a user, with the user joined
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"s.user_id": userID})
}

// GetByStudentNumber retrieves a student by their student number
func (r *StudentRepository) GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"s.student_number": studentNumber})
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.user_id", "s.student_number", "s.program_key", "s.level", "s.enrollment_year", "s.status",
		"u.id", "u.email", "u.first_name", "u.last_name", "u.role_type", "u.is_active",
	).
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.UserID, &student.StudentNumber, &student.ProgramKey,
		&student.Level, &student.EnrollmentYear, &student.Status,
		&student.User.ID, &student.User.Email, &student.User.FirstName, &student.User.LastName,
		&student.User.RoleType, &student.User.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// StudentNumberExists reports whether a student number is taken
func (r *StudentRepository) StudentNumberExists(ctx context.Context, studentNumber string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"student_number": studentNumber}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student number exists SQL")
		return false, fmt.Errorf("failed to build student number existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error checking student number existence")
		return false, fmt.Errorf("error checking student number existence: %w", err)
	}

	return exists, nil
}
