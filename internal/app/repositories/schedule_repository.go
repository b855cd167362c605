package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

var scheduleColumns = []string{
	"id", "program_key", "level", "semester", "day_of_week",
	"start_time", "end_time", "course_code", "course_name_ar",
	"instructor_name_ar", "room",
}

// ScheduleRepository handles schedule database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListForProgramLevel retrieves the weekly schedule of one program level,
// ordered by day then start time.
func (r *ScheduleRepository) ListForProgramLevel(ctx context.Context, programKey string, level int, semester models.Semester) ([]models.ScheduleEntry, error) {
	sql, args, err := r.sb.Select(scheduleColumns...).
		From("schedule_entries").
		Where(squirrel.Eq{"program_key": programKey, "level": level, "semester": semester}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list schedule SQL")
		return nil, fmt.Errorf("failed to build list schedule query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programKey", programKey).Msg("Error executing list schedule query")
		return nil, fmt.Errorf("error querying schedule: %w", err)
	}
	defer rows.Close()

	entries := []models.ScheduleEntry{}
	for rows.Next() {
		var e models.ScheduleEntry
		if err := rows.Scan(
			&e.ID, &e.ProgramKey, &e.Level, &e.Semester, &e.DayOfWeek,
			&e.StartTime, &e.EndTime, &e.CourseCode, &e.CourseNameAr,
			&e.InstructorNameAr, &e.Room,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning schedule row")
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating schedule rows")
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return entries, nil
}

// Create inserts a new schedule entry
func (r *ScheduleRepository) Create(ctx context.Context, entry *models.ScheduleEntry) (int64, error) {
	sql, args, err := r.sb.Insert("schedule_entries").
		Columns(scheduleColumns[1:]...).
		Values(
			entry.ProgramKey, entry.Level, entry.Semester, entry.DayOfWeek,
			entry.StartTime, entry.EndTime, entry.CourseCode, entry.CourseNameAr,
			entry.InstructorNameAr, entry.Room,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create schedule entry SQL")
		return 0, fmt.Errorf("failed to build create schedule entry query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create schedule entry query")
		return 0, fmt.Errorf("error creating schedule entry: %w", err)
	}

	entry.ID = id
	return id, nil
}
