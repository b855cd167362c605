package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// ErrDocumentNotFound is returned when a student document is not found.
var ErrDocumentNotFound = errors.New("document not found")

var documentColumns = []string{
	"id", "student_id", "title_ar", "title_en", "doc_type",
	"file_url", "status", "uploaded_at",
}

// DocumentRepository handles student document database operations
type DocumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByStudent retrieves a student's documents, newest first
func (r *DocumentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentDocument, error) {
	sql, args, err := r.sb.Select(documentColumns...).
		From("student_documents").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list documents SQL")
		return nil, fmt.Errorf("failed to build list documents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list documents query")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	documents := []models.StudentDocument{}
	for rows.Next() {
		var d models.StudentDocument
		if err := rows.Scan(
			&d.ID, &d.StudentID, &d.TitleAr, &d.TitleEn, &d.DocType,
			&d.FileURL, &d.Status, &d.UploadedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning document row")
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		documents = append(documents, d)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating document rows")
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return documents, nil
}

// Create inserts a new student document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.StudentDocument) (int64, error) {
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}

	sql, args, err := r.sb.Insert("student_documents").
		Columns(documentColumns[1:]...).
		Values(doc.StudentID, doc.TitleAr, doc.TitleEn, doc.DocType, doc.FileURL, doc.Status, doc.UploadedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create document SQL")
		return 0, fmt.Errorf("failed to build create document query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create document query")
		return 0, fmt.Errorf("error creating document: %w", err)
	}

	doc.ID = id
	return id, nil
}
