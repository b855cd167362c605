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

// ErrPaymentRecordNotFound is returned when a payment record is not found.
var ErrPaymentRecordNotFound = errors.New("payment record not found")

var paymentColumns = []string{
	"id", "student_id", "description_ar", "amount", "currency",
	"due_date", "paid_at", "status", "receipt_number",
}

// PaymentRepository handles payment record database operations
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByStudent retrieves a student's payment records, newest due first
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.PaymentRecord, error) {
	sql, args, err := r.sb.Select(paymentColumns...).
		From("payment_records").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("due_date DESC NULLS LAST", "id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list payments SQL")
		return nil, fmt.Errorf("failed to build list payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list payments query")
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []models.PaymentRecord{}
	for rows.Next() {
		var p models.PaymentRecord
		if err := rows.Scan(
			&p.ID, &p.StudentID, &p.DescriptionAr, &p.Amount, &p.Currency,
			&p.DueDate, &p.PaidAt, &p.Status, &p.ReceiptNumber,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning payment row")
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating payment rows")
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

// OutstandingBalance sums the unpaid amounts on a student account
func (r *PaymentRepository) OutstandingBalance(ctx context.Context, studentID int64) (float64, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(amount), 0)").
		From("payment_records").
		Where(squirrel.Eq{"student_id": studentID}).
		Where(squirrel.NotEq{"status": models.PaymentPaid}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building outstanding balance SQL")
		return 0, fmt.Errorf("failed to build outstanding balance query: %w", err)
	}

	var balance float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&balance); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error querying outstanding balance")
		return 0, fmt.Errorf("error querying outstanding balance: %w", err)
	}

	return balance, nil
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.PaymentRecord) (int64, error) {
	sql, args, err := r.sb.Insert("payment_records").
		Columns(paymentColumns[1:]...).
		Values(
			payment.StudentID, payment.DescriptionAr, payment.Amount, payment.Currency,
			payment.DueDate, payment.PaidAt, payment.Status, payment.ReceiptNumber,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create payment SQL")
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create payment query")
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	payment.ID = id
	return id, nil
}
