package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profefranko/profefranko-api/internal/models"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
	"github.com/profefranko/profefranko-api/pkg/metrics"
)

// PostgresSubmissionRepository implements SubmissionRepository on pgx.
type PostgresSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubmissionRepository creates a new submission repository
func NewPostgresSubmissionRepository(pool *pgxpool.Pool) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{pool: pool}
}

// Ensure PostgresSubmissionRepository implements SubmissionRepository
var _ SubmissionRepository = (*PostgresSubmissionRepository)(nil)

func recordMetrics(operation, status string, duration float64) {
	metrics.DBRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBRequestTotal.WithLabelValues(operation, status).Inc()
}

// CreateContactInquiry stores a contact submission and returns its reference
func (r *PostgresSubmissionRepository) CreateContactInquiry(ctx context.Context, sub models.ContactSubmission) (string, error) {
	start := time.Now()
	operation := "createContactInquiry"

	reference := uuid.New().String()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO contact_inquiries
			(reference, role, name, email, phone, organization, city, country, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		reference, string(sub.Role), sub.Name, sub.Email, sub.Phone,
		sub.Organization, sub.City, sub.Country, sub.Message, string(models.StatusNew),
	)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return "", fmt.Errorf("failed to insert contact inquiry: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return reference, nil
}

// CreateEventQuote stores an event quote submission and returns its reference
func (r *PostgresSubmissionRepository) CreateEventQuote(ctx context.Context, sub models.EventQuoteSubmission) (string, error) {
	start := time.Now()
	operation := "createEventQuote"

	reference := uuid.New().String()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO event_quotes
			(reference, client_name, client_email, client_phone,
			 event_date, event_time, event_type, number_of_fights,
			 expected_attendance, budget_range, venue_name, venue_address,
			 ring_needed, equipment_needed, additional_services,
			 special_requirements, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		reference, sub.ClientName, sub.ClientEmail, sub.ClientPhone,
		sub.EventDate, sub.EventTime, string(sub.EventType), sub.NumberOfFights,
		sub.ExpectedAttendance, sub.BudgetRange, sub.VenueName, sub.VenueAddress,
		sub.RingNeeded, sub.EquipmentNeeded, sub.AdditionalServices,
		sub.SpecialRequirements, string(models.StatusNew),
	)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return "", fmt.Errorf("failed to insert event quote: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return reference, nil
}

// ListContactInquiries returns stored contact inquiries, newest first
func (r *PostgresSubmissionRepository) ListContactInquiries(ctx context.Context, limit, offset int) ([]*models.ContactInquiry, error) {
	start := time.Now()
	operation := "listContactInquiries"

	rows, err := r.pool.Query(ctx, `
		SELECT id, reference, role, name, email, phone, organization, city,
		       country, message, status, created_at, updated_at
		FROM contact_inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query contact inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []*models.ContactInquiry{}
	for rows.Next() {
		var inquiry models.ContactInquiry
		var role, status string
		err := rows.Scan(
			&inquiry.ID, &inquiry.Reference, &role,
			&inquiry.Submission.Name, &inquiry.Submission.Email,
			&inquiry.Submission.Phone, &inquiry.Submission.Organization,
			&inquiry.Submission.City, &inquiry.Submission.Country,
			&inquiry.Submission.Message, &status,
			&inquiry.CreatedAt, &inquiry.UpdatedAt,
		)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan contact inquiry: %w", err)
		}
		inquiry.Submission.Role = models.ParseRole(role)
		inquiry.Status = models.SubmissionStatus(status)
		inquiries = append(inquiries, &inquiry)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read contact inquiries: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return inquiries, nil
}

// ListEventQuotes returns stored event quotes, newest first
func (r *PostgresSubmissionRepository) ListEventQuotes(ctx context.Context, limit, offset int) ([]*models.EventQuote, error) {
	start := time.Now()
	operation := "listEventQuotes"

	rows, err := r.pool.Query(ctx, `
		SELECT id, reference, client_name, client_email, client_phone,
		       event_date, event_time, event_type, number_of_fights,
		       expected_attendance, budget_range, venue_name, venue_address,
		       ring_needed, equipment_needed, additional_services,
		       special_requirements, status, created_at, updated_at
		FROM event_quotes
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query event quotes: %w", err)
	}
	defer rows.Close()

	quotes := []*models.EventQuote{}
	for rows.Next() {
		var quote models.EventQuote
		var eventType, status string
		err := rows.Scan(
			&quote.ID, &quote.Reference,
			&quote.Submission.ClientName, &quote.Submission.ClientEmail,
			&quote.Submission.ClientPhone,
			&quote.Submission.EventDate, &quote.Submission.EventTime,
			&eventType, &quote.Submission.NumberOfFights,
			&quote.Submission.ExpectedAttendance, &quote.Submission.BudgetRange,
			&quote.Submission.VenueName, &quote.Submission.VenueAddress,
			&quote.Submission.RingNeeded, &quote.Submission.EquipmentNeeded,
			&quote.Submission.AdditionalServices,
			&quote.Submission.SpecialRequirements, &status,
			&quote.CreatedAt, &quote.UpdatedAt,
		)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan event quote: %w", err)
		}
		quote.Submission.EventType = models.EventType(eventType)
		quote.Status = models.SubmissionStatus(status)
		quotes = append(quotes, &quote)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read event quotes: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return quotes, nil
}

// UpdateContactStatus advances a contact inquiry through the workflow
func (r *PostgresSubmissionRepository) UpdateContactStatus(ctx context.Context, reference string, status models.SubmissionStatus) error {
	return r.updateStatus(ctx, "updateContactStatus", "contact_inquiries", reference, status)
}

// UpdateQuoteStatus advances an event quote through the workflow
func (r *PostgresSubmissionRepository) UpdateQuoteStatus(ctx context.Context, reference string, status models.SubmissionStatus) error {
	return r.updateStatus(ctx, "updateQuoteStatus", "event_quotes", reference, status)
}

func (r *PostgresSubmissionRepository) updateStatus(ctx context.Context, operation, table, reference string, status models.SubmissionStatus) error {
	start := time.Now()

	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET status = $1, updated_at = now() WHERE reference = $2", table),
		string(status), reference,
	)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			recordMetrics(operation, "not_found", duration)
			return apperrors.NotFoundError("submission")
		}
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "not_found", duration)
		return apperrors.NotFoundError("submission")
	}

	recordMetrics(operation, "success", duration)
	return nil
}
