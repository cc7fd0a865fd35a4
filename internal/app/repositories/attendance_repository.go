package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/dberrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

// AttendanceRepository handles student attendance mark operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert records a student's mark for a report. A second mark for the
// same (report, student) pair overwrites the first.
func (r *AttendanceRepository) Upsert(ctx context.Context, reportID, studentID int64, status models.AttendanceStatus) error {
	sql, args, err := r.sb.Insert("student_attendance").
		Columns("report_id", "student_id", "status").
		Values(reportID, studentID, status).
		Suffix("ON CONFLICT (report_id, student_id) DO UPDATE SET status = EXCLUDED.status").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert attendance SQL")
		return fmt.Errorf("failed to build upsert attendance query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", reportID).Int64("studentID", studentID).Msg("Error executing upsert attendance query")
		return fmt.Errorf("error upserting attendance: %w", err)
	}

	return nil
}

// GetStatus retrieves a student's mark for a report; nil when no mark exists
func (r *AttendanceRepository) GetStatus(ctx context.Context, reportID, studentID int64) (*string, error) {
	sql, args, err := r.sb.Select("status").
		From("student_attendance").
		Where(squirrel.Eq{"report_id": reportID, "student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get attendance status SQL")
		return nil, fmt.Errorf("failed to build get attendance status query: %w", err)
	}

	var status string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("reportID", reportID).Int64("studentID", studentID).Msg("Error scanning attendance status")
		return nil, fmt.Errorf("error getting attendance status: %w", err)
	}

	return &status, nil
}
