package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/dberrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

// FeedbackRepository handles PRL feedback database operations
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a PRL's feedback on a report and returns its ID. At most
// one feedback per (report, prl) pair; a second attempt is rejected.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	sql, args, err := r.sb.Insert("feedback").
		Columns("report_id", "prl_id", "comment").
		Values(feedback.ReportID, feedback.PRLID, feedback.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create feedback SQL")
		return 0, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &feedback.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrFeedbackAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", feedback.ReportID).Msg("Error executing create feedback query")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}

	return id, nil
}
