package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/dberrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

// RatingRepository handles class rating database operations
type RatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new rating and returns its ID
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) (int64, error) {
	sql, args, err := r.sb.Insert("ratings").
		Columns("class_id", "user_id", "rating", "comment").
		Values(rating.ClassID, rating.UserID, rating.Rating, rating.Comment).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create rating SQL")
		return 0, fmt.Errorf("failed to build create rating query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", rating.ClassID).Msg("Error executing create rating query")
		return 0, fmt.Errorf("error creating rating: %w", err)
	}

	return id, nil
}

// GetAvailableForStudent retrieves the classes a student is enrolled in,
// ready to be browsed before rating.
func (r *RatingRepository) GetAvailableForStudent(ctx context.Context, studentID int64) ([]*dto.AvailableClassResponse, error) {
	sql, args, err := r.sb.Select(
		"cl.id", "c.name", "c.code", "u.name", "cl.venue", "cl.scheduled_time").
		From("student_enrolments e").
		Join("classes cl ON cl.id = e.class_id").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building available classes SQL")
		return nil, fmt.Errorf("failed to build available classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing available classes query")
		return nil, fmt.Errorf("error querying available classes: %w", err)
	}
	defer rows.Close()

	classes := []*dto.AvailableClassResponse{}
	for rows.Next() {
		class := &dto.AvailableClassResponse{}
		err := rows.Scan(
			&class.ClassID, &class.CourseName, &class.CourseCode, &class.LecturerName,
			&class.Venue, &class.ScheduledTime)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning available class row")
			return nil, fmt.Errorf("error scanning available class row: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating available class rows")
		return nil, fmt.Errorf("error iterating available class rows: %w", err)
	}

	return classes, nil
}

// GetByStudent retrieves a student's own ratings, newest first
func (r *RatingRepository) GetByStudent(ctx context.Context, studentID int64) ([]*dto.MyRatingResponse, error) {
	sql, args, err := r.sb.Select(
		"rt.id", "rt.rating", "rt.comment", "rt.class_id", "c.name", "u.name", "rt.created_at").
		From("ratings rt").
		Join("classes cl ON cl.id = rt.class_id").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id").
		Where(squirrel.Eq{"rt.user_id": studentID}).
		OrderBy("rt.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building my ratings SQL")
		return nil, fmt.Errorf("failed to build my ratings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing my ratings query")
		return nil, fmt.Errorf("error querying my ratings: %w", err)
	}
	defer rows.Close()

	ratings := []*dto.MyRatingResponse{}
	for rows.Next() {
		rating := &dto.MyRatingResponse{}
		err := rows.Scan(
			&rating.ID, &rating.Rating, &rating.Comment, &rating.ClassID,
			&rating.CourseName, &rating.LecturerName, &rating.CreatedAt)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning my rating row")
			return nil, fmt.Errorf("error scanning my rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating my rating rows")
		return nil, fmt.Errorf("error iterating my rating rows: %w", err)
	}

	return ratings, nil
}

// GetSummaryByLecturer retrieves per-course raw rating tallies for the
// classes of one lecturer. The average is derived by the service.
func (r *RatingRepository) GetSummaryByLecturer(ctx context.Context, lecturerID int64) ([]*dto.RatingSummaryResponse, error) {
	sql, args, err := r.sb.Select("c.name", "COALESCE(SUM(rt.rating), 0)", "COUNT(rt.id)").
		From("ratings rt").
		Join("classes cl ON cl.id = rt.class_id").
		Join("courses c ON c.id = cl.course_id").
		Where(squirrel.Eq{"cl.lecturer_id": lecturerID}).
		GroupBy("c.id", "c.name").
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building rating summary SQL")
		return nil, fmt.Errorf("failed to build rating summary query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lecturerID", lecturerID).Msg("Error executing rating summary query")
		return nil, fmt.Errorf("error querying rating summary: %w", err)
	}
	defer rows.Close()

	summaries := []*dto.RatingSummaryResponse{}
	for rows.Next() {
		summary := &dto.RatingSummaryResponse{}
		if err := rows.Scan(&summary.CourseName, &summary.RatingSum, &summary.TotalRatings); err != nil {
			logger.Error().Err(err).Msg("Error scanning rating summary row")
			return nil, fmt.Errorf("error scanning rating summary row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating rating summary rows")
		return nil, fmt.Errorf("error iterating rating summary rows: %w", err)
	}

	return summaries, nil
}

// GetDetailsByLecturer retrieves the individual ratings for the classes
// of one lecturer, newest first.
func (r *RatingRepository) GetDetailsByLecturer(ctx context.Context, lecturerID int64) ([]*dto.RatingDetailResponse, error) {
	sql, args, err := r.sb.Select("c.name", "rt.rating", "rt.comment", "rt.created_at").
		From("ratings rt").
		Join("classes cl ON cl.id = rt.class_id").
		Join("courses c ON c.id = cl.course_id").
		Where(squirrel.Eq{"cl.lecturer_id": lecturerID}).
		OrderBy("rt.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building rating details SQL")
		return nil, fmt.Errorf("failed to build rating details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lecturerID", lecturerID).Msg("Error executing rating details query")
		return nil, fmt.Errorf("error querying rating details: %w", err)
	}
	defer rows.Close()

	details := []*dto.RatingDetailResponse{}
	for rows.Next() {
		detail := &dto.RatingDetailResponse{}
		if err := rows.Scan(&detail.CourseName, &detail.Rating, &detail.Comment, &detail.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning rating detail row")
			return nil, fmt.Errorf("error scanning rating detail row: %w", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating rating detail rows")
		return nil, fmt.Errorf("error iterating rating detail rows: %w", err)
	}

	return details, nil
}

// GetByFaculty retrieves the ratings for one faculty's classes
func (r *RatingRepository) GetByFaculty(ctx context.Context, facultyID int64) ([]*dto.PRLRatingResponse, error) {
	sql, args, err := r.sb.Select(
		"rt.id", "rt.rating", "rt.comment", "s.name",
		"cl.id", "cl.class_name", "c.id", "c.name", "c.code", "u.name").
		From("ratings rt").
		Join("users s ON s.id = rt.user_id").
		Join("classes cl ON cl.id = rt.class_id").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id").
		Where(squirrel.Eq{"c.faculty_id": facultyID}).
		OrderBy("rt.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building faculty ratings SQL")
		return nil, fmt.Errorf("failed to build faculty ratings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing faculty ratings query")
		return nil, fmt.Errorf("error querying faculty ratings: %w", err)
	}
	defer rows.Close()

	ratings := []*dto.PRLRatingResponse{}
	for rows.Next() {
		rating := &dto.PRLRatingResponse{}
		err := rows.Scan(
			&rating.ID, &rating.Rating, &rating.Comment, &rating.StudentName,
			&rating.ClassID, &rating.ClassName, &rating.CourseID, &rating.CourseName,
			&rating.CourseCode, &rating.LecturerName)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty rating row")
			return nil, fmt.Errorf("error scanning faculty rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rating rows")
		return nil, fmt.Errorf("error iterating faculty rating rows: %w", err)
	}

	return ratings, nil
}
