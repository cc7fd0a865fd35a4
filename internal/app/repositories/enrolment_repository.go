package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/dberrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

// EnrolmentRepository handles student enrolment database operations
type EnrolmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrolmentRepository creates a new EnrolmentRepository
func NewEnrolmentRepository(db *pgxpool.Pool) *EnrolmentRepository {
	return &EnrolmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Enrol inserts one enrolment and returns its ID. The (student, class)
// pair is unique; a second attempt is rejected, never duplicated.
func (r *EnrolmentRepository) Enrol(ctx context.Context, studentID, classID int64) (int64, error) {
	sql, args, err := r.sb.Insert("student_enrolments").
		Columns("student_id", "class_id").
		Values(studentID, classID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enrol SQL")
		return 0, fmt.Errorf("failed to build enrol query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("classID", classID).Msg("Error executing enrol query")
		return 0, fmt.Errorf("error enrolling student: %w", err)
	}

	return id, nil
}

// GetByStudent retrieves a student's enrolments with class context
func (r *EnrolmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*dto.EnrolmentResponse, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.class_id", "cl.class_name", "c.name", "c.code", "u.name",
		"cl.venue", "cl.scheduled_time").
		From("student_enrolments e").
		Join("classes cl ON cl.id = e.class_id").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("cl.class_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrolments SQL")
		return nil, fmt.Errorf("failed to build get enrolments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get enrolments query")
		return nil, fmt.Errorf("error querying enrolments: %w", err)
	}
	defer rows.Close()

	enrolments := []*dto.EnrolmentResponse{}
	for rows.Next() {
		enrolment := &dto.EnrolmentResponse{}
		err := rows.Scan(
			&enrolment.ID, &enrolment.ClassID, &enrolment.ClassName, &enrolment.CourseName,
			&enrolment.CourseCode, &enrolment.LecturerName, &enrolment.Venue, &enrolment.ScheduledTime)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning enrolment row")
			return nil, fmt.Errorf("error scanning enrolment row: %w", err)
		}
		enrolments = append(enrolments, enrolment)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enrolment rows")
		return nil, fmt.Errorf("error iterating enrolment rows: %w", err)
	}

	return enrolments, nil
}

// Exists checks if a student is enrolled in a class
func (r *EnrolmentRepository) Exists(ctx context.Context, studentID, classID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("student_enrolments").
		Where(squirrel.Eq{"student_id": studentID, "class_id": classID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enrolment exists SQL")
		return false, fmt.Errorf("failed to build enrolment existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("classID", classID).Msg("Error checking enrolment existence")
		return false, fmt.Errorf("error checking enrolment existence: %w", err)
	}

	return exists, nil
}
