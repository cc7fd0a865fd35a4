package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/dberrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

// enrolmentCountSubquery computes the live registered-student count for
// the aliased class row. There is no stored count column to drift from it.
const enrolmentCountSubquery = "(SELECT COUNT(*) FROM student_enrolments se WHERE se.class_id = cl.id)"

// ClassRepository handles class database operations, including the
// monitoring aggregates grouped per class.
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new class and returns its ID
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	sql, args, err := r.sb.Insert("classes").
		Columns("course_id", "class_name", "lecturer_id", "venue", "scheduled_time").
		Values(class.CourseID, class.ClassName, class.LecturerID, class.Venue, class.ScheduledTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create class SQL")
		return 0, fmt.Errorf("failed to build create class query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("className", class.ClassName).Msg("Error executing create class query")
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	return id, nil
}

func (r *ClassRepository) selectClasses() squirrel.SelectBuilder {
	return r.sb.Select(
		"cl.id", "cl.class_name", "cl.course_id", "c.name", "c.code",
		"cl.lecturer_id", "u.name", "cl.venue", "cl.scheduled_time",
		enrolmentCountSubquery).
		From("classes cl").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id")
}

func (r *ClassRepository) scanClassRows(rows pgx.Rows) ([]*dto.ClassResponse, error) {
	classes := []*dto.ClassResponse{}
	for rows.Next() {
		class := &dto.ClassResponse{}
		err := rows.Scan(
			&class.ID, &class.ClassName, &class.CourseID, &class.CourseName, &class.CourseCode,
			&class.LecturerID, &class.LecturerName, &class.Venue, &class.ScheduledTime,
			&class.TotalRegisteredStudents)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning class row")
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating class rows")
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}
	return classes, nil
}

// GetAll retrieves all classes with course, lecturer and live student count
func (r *ClassRepository) GetAll(ctx context.Context) ([]*dto.ClassResponse, error) {
	return r.list(ctx, nil)
}

// GetByLecturer retrieves the classes assigned to one lecturer
func (r *ClassRepository) GetByLecturer(ctx context.Context, lecturerID int64) ([]*dto.ClassResponse, error) {
	return r.list(ctx, squirrel.Eq{"cl.lecturer_id": lecturerID})
}

func (r *ClassRepository) list(ctx context.Context, pred interface{}) ([]*dto.ClassResponse, error) {
	builder := r.selectClasses().OrderBy("cl.class_name ASC")
	if pred != nil {
		builder = builder.Where(pred)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list classes SQL")
		return nil, fmt.Errorf("failed to build list classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list classes query")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	defer rows.Close()

	return r.scanClassRows(rows)
}

// GetByID retrieves a class by ID with course, lecturer and live count
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*dto.ClassResponse, error) {
	sql, args, err := r.selectClasses().
		Where(squirrel.Eq{"cl.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get class by ID SQL")
		return nil, fmt.Errorf("failed to build get class query: %w", err)
	}

	class := &dto.ClassResponse{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&class.ID, &class.ClassName, &class.CourseID, &class.CourseName, &class.CourseCode,
		&class.LecturerID, &class.LecturerName, &class.Venue, &class.ScheduledTime,
		&class.TotalRegisteredStudents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error scanning class row")
		return nil, fmt.Errorf("error getting class by ID: %w", err)
	}

	return class, nil
}

// Update updates a class's details
func (r *ClassRepository) Update(ctx context.Context, id int64, class *models.Class) error {
	sql, args, err := r.sb.Update("classes").
		SetMap(map[string]interface{}{
			"class_name":     class.ClassName,
			"course_id":      class.CourseID,
			"lecturer_id":    class.LecturerID,
			"venue":          class.Venue,
			"scheduled_time": class.ScheduledTime,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update class SQL")
		return fmt.Errorf("failed to build update class query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error executing update class query")
		return fmt.Errorf("error updating class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// Delete deletes a class; enrolments, reports and ratings cascade
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("classes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete class SQL")
		return fmt.Errorf("failed to build delete class query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classID", id).Msg("Error executing delete class query")
		return fmt.Errorf("error deleting class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// AssignLecturer sets the lecturer of a class
func (r *ClassRepository) AssignLecturer(ctx context.Context, classID, lecturerID int64) error {
	sql, args, err := r.sb.Update("classes").
		Set("lecturer_id", lecturerID).
		Where(squirrel.Eq{"id": classID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building assign lecturer SQL")
		return fmt.Errorf("failed to build assign lecturer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrLecturerNotFound
		}
		logger.Error().Err(err).Int64("classID", classID).Msg("Error executing assign lecturer query")
		return fmt.Errorf("error assigning lecturer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// GetStudentMonitorRows retrieves the per-class dashboard rows: live
// student count plus the report tally the averages derive from.
func (r *ClassRepository) GetStudentMonitorRows(ctx context.Context) ([]*dto.StudentMonitorResponse, error) {
	sql, args, err := r.sb.Select(
		"cl.id", "cl.class_name", "c.name", "c.code", "u.name",
		enrolmentCountSubquery,
		"COUNT(lr.id)", "COALESCE(SUM(lr.actual_students_present), 0)").
		From("classes cl").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id").
		LeftJoin("lecture_reports lr ON lr.class_id = cl.id").
		GroupBy("cl.id", "cl.class_name", "c.name", "c.code", "u.name").
		OrderBy("cl.class_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student monitor SQL")
		return nil, fmt.Errorf("failed to build student monitor query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student monitor query")
		return nil, fmt.Errorf("error querying student monitor rows: %w", err)
	}
	defer rows.Close()

	results := []*dto.StudentMonitorResponse{}
	for rows.Next() {
		row := &dto.StudentMonitorResponse{}
		err := rows.Scan(
			&row.ClassID, &row.ClassName, &row.CourseName, &row.CourseCode, &row.LecturerName,
			&row.TotalRegisteredStudents, &row.TotalReports, &row.SumStudentsPresent)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student monitor row")
			return nil, fmt.Errorf("error scanning student monitor row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student monitor rows")
		return nil, fmt.Errorf("error iterating student monitor rows: %w", err)
	}

	return results, nil
}

// GetFacultyMonitorRows retrieves per-class reporting activity and raw
// attendance-mark tallies for one faculty.
func (r *ClassRepository) GetFacultyMonitorRows(ctx context.Context, facultyID int64) ([]*dto.ClassMonitorResponse, error) {
	sql, args, err := r.sb.Select(
		"cl.id", "cl.class_name", "c.name", "c.code", "u.name",
		enrolmentCountSubquery,
		"COUNT(DISTINCT lr.id)", "MAX(lr.date)",
		"COUNT(sa.id) FILTER (WHERE sa.status = 'present')", "COUNT(sa.id)").
		From("classes cl").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id").
		LeftJoin("lecture_reports lr ON lr.class_id = cl.id").
		LeftJoin("student_attendance sa ON sa.report_id = lr.id").
		Where(squirrel.Eq{"c.faculty_id": facultyID}).
		GroupBy("cl.id", "cl.class_name", "c.name", "c.code", "u.name").
		OrderBy("cl.class_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building faculty monitor SQL")
		return nil, fmt.Errorf("failed to build faculty monitor query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing faculty monitor query")
		return nil, fmt.Errorf("error querying faculty monitor rows: %w", err)
	}
	defer rows.Close()

	results := []*dto.ClassMonitorResponse{}
	for rows.Next() {
		row := &dto.ClassMonitorResponse{}
		err := rows.Scan(
			&row.ClassID, &row.ClassName, &row.CourseName, &row.CourseCode, &row.LecturerName,
			&row.TotalRegisteredStudents, &row.TotalReports, &row.LastReportDate,
			&row.PresentMarks, &row.TotalMarks)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty monitor row")
			return nil, fmt.Errorf("error scanning faculty monitor row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty monitor rows")
		return nil, fmt.Errorf("error iterating faculty monitor rows: %w", err)
	}

	return results, nil
}

// GetFacultyClassRows retrieves per-class rows for one faculty with live
// counts and report tallies, grouped under their course by the caller.
func (r *ClassRepository) GetFacultyClassRows(ctx context.Context, facultyID int64) (map[int64][]dto.PRLClassResponse, error) {
	sql, args, err := r.sb.Select(
		"cl.course_id", "cl.id", "cl.class_name", "u.name", "cl.venue", "cl.scheduled_time",
		enrolmentCountSubquery,
		"(SELECT COUNT(*) FROM lecture_reports lr WHERE lr.class_id = cl.id)").
		From("classes cl").
		Join("courses c ON c.id = cl.course_id").
		LeftJoin("users u ON u.id = cl.lecturer_id").
		Where(squirrel.Eq{"c.faculty_id": facultyID}).
		OrderBy("cl.class_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building faculty class rows SQL")
		return nil, fmt.Errorf("failed to build faculty class rows query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing faculty class rows query")
		return nil, fmt.Errorf("error querying faculty class rows: %w", err)
	}
	defer rows.Close()

	byCourse := map[int64][]dto.PRLClassResponse{}
	for rows.Next() {
		var courseID int64
		row := dto.PRLClassResponse{}
		err := rows.Scan(
			&courseID, &row.ID, &row.ClassName, &row.LecturerName, &row.Venue, &row.ScheduledTime,
			&row.TotalRegisteredStudents, &row.TotalReports)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty class row")
			return nil, fmt.Errorf("error scanning faculty class row: %w", err)
		}
		byCourse[courseID] = append(byCourse[courseID], row)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty class rows")
		return nil, fmt.Errorf("error iterating faculty class rows: %w", err)
	}

	return byCourse, nil
}
