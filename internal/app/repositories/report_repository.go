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

// reportEnrolmentCount computes the live registered-student count for the
// report's class at query time.
const reportEnrolmentCount = "(SELECT COUNT(*) FROM student_enrolments se WHERE se.class_id = lr.class_id)"

// ReportRepository handles lecture report database operations and the
// dashboard aggregates built on reports.
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lecture report and returns its ID. Reports are
// immutable; there is no update path.
func (r *ReportRepository) Create(ctx context.Context, report *models.LectureReport) (int64, error) {
	sql, args, err := r.sb.Insert("lecture_reports").
		Columns("class_id", "submitted_by", "week", "date", "topic",
			"learning_outcomes", "recommendations", "actual_students_present").
		Values(report.ClassID, report.SubmittedBy, report.Week, report.Date, report.Topic,
			report.LearningOutcomes, report.Recommendations, report.ActualStudentsPresent).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create report SQL")
		return 0, fmt.Errorf("failed to build create report query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", report.ClassID).Msg("Error executing create report query")
		return 0, fmt.Errorf("error creating report: %w", err)
	}

	return id, nil
}

func (r *ReportRepository) selectReports() squirrel.SelectBuilder {
	return r.sb.Select(
		"lr.id", "lr.class_id", "cl.class_name", "c.name", "u.name",
		"lr.week", "lr.date", "lr.topic", "lr.learning_outcomes", "lr.recommendations",
		"lr.actual_students_present", reportEnrolmentCount, "lr.created_at").
		From("lecture_reports lr").
		Join("classes cl ON cl.id = lr.class_id").
		Join("courses c ON c.id = cl.course_id").
		Join("users u ON u.id = lr.submitted_by")
}

func scanReport(row pgx.Row, report *dto.ReportResponse) error {
	return row.Scan(
		&report.ID, &report.ClassID, &report.ClassName, &report.CourseName, &report.LecturerName,
		&report.Week, &report.Date, &report.Topic, &report.LearningOutcomes, &report.Recommendations,
		&report.ActualStudentsPresent, &report.TotalRegisteredStudents, &report.CreatedAt)
}

// GetByID retrieves a report by ID with class context and live count
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*dto.ReportResponse, error) {
	sql, args, err := r.selectReports().
		Where(squirrel.Eq{"lr.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get report by ID SQL")
		return nil, fmt.Errorf("failed to build get report query: %w", err)
	}

	report := &dto.ReportResponse{}
	if err := scanReport(r.db.QueryRow(ctx, sql, args...), report); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", id).Msg("Error scanning report row")
		return nil, fmt.Errorf("error getting report by ID: %w", err)
	}

	return report, nil
}

// List retrieves reports, newest first, optionally filtered by a
// case-insensitive search over topic and learning outcomes. A non-nil
// facultyID bounds the listing to that faculty's courses in SQL; no
// row outside it ever leaves the database.
func (r *ReportRepository) List(ctx context.Context, search string, facultyID *int64) ([]*dto.ReportResponse, error) {
	builder := r.selectReports().OrderBy("lr.date DESC", "lr.id DESC")
	if facultyID != nil {
		builder = builder.Where(squirrel.Eq{"c.faculty_id": *facultyID})
	}
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"lr.topic": pattern},
			squirrel.ILike{"lr.learning_outcomes": pattern},
		})
	}
	return r.listReports(ctx, builder)
}

// GetByLecturer retrieves the reports submitted by one lecturer
func (r *ReportRepository) GetByLecturer(ctx context.Context, lecturerID int64) ([]*dto.ReportResponse, error) {
	builder := r.selectReports().
		Where(squirrel.Eq{"lr.submitted_by": lecturerID}).
		OrderBy("lr.date DESC", "lr.id DESC")
	return r.listReports(ctx, builder)
}

// GetRecentByLecturer retrieves a lecturer's most recently submitted
// reports. Recency here is submission time, not lecture date, so a
// backfilled report for an old session still tops the dashboard panel.
func (r *ReportRepository) GetRecentByLecturer(ctx context.Context, lecturerID int64, limit uint64) ([]*dto.ReportResponse, error) {
	builder := r.selectReports().
		Where(squirrel.Eq{"lr.submitted_by": lecturerID}).
		OrderBy("lr.created_at DESC", "lr.id DESC").
		Limit(limit)
	return r.listReports(ctx, builder)
}

func (r *ReportRepository) listReports(ctx context.Context, builder squirrel.SelectBuilder) ([]*dto.ReportResponse, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list reports SQL")
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []*dto.ReportResponse{}
	for rows.Next() {
		report := &dto.ReportResponse{}
		if err := scanReport(rows, report); err != nil {
			logger.Error().Err(err).Msg("Error scanning report row")
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating report rows")
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}

// GetForEnrolledStudent retrieves reports for the classes a student is
// enrolled in, each joined with the student's own attendance mark.
func (r *ReportRepository) GetForEnrolledStudent(ctx context.Context, studentID int64) ([]*dto.StudentReportResponse, error) {
	sql, args, err := r.sb.Select(
		"lr.id", "lr.class_id", "cl.class_name", "u.name",
		"lr.week", "lr.date", "lr.topic", "lr.learning_outcomes", "lr.recommendations",
		"lr.actual_students_present", "sa.status").
		From("lecture_reports lr").
		Join("classes cl ON cl.id = lr.class_id").
		Join("users u ON u.id = lr.submitted_by").
		Join("student_enrolments e ON e.class_id = lr.class_id AND e.student_id = ?", studentID).
		LeftJoin("student_attendance sa ON sa.report_id = lr.id AND sa.student_id = ?", studentID).
		OrderBy("lr.date DESC", "lr.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student reports SQL")
		return nil, fmt.Errorf("failed to build student reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing student reports query")
		return nil, fmt.Errorf("error querying student reports: %w", err)
	}
	defer rows.Close()

	reports := []*dto.StudentReportResponse{}
	for rows.Next() {
		report := &dto.StudentReportResponse{}
		err := rows.Scan(
			&report.ID, &report.ClassID, &report.ClassName, &report.LecturerName,
			&report.Week, &report.Date, &report.Topic, &report.LearningOutcomes, &report.Recommendations,
			&report.ActualStudentsPresent, &report.StudentStatus)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student report row")
			return nil, fmt.Errorf("error scanning student report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student report rows")
		return nil, fmt.Errorf("error iterating student report rows: %w", err)
	}

	return reports, nil
}

// GetByFaculty retrieves the reports of one faculty's courses, each joined
// with the calling PRL's own existing feedback when present.
func (r *ReportRepository) GetByFaculty(ctx context.Context, facultyID, prlID int64) ([]*dto.PRLReportResponse, error) {
	sql, args, err := r.sb.Select(
		"lr.id", "lr.class_id", "cl.class_name", "c.name", "u.name",
		"lr.week", "lr.date", "lr.topic", "lr.learning_outcomes", "lr.recommendations",
		"lr.actual_students_present", reportEnrolmentCount, "lr.created_at",
		"lr.submitted_by", "fb.comment").
		From("lecture_reports lr").
		Join("classes cl ON cl.id = lr.class_id").
		Join("courses c ON c.id = cl.course_id").
		Join("users u ON u.id = lr.submitted_by").
		LeftJoin("feedback fb ON fb.report_id = lr.id AND fb.prl_id = ?", prlID).
		Where(squirrel.Eq{"c.faculty_id": facultyID}).
		OrderBy("lr.date DESC", "lr.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building faculty reports SQL")
		return nil, fmt.Errorf("failed to build faculty reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing faculty reports query")
		return nil, fmt.Errorf("error querying faculty reports: %w", err)
	}
	defer rows.Close()

	reports := []*dto.PRLReportResponse{}
	for rows.Next() {
		report := &dto.PRLReportResponse{}
		err := rows.Scan(
			&report.ID, &report.ClassID, &report.ClassName, &report.CourseName, &report.LecturerName,
			&report.Week, &report.Date, &report.Topic, &report.LearningOutcomes, &report.Recommendations,
			&report.ActualStudentsPresent, &report.TotalRegisteredStudents, &report.CreatedAt,
			&report.SubmittedBy, &report.ExistingFeedback)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty report row")
			return nil, fmt.Errorf("error scanning faculty report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty report rows")
		return nil, fmt.Errorf("error iterating faculty report rows: %w", err)
	}

	return reports, nil
}

// ExistsForClass checks if a class has at least one report
func (r *ReportRepository) ExistsForClass(ctx context.Context, classID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("lecture_reports").
		Where(squirrel.Eq{"class_id": classID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building report exists SQL")
		return false, fmt.Errorf("failed to build report existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("classID", classID).Msg("Error checking report existence")
		return false, fmt.Errorf("error checking report existence: %w", err)
	}

	return exists, nil
}

// GetReportFacultyID retrieves the faculty that owns a report's course
func (r *ReportRepository) GetReportFacultyID(ctx context.Context, reportID int64) (int64, error) {
	sql, args, err := r.sb.Select("c.faculty_id").
		From("lecture_reports lr").
		Join("classes cl ON cl.id = lr.class_id").
		Join("courses c ON c.id = cl.course_id").
		Where(squirrel.Eq{"lr.id": reportID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building report faculty SQL")
		return 0, fmt.Errorf("failed to build report faculty query: %w", err)
	}

	var facultyID int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&facultyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", reportID).Msg("Error scanning report faculty")
		return 0, fmt.Errorf("error getting report faculty: %w", err)
	}

	return facultyID, nil
}

// GetLecturerStats retrieves a lecturer's dashboard counts in one query
func (r *ReportRepository) GetLecturerStats(ctx context.Context, lecturerID int64) (*dto.LecturerStatsResponse, error) {
	sql, args, err := r.sb.Select().
		Column(squirrel.Expr("(SELECT COUNT(*) FROM classes WHERE lecturer_id = ?)", lecturerID)).
		Column(squirrel.Expr("(SELECT COUNT(*) FROM lecture_reports WHERE submitted_by = ?)", lecturerID)).
		Column(squirrel.Expr(
			"(SELECT COUNT(DISTINCT se.student_id) FROM student_enrolments se JOIN classes cl ON cl.id = se.class_id WHERE cl.lecturer_id = ?)",
			lecturerID)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building lecturer stats SQL")
		return nil, fmt.Errorf("failed to build lecturer stats query: %w", err)
	}

	stats := &dto.LecturerStatsResponse{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&stats.TotalClasses, &stats.TotalReports, &stats.TotalStudents)
	if err != nil {
		logger.Error().Err(err).Int64("lecturerID", lecturerID).Msg("Error scanning lecturer stats")
		return nil, fmt.Errorf("error getting lecturer stats: %w", err)
	}

	return stats, nil
}

// GetPortalMetrics retrieves the portal-wide counts and raw rating
// tallies for the Program Leader dashboard in one query.
func (r *ReportRepository) GetPortalMetrics(ctx context.Context) (*dto.PLMetricsResponse, error) {
	sql, args, err := r.sb.Select(
		"(SELECT COUNT(*) FROM courses)",
		"(SELECT COUNT(*) FROM classes)",
		"(SELECT COUNT(*) FROM users WHERE role = 'lecturer')",
		"(SELECT COUNT(*) FROM lecture_reports)",
		"(SELECT COUNT(DISTINCT student_id) FROM student_enrolments)",
		"(SELECT COALESCE(SUM(rating), 0) FROM ratings)",
		"(SELECT COUNT(*) FROM ratings)").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building portal metrics SQL")
		return nil, fmt.Errorf("failed to build portal metrics query: %w", err)
	}

	metrics := &dto.PLMetricsResponse{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&metrics.TotalCourses, &metrics.TotalClasses, &metrics.TotalLecturers,
		&metrics.TotalReports, &metrics.TotalStudents, &metrics.RatingSum, &metrics.RatingCount)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning portal metrics")
		return nil, fmt.Errorf("error getting portal metrics: %w", err)
	}

	return metrics, nil
}
