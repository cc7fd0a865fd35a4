package services

import (
	"context"
	"fmt"
	"time"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

const reportDateLayout = "2006-01-02"

// recentReportLimit caps the lecturer dashboard's recent-reports panel
const recentReportLimit = 5

type reportRepository interface {
	Create(ctx context.Context, report *models.LectureReport) (int64, error)
	GetByID(ctx context.Context, id int64) (*dto.ReportResponse, error)
	List(ctx context.Context, search string, facultyID *int64) ([]*dto.ReportResponse, error)
	GetByLecturer(ctx context.Context, lecturerID int64) ([]*dto.ReportResponse, error)
	GetRecentByLecturer(ctx context.Context, lecturerID int64, limit uint64) ([]*dto.ReportResponse, error)
	GetForEnrolledStudent(ctx context.Context, studentID int64) ([]*dto.StudentReportResponse, error)
	GetByFaculty(ctx context.Context, facultyID, prlID int64) ([]*dto.PRLReportResponse, error)
	GetLecturerStats(ctx context.Context, lecturerID int64) (*dto.LecturerStatsResponse, error)
}

type reportClassRepository interface {
	GetByID(ctx context.Context, id int64) (*dto.ClassResponse, error)
}

type reportUserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ReportService defines the interface for lecture report operations
type ReportService interface {
	CreateReport(ctx context.Context, lecturerID int64, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	GetReportByID(ctx context.Context, id int64) (*dto.ReportResponse, error)
	ListReports(ctx context.Context, callerID int64, callerRole models.Role, search string) ([]*dto.ReportResponse, error)
	GetLecturerReports(ctx context.Context, lecturerID int64) ([]*dto.ReportResponse, error)
	GetRecentReports(ctx context.Context, lecturerID int64) ([]*dto.ReportResponse, error)
	GetLecturerStats(ctx context.Context, lecturerID int64) (*dto.LecturerStatsResponse, error)
	GetStudentReports(ctx context.Context, studentID int64) ([]*dto.StudentReportResponse, error)
	GetFacultyReports(ctx context.Context, prlID int64) ([]*dto.PRLReportResponse, error)
}

type reportServiceImpl struct {
	reportRepo reportRepository
	classRepo  reportClassRepository
	userRepo   reportUserRepository
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo reportRepository, classRepo reportClassRepository, userRepo reportUserRepository) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		classRepo:  classRepo,
		userRepo:   userRepo,
	}
}

// CreateReport submits a lecture report for a class. The date must not be
// in the future; the submitter is always the caller. Reports are immutable
// once stored.
func (s *reportServiceImpl) CreateReport(ctx context.Context, lecturerID int64, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	date, err := time.Parse(reportDateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("date must be in %s format", reportDateLayout))
	}
	if date.After(time.Now()) {
		return nil, apperrors.ErrReportDateInFuture
	}

	if _, err := s.classRepo.GetByID(ctx, req.ClassID); err != nil {
		return nil, err
	}

	report := &models.LectureReport{
		ClassID:               req.ClassID,
		SubmittedBy:           lecturerID,
		Week:                  req.Week,
		Date:                  date,
		Topic:                 req.Topic,
		LearningOutcomes:      req.LearningOutcomes,
		Recommendations:       req.Recommendations,
		ActualStudentsPresent: *req.ActualStudentsPresent,
	}

	id, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("reportID", id).Int64("classID", req.ClassID).Int("week", req.Week).Msg("Report submitted")
	return s.GetReportByID(ctx, id)
}

// GetReportByID retrieves a report with its derived attendance percentage
func (s *reportServiceImpl) GetReportByID(ctx context.Context, id int64) (*dto.ReportResponse, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	report.AttendancePercentage = AttendancePercent(report.ActualStudentsPresent, report.TotalRegisteredStudents)
	return report, nil
}

// ListReports retrieves reports, optionally filtered by search term.
// A PRL caller only ever sees reports for courses in their own faculty;
// the bound is applied in the query, not after the fact.
func (s *reportServiceImpl) ListReports(ctx context.Context, callerID int64, callerRole models.Role, search string) ([]*dto.ReportResponse, error) {
	var facultyID *int64
	if callerRole == models.RolePRL {
		id, err := callerFacultyID(ctx, s.userRepo, callerID)
		if err != nil {
			return nil, err
		}
		facultyID = &id
	}

	reports, err := s.reportRepo.List(ctx, search, facultyID)
	if err != nil {
		return nil, err
	}
	return attachAttendance(reports), nil
}

// GetLecturerReports retrieves the caller's submitted reports
func (s *reportServiceImpl) GetLecturerReports(ctx context.Context, lecturerID int64) ([]*dto.ReportResponse, error) {
	reports, err := s.reportRepo.GetByLecturer(ctx, lecturerID)
	if err != nil {
		return nil, err
	}
	return attachAttendance(reports), nil
}

// GetRecentReports retrieves the caller's most recent reports
func (s *reportServiceImpl) GetRecentReports(ctx context.Context, lecturerID int64) ([]*dto.ReportResponse, error) {
	reports, err := s.reportRepo.GetRecentByLecturer(ctx, lecturerID, recentReportLimit)
	if err != nil {
		return nil, err
	}
	return attachAttendance(reports), nil
}

// GetLecturerStats retrieves the lecturer dashboard counts
func (s *reportServiceImpl) GetLecturerStats(ctx context.Context, lecturerID int64) (*dto.LecturerStatsResponse, error) {
	return s.reportRepo.GetLecturerStats(ctx, lecturerID)
}

// GetStudentReports retrieves reports for the caller's enrolled classes,
// each with the caller's own attendance mark.
func (s *reportServiceImpl) GetStudentReports(ctx context.Context, studentID int64) ([]*dto.StudentReportResponse, error) {
	return s.reportRepo.GetForEnrolledStudent(ctx, studentID)
}

// GetFacultyReports retrieves the reports of the caller's faculty. A PRL
// with no faculty affiliation has nothing to supervise.
func (s *reportServiceImpl) GetFacultyReports(ctx context.Context, prlID int64) ([]*dto.PRLReportResponse, error) {
	facultyID, err := callerFacultyID(ctx, s.userRepo, prlID)
	if err != nil {
		return nil, err
	}

	reports, err := s.reportRepo.GetByFaculty(ctx, facultyID, prlID)
	if err != nil {
		return nil, err
	}
	for _, report := range reports {
		report.AttendancePercentage = AttendancePercent(report.ActualStudentsPresent, report.TotalRegisteredStudents)
	}
	return reports, nil
}

func attachAttendance(reports []*dto.ReportResponse) []*dto.ReportResponse {
	for _, report := range reports {
		report.AttendancePercentage = AttendancePercent(report.ActualStudentsPresent, report.TotalRegisteredStudents)
	}
	return reports
}

// callerFacultyID resolves the faculty a caller is affiliated with,
// rejecting callers without one.
func callerFacultyID(ctx context.Context, userRepo reportUserRepository, userID int64) (int64, error) {
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user.FacultyID == nil {
		return 0, apperrors.NewForbiddenError("no faculty is assigned to your account")
	}
	return *user.FacultyID, nil
}
