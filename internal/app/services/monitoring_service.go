package services

import (
	"context"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
)

type monitoringClassRepository interface {
	GetStudentMonitorRows(ctx context.Context) ([]*dto.StudentMonitorResponse, error)
	GetFacultyMonitorRows(ctx context.Context, facultyID int64) ([]*dto.ClassMonitorResponse, error)
	GetFacultyClassRows(ctx context.Context, facultyID int64) (map[int64][]dto.PRLClassResponse, error)
}

type monitoringCourseRepository interface {
	GetByFaculty(ctx context.Context, facultyID int64) ([]*models.Course, error)
}

type monitoringReportRepository interface {
	GetPortalMetrics(ctx context.Context) (*dto.PLMetricsResponse, error)
}

// MonitoringService derives the dashboard views: the shared per-class
// overview, the PRL's faculty-scoped views and the PL's portal metrics.
type MonitoringService interface {
	GetClassOverview(ctx context.Context) ([]*dto.StudentMonitorResponse, error)
	GetFacultyMonitor(ctx context.Context, prlID int64) ([]*dto.ClassMonitorResponse, error)
	GetFacultyCourses(ctx context.Context, prlID int64) ([]*dto.PRLCourseResponse, error)
	GetPortalMetrics(ctx context.Context) (*dto.PLMetricsResponse, error)
}

type monitoringServiceImpl struct {
	classRepo  monitoringClassRepository
	courseRepo monitoringCourseRepository
	reportRepo monitoringReportRepository
	userRepo   reportUserRepository
}

// NewMonitoringService creates a new monitoring service instance
func NewMonitoringService(classRepo monitoringClassRepository, courseRepo monitoringCourseRepository, reportRepo monitoringReportRepository, userRepo reportUserRepository) MonitoringService {
	return &monitoringServiceImpl{
		classRepo:  classRepo,
		courseRepo: courseRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

// GetClassOverview retrieves the per-class dashboard shared by every
// authenticated role, with report-derived averages attached.
func (s *monitoringServiceImpl) GetClassOverview(ctx context.Context) ([]*dto.StudentMonitorResponse, error) {
	rows, err := s.classRepo.GetStudentMonitorRows(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.AvgStudentsPresent = AveragePresent(row.SumStudentsPresent, row.TotalReports)
		row.AttendancePercent = classAttendancePercent(row.SumStudentsPresent, row.TotalReports, row.TotalRegisteredStudents)
	}
	return rows, nil
}

// classAttendancePercent derives a class's attendance percentage from the
// mean present count per report over the live registered count. Nil when
// the class has no reports or no registered students.
func classAttendancePercent(sumPresent, reportCount, registered int) *float64 {
	if reportCount <= 0 || registered <= 0 {
		return nil
	}
	avgPresent := float64(sumPresent) / float64(reportCount)
	pct := round1(avgPresent / float64(registered) * 100)
	return &pct
}

// GetFacultyMonitor retrieves the caller's faculty monitoring rows with
// the mark-derived attendance percentage attached.
func (s *monitoringServiceImpl) GetFacultyMonitor(ctx context.Context, prlID int64) ([]*dto.ClassMonitorResponse, error) {
	facultyID, err := callerFacultyID(ctx, s.userRepo, prlID)
	if err != nil {
		return nil, err
	}

	rows, err := s.classRepo.GetFacultyMonitorRows(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.PresentPercent = PresentPercent(row.PresentMarks, row.TotalMarks)
	}
	return rows, nil
}

// GetFacultyCourses retrieves the caller's faculty courses, each with its
// classes nested under it.
func (s *monitoringServiceImpl) GetFacultyCourses(ctx context.Context, prlID int64) ([]*dto.PRLCourseResponse, error) {
	facultyID, err := callerFacultyID(ctx, s.userRepo, prlID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	classesByCourse, err := s.classRepo.GetFacultyClassRows(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PRLCourseResponse, 0, len(courses))
	for _, course := range courses {
		classes := classesByCourse[course.ID]
		if classes == nil {
			classes = []dto.PRLClassResponse{}
		}
		result = append(result, &dto.PRLCourseResponse{
			ID:      course.ID,
			Name:    course.Name,
			Code:    course.Code,
			Classes: classes,
		})
	}
	return result, nil
}

// GetPortalMetrics retrieves the portal-wide numbers with the derived
// averages attached.
func (s *monitoringServiceImpl) GetPortalMetrics(ctx context.Context) (*dto.PLMetricsResponse, error) {
	metrics, err := s.reportRepo.GetPortalMetrics(ctx)
	if err != nil {
		return nil, err
	}
	metrics.AverageRating = AverageRating(metrics.RatingSum, metrics.RatingCount)

	// Attendance averages only over classes that have both enrolments
	// and reports; classes that never met carry no signal.
	rows, err := s.classRepo.GetStudentMonitorRows(ctx)
	if err != nil {
		return nil, err
	}
	var sum float64
	var n int
	for _, row := range rows {
		if pct := classAttendancePercent(row.SumStudentsPresent, row.TotalReports, row.TotalRegisteredStudents); pct != nil {
			sum += *pct
			n++
		}
	}
	if n > 0 {
		avg := round1(sum / float64(n))
		metrics.AverageAttendance = &avg
	}

	return metrics, nil
}
