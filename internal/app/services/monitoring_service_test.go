package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
)

type stubMonitorClassRepo struct {
	overview    []*dto.StudentMonitorResponse
	monitorRows []*dto.ClassMonitorResponse
	classRows   map[int64][]dto.PRLClassResponse
}

func (r *stubMonitorClassRepo) GetStudentMonitorRows(_ context.Context) ([]*dto.StudentMonitorResponse, error) {
	return r.overview, nil
}

func (r *stubMonitorClassRepo) GetFacultyMonitorRows(_ context.Context, _ int64) ([]*dto.ClassMonitorResponse, error) {
	return r.monitorRows, nil
}

func (r *stubMonitorClassRepo) GetFacultyClassRows(_ context.Context, _ int64) (map[int64][]dto.PRLClassResponse, error) {
	return r.classRows, nil
}

type stubMonitorCourseRepo struct {
	courses []*models.Course
}

func (r *stubMonitorCourseRepo) GetByFaculty(_ context.Context, _ int64) ([]*models.Course, error) {
	return r.courses, nil
}

type stubMonitorReportRepo struct {
	metrics *dto.PLMetricsResponse
}

func (r *stubMonitorReportRepo) GetPortalMetrics(_ context.Context) (*dto.PLMetricsResponse, error) {
	return r.metrics, nil
}

func TestGetClassOverviewDerivesAverages(t *testing.T) {
	classRepo := &stubMonitorClassRepo{
		overview: []*dto.StudentMonitorResponse{
			{ClassID: 1, TotalRegisteredStudents: 30, TotalReports: 2, SumStudentsPresent: 45},
			{ClassID: 2, TotalRegisteredStudents: 10, TotalReports: 0, SumStudentsPresent: 0},
		},
	}
	svc := NewMonitoringService(classRepo, &stubMonitorCourseRepo{}, &stubMonitorReportRepo{}, &stubUserRepo{})

	rows, err := svc.GetClassOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].AvgStudentsPresent)
	assert.Equal(t, 22.5, *rows[0].AvgStudentsPresent)
	require.NotNil(t, rows[0].AttendancePercent)
	assert.Equal(t, 75.0, *rows[0].AttendancePercent)

	assert.Nil(t, rows[1].AvgStudentsPresent, "class without reports has no average")
	assert.Nil(t, rows[1].AttendancePercent)
}

func TestGetFacultyMonitorDerivesPresentPercent(t *testing.T) {
	facultyID := int64(2)
	classRepo := &stubMonitorClassRepo{
		monitorRows: []*dto.ClassMonitorResponse{
			{ClassID: 1, PresentMarks: 2, TotalMarks: 3},
			{ClassID: 2, PresentMarks: 0, TotalMarks: 0},
		},
	}
	svc := NewMonitoringService(classRepo, &stubMonitorCourseRepo{}, &stubMonitorReportRepo{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL, FacultyID: &facultyID},
	})

	rows, err := svc.GetFacultyMonitor(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].PresentPercent)
	assert.Equal(t, 66.67, *rows[0].PresentPercent)
	assert.Nil(t, rows[1].PresentPercent, "no marks carries no signal")
}

func TestGetFacultyMonitorRequiresFaculty(t *testing.T) {
	svc := NewMonitoringService(&stubMonitorClassRepo{}, &stubMonitorCourseRepo{}, &stubMonitorReportRepo{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL},
	})

	_, err := svc.GetFacultyMonitor(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGetFacultyCoursesNestsClasses(t *testing.T) {
	facultyID := int64(2)
	classRepo := &stubMonitorClassRepo{
		classRows: map[int64][]dto.PRLClassResponse{
			1: {{ID: 10, ClassName: "BIWD2110-A"}},
		},
	}
	courseRepo := &stubMonitorCourseRepo{
		courses: []*models.Course{
			{ID: 1, Name: "Web Development", Code: "BIWD2110"},
			{ID: 2, Name: "Networking", Code: "BIDC2110"},
		},
	}
	svc := NewMonitoringService(classRepo, courseRepo, &stubMonitorReportRepo{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL, FacultyID: &facultyID},
	})

	courses, err := svc.GetFacultyCourses(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Len(t, courses[0].Classes, 1)
	assert.NotNil(t, courses[1].Classes, "course without classes gets an empty list, not null")
	assert.Len(t, courses[1].Classes, 0)
}

func TestGetPortalMetricsDerivesAverages(t *testing.T) {
	classRepo := &stubMonitorClassRepo{
		overview: []*dto.StudentMonitorResponse{
			{ClassID: 1, TotalRegisteredStudents: 30, TotalReports: 2, SumStudentsPresent: 45},
			{ClassID: 2, TotalRegisteredStudents: 20, TotalReports: 1, SumStudentsPresent: 5},
			{ClassID: 3, TotalRegisteredStudents: 10, TotalReports: 0, SumStudentsPresent: 0},
		},
	}
	reportRepo := &stubMonitorReportRepo{
		metrics: &dto.PLMetricsResponse{
			TotalCourses: 4,
			TotalReports: 3,
			RatingSum:    9,
			RatingCount:  2,
		},
	}
	svc := NewMonitoringService(classRepo, &stubMonitorCourseRepo{}, reportRepo, &stubUserRepo{})

	metrics, err := svc.GetPortalMetrics(context.Background())
	require.NoError(t, err)

	require.NotNil(t, metrics.AverageRating)
	assert.Equal(t, 4.5, *metrics.AverageRating)

	// (75.0 + 25.0) / 2 over the two classes that actually met
	require.NotNil(t, metrics.AverageAttendance)
	assert.Equal(t, 50.0, *metrics.AverageAttendance)
}

func TestGetPortalMetricsEmptyPortal(t *testing.T) {
	svc := NewMonitoringService(&stubMonitorClassRepo{}, &stubMonitorCourseRepo{}, &stubMonitorReportRepo{
		metrics: &dto.PLMetricsResponse{},
	}, &stubUserRepo{})

	metrics, err := svc.GetPortalMetrics(context.Background())
	require.NoError(t, err)
	assert.Nil(t, metrics.AverageRating)
	assert.Nil(t, metrics.AverageAttendance)
}
