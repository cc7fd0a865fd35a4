package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
)

type stubReportRepo struct {
	created       *models.LectureReport
	byID          map[int64]*dto.ReportResponse
	listed        []*dto.ReportResponse
	listFacultyID *int64
}

func (r *stubReportRepo) Create(_ context.Context, report *models.LectureReport) (int64, error) {
	r.created = report
	return 11, nil
}

func (r *stubReportRepo) GetByID(_ context.Context, id int64) (*dto.ReportResponse, error) {
	report, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrReportNotFound
	}
	return report, nil
}

func (r *stubReportRepo) List(_ context.Context, _ string, facultyID *int64) ([]*dto.ReportResponse, error) {
	r.listFacultyID = facultyID
	return r.listed, nil
}

func (r *stubReportRepo) GetByLecturer(_ context.Context, _ int64) ([]*dto.ReportResponse, error) {
	return r.listed, nil
}

func (r *stubReportRepo) GetRecentByLecturer(_ context.Context, _ int64, limit uint64) ([]*dto.ReportResponse, error) {
	if uint64(len(r.listed)) > limit {
		return r.listed[:limit], nil
	}
	return r.listed, nil
}

func (r *stubReportRepo) GetForEnrolledStudent(_ context.Context, _ int64) ([]*dto.StudentReportResponse, error) {
	return []*dto.StudentReportResponse{}, nil
}

func (r *stubReportRepo) GetByFaculty(_ context.Context, _, _ int64) ([]*dto.PRLReportResponse, error) {
	return []*dto.PRLReportResponse{
		{ReportResponse: dto.ReportResponse{ID: 1, ActualStudentsPresent: 10, TotalRegisteredStudents: 20}},
	}, nil
}

func (r *stubReportRepo) GetLecturerStats(_ context.Context, _ int64) (*dto.LecturerStatsResponse, error) {
	return &dto.LecturerStatsResponse{TotalClasses: 2, TotalReports: 5, TotalStudents: 40}, nil
}

type stubClassGetter struct {
	class *dto.ClassResponse
	err   error
}

func (c *stubClassGetter) GetByID(_ context.Context, _ int64) (*dto.ClassResponse, error) {
	return c.class, c.err
}

func newReportService(reportRepo *stubReportRepo, classRepo *stubClassGetter, userRepo *stubUserRepo) ReportService {
	return NewReportService(reportRepo, classRepo, userRepo)
}

func TestCreateReportRejectsFutureDate(t *testing.T) {
	svc := newReportService(&stubReportRepo{}, &stubClassGetter{class: &dto.ClassResponse{ID: 3}}, &stubUserRepo{})

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	present := 10
	_, err := svc.CreateReport(context.Background(), 4, &dto.CreateReportRequest{
		ClassID:               3,
		Week:                  1,
		Date:                  tomorrow,
		Topic:                 "Routing",
		ActualStudentsPresent: &present,
	})
	assert.ErrorIs(t, err, apperrors.ErrReportDateInFuture)
}

func TestCreateReportRejectsMalformedDate(t *testing.T) {
	svc := newReportService(&stubReportRepo{}, &stubClassGetter{class: &dto.ClassResponse{ID: 3}}, &stubUserRepo{})

	present := 10
	_, err := svc.CreateReport(context.Background(), 4, &dto.CreateReportRequest{
		ClassID:               3,
		Week:                  1,
		Date:                  "21/08/2026",
		Topic:                 "Routing",
		ActualStudentsPresent: &present,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateReportRejectsUnknownClass(t *testing.T) {
	svc := newReportService(&stubReportRepo{}, &stubClassGetter{err: apperrors.ErrClassNotFound}, &stubUserRepo{})

	present := 10
	_, err := svc.CreateReport(context.Background(), 4, &dto.CreateReportRequest{
		ClassID:               99,
		Week:                  1,
		Date:                  "2026-08-21",
		Topic:                 "Routing",
		ActualStudentsPresent: &present,
	})
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestCreateReportStoresCallerAsSubmitter(t *testing.T) {
	reportRepo := &stubReportRepo{
		byID: map[int64]*dto.ReportResponse{
			11: {ID: 11, ActualStudentsPresent: 18, TotalRegisteredStudents: 24},
		},
	}
	svc := newReportService(reportRepo, &stubClassGetter{class: &dto.ClassResponse{ID: 3}}, &stubUserRepo{})

	present := 18
	resp, err := svc.CreateReport(context.Background(), 4, &dto.CreateReportRequest{
		ClassID:               3,
		Week:                  6,
		Date:                  "2026-08-21",
		Topic:                 "Routing",
		ActualStudentsPresent: &present,
	})
	require.NoError(t, err)
	require.NotNil(t, reportRepo.created)
	assert.Equal(t, int64(4), reportRepo.created.SubmittedBy)
	assert.Equal(t, 6, reportRepo.created.Week)

	require.NotNil(t, resp.AttendancePercentage)
	assert.Equal(t, 75.0, *resp.AttendancePercentage)
}

func TestGetReportByIDNoEnrolmentsHasNilPercentage(t *testing.T) {
	reportRepo := &stubReportRepo{
		byID: map[int64]*dto.ReportResponse{
			11: {ID: 11, ActualStudentsPresent: 18, TotalRegisteredStudents: 0},
		},
	}
	svc := newReportService(reportRepo, &stubClassGetter{}, &stubUserRepo{})

	resp, err := svc.GetReportByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Nil(t, resp.AttendancePercentage)
}

func TestListReportsScopesPRLToOwnFaculty(t *testing.T) {
	facultyID := int64(2)
	reportRepo := &stubReportRepo{
		listed: []*dto.ReportResponse{
			{ID: 1, ActualStudentsPresent: 15, TotalRegisteredStudents: 30},
		},
	}
	svc := newReportService(reportRepo, &stubClassGetter{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL, FacultyID: &facultyID},
	})

	reports, err := svc.ListReports(context.Background(), 9, models.RolePRL, "")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NotNil(t, reportRepo.listFacultyID)
	assert.Equal(t, facultyID, *reportRepo.listFacultyID)
}

func TestListReportsDoesNotScopePL(t *testing.T) {
	reportRepo := &stubReportRepo{}
	svc := newReportService(reportRepo, &stubClassGetter{}, &stubUserRepo{
		user: &models.User{ID: 1, Role: models.RolePL},
	})

	_, err := svc.ListReports(context.Background(), 1, models.RolePL, "databases")
	require.NoError(t, err)
	assert.Nil(t, reportRepo.listFacultyID)
}

func TestListReportsRejectsPRLWithoutFaculty(t *testing.T) {
	svc := newReportService(&stubReportRepo{}, &stubClassGetter{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL},
	})

	_, err := svc.ListReports(context.Background(), 9, models.RolePRL, "")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGetFacultyReportsRequiresFaculty(t *testing.T) {
	svc := newReportService(&stubReportRepo{}, &stubClassGetter{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL},
	})

	_, err := svc.GetFacultyReports(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGetFacultyReportsAttachesPercentages(t *testing.T) {
	facultyID := int64(2)
	svc := newReportService(&stubReportRepo{}, &stubClassGetter{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL, FacultyID: &facultyID},
	})

	reports, err := svc.GetFacultyReports(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NotNil(t, reports[0].AttendancePercentage)
	assert.Equal(t, 50.0, *reports[0].AttendancePercentage)
}
