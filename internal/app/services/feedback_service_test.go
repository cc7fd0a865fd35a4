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

type stubFeedbackRepo struct {
	created *models.Feedback
	err     error
}

func (r *stubFeedbackRepo) Create(_ context.Context, feedback *models.Feedback) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.created = feedback
	return 21, nil
}

type stubReportFacultyGetter struct {
	facultyID int64
	err       error
}

func (r *stubReportFacultyGetter) GetReportFacultyID(_ context.Context, _ int64) (int64, error) {
	return r.facultyID, r.err
}

func prlUser(facultyID int64) *stubUserRepo {
	return &stubUserRepo{user: &models.User{ID: 9, Role: models.RolePRL, FacultyID: &facultyID}}
}

func TestCreateFeedbackRequiresFaculty(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{}, &stubReportFacultyGetter{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL},
	})

	_, err := svc.CreateFeedback(context.Background(), 9, 1, &dto.CreateFeedbackRequest{Comment: "good"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateFeedbackRejectsOtherFaculty(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{}, &stubReportFacultyGetter{facultyID: 3}, prlUser(2))

	_, err := svc.CreateFeedback(context.Background(), 9, 1, &dto.CreateFeedbackRequest{Comment: "good"})
	assert.ErrorIs(t, err, apperrors.ErrReportOutsideFaculty)
}

func TestCreateFeedbackUnknownReport(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{}, &stubReportFacultyGetter{err: apperrors.ErrReportNotFound}, prlUser(2))

	_, err := svc.CreateFeedback(context.Background(), 9, 1, &dto.CreateFeedbackRequest{Comment: "good"})
	assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
}

func TestCreateFeedbackSecondSubmissionRejected(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{err: apperrors.ErrFeedbackAlreadyExists}, &stubReportFacultyGetter{facultyID: 2}, prlUser(2))

	_, err := svc.CreateFeedback(context.Background(), 9, 1, &dto.CreateFeedbackRequest{Comment: "again"})
	assert.ErrorIs(t, err, apperrors.ErrFeedbackAlreadyExists)
}

func TestCreateFeedbackStoresCallerAsAuthor(t *testing.T) {
	feedbackRepo := &stubFeedbackRepo{}
	svc := NewFeedbackService(feedbackRepo, &stubReportFacultyGetter{facultyID: 2}, prlUser(2))

	resp, err := svc.CreateFeedback(context.Background(), 9, 1, &dto.CreateFeedbackRequest{Comment: "well structured"})
	require.NoError(t, err)
	require.NotNil(t, feedbackRepo.created)
	assert.Equal(t, int64(9), feedbackRepo.created.PRLID)
	assert.Equal(t, int64(1), feedbackRepo.created.ReportID)
	assert.Equal(t, int64(21), resp.ID)
	assert.Equal(t, "well structured", resp.Comment)
}
