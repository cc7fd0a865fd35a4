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

type stubAttendanceRepo struct {
	status *string
}

func (r *stubAttendanceRepo) Upsert(_ context.Context, _, _ int64, status models.AttendanceStatus) error {
	s := string(status)
	r.status = &s
	return nil
}

func (r *stubAttendanceRepo) GetStatus(_ context.Context, _, _ int64) (*string, error) {
	return r.status, nil
}

func TestMarkAttendanceRejectsUnknownStatus(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{}, &stubReportRepo{}, &stubEnrolmentExists{enrolled: true})

	_, err := svc.Mark(context.Background(), 7, &dto.MarkAttendanceRequest{ReportID: 1, Status: "late"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestMarkAttendanceRejectsUnknownReport(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{}, &stubReportRepo{}, &stubEnrolmentExists{enrolled: true})

	_, err := svc.Mark(context.Background(), 7, &dto.MarkAttendanceRequest{ReportID: 99, Status: "present"})
	assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
}

func TestMarkAttendanceRequiresEnrolment(t *testing.T) {
	reportRepo := &stubReportRepo{
		byID: map[int64]*dto.ReportResponse{1: {ID: 1, ClassID: 3}},
	}
	svc := NewAttendanceService(&stubAttendanceRepo{}, reportRepo, &stubEnrolmentExists{enrolled: false})

	_, err := svc.Mark(context.Background(), 7, &dto.MarkAttendanceRequest{ReportID: 1, Status: "present"})
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestMarkAttendanceReturnsStoredStatus(t *testing.T) {
	reportRepo := &stubReportRepo{
		byID: map[int64]*dto.ReportResponse{1: {ID: 1, ClassID: 3}},
	}
	svc := NewAttendanceService(&stubAttendanceRepo{}, reportRepo, &stubEnrolmentExists{enrolled: true})

	resp, err := svc.Mark(context.Background(), 7, &dto.MarkAttendanceRequest{ReportID: 1, Status: "absent"})
	require.NoError(t, err)
	require.NotNil(t, resp.Status)
	assert.Equal(t, "absent", *resp.Status)
}

func TestGetStatusUnmarkedIsNil(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{}, &stubReportRepo{}, &stubEnrolmentExists{})

	resp, err := svc.GetStatus(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Nil(t, resp.Status)
}
