package services

import (
	"context"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

type attendanceRepository interface {
	Upsert(ctx context.Context, reportID, studentID int64, status models.AttendanceStatus) error
	GetStatus(ctx context.Context, reportID, studentID int64) (*string, error)
}

type attendanceReportRepository interface {
	GetByID(ctx context.Context, id int64) (*dto.ReportResponse, error)
}

type attendanceEnrolmentRepository interface {
	Exists(ctx context.Context, studentID, classID int64) (bool, error)
}

// AttendanceService defines the interface for attendance mark operations
type AttendanceService interface {
	Mark(ctx context.Context, studentID int64, req *dto.MarkAttendanceRequest) (*dto.AttendanceStatusResponse, error)
	GetStatus(ctx context.Context, studentID, reportID int64) (*dto.AttendanceStatusResponse, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendanceRepository
	reportRepo     attendanceReportRepository
	enrolmentRepo  attendanceEnrolmentRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo attendanceRepository, reportRepo attendanceReportRepository, enrolmentRepo attendanceEnrolmentRepository) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		reportRepo:     reportRepo,
		enrolmentRepo:  enrolmentRepo,
	}
}

// Mark records the caller's attendance for a report. The caller must be
// enrolled in the report's class; a second mark overwrites the first.
func (s *attendanceServiceImpl) Mark(ctx context.Context, studentID int64, req *dto.MarkAttendanceRequest) (*dto.AttendanceStatusResponse, error) {
	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	report, err := s.reportRepo.GetByID(ctx, req.ReportID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrolmentRepo.Exists(ctx, studentID, report.ClassID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	if err := s.attendanceRepo.Upsert(ctx, req.ReportID, studentID, status); err != nil {
		return nil, err
	}

	logger.Info().Int64("reportID", req.ReportID).Int64("studentID", studentID).Str("status", req.Status).Msg("Attendance marked")
	return s.GetStatus(ctx, studentID, req.ReportID)
}

// GetStatus retrieves the caller's mark for a report; nil when unmarked
func (s *attendanceServiceImpl) GetStatus(ctx context.Context, studentID, reportID int64) (*dto.AttendanceStatusResponse, error) {
	status, err := s.attendanceRepo.GetStatus(ctx, reportID, studentID)
	if err != nil {
		return nil, err
	}
	return &dto.AttendanceStatusResponse{Status: status}, nil
}
