package services

import (
	"context"

	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

type enrolmentRepository interface {
	Enrol(ctx context.Context, studentID, classID int64) (int64, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*dto.EnrolmentResponse, error)
	Exists(ctx context.Context, studentID, classID int64) (bool, error)
}

// EnrolmentService defines the interface for student enrolment operations
type EnrolmentService interface {
	Enrol(ctx context.Context, studentID, classID int64) ([]*dto.EnrolmentResponse, error)
	GetEnrolments(ctx context.Context, studentID int64) ([]*dto.EnrolmentResponse, error)
}

type enrolmentServiceImpl struct {
	enrolmentRepo enrolmentRepository
}

// NewEnrolmentService creates a new enrolment service instance
func NewEnrolmentService(enrolmentRepo enrolmentRepository) EnrolmentService {
	return &enrolmentServiceImpl{enrolmentRepo: enrolmentRepo}
}

// Enrol registers the student into a class and returns the refreshed
// enrolment list. A duplicate pair is rejected; exactly one row remains.
func (s *enrolmentServiceImpl) Enrol(ctx context.Context, studentID, classID int64) ([]*dto.EnrolmentResponse, error) {
	id, err := s.enrolmentRepo.Enrol(ctx, studentID, classID)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("enrolmentID", id).Int64("studentID", studentID).Int64("classID", classID).Msg("Student enrolled")
	return s.enrolmentRepo.GetByStudent(ctx, studentID)
}

// GetEnrolments retrieves the caller's enrolments with class context
func (s *enrolmentServiceImpl) GetEnrolments(ctx context.Context, studentID int64) ([]*dto.EnrolmentResponse, error) {
	return s.enrolmentRepo.GetByStudent(ctx, studentID)
}
