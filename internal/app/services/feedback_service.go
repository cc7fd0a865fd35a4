package services

import (
	"context"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

type feedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) (int64, error)
}

type feedbackReportRepository interface {
	GetReportFacultyID(ctx context.Context, reportID int64) (int64, error)
}

// FeedbackService defines the interface for PRL feedback operations
type FeedbackService interface {
	CreateFeedback(ctx context.Context, prlID, reportID int64, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackServiceImpl struct {
	feedbackRepo feedbackRepository
	reportRepo   feedbackReportRepository
	userRepo     reportUserRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo feedbackRepository, reportRepo feedbackReportRepository, userRepo reportUserRepository) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		reportRepo:   reportRepo,
		userRepo:     userRepo,
	}
}

// CreateFeedback stores the caller's feedback on a report. The report must
// belong to the caller's faculty, and at most one feedback per (report,
// caller) pair exists; a second submission is rejected, never overwritten.
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, prlID, reportID int64, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	facultyID, err := callerFacultyID(ctx, s.userRepo, prlID)
	if err != nil {
		return nil, err
	}

	reportFacultyID, err := s.reportRepo.GetReportFacultyID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if reportFacultyID != facultyID {
		return nil, apperrors.ErrReportOutsideFaculty
	}

	feedback := &models.Feedback{
		ReportID: reportID,
		PRLID:    prlID,
		Comment:  req.Comment,
	}
	id, err := s.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("feedbackID", id).Int64("reportID", reportID).Msg("Feedback submitted")
	return &dto.FeedbackResponse{
		ID:        id,
		ReportID:  reportID,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}, nil
}
