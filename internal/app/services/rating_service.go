package services

import (
	"context"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

type ratingRepository interface {
	Create(ctx context.Context, rating *models.Rating) (int64, error)
	GetAvailableForStudent(ctx context.Context, studentID int64) ([]*dto.AvailableClassResponse, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*dto.MyRatingResponse, error)
	GetSummaryByLecturer(ctx context.Context, lecturerID int64) ([]*dto.RatingSummaryResponse, error)
	GetDetailsByLecturer(ctx context.Context, lecturerID int64) ([]*dto.RatingDetailResponse, error)
	GetByFaculty(ctx context.Context, facultyID int64) ([]*dto.PRLRatingResponse, error)
}

type ratingEnrolmentRepository interface {
	Exists(ctx context.Context, studentID, classID int64) (bool, error)
}

type ratingReportRepository interface {
	ExistsForClass(ctx context.Context, classID int64) (bool, error)
}

// RatingService defines the interface for class rating operations
type RatingService interface {
	CreateRating(ctx context.Context, studentID int64, req *dto.CreateRatingRequest) ([]*dto.MyRatingResponse, error)
	GetAvailableClasses(ctx context.Context, studentID int64) ([]*dto.AvailableClassResponse, error)
	GetMyRatings(ctx context.Context, studentID int64) ([]*dto.MyRatingResponse, error)
	GetLecturerRatings(ctx context.Context, lecturerID int64) (*dto.LecturerRatingsResponse, error)
	GetFacultyRatings(ctx context.Context, prlID int64) ([]*dto.PRLRatingResponse, error)
}

type ratingServiceImpl struct {
	ratingRepo    ratingRepository
	enrolmentRepo ratingEnrolmentRepository
	reportRepo    ratingReportRepository
	userRepo      reportUserRepository
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratingRepo ratingRepository, enrolmentRepo ratingEnrolmentRepository, reportRepo ratingReportRepository, userRepo reportUserRepository) RatingService {
	return &ratingServiceImpl{
		ratingRepo:    ratingRepo,
		enrolmentRepo: enrolmentRepo,
		reportRepo:    reportRepo,
		userRepo:      userRepo,
	}
}

// CreateRating stores a student's 1-5 rating for a class. The caller must
// be enrolled, and the class must have at least one lecture report.
func (s *ratingServiceImpl) CreateRating(ctx context.Context, studentID int64, req *dto.CreateRatingRequest) ([]*dto.MyRatingResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrRatingOutOfRange
	}

	enrolled, err := s.enrolmentRepo.Exists(ctx, studentID, req.ClassID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.NewForbiddenError("you can only rate classes you are enrolled in")
	}

	reported, err := s.reportRepo.ExistsForClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if !reported {
		return nil, apperrors.ErrClassNotReported
	}

	rating := &models.Rating{
		ClassID: req.ClassID,
		UserID:  studentID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	id, err := s.ratingRepo.Create(ctx, rating)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("ratingID", id).Int64("classID", req.ClassID).Int("rating", req.Rating).Msg("Rating submitted")
	return s.ratingRepo.GetByStudent(ctx, studentID)
}

// GetAvailableClasses retrieves the caller's enrolled classes for rating
func (s *ratingServiceImpl) GetAvailableClasses(ctx context.Context, studentID int64) ([]*dto.AvailableClassResponse, error) {
	return s.ratingRepo.GetAvailableForStudent(ctx, studentID)
}

// GetMyRatings retrieves the caller's own past ratings
func (s *ratingServiceImpl) GetMyRatings(ctx context.Context, studentID int64) ([]*dto.MyRatingResponse, error) {
	return s.ratingRepo.GetByStudent(ctx, studentID)
}

// GetLecturerRatings retrieves the caller's per-course summary and the
// individual ratings behind it. Averages are derived here, nil for
// courses without ratings.
func (s *ratingServiceImpl) GetLecturerRatings(ctx context.Context, lecturerID int64) (*dto.LecturerRatingsResponse, error) {
	summaries, err := s.ratingRepo.GetSummaryByLecturer(ctx, lecturerID)
	if err != nil {
		return nil, err
	}
	details, err := s.ratingRepo.GetDetailsByLecturer(ctx, lecturerID)
	if err != nil {
		return nil, err
	}

	resp := &dto.LecturerRatingsResponse{
		Summary: make([]dto.RatingSummaryResponse, 0, len(summaries)),
		Details: make([]dto.RatingDetailResponse, 0, len(details)),
	}
	for _, summary := range summaries {
		summary.AverageRating = AverageRating(summary.RatingSum, summary.TotalRatings)
		resp.Summary = append(resp.Summary, *summary)
	}
	for _, detail := range details {
		resp.Details = append(resp.Details, *detail)
	}
	return resp, nil
}

// GetFacultyRatings retrieves the ratings for the caller's faculty
func (s *ratingServiceImpl) GetFacultyRatings(ctx context.Context, prlID int64) ([]*dto.PRLRatingResponse, error) {
	facultyID, err := callerFacultyID(ctx, s.userRepo, prlID)
	if err != nil {
		return nil, err
	}
	return s.ratingRepo.GetByFaculty(ctx, facultyID)
}
