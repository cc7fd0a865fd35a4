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

type stubRatingRepo struct {
	created   *models.Rating
	summaries []*dto.RatingSummaryResponse
	details   []*dto.RatingDetailResponse
}

func (r *stubRatingRepo) Create(_ context.Context, rating *models.Rating) (int64, error) {
	r.created = rating
	return 1, nil
}

func (r *stubRatingRepo) GetAvailableForStudent(_ context.Context, _ int64) ([]*dto.AvailableClassResponse, error) {
	return []*dto.AvailableClassResponse{}, nil
}

func (r *stubRatingRepo) GetByStudent(_ context.Context, _ int64) ([]*dto.MyRatingResponse, error) {
	return []*dto.MyRatingResponse{{ID: 1, Rating: 4}}, nil
}

func (r *stubRatingRepo) GetSummaryByLecturer(_ context.Context, _ int64) ([]*dto.RatingSummaryResponse, error) {
	return r.summaries, nil
}

func (r *stubRatingRepo) GetDetailsByLecturer(_ context.Context, _ int64) ([]*dto.RatingDetailResponse, error) {
	return r.details, nil
}

func (r *stubRatingRepo) GetByFaculty(_ context.Context, _ int64) ([]*dto.PRLRatingResponse, error) {
	return []*dto.PRLRatingResponse{}, nil
}

type stubEnrolmentExists struct{ enrolled bool }

func (e *stubEnrolmentExists) Exists(_ context.Context, _, _ int64) (bool, error) {
	return e.enrolled, nil
}

type stubReportExists struct{ reported bool }

func (e *stubReportExists) ExistsForClass(_ context.Context, _ int64) (bool, error) {
	return e.reported, nil
}

type stubUserRepo struct {
	user *models.User
	err  error
}

func (u *stubUserRepo) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return u.user, u.err
}

func TestCreateRatingRequiresEnrolment(t *testing.T) {
	svc := NewRatingService(&stubRatingRepo{}, &stubEnrolmentExists{enrolled: false}, &stubReportExists{reported: true}, &stubUserRepo{})

	_, err := svc.CreateRating(context.Background(), 7, &dto.CreateRatingRequest{ClassID: 3, Rating: 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateRatingRequiresReportedClass(t *testing.T) {
	svc := NewRatingService(&stubRatingRepo{}, &stubEnrolmentExists{enrolled: true}, &stubReportExists{reported: false}, &stubUserRepo{})

	_, err := svc.CreateRating(context.Background(), 7, &dto.CreateRatingRequest{ClassID: 3, Rating: 4})
	assert.ErrorIs(t, err, apperrors.ErrClassNotReported)
}

func TestCreateRatingRejectsOutOfRange(t *testing.T) {
	svc := NewRatingService(&stubRatingRepo{}, &stubEnrolmentExists{enrolled: true}, &stubReportExists{reported: true}, &stubUserRepo{})

	_, err := svc.CreateRating(context.Background(), 7, &dto.CreateRatingRequest{ClassID: 3, Rating: 0})
	assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange)

	_, err = svc.CreateRating(context.Background(), 7, &dto.CreateRatingRequest{ClassID: 3, Rating: 6})
	assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange)
}

func TestCreateRatingStoresCallerAsAuthor(t *testing.T) {
	ratingRepo := &stubRatingRepo{}
	svc := NewRatingService(ratingRepo, &stubEnrolmentExists{enrolled: true}, &stubReportExists{reported: true}, &stubUserRepo{})

	comment := "great pace"
	ratings, err := svc.CreateRating(context.Background(), 7, &dto.CreateRatingRequest{ClassID: 3, Rating: 5, Comment: &comment})
	require.NoError(t, err)
	require.NotNil(t, ratingRepo.created)
	assert.Equal(t, int64(7), ratingRepo.created.UserID)
	assert.Equal(t, int64(3), ratingRepo.created.ClassID)
	assert.Equal(t, 5, ratingRepo.created.Rating)
	assert.Len(t, ratings, 1)
}

func TestGetLecturerRatingsDerivesAverages(t *testing.T) {
	ratingRepo := &stubRatingRepo{
		summaries: []*dto.RatingSummaryResponse{
			{CourseName: "Web Development", RatingSum: 9, TotalRatings: 2},
			{CourseName: "Networking", RatingSum: 0, TotalRatings: 0},
		},
	}
	svc := NewRatingService(ratingRepo, &stubEnrolmentExists{}, &stubReportExists{}, &stubUserRepo{})

	resp, err := svc.GetLecturerRatings(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, resp.Summary, 2)

	require.NotNil(t, resp.Summary[0].AverageRating)
	assert.Equal(t, 4.5, *resp.Summary[0].AverageRating)
	assert.Nil(t, resp.Summary[1].AverageRating, "unrated course has no average")
}

func TestGetFacultyRatingsRequiresFaculty(t *testing.T) {
	svc := NewRatingService(&stubRatingRepo{}, &stubEnrolmentExists{}, &stubReportExists{}, &stubUserRepo{
		user: &models.User{ID: 9, Role: models.RolePRL},
	})

	_, err := svc.GetFacultyRatings(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
