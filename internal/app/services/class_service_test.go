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

type stubClassRepo struct {
	classes    map[int64]*dto.ClassResponse
	assignedTo int64
}

func (r *stubClassRepo) Create(_ context.Context, _ *models.Class) (int64, error) { return 1, nil }

func (r *stubClassRepo) GetAll(_ context.Context) ([]*dto.ClassResponse, error) {
	return []*dto.ClassResponse{}, nil
}

func (r *stubClassRepo) GetByID(_ context.Context, id int64) (*dto.ClassResponse, error) {
	class, ok := r.classes[id]
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return class, nil
}

func (r *stubClassRepo) GetByLecturer(_ context.Context, _ int64) ([]*dto.ClassResponse, error) {
	return []*dto.ClassResponse{}, nil
}

func (r *stubClassRepo) Update(_ context.Context, _ int64, _ *models.Class) error { return nil }
func (r *stubClassRepo) Delete(_ context.Context, _ int64) error                  { return nil }

func (r *stubClassRepo) AssignLecturer(_ context.Context, _, lecturerID int64) error {
	r.assignedTo = lecturerID
	return nil
}

type stubCourseGetter struct {
	course *models.Course
	err    error
}

func (c *stubCourseGetter) GetByID(_ context.Context, _ int64) (*models.Course, error) {
	return c.course, c.err
}

type stubClassUserRepo struct {
	user *models.User
	err  error
}

func (u *stubClassUserRepo) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return u.user, u.err
}

func (u *stubClassUserRepo) GetLecturers(_ context.Context) ([]*dto.LecturerResponse, error) {
	return []*dto.LecturerResponse{}, nil
}

func assignFixture(user *models.User, userErr error) (ClassService, *stubClassRepo) {
	classRepo := &stubClassRepo{
		classes: map[int64]*dto.ClassResponse{5: {ID: 5, CourseID: 2}},
	}
	courseRepo := &stubCourseGetter{course: &models.Course{ID: 2, FacultyID: 1}}
	return NewClassService(classRepo, courseRepo, &stubClassUserRepo{user: user, err: userErr}), classRepo
}

func TestAssignLecturerUnknownUser(t *testing.T) {
	svc, _ := assignFixture(nil, apperrors.ErrUserNotFound)

	_, err := svc.AssignLecturer(context.Background(), &dto.AssignLecturerRequest{ClassID: 5, LecturerID: 9})
	assert.ErrorIs(t, err, apperrors.ErrLecturerNotFound)
}

func TestAssignLecturerRejectsNonLecturer(t *testing.T) {
	svc, _ := assignFixture(&models.User{ID: 9, Role: models.RoleStudent}, nil)

	_, err := svc.AssignLecturer(context.Background(), &dto.AssignLecturerRequest{ClassID: 5, LecturerID: 9})
	assert.ErrorIs(t, err, apperrors.ErrNotALecturer)
}

func TestAssignLecturerRejectsFacultyMismatch(t *testing.T) {
	otherFaculty := int64(3)
	svc, _ := assignFixture(&models.User{ID: 9, Role: models.RoleLecturer, FacultyID: &otherFaculty}, nil)

	_, err := svc.AssignLecturer(context.Background(), &dto.AssignLecturerRequest{ClassID: 5, LecturerID: 9})
	assert.ErrorIs(t, err, apperrors.ErrFacultyMismatch)
}

func TestAssignLecturerAllowsUnaffiliatedLecturer(t *testing.T) {
	svc, classRepo := assignFixture(&models.User{ID: 9, Role: models.RoleLecturer}, nil)

	_, err := svc.AssignLecturer(context.Background(), &dto.AssignLecturerRequest{ClassID: 5, LecturerID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(9), classRepo.assignedTo)
}

func TestAssignLecturerAllowsMatchingFaculty(t *testing.T) {
	sameFaculty := int64(1)
	svc, classRepo := assignFixture(&models.User{ID: 9, Role: models.RoleLecturer, FacultyID: &sameFaculty}, nil)

	_, err := svc.AssignLecturer(context.Background(), &dto.AssignLecturerRequest{ClassID: 5, LecturerID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(9), classRepo.assignedTo)
}

func TestAssignLecturerUnknownClass(t *testing.T) {
	svc, _ := assignFixture(&models.User{ID: 9, Role: models.RoleLecturer}, nil)

	_, err := svc.AssignLecturer(context.Background(), &dto.AssignLecturerRequest{ClassID: 99, LecturerID: 9})
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestCreateClassChecksCourseExists(t *testing.T) {
	svc := NewClassService(&stubClassRepo{}, &stubCourseGetter{err: apperrors.ErrCourseNotFound}, &stubClassUserRepo{})

	_, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{ClassName: "BIWD2110-A", CourseID: 99})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCreateClassChecksOptionalLecturer(t *testing.T) {
	lecturerID := int64(9)
	svc := NewClassService(
		&stubClassRepo{classes: map[int64]*dto.ClassResponse{1: {ID: 1}}},
		&stubCourseGetter{course: &models.Course{ID: 2, FacultyID: 1}},
		&stubClassUserRepo{user: &models.User{ID: 9, Role: models.RoleStudent}},
	)

	_, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{
		ClassName:  "BIWD2110-A",
		CourseID:   2,
		LecturerID: &lecturerID,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotALecturer)
}
