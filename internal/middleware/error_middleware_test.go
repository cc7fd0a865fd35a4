package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/luct-faculty/portal/internal/pkg/apperrors"
)

func statusFor(t *testing.T, err error) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w.Code, w.Body.String()
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"report not found", apperrors.ErrReportNotFound, http.StatusNotFound},
		{"class not found", apperrors.ErrClassNotFound, http.StatusNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"report outside faculty", apperrors.ErrReportOutsideFaculty, http.StatusForbidden},
		{"not enrolled", apperrors.ErrNotEnrolled, http.StatusForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"duplicate enrolment", apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{"duplicate feedback", apperrors.ErrFeedbackAlreadyExists, http.StatusConflict},
		{"duplicate course code", apperrors.ErrCourseCodeExists, http.StatusConflict},
		{"future report date", apperrors.ErrReportDateInFuture, http.StatusBadRequest},
		{"rating out of range", apperrors.ErrRatingOutOfRange, http.StatusBadRequest},
		{"class not reported", apperrors.ErrClassNotReported, http.StatusBadRequest},
		{"invalid attendance status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"not a lecturer", apperrors.ErrNotALecturer, http.StatusBadRequest},
		{"faculty mismatch", apperrors.ErrFacultyMismatch, http.StatusBadRequest},
		{"invalid role", apperrors.ErrInvalidRole, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := statusFor(t, tt.err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewForbiddenError("no faculty is assigned to your account")
	code, body := statusFor(t, wrapped)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, body, "no faculty is assigned")
}

func TestHandleAPIErrorUnknownErrorHidesDetail(t *testing.T) {
	code, body := statusFor(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, body, "connection refused", "internal detail must not leak")
}
