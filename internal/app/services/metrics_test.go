package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendancePercent(t *testing.T) {
	tests := []struct {
		name       string
		present    int
		registered int
		want       float64
	}{
		{"half present", 15, 30, 50.0},
		{"full house", 30, 30, 100.0},
		{"rounds to one decimal", 1, 3, 33.3},
		{"over-reported present count", 35, 30, 116.7},
		{"nobody present", 0, 25, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendancePercent(tt.present, tt.registered)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestAttendancePercentNoRegistrations(t *testing.T) {
	assert.Nil(t, AttendancePercent(10, 0))
	assert.Nil(t, AttendancePercent(0, 0))
	assert.Nil(t, AttendancePercent(5, -1))
}

func TestPresentPercent(t *testing.T) {
	got := PresentPercent(2, 3)
	require.NotNil(t, got)
	assert.Equal(t, 66.67, *got)

	got = PresentPercent(0, 4)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)

	assert.Nil(t, PresentPercent(0, 0))
}

func TestAverageRating(t *testing.T) {
	// 4 + 2 over two ratings
	got := AverageRating(6, 2)
	require.NotNil(t, got)
	assert.Equal(t, 3.0, *got)

	got = AverageRating(10, 3)
	require.NotNil(t, got)
	assert.Equal(t, 3.33, *got)

	assert.Nil(t, AverageRating(0, 0))
}

func TestAveragePresent(t *testing.T) {
	got := AveragePresent(25, 2)
	require.NotNil(t, got)
	assert.Equal(t, 12.5, *got)

	assert.Nil(t, AveragePresent(0, 0))
}

func TestClassAttendancePercent(t *testing.T) {
	// 25 present over 2 reports, 25 registered => 50%
	got := classAttendancePercent(25, 2, 25)
	require.NotNil(t, got)
	assert.Equal(t, 50.0, *got)

	assert.Nil(t, classAttendancePercent(25, 0, 25), "no reports carries no signal")
	assert.Nil(t, classAttendancePercent(0, 2, 0), "no registrations carries no signal")
}
