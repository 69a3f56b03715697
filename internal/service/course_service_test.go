package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sims-cli/internal/audit"
	appErrors "github.com/noah-isme/sims-cli/pkg/errors"
)

func TestCourseServiceRegister(t *testing.T) {
	tables := newTestTables(1, 3, 1)
	trail := audit.NewTrail(100, nil)
	svc := NewCourseService(tables.Courses(), trail, nil, nil)

	course, err := svc.Register(RegisterCourseRequest{
		Code:        "CS101",
		Name:        "Intro to Computing",
		Description: "Foundations",
		Credits:     3,
		MaxCapacity: 30,
		Difficulty:  2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5001, course.ID)
	assert.Equal(t, 0, course.CurrentEnrollment)
	assert.False(t, course.CreatedAt.IsZero())
}

func TestCourseServiceRegisterValidation(t *testing.T) {
	trail := audit.NewTrail(100, nil)
	svc := NewCourseService(newTestTables(1, 3, 1).Courses(), trail, nil, nil)

	_, err := svc.Register(RegisterCourseRequest{Name: "Missing code"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Register(RegisterCourseRequest{Code: "CS1", Name: "Too hard", Difficulty: 9})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestCourseServiceRegisterCapacity(t *testing.T) {
	tables := newTestTables(1, 1, 1)
	trail := audit.NewTrail(100, nil)
	svc := NewCourseService(tables.Courses(), trail, nil, nil)

	_, err := svc.Register(RegisterCourseRequest{Code: "CS101", Name: "Intro", MaxCapacity: 10})
	require.NoError(t, err)

	_, err = svc.Register(RegisterCourseRequest{Code: "CS102", Name: "More", MaxCapacity: 10})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrCapacityExceeded))
	assert.Equal(t, 1, tables.Courses().Count())
}
