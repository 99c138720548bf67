package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtran/portfolio-api/pkg/apperror"
)

type sampleInput struct {
	Title            string `json:"title" validate:"required"`
	RepositoryURL    string `json:"repository_url" validate:"required,url"`
	Email            string `json:"email" validate:"omitempty,email"`
	ProficiencyLevel int    `json:"proficiency_level" validate:"min=1,max=5"`
	DisplayOrder     int    `json:"display_order" validate:"gte=0"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(sampleInput{
		Title:            "CLI Tool",
		RepositoryURL:    "https://github.com/user/cli-tool",
		ProficiencyLevel: 3,
	})
	assert.NoError(t, err)
}

func TestStruct_ReportsAllViolationsAtOnce(t *testing.T) {
	err := Struct(sampleInput{
		Email:            "not-an-email",
		ProficiencyLevel: 6,
		DisplayOrder:     -1,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	assert.Len(t, appErr.Violations, 5)
	assert.Contains(t, appErr.Violations, "title is required")
	assert.Contains(t, appErr.Violations, "repository_url is required")
	assert.Contains(t, appErr.Violations, "email must be a valid email address")
	assert.Contains(t, appErr.Violations, "proficiency_level must be at most 5")
	assert.Contains(t, appErr.Violations, "display_order must be at least 0")
}

func TestStruct_ProficiencyBelowMinimum(t *testing.T) {
	err := Struct(sampleInput{
		Title:            "x",
		RepositoryURL:    "https://example.com",
		ProficiencyLevel: 0,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Violations, "proficiency_level must be at least 1")
}

func TestStruct_UsesJSONFieldNames(t *testing.T) {
	err := Struct(sampleInput{Title: "x", RepositoryURL: "not a url", ProficiencyLevel: 1})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Violations, "repository_url must be a valid URL")
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/demo"))
	assert.False(t, IsURL("notaurl"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.False(t, IsEmail("a@"))
}

func TestViolations_Empty(t *testing.T) {
	var v Violations
	assert.NoError(t, v.Err())
}

func TestViolations_Accumulates(t *testing.T) {
	var v Violations
	v.Add("title cannot be null")
	v.Addf("proficiency_level must be between %d and %d", 1, 5)

	err := v.Err()
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{
		"title cannot be null",
		"proficiency_level must be between 1 and 5",
	}, appErr.Violations)
}
