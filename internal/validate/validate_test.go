package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name     string `validate:"required,min=2,max=10,noAllRepeatingChars"`
	ImageURL string `validate:"omitempty,url"`
}

func TestStructFieldsValid(t *testing.T) {
	err := StructFields(&testRequest{
		Name:     "Jollof",
		ImageURL: "https://img.example/jollof.jpg",
	})
	assert.NoError(t, err)
}

func TestStructFieldsMissingRequired(t *testing.T) {
	err := StructFields(&testRequest{})
	require.Error(t, err)

	fieldErrs, ok := err.(FieldErrors)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "name")
}

func TestStructFieldsNoAllRepeatingChars(t *testing.T) {
	err := StructFields(&testRequest{Name: "aaaaa"})
	require.Error(t, err)

	fieldErrs, ok := err.(FieldErrors)
	require.True(t, ok)
	assert.Contains(t, fieldErrs["name"], "noAllRepeatingChars")
}

func TestStructFieldsBadURL(t *testing.T) {
	err := StructFields(&testRequest{
		Name:     "Jollof",
		ImageURL: "not a url",
	})
	require.Error(t, err)

	fieldErrs, ok := err.(FieldErrors)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "imageURL")
}
