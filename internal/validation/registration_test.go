package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEmptyRegistration(t *testing.T) {
	t.Parallel()

	result := Check(Registration{})
	require.False(t, result.Valid())
	require.False(t, result[FieldName])
	require.False(t, result[FieldEmail])
	require.False(t, result[FieldPassword])
	require.True(t, result[FieldConfirmPassword], "two empty passwords match")
	require.Equal(t, []Field{FieldName, FieldEmail, FieldPassword}, result.Invalid())
}

func TestCheckValidRegistration(t *testing.T) {
	t.Parallel()

	result := Check(Registration{
		Name:            "Al",
		Email:           "a@b.c",
		Password:        "abc123!@",
		ConfirmPassword: "abc123!@",
	})
	require.True(t, result.Valid())
	require.Empty(t, result.Invalid())
}

func TestCheckMismatchedConfirmation(t *testing.T) {
	t.Parallel()

	result := Check(Registration{
		Name:            "Al",
		Email:           "a@b.c",
		Password:        "abc123!@",
		ConfirmPassword: "abc123!#",
	})
	require.False(t, result.Valid())
	require.Equal(t, []Field{FieldConfirmPassword}, result.Invalid())
}

func TestCheckFieldMatchesCheck(t *testing.T) {
	t.Parallel()

	regs := []Registration{
		{},
		{Name: "Al", Email: "a@b", Password: "short1!", ConfirmPassword: "x"},
		{Name: " A ", Email: "a@b.c", Password: "abc123!@", ConfirmPassword: "abc123!@"},
	}
	for _, reg := range regs {
		result := Check(reg)
		for _, field := range Fields {
			require.Equal(t, result[field], CheckField(reg, field), "%+v %s", reg, field)
		}
	}
}

func TestCheckFieldUnknown(t *testing.T) {
	t.Parallel()

	require.False(t, CheckField(Registration{}, Field("age")))
}
