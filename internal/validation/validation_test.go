package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitec/nhplus/internal/common"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0176-12345678", true},
		{"+49 176 1234", true},
		{"(030) 123/45", true},
		{"12345", true},
		{"1234", false},
		{"+123", false},
		{"", false},
		{"call me", false},
		{"12+345", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Phone(tc.in))
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("x"))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank(" \t\n"))
}

type sample struct {
	Name  string `validate:"notblank"`
	Phone string `validate:"phone"`
}

func TestStruct_ReportsFieldsAsValidationError(t *testing.T) {
	err := Struct(sample{Name: "  ", Phone: "12"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorValidation))
	assert.Contains(t, err.Error(), "Name (notblank)")
	assert.Contains(t, err.Error(), "Phone (phone)")
}

func TestStruct_OK(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "Karin", Phone: "0176-12345679"}))
}

func TestErrorf(t *testing.T) {
	err := Errorf("end %s must be after begin %s", "10:00", "11:00")
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "end 10:00 must be after begin 11:00")
}
