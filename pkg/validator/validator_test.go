package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNationalID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid plain", "12345678909", true},
		{"valid with separators", "123.456.789-09", true},
		{"wrong check digit", "12345678908", false},
		{"wrong first check digit", "12345678919", false},
		{"too short", "1234567890", false},
		{"too long", "123456789091", false},
		{"all same digits", "11111111111", false},
		{"letters", "12345abc909", false},
		{"empty", "", false},
		{"separators only", "...---", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidNationalID(tt.id))
		})
	}
}

func TestValidate_Phone(t *testing.T) {
	cv := NewValidator()

	type form struct {
		Phone string `validate:"phone"`
	}

	assert.NoError(t, cv.Validate(&form{Phone: "+5511987654321"}))
	assert.NoError(t, cv.Validate(&form{Phone: "11987654321"}))
	assert.Error(t, cv.Validate(&form{Phone: "12345"}))
	assert.Error(t, cv.Validate(&form{Phone: "not-a-phone"}))
}

func TestValidate_NationalIDTag(t *testing.T) {
	cv := NewValidator()

	type form struct {
		NationalID string `validate:"national_id"`
	}

	assert.NoError(t, cv.Validate(&form{NationalID: "123.456.789-09"}))
	assert.Error(t, cv.Validate(&form{NationalID: "11111111111"}))
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	type form struct {
		Email string `validate:"required,email"`
		Sex   string `validate:"required,oneof=MALE FEMALE"`
	}

	err := cv.Validate(&form{Email: "nope", Sex: "OTHER"})
	assert.Error(t, err)

	errors := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", errors["Email"])
	assert.Equal(t, "Sex must be one of: MALE FEMALE", errors["Sex"])
}
