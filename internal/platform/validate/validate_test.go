// Copyright (c) 2026 InsightSource. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Energy", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MinLen_Trims checks that padding does not count toward the minimum.
*/
func TestValidator_MinLen_Trims(t *testing.T) {
	v := &validate.Validator{}
	v.MinLen("name", "  a  ", 2)
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.MinLen("name", " ab ", 2)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"padded_email", "  test@example.com ", true},
		{"invalid_format", "not-an-email", false},
		{"missing_domain", "test@", false},
		{"missing_tld", "test@example", false},
		{"inner_space", "te st@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		value   string
		isValid bool
	}{
		{"https://images.example.com/a.png", true},
		{"http://example.com", true},
		{"ftp://example.com/file", false},
		{"/relative/path.png", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		v := &validate.Validator{}
		v.URL("imageUrl", tt.value)
		assert.Equal(t, !tt.isValid, v.HasErrors(), tt.value)
	}
}

func TestValidator_SlugAndNonNegative(t *testing.T) {
	v := &validate.Validator{}
	v.Slug("slug", "global-energy").NonNegative("price", 0)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.Slug("slug", "Global Energy").NonNegative("price", -0.01)
	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").            // Fails
		MinLen("subject", "a", 2).       // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors, first one drives the message
	assert.Len(t, ae.Details, 3)
	assert.Equal(t, "name: This field is required", ae.Message)
}
