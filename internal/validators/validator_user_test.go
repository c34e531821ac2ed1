// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-dashboard/models"
)

func TestNewUserValidator(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()
	input := models.UserInput{Name: "Ann", Email: "ann@x.com"}
	user := models.User{ID: 1, Name: "Ann", Email: "ann@x.com"}

	assert.NoError(t, v.Validate(ctx, input))
	assert.NoError(t, v.Validate(ctx, &input))
	assert.NoError(t, v.Validate(ctx, user))
	assert.NoError(t, v.Validate(ctx, &user))
	assert.ErrorIs(t, v.Validate(ctx, "ann"), ErrUnsupportedType)
}

func TestValidate_UserInput(t *testing.T) {
	tests := []struct {
		name   string
		input  models.UserInput
		fields []string
		want   error
	}{
		{name: "valid", input: models.UserInput{Name: "Ann", Email: "ann@x.com"}},
		{name: "blank name", input: models.UserInput{Name: "  ", Email: "ann@x.com"}, want: ErrNameRequired},
		{name: "missing email", input: models.UserInput{Name: "Ann"}, want: ErrEmailRequired},
		{name: "malformed email", input: models.UserInput{Name: "Ann", Email: "ann"}, want: ErrEmailInvalid},
		{name: "display name in email", input: models.UserInput{Name: "Ann", Email: "Ann <ann@x.com>"}, want: ErrEmailInvalid},
		{name: "only name checked", input: models.UserInput{Name: "Ann", Email: "bad"}, fields: []string{FieldName}},
		{name: "unknown field", input: models.UserInput{Name: "Ann", Email: "ann@x.com"}, fields: []string{"phone"}, want: ErrUnknownField},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.input, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_User(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.User{ID: 0, Name: "Ann", Email: "ann@x.com"}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.User{ID: -3, Name: "Ann", Email: "ann@x.com"}), ErrInvalidUserID)
	assert.NoError(t, v.Validate(ctx, models.User{ID: -3, Name: "Ann", Email: "ann@x.com"}, FieldName, FieldEmail))
}
