// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

// UserValidator checks user records and create/update payloads.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserInput:
		return v.validateInput(value, fields...)
	case *models.UserInput:
		return v.validateInput(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateInput(input models.UserInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := validateEmail(input.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUser(u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if u.ID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(u.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := validateEmail(u.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address only; "Name <a@b.c>" is rejected.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailInvalid
	}
	return nil
}
