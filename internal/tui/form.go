// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-dashboard/internal/validators"
	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCompany
	fieldCount
)

var inputValidator = validators.NewUserValidator()

// formModel is the create and edit dialog. editing is nil for create.
type formModel struct {
	inputs  []textinput.Model
	focus   int
	editing *models.User
	err     error
}

func newFormModel(editing *models.User) formModel {
	labels := []string{"Name", "Email", "Phone", "Company"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.Prompt = fitText(labels[i]+":", 10)
		in.CharLimit = 120
		inputs[i] = in
	}

	if editing != nil {
		u := editing.Clone()
		editing = &u
		input := models.FromUser(u)
		inputs[fieldName].SetValue(input.Name)
		inputs[fieldEmail].SetValue(input.Email)
		inputs[fieldPhone].SetValue(input.Phone)
		if input.Company != nil {
			inputs[fieldCompany].SetValue(input.Company.Name)
		}
	}
	inputs[fieldName].Focus()

	return formModel{inputs: inputs, editing: editing}
}

func (f formModel) title() string {
	if f.editing != nil {
		return "Edit user"
	}
	return "Add user"
}

func (f formModel) focusNext() formModel {
	return f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f formModel) focusPrev() formModel {
	return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f formModel) setFocus(i int) formModel {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
	return f
}

func (f formModel) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

// input validates the fields and builds the request payload.
func (f formModel) input(ctx context.Context) (models.UserInput, error) {
	in := models.NewUserInput(
		f.inputs[fieldName].Value(),
		f.inputs[fieldEmail].Value(),
		f.inputs[fieldPhone].Value(),
		f.inputs[fieldCompany].Value(),
	)

	if err := inputValidator.Validate(ctx, in); err != nil {
		return models.UserInput{}, err
	}

	// edits keep the parts of the company the form does not show
	if f.editing != nil && f.editing.Company != nil && in.Company != nil && in.Company.Name == f.editing.Company.Name {
		company := *f.editing.Company
		in.Company = &company
	}
	if f.editing != nil {
		in.Website = f.editing.Website
	}

	return in, nil
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) View(t theme) string {
	var b strings.Builder
	b.WriteString(t.title.Render(f.title()))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(t.err.Render(f.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.help.Render("tab/shift+tab move  enter next/save  ctrl+s save  esc cancel"))
	return b.String()
}
