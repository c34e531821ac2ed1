// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// User is a single record of the remote user service.
// ID is assigned by the server and is the only identity of the record;
// Company and Address are optional and a nil value is a valid state.
type User struct {
	// ID is the server-assigned identifier. Negative values are temporary
	// ids given to optimistically created records that the server has not
	// confirmed yet.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Username is the short handle some services return alongside Name.
	Username string `json:"username,omitempty"`

	// Email is used as the sort key of the users table.
	Email string `json:"email"`

	// Phone is free-form text; no format is enforced.
	Phone string `json:"phone"`

	// Website is optional.
	Website string `json:"website,omitempty"`

	// Company is optional.
	Company *Company `json:"company,omitempty"`

	// Address is optional.
	Address *Address `json:"address,omitempty"`
}

// Company describes the employer of a user.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase,omitempty"`
	BS          string `json:"bs,omitempty"`
}

// Address is the postal address of a user.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// CompanyName returns the company name or an empty string when the user
// has no company.
func (u User) CompanyName() string {
	if u.Company == nil {
		return ""
	}
	return u.Company.Name
}

// IsTemporary reports whether the record carries a client-generated id.
func (u User) IsTemporary() bool {
	return u.ID < 0
}

// Initials returns the upper-cased first letters of every word of the name.
func (u User) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(u.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// Clone returns a deep copy of the user so that optional sub-structures are
// not shared between copies.
func (u User) Clone() User {
	c := u
	if u.Company != nil {
		company := *u.Company
		c.Company = &company
	}
	if u.Address != nil {
		address := *u.Address
		c.Address = &address
	}
	return c
}

// UserInput is the payload of create and update requests. It carries no id:
// the server assigns it on create and the URL carries it on update.
type UserInput struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Website string   `json:"website,omitempty"`
	Company *Company `json:"company,omitempty"`
}

// NewUserInput builds an input from flat form values. An empty company name
// leaves Company nil.
func NewUserInput(name, email, phone, companyName string) UserInput {
	in := UserInput{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if c := strings.TrimSpace(companyName); c != "" {
		in.Company = &Company{Name: c}
	}
	return in
}

// ToUser materialises the input as a user with the given id.
func (in UserInput) ToUser(id int64) User {
	u := User{
		ID:      id,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Website: in.Website,
	}
	if in.Company != nil {
		company := *in.Company
		u.Company = &company
	}
	return u
}

// MergeInto returns a copy of u with the input fields written over it.
// Fields the input does not carry (address, company catchphrase) are kept.
func (in UserInput) MergeInto(u User) User {
	merged := u.Clone()
	merged.Name = in.Name
	merged.Email = in.Email
	merged.Phone = in.Phone
	if in.Website != "" {
		merged.Website = in.Website
	}

	switch {
	case in.Company == nil:
		merged.Company = nil
	case merged.Company == nil:
		company := *in.Company
		merged.Company = &company
	default:
		merged.Company.Name = in.Company.Name
	}

	return merged
}

// FromUser prefills an input from an existing record, used by edit forms.
func FromUser(u User) UserInput {
	return NewUserInput(u.Name, u.Email, u.Phone, u.CompanyName())
}
