package models

import (
	"encoding/json"
	"fmt"
)

// Role is the account kind that gates pages.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleStaff   Role = "Staff"
	RoleStudent Role = "Student"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// Session is the authenticated identity and bearer credential. It is what
// /auth/login and /auth/register return and what durable storage holds.
type Session struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Token      string `json:"token"`
	RollNumber string `json:"rollNumber,omitempty"`
	Department string `json:"department,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// Merge returns a copy of s with every field present in the JSON object raw
// overwritten. Fields absent from raw keep their current value.
func (s Session) Merge(raw []byte) (Session, error) {
	merged := s
	if err := json.Unmarshal(raw, &merged); err != nil {
		return s, fmt.Errorf("merge session: %w", err)
	}
	return merged, nil
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration request body.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role,omitempty"`
	RollNumber string `json:"rollNumber,omitempty"`
	Department string `json:"department,omitempty"`
}

// ProfileUpdate is the editable part of a student's profile.
type ProfileUpdate struct {
	RollNumber string `json:"rollNumber"`
	Department string `json:"department"`
	ProfilePic string `json:"profilePic"`
}

// ProfileFrom seeds an edit form from the current session.
func ProfileFrom(s *Session) ProfileUpdate {
	if s == nil {
		return ProfileUpdate{}
	}
	return ProfileUpdate{RollNumber: s.RollNumber, Department: s.Department, ProfilePic: s.ProfilePic}
}
