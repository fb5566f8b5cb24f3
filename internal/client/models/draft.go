package models

import (
	"errors"
	"strings"

	"github.com/RitishHUB/polling-frountend/internal/common"
)

// MinOptions is the floor on poll options, both for submission and for
// removing options from a draft.
const MinOptions = 2

// ValidationError is a form problem found before any request is made. Its
// text is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

var (
	ErrIncompleteDraft = &ValidationError{Message: "Please fill all required fields and ensure no empty options"}
	ErrTooFewOptions   = &ValidationError{Message: "A poll must have at least 2 options"}
	ErrOptionIndex     = errors.New("option index out of range")
)

// PollDraft is the poll authoring form. Times are kept as the user typed
// them (e.g. "2025-03-01T09:00") and sent to the server unchanged.
type PollDraft struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Visibility       Visibility `json:"visibility"`
	StartTime        string     `json:"startTime"`
	EndTime          string     `json:"endTime"`
	Anonymous        bool       `json:"anonymous"`
	AllowLiveResults bool       `json:"allowLiveResults"`
	Options          []string   `json:"options"`
}

// NewPollDraft returns a draft with the form defaults.
func NewPollDraft() *PollDraft {
	d := &PollDraft{}
	d.Reset()
	return d
}

// Reset restores the form defaults.
func (d *PollDraft) Reset() {
	*d = PollDraft{
		Visibility:       VisibilityBoth,
		AllowLiveResults: true,
		Options:          make([]string, MinOptions),
	}
}

func (d *PollDraft) AddOption() {
	d.Options = append(d.Options, "")
}

func (d *PollDraft) SetOption(i int, text string) error {
	if i < 0 || i >= len(d.Options) {
		return ErrOptionIndex
	}
	d.Options[i] = text
	return nil
}

// RemoveOption deletes option i. It is refused while the draft has
// MinOptions or fewer options.
func (d *PollDraft) RemoveOption(i int) error {
	if len(d.Options) <= MinOptions {
		return ErrTooFewOptions
	}
	if i < 0 || i >= len(d.Options) {
		return ErrOptionIndex
	}
	d.Options = append(d.Options[:i:i], d.Options[i+1:]...)
	return nil
}

// Validate checks the draft before any request is made.
func (d *PollDraft) Validate() error {
	if blank(d.Title) || blank(d.StartTime) || blank(d.EndTime) {
		return ErrIncompleteDraft
	}
	if len(d.Options) < MinOptions {
		return ErrTooFewOptions
	}
	for _, o := range d.Options {
		if blank(o) {
			return ErrIncompleteDraft
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
