// Package common defines the sentinel errors and typed error wrappers shared
// by the client layers. Callers match them with errors.Is and errors.As.
package common

import "errors"

var (
	// ErrAuth: bad credentials or a registration conflict.
	ErrAuth = errors.New("authentication failed")

	// ErrAuthorization: the session's role does not match the page. Pages
	// handle it with a silent redirect, never a message.
	ErrAuthorization = errors.New("not authorized for this page")

	// ErrFetch: any data load failure, shown as a generic banner.
	ErrFetch = errors.New("fetch failed")

	// ErrAction: vote, create, delete or save failure, shown as an alert.
	ErrAction = errors.New("action failed")

	// ErrValidation: client-side form validation failure. No request is sent.
	ErrValidation = errors.New("validation error")

	// ErrNoSession: an operation needs a logged-in user.
	ErrNoSession = errors.New("no active session")
)

// AuthError is returned by login and registration. Message is what the user
// sees: the server's text or a generic fallback.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() []error { return []error{ErrAuth, e.Err} }

// FetchError is a failed page load.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() []error { return []error{ErrFetch, e.Err} }

// ActionError is a failed user action.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string { return e.Message }

func (e *ActionError) Unwrap() []error { return []error{ErrAction, e.Err} }
