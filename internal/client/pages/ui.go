package pages

// UI is how a page reports to the user. Alert is for failures, Notify for
// good news, Confirm guards destructive actions.
type UI interface {
	Alert(msg string)
	Notify(msg string)
	Confirm(msg string) bool
}

// Navigator changes the current route.
type Navigator interface {
	Navigate(route string)
}
