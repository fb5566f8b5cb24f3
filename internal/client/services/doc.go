// Package services contains the client's application services.
//
// AuthService is the session store: the single authenticated identity of the
// process, seeded once from durable storage and replaced on login or
// registration. PollService bundles the page data loads and user actions on
// top of the API client.
//
// The session's role is a client-side hint only. The server re-validates the
// bearer token and role on every call, and it alone enforces one vote per
// user per poll.
package services
