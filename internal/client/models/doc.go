// Package models defines the client-side view of the polling API: the
// session, polls, votes, badges, admin aggregates and the poll authoring
// draft. JSON tags follow the API's field names.
package models
