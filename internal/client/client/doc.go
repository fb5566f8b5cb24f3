// Package client is the HTTP adapter between the pollhub client and the
// polling API.
//
// # Overview
//
//  1. Client is the transport-agnostic contract: one method per consumed
//     endpoint under the /api base.
//  2. HTTPClient implements it with net/http and JSON bodies. Its transport
//     attaches "Authorization: Bearer <token>" to every request whenever the
//     persisted session holds a token, plus an X-Request-ID.
//  3. InitDatabase opens the local SQLite file behind durable storage and
//     applies the embedded goose migrations.
//
// # Error Handling
//
// Each call is a single attempt: no retries, no timeout policy, no caching.
// Non-2xx answers come back as *APIError carrying the server's message.
// Callers match ErrUnauthorized, ErrForbidden and ErrUnavailable with
// errors.Is; ServerMessage extracts the text to show the user.
package client
