package common

// SessionStorageKey is the durable-storage key holding the serialized session.
const SessionStorageKey = "currentUser"

// AuthorizationHeader carries the bearer credential on outbound requests.
const AuthorizationHeader = "Authorization"

// RequestIDHeader carries a per-request id for server-side log correlation.
const RequestIDHeader = "X-Request-ID"
