// Package storage is the client's durable key/value storage, the terminal
// counterpart of a browser's localStorage. Values are opaque bytes; the
// session store keeps one serialized session under a fixed key.
package storage
