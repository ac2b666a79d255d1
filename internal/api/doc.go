// Package api exposes the journal over JSON/HTTP. Handlers decode and
// validate requests, call the journal services with the session carried in
// the request context, and map service errors to status codes without
// leaking internal detail.
package api
