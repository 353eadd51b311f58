// Package http holds the chi HTTP handlers. Handlers parse and validate
// requests, delegate to the service layer, and map domain errors onto API
// error responses; they hold no business logic.
package http
