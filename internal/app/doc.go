// Package app provides application initialization and lifecycle management
// for the analyzer web server. It wires configuration, logging, observability,
// services, and HTTP handlers together at startup and owns graceful shutdown.
//
// # Initialization Flow
//
//	1. Load configuration from environment and the optional config file
//	2. Initialize logging and OpenTelemetry
//	3. Create services with their dependencies
//	4. Set up HTTP handlers and middleware
//	5. Start the HTTP server and wait for shutdown signals
//
// All initialization errors are returned to the caller; the package never
// calls os.Exit directly.
package app
