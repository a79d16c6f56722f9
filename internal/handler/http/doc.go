// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, page and JSON handlers, and the middleware chain.
// Cross-cutting concerns such as session resolution, flash messages, request
// tracing, access logging and request metrics are handled in this package
// before requests are delegated to the service layer.
package http
