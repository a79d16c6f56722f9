// Package server runs the dashboard's HTTP server.
//
// It covers startup, signal handling (SIGINT, SIGTERM and SIGQUIT) and a
// graceful shutdown bounded by a timeout.
package server
