// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables, optionally seeded from a .env file
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
