// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults. The merged result is an immutable value constructed
// once at process start; the credential subsystem and all services receive
// it explicitly at construction time instead of reading ambient globals.
package config
