// Package app is a template bot built on the interaction adapter.
//
// It loads its configuration from YAML files and the environment, logs through slog,
// exposes prometheus metrics and ships a few example commands to start from.
package app
