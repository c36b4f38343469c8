// Package config loads store configuration from YAML with a small
// set of environment variable overrides, for host applications that
// prefer declaring their logging setup over wiring the builder by
// hand.
package config
