// Package config loads server settings from MINDSET_* environment variables
// and an optional YAML file, then validates them before anything else starts.
package config
