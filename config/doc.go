// Package config loads the layered configuration of the aipim API server:
// defaults, then a YAML file, then AIPIM_* environment variables, with a
// .env file picked up for local development.
package config
