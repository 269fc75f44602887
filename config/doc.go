// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Values from a .env file or the process environment override the file, so a
// single deployment can point the pipeline at fresh datasets without editing it.
package config
