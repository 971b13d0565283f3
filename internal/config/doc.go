// Package config loads and validates runtime configuration for the portal.
//
// Configuration is read from an optional `config.yaml` (working directory or
// `config/`) and can be overridden with PORTAL_-prefixed environment
// variables, e.g. PORTAL_API_BASE_URL. A `.env` file is loaded first when present.
package config
