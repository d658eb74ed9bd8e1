// Package spec embeds the OpenAPI description of the travel planner's
// read-only JSON API. It is served at /openapi.yaml.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the description and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte
