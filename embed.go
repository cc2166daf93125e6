package filedepot

import "embed"

// OpenAPIFS holds the machine-readable API description served at
// /openapi.yaml, embedded so the binary works from any working directory.
//
//go:embed openapi.yaml
var OpenAPIFS embed.FS
