// Package api holds the OpenAPI description of the dealership HTTP API.
//
// The echo bindings in internal/generated/servers are generated from it, the HTTP
// adapter validates requests against it and serves it to Swagger UI.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
