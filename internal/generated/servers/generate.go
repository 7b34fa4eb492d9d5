// Package servers holds the echo bindings of api/openapi.yaml.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yaml ../../../api/openapi.yaml
