package web

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadOpenAPI reads and validates the service description served at /openapi.json.
func LoadOpenAPI(ctx context.Context, location string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(location)
	if err != nil {
		return nil, err
	}

	err = doc.Validate(ctx)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
