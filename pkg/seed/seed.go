// Package seed carries the default site content used to create the
// content row on a fresh database.
package seed

import (
	"bytes"
	_ "embed"

	"content-gateway/pkg/models"
)

//go:embed default_content.json
var defaultContent []byte

// DefaultContent returns the built-in site content document
func DefaultContent() (models.Content, error) {
	var content models.Content
	if err := models.Decode(bytes.NewReader(defaultContent), &content); err != nil {
		return models.Content{}, err
	}
	return content, nil
}
