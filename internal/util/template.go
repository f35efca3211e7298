package util

import (
	"bytes"
	"strings"
	"text/template"
)

// RenderTemplate substitutes template variables using Go's text/template
// package. Guideline text inserted into the data map must already be
// brace-escaped by the normalizer; rendered output is never re-processed.
// This lives in internal to avoid committing to public API stability
// prematurely.
func RenderTemplate(text string, data map[string]any) (string, error) {
	if !strings.Contains(text, "{{") { // fast path: no template markers
		return text, nil
	}

	tmpl, err := template.New("prompt").Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
