package model

import (
	"slices"
	"strings"
)

// Document is a flexible map representing a JSON document.
// The documentID is the only required field for document identification.
// Every other string field (or array of strings) is searchable.
// Example: doc["title"], doc["tags"]
type Document map[string]any

// GetDocumentID returns the documentID if it's stored in the document map under "documentID" key.
func (d Document) GetDocumentID() (string, bool) {
	if id, ok := d["documentID"]; ok {
		if str, sok := id.(string); sok {
			if str != "" {
				return str, true
			}
		}
	}
	return "", false
}

// Strings returns the searchable strings of the document in field-name
// order. The documentID and non-string values are skipped.
func (d Document) Strings() []string {
	fields := make([]string, 0, len(d))
	for field := range d {
		if field != "documentID" {
			fields = append(fields, field)
		}
	}
	slices.Sort(fields)

	var values []string
	for _, field := range fields {
		switch v := d[field].(type) {
		case string:
			values = append(values, v)
		case []string:
			values = append(values, v...)
		case []any: // JSON arrays decode as []any
			for _, item := range v {
				if s, ok := item.(string); ok {
					values = append(values, s)
				}
			}
		}
	}
	return values
}

// Title returns the text used to display the document: its "title" field
// when present, otherwise its searchable strings joined by " / ".
func (d Document) Title() string {
	if title, ok := d["title"].(string); ok && title != "" {
		return title
	}
	return strings.Join(d.Strings(), " / ")
}
