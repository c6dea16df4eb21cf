// Package schema validates raw request bodies against the embedded JSON
// Schema documents before they are decoded into request DTOs.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
)

// Name identifies one of the embedded schema documents.
type Name string

const (
	TaskListCreate Name = "task_list_create.json"
	TaskListUpdate Name = "task_list_update.json"
	TaskCreate     Name = "task_create.json"
	TaskUpdate     Name = "task_update.json"
)

// Root is the field key used for violations that apply to the whole document.
const Root = "/"

const baseURL = "mem:///schemas/"

//go:embed schemas/*.json
var schemaFS embed.FS

var compiled = sync.OnceValues(compileAll)

// Validate checks raw against the named schema. Malformed JSON and schema
// violations are reported as a *domain.ValidationError keyed by the JSON
// pointer of the offending property.
func Validate(name Name, raw []byte) error {
	schemas, err := compiled()
	if err != nil {
		return err
	}
	s, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}

	if err := s.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return toValidationError(ve)
		}
		return fmt.Errorf("validating against %s: %w", name, err)
	}
	return nil
}

// Names returns every embedded schema name in sorted order.
func Names() []Name {
	schemas, err := compiled()
	if err != nil {
		return nil
	}
	return slices.Sorted(maps.Keys(schemas))
}

func compileAll() (map[Name]*jsonschema.Schema, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	c.AssertFormat = true

	for _, e := range entries {
		data, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", e.Name(), err)
		}
		if err := c.AddResource(baseURL+e.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("adding schema %s: %w", e.Name(), err)
		}
	}

	out := make(map[Name]*jsonschema.Schema, len(entries))
	for _, e := range entries {
		s, err := c.Compile(baseURL + e.Name())
		if err != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", e.Name(), err)
		}
		out[Name(e.Name())] = s
	}
	return out, nil
}

// toValidationError flattens the cause tree into one message per location.
func toValidationError(ve *jsonschema.ValidationError) *domain.ValidationError {
	msgs := make(map[string][]string)
	collectLeaves(ve, msgs)

	fields := make(map[string]string, len(msgs))
	for loc, m := range msgs {
		fields[loc] = strings.Join(m, "; ")
	}
	return &domain.ValidationError{Fields: fields}
}

func collectLeaves(ve *jsonschema.ValidationError, msgs map[string][]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = Root
		}
		msgs[loc] = append(msgs[loc], ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, msgs)
	}
}
