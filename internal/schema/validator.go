// Package schema validates structured inputs (the pattern rule table and
// starter-code bundle files) against embedded CUE schemas.
package schema

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Schema names.
const (
	Rules  = "rules"
	Bundle = "bundle"
)

// ValidationError is returned when data does not conform to a schema.
type ValidationError struct {
	Schema string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s schema validation failed: %v", e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validator handles CUE validation. A cue.Context is not safe for concurrent
// use, so every validation holds mu.
type Validator struct {
	mu      sync.Mutex
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a Validator with every embedded schema compiled.
func NewValidator() (*Validator, error) {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
	if err := v.loadSchemas(); err != nil {
		return nil, err
	}
	return v, nil
}

// loadSchemas compiles all CUE schema files from the embedded filesystem.
func (v *Validator) loadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}

		// rules.cue -> rules
		v.schemas[strings.TrimSuffix(entry.Name(), ".cue")] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas embedded")
	}
	return nil
}

// ValidateRules validates a decoded rule table.
func (v *Validator) ValidateRules(data map[string]any) error {
	return v.Validate(Rules, data)
}

// ValidateBundle validates a decoded starter-code bundle.
func (v *Validator) ValidateBundle(data map[string]any) error {
	return v.Validate(Bundle, data)
}

// Validate checks data against the named schema's #Name definition.
func (v *Validator) Validate(schemaName string, data map[string]any) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	schema, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("unknown schema: %s", schemaName)
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return fmt.Errorf("error encoding data: %w", encErr)
	}

	// rules -> #Rules
	defPath := cue.ParsePath("#" + strings.ToUpper(schemaName[:1]) + schemaName[1:])
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return fmt.Errorf("schema %s has no %s definition", schemaName, defPath)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return &ValidationError{Schema: schemaName, Err: err}
	}

	// Concreteness catches missing required fields.
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Schema: schemaName, Err: err}
	}
	return nil
}
