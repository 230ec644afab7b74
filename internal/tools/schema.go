package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sozercan/inkwell/internal/llm"
)

// schemas holds the compiled parameter schema of every tool, keyed by name.
var schemas sync.Map

// newTool describes a function whose arguments decode into args. Field
// descriptions come from the `description` struct tag. The parameter
// schema is compiled here so Decode never has to.
func newTool(name, description string, args any) llm.Tool {
	tool := llm.Tool{
		Name:        name,
		Description: description,
		Parameters:  typeToJSONSchema(reflect.TypeOf(args)),
	}
	if _, err := schemaFor(tool); err != nil {
		panic(err)
	}
	return tool
}

// schemaFor returns the compiled parameter schema of tool, compiling it on
// first use.
func schemaFor(tool llm.Tool) (*jsonschema.Schema, error) {
	if cached, ok := schemas.Load(tool.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	schemaBytes, err := json.Marshal(tool.Parameters)
	if err != nil {
		return nil, fmt.Errorf("encoding %s schema: %w", tool.Name, err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(tool.Name+".json", bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("loading %s schema: %w", tool.Name, err)
	}
	compiled, err := compiler.Compile(tool.Name + ".json")
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", tool.Name, err)
	}

	actual, _ := schemas.LoadOrStore(tool.Name, compiled)
	return actual.(*jsonschema.Schema), nil
}

func typeToJSONSchema(t reflect.Type) map[string]any {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		props := map[string]any{}
		var required []string

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			name := jsonFieldName(f)
			if name == "" {
				continue
			}

			fieldSchema := typeToJSONSchema(f.Type)
			if desc := f.Tag.Get("description"); desc != "" {
				fieldSchema["description"] = desc
			}
			props[name] = fieldSchema

			// Pointers and omitempty fields are optional
			if f.Type.Kind() != reflect.Ptr && !strings.Contains(f.Tag.Get("json"), "omitempty") {
				required = append(required, name)
			}
		}

		schema := map[string]any{
			"type":       "object",
			"properties": props,
		}
		if len(required) > 0 {
			schema["required"] = required
		}
		return schema

	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int64, reflect.Int32:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice, reflect.Array:
		return map[string]any{
			"type":  "array",
			"items": typeToJSONSchema(t.Elem()),
		}
	default:
		return map[string]any{"type": "object"}
	}
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return strings.ToLower(f.Name)
	}
	return strings.Split(tag, ",")[0]
}

// Decode extracts the JSON object from a model payload, checks it against
// the tool's parameter schema and decodes it into v.
func Decode(tool llm.Tool, payload string, v any) error {
	var doc any
	if err := llm.DecodeJSON(payload, &doc); err != nil {
		return err
	}

	compiled, err := schemaFor(tool)
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("%s arguments: %w", tool.Name, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
