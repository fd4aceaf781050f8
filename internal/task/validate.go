package task

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaSource string

var storeSchema = jsonschema.MustCompileString("tasker://store.schema.json", schemaSource)

// validateStoreFile checks raw store-file bytes against the embedded JSON
// Schema. The returned error lists every violation with its JSON path.
func validateStoreFile(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	err := storeSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var violations []string
	collectSchemaErrors(&violations, ve)
	return fmt.Errorf("schema validation failed: %s", strings.Join(violations, "; "))
}

// collectSchemaErrors flattens nested schema errors into leaf messages.
func collectSchemaErrors(violations *[]string, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		path := jsonPointerToPath(err.InstanceLocation)
		if path == "" {
			*violations = append(*violations, err.Message)
		} else {
			*violations = append(*violations, fmt.Sprintf("%s: %s", path, err.Message))
		}
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(violations, cause)
	}
}

// jsonPointerToPath converts a JSON pointer like /tasks/0/priority to a
// dotted path like tasks[0].priority.
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
