package validate

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "file://schema/notice_summary.schema.json"

//go:embed schema/notice_summary.schema.json
var noticeSchema string

var ErrInvalid = errors.New("summary does not match schema")

var (
	once    sync.Once
	schema  *jsonschema.Schema
	loadErr error
)

func load() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(noticeSchema)); err != nil {
		loadErr = err
		return
	}
	schema, loadErr = c.Compile(schemaURL)
}

// ValidateSummary validates a generic map, as produced by json.Unmarshal into
// map[string]any, against the notice summary schema.
func ValidateSummary(m map[string]any) error {
	once.Do(load)
	if loadErr != nil {
		return fmt.Errorf("compile schema: %w", loadErr)
	}
	if err := schema.Validate(m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
