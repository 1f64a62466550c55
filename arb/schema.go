package arb

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/valadaptive/after-effects/suite"
)

// TextSchema generates a JSON Schema (Draft 2020-12) describing the
// diagnostic text form of a value type — the shape Print writes and Scan
// parses. Hosts and external tooling can validate hand-edited keyframe text
// against it before handing it back through Scan.
func TextSchema(v any) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, suite.WrapError(suite.CodeSerialization, "arb.TextSchema", err)
	}
	return data, nil
}
