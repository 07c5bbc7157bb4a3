// Package schema generates JSON Schema for the aurcheck result and config types.
package schema

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/aurcheck/pkg/config"
	"github.com/smykla-skalski/aurcheck/pkg/update"
)

const schemaURI = "https://json-schema.org/draft/2020-12/schema"

// Target selects the type a schema is generated for.
type Target string

const (
	// TargetResult is the update check result printed by "check --json".
	TargetResult Target = "result"

	// TargetConfig is the TOML configuration file.
	TargetConfig Target = "config"
)

// ErrUnknownTarget is returned for a Target other than the known ones.
var ErrUnknownTarget = errors.New("unknown schema target")

var titles = map[Target]string{
	TargetResult: "aurcheck update result",
	TargetConfig: "aurcheck configuration",
}

// Targets returns the supported targets.
func Targets() []Target {
	return []Target{TargetResult, TargetConfig}
}

// Generate produces a JSON Schema for target.
func Generate(target Target) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	var s *jsonschema.Schema

	switch target {
	case TargetResult:
		// Every field is emitted; optional ones are null.
		s = r.Reflect(&update.Info{})
	case TargetConfig:
		// Every key may be omitted from the file.
		r.RequiredFromJSONSchemaTags = true
		s = r.Reflect(&config.Config{})
	default:
		return nil, errors.Wrapf(ErrUnknownTarget, "%q", target)
	}

	s.Version = schemaURI
	s.Title = titles[target]

	return s, nil
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(target Target, indent bool) ([]byte, error) {
	s, err := Generate(target)
	if err != nil {
		return nil, err
	}

	var data []byte

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	// Append trailing newline for file output.
	return append(data, '\n'), nil
}
