package commands

import (
	"strings"

	"go.trai.ch/handler/internal/app"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// parseEmission parses event[:arg,...].
func parseEmission(raw string) (app.Emission, error) {
	event, rest, hasArgs := strings.Cut(raw, ":")
	if event == "" {
		return app.Emission{}, zerr.With(zerr.Wrap(domain.ErrMissingEvent, "invalid --emit"), "value", raw)
	}

	e := app.Emission{Event: event}
	if hasArgs {
		for arg := range strings.SplitSeq(rest, ",") {
			e.Args = append(e.Args, parseValue(arg))
		}
	}
	return e, nil
}

// parseAssignments parses name=value pairs. Later names win.
func parseAssignments(args []string) (map[string]any, error) {
	values := make(map[string]any, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidAssignment, "invalid setting"), "argument", arg)
		}
		values[name] = parseValue(value)
	}
	return values, nil
}

// parseValue reads s as a YAML scalar so numbers and booleans keep their
// type. Anything else stays a string.
func parseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return s
	}
	switch v.(type) {
	case map[string]any, []any:
		return s
	}
	return v
}
