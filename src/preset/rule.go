package preset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule reports a rule value that is neither a severity nor a
// [severity, options...] list.
var ErrInvalidRule = errors.New("invalid rule")

// Severity is the level a rule reports at.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity accepts the names off/warn/error (warning is an alias of
// warn) and the numeric levels 0, 1 and 2.
func ParseSeverity(v any) (Severity, error) {
	switch s := v.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "off", "0":
			return SeverityOff, nil
		case "warn", "warning", "1":
			return SeverityWarn, nil
		case "error", "2":
			return SeverityError, nil
		}
		return 0, fmt.Errorf("%w: unknown severity %q", ErrInvalidRule, s)
	case int:
		return severityFromInt(int64(s))
	case int64:
		return severityFromInt(s)
	case uint64:
		return severityFromInt(int64(s))
	case float64:
		if s != float64(int64(s)) {
			return 0, fmt.Errorf("%w: severity %v is not an integer", ErrInvalidRule, s)
		}
		return severityFromInt(int64(s))
	case Severity:
		return severityFromInt(int64(s))
	}
	return 0, fmt.Errorf("%w: severity must be a string or number, got %T", ErrInvalidRule, v)
}

func severityFromInt(n int64) (Severity, error) {
	if n < int64(SeverityOff) || n > int64(SeverityError) {
		return 0, fmt.Errorf("%w: severity %d out of range 0-2", ErrInvalidRule, n)
	}
	return Severity(n), nil
}

// MarshalText encodes the severity by name for JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name or numeric string.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Rule is a single rule setting inside a preset or override block.
type Rule struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Options  []any    `json:"options,omitempty" yaml:"options,omitempty"`
}

// Off, Warn and Error build option-less rules.
func Off() Rule   { return Rule{Severity: SeverityOff} }
func Warn() Rule  { return Rule{Severity: SeverityWarn} }
func Error() Rule { return Rule{Severity: SeverityError} }

// With returns a copy of r carrying the given rule options.
func (r Rule) With(opts ...any) Rule {
	r.Options = append([]any(nil), opts...)
	return r
}

// ParseRule decodes a rule value as written in a config file: either a bare
// severity ("warn", 2) or a list whose first element is the severity and the
// rest are rule options (["error", "always"]).
func ParseRule(v any) (Rule, error) {
	switch x := v.(type) {
	case Rule:
		return x.clone(), nil
	case []any:
		if len(x) == 0 {
			return Rule{}, fmt.Errorf("%w: empty rule list", ErrInvalidRule)
		}
		sev, err := ParseSeverity(x[0])
		if err != nil {
			return Rule{}, err
		}
		r := Rule{Severity: sev}
		if len(x) > 1 {
			r.Options = append([]any(nil), x[1:]...)
		}
		return r, nil
	case []string:
		items := make([]any, len(x))
		for i, s := range x {
			items[i] = s
		}
		return ParseRule(items)
	}
	sev, err := ParseSeverity(v)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Severity: sev}, nil
}

// ParseRules decodes a rule-name to rule-value map, naming the offending rule
// on failure.
func ParseRules(raw map[string]any) (map[string]Rule, error) {
	out := make(map[string]Rule, len(raw))
	for name, v := range raw {
		r, err := ParseRule(v)
		if err != nil {
			return nil, fmt.Errorf("rules.%s: %w", name, err)
		}
		out[name] = r
	}
	return out, nil
}

func (r Rule) clone() Rule {
	if r.Options != nil {
		opts := make([]any, len(r.Options))
		for i, o := range r.Options {
			opts[i] = CopyValue(o)
		}
		r.Options = opts
	}
	return r
}

// CopyValue deep-copies the map and slice shapes produced by YAML, TOML and
// JSON decoding. Other values are returned as is.
func CopyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = CopyValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = CopyValue(e)
		}
		return out
	case []string:
		return append([]string(nil), x...)
	}
	return v
}

// CloneRules deep-copies a rule map. A nil map yields an empty one.
func CloneRules(rules map[string]Rule) map[string]Rule {
	out := make(map[string]Rule, len(rules))
	for name, r := range rules {
		out[name] = r.clone()
	}
	return out
}
