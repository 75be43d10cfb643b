package loss

import (
	"fmt"
	"strings"

	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/internal/strparse"
)

// Params holds the named parameters of an objective configuration string,
// keyed by their folded lower-case form.
type Params map[string]float64

// pop removes and returns the named parameter, or def when absent.
func (p Params) pop(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		delete(p, name)
		return v
	}

	return def
}

// builder constructs a configured objective from parsed parameters.
type builder func(params Params, cfg Config) (*Objective, error)

// registry maps folded objective names to builders. It is populated from
// init functions and read-only afterwards.
var registry = map[string]builder{}

func register(name string, b builder) {
	key := strparse.TrimFold(name)
	if _, dup := registry[key]; dup {
		panic(fmt.Sprintf("loss: duplicate objective registration %q", key))
	}
	registry[key] = b
}

// Names returns the registered objective names, for diagnostics.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	return names
}

// Parse resolves an objective configuration string of the form
// name[:param=value[,param=value]*]. The name and parameter keys are
// case-insensitive and tolerate surrounding whitespace; values are decimal
// floating-point numbers.
//
// Unknown names yield errs.ErrUnknownObjective and malformed parameter lists
// yield errs.ErrMalformedObjective, both before any sample is processed.
func Parse(spec string, cfg Config) (*Objective, error) {
	name, paramSpec, hasParams := strings.Cut(spec, ":")

	key := strparse.TrimFold(name)
	if key == "" {
		return nil, fmt.Errorf("empty objective name in %q: %w", spec, errs.ErrMalformedObjective)
	}
	build, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("objective %q: %w", key, errs.ErrUnknownObjective)
	}

	params := Params{}
	if hasParams {
		if err := parseParams(paramSpec, params); err != nil {
			return nil, fmt.Errorf("objective %q: %w", key, err)
		}
	}

	obj, err := build(params, cfg)
	if err != nil {
		return nil, fmt.Errorf("objective %q: %w", key, err)
	}
	// builders consume the parameters they understand; leftovers are a
	// configuration error, not something to ignore silently
	if len(params) > 0 {
		for leftover := range params {
			return nil, fmt.Errorf("objective %q: unknown parameter %q: %w",
				key, leftover, errs.ErrMalformedObjective)
		}
	}

	return obj, nil
}

func parseParams(paramSpec string, params Params) error {
	for _, part := range strings.Split(paramSpec, ",") {
		rawKey, rawValue, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("parameter %q has no value: %w", strings.TrimSpace(part), errs.ErrMalformedObjective)
		}

		key := strparse.TrimFold(rawKey)
		if key == "" {
			return fmt.Errorf("parameter with empty name: %w", errs.ErrMalformedObjective)
		}
		if _, dup := params[key]; dup {
			return fmt.Errorf("duplicate parameter %q: %w", key, errs.ErrMalformedObjective)
		}

		value, next, ok := strparse.ScanFloat(rawValue, 0)
		if !ok || next != len(rawValue) {
			return fmt.Errorf("parameter %q has malformed value %q: %w", key, strings.TrimSpace(rawValue), errs.ErrMalformedObjective)
		}

		params[key] = value
	}

	return nil
}
