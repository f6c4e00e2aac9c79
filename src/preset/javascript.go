package preset

// JavaScript is the always-on base preset.
const JavaScript Name = "javascript"

func init() {
	Register(JavaScript, func() Preset {
		return Preset{
			Name:        JavaScript,
			Description: "core JavaScript correctness rules, always applied",
			Order:       0,
			Base:        true,
			Rules: map[string]Rule{
				"no-debugger":                      Error(),
				"no-dupe-keys":                     Error(),
				"no-unreachable":                   Error(),
				"no-undef":                         Error(),
				"no-var":                           Error(),
				"prefer-const":                     Warn().With(map[string]any{"destructuring": "all"}),
				"eqeqeq":                           Error().With("smart"),
				"no-console":                       Warn().With(map[string]any{"allow": []any{"warn", "error"}}),
				"no-unused-vars":                   Warn().With(map[string]any{"args": "none", "ignoreRestSiblings": true}),
				"unused-imports/no-unused-imports": Warn(),
				"import/first":                     Error(),
				"import/no-duplicates":             Error(),
			},
		}
	})
}
