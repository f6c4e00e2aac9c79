package preset

// Strict tightens warnings into errors and adds stricter style rules.
// It applies last so its levels win over every other preset.
const Strict Name = "strict"

func init() {
	Register(Strict, func() Preset {
		return Preset{
			Name:        Strict,
			Description: "stricter rules; promotes common warnings to errors",
			Order:       90,
			Rules: map[string]Rule{
				"no-console":                  Error(),
				"no-unused-vars":              Error().With(map[string]any{"args": "after-used"}),
				"ts/no-unused-vars":           Error().With(map[string]any{"args": "after-used"}),
				"prefer-const":                Error(),
				"curly":                       Error().With("all"),
				"no-implicit-coercion":        Error(),
				"no-param-reassign":           Error(),
				"ts/no-explicit-any":          Error(),
				"react-hooks/exhaustive-deps": Error(),
			},
		}
	})
}
