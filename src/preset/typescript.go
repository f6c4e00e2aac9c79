package preset

// TypeScript enables type-aware rules for TypeScript sources.
const TypeScript Name = "typescript"

func init() {
	Register(TypeScript, func() Preset {
		return Preset{
			Name:        TypeScript,
			Description: "type-aware rules for TypeScript sources",
			Order:       10,
			Files:       []string{"**/*.ts", "**/*.tsx", "**/*.mts", "**/*.cts"},
			Rules: map[string]Rule{
				// The compiler reports undefined identifiers itself.
				"no-undef":          Off(),
				"no-unused-vars":    Off(),
				"ts/no-unused-vars": Warn().With(map[string]any{"args": "none", "ignoreRestSiblings": true}),
				"ts/consistent-type-imports": Error().With(map[string]any{
					"prefer":                  "type-imports",
					"disallowTypeAnnotations": false,
				}),
				"ts/consistent-type-definitions": Error().With("interface"),
				"ts/no-explicit-any":             Off(),
				"ts/no-non-null-assertion":       Off(),
				"ts/no-floating-promises":        Error(),
				"ts/await-thenable":              Error(),
			},
		}
	})
}
