package preset

// React enables React component and hooks rules.
const React Name = "react"

func init() {
	Register(React, func() Preset {
		return Preset{
			Name:        React,
			Description: "React component and hooks rules",
			Order:       20,
			Files:       []string{"**/*.jsx", "**/*.tsx"},
			Rules: map[string]Rule{
				"react-hooks/rules-of-hooks":           Error(),
				"react-hooks/exhaustive-deps":          Warn(),
				"react-refresh/only-export-components": Warn().With(map[string]any{"allowConstantExport": true}),
				"react/no-direct-mutation-state":       Error(),
				"react/no-array-index-key":             Warn(),
				"react/jsx-key":                        Error(),
			},
		}
	})
}
