package preset

// NextJS enables Next.js framework rules.
const NextJS Name = "nextjs"

func init() {
	Register(NextJS, func() Preset {
		return Preset{
			Name:        NextJS,
			Description: "Next.js framework rules",
			Order:       30,
			Files:       []string{"**/*.js", "**/*.jsx", "**/*.ts", "**/*.tsx"},
			Rules: map[string]Rule{
				"next/no-html-link-for-pages":    Error(),
				"next/no-img-element":            Warn(),
				"next/no-sync-scripts":           Error(),
				"next/no-head-element":           Warn(),
				"next/google-font-display":       Warn(),
				"next/no-assign-module-variable": Error(),
				// Next pages export non-component values (metadata, config).
				"react-refresh/only-export-components": Off(),
			},
		}
	})
}
