package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"**/node_modules", "node_modules", true},
		{"**/node_modules", "web/app/node_modules", true},
		{"**/node_modules", "web/node_modules_old", false},
		{"**/dist", "dist", true},
		{"src/**/*.ts", "src/a.ts", true},
		{"src/**/*.ts", "src/a/b/c.ts", true},
		{"src/**/*.ts", "srcx/a.ts", false},
		{"src/*/index.js", "src/ui/index.js", true},
		{"src/*/index.js", "src/ui/deep/index.js", false},
		{"**", "anything/at/all", true},
		{"a/**/**/b", "a/b", true},
		{"src/**/*.{js,jsx,ts,tsx}", "src/components/Button.tsx", true},
		{"src/**/*.{js,jsx,ts,tsx}", "src/styles/site.css", false},
		{"*.{min.{js,css},map}", "app.min.css", true},
		{"*.{min.{js,css},map}", "app.map", true},
		{"*.{min.{js,css},map}", "app.js", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchGlob(tt.pattern, tt.name), "MatchGlob(%q, %q)", tt.pattern, tt.name)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate("**/dist"))
	require.NoError(t, Validate("src/**/*.{js,ts}"))
	require.ErrorIs(t, Validate("src/[a-"), ErrBadPattern)
	require.ErrorIs(t, Validate("*.{js,ts"), ErrBadPattern)
}

func TestExpandBraces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a.js", "a.ts"}, expandBraces("a.{js,ts}"))
	assert.Equal(t, []string{"x1y", "x2y"}, expandBraces("x{1,2}y"))
	assert.Equal(t, []string{"plain"}, expandBraces("plain"))
	assert.Equal(t, []string{"open{"}, expandBraces("open{"))
}
