package compose_test

import (
	"math"
	"testing"

	"github.com/sofmeright/lintcomposer/src/compose"
	"github.com/sofmeright/lintcomposer/src/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolved_FlattenLastWins(t *testing.T) {
	t.Parallel()

	r := compose.Build(compose.Options{"typescript": true, "strict": true}, nil)

	all := r.Flatten("")
	// typescript turns the base rule off, strict turns it back on.
	assert.Equal(t, preset.SeverityError, all["no-unused-vars"].Severity)
	assert.Equal(t, preset.SeverityOff, all["no-undef"].Severity)
	assert.Equal(t, preset.SeverityError, all["no-console"].Severity)
}

func TestResolved_FlattenByPath(t *testing.T) {
	t.Parallel()

	r := compose.Build(compose.Options{"typescript": true, "react": true}, nil)

	js := r.Flatten("src/util.js")
	assert.Equal(t, preset.SeverityError, js["no-undef"].Severity, "typescript block must not apply to .js")
	assert.NotContains(t, js, "react-hooks/rules-of-hooks")

	tsx := r.Flatten("./src/App.tsx")
	assert.Equal(t, preset.SeverityOff, tsx["no-undef"].Severity)
	assert.Equal(t, preset.SeverityError, tsx["react-hooks/rules-of-hooks"].Severity)
}

func TestResolved_Ignored(t *testing.T) {
	t.Parallel()

	r := compose.Build(nil, []string{"**/node_modules", "**/.next"})

	pattern, ok := r.Ignored("apps/web/.next/server/page.js")
	assert.True(t, ok)
	assert.Equal(t, "**/.next", pattern)

	_, ok = r.Ignored("apps/web/pages/index.tsx")
	assert.False(t, ok)
}

func TestResolved_FingerprintChanges(t *testing.T) {
	t.Parallel()

	a := compose.Build(compose.Options{"react": true}, nil)
	b := compose.Build(compose.Options{"react": true}, []string{"**/dist"})
	c := compose.Build(compose.Options{"react": true, "strict": true}, nil)

	assert.NotEqual(t, fingerprint(t, a), fingerprint(t, b))
	assert.NotEqual(t, fingerprint(t, a), fingerprint(t, c))
}

func TestResolved_FingerprintUnencodable(t *testing.T) {
	t.Parallel()

	// YAML ".nan" in a pass-through option decodes to NaN.
	r := compose.Build(compose.Options{"threshold": math.NaN()}, nil)

	fp, err := r.Fingerprint()
	require.Error(t, err)
	assert.Empty(t, fp)
}

func fingerprint(t *testing.T, r *compose.Resolved) string {
	t.Helper()

	fp, err := r.Fingerprint()
	require.NoError(t, err)
	return fp
}
