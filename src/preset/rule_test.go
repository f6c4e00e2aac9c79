package preset_test

import (
	"testing"

	"github.com/sofmeright/lintcomposer/src/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want preset.Severity
	}{
		{"off", preset.SeverityOff},
		{"warn", preset.SeverityWarn},
		{"Warning", preset.SeverityWarn},
		{" error ", preset.SeverityError},
		{0, preset.SeverityOff},
		{int64(1), preset.SeverityWarn},
		{uint64(2), preset.SeverityError},
		{float64(2), preset.SeverityError},
		{"2", preset.SeverityError},
	}
	for _, tt := range tests {
		got, err := preset.ParseSeverity(tt.in)
		require.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}

	for _, bad := range []any{"fatal", 3, -1, 1.5, true, nil} {
		_, err := preset.ParseSeverity(bad)
		require.ErrorIs(t, err, preset.ErrInvalidRule, "input %v", bad)
	}
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	t.Run("bare severity", func(t *testing.T) {
		t.Parallel()

		r, err := preset.ParseRule("warn")
		require.NoError(t, err)
		assert.Equal(t, preset.Warn(), r)
	})

	t.Run("list with options", func(t *testing.T) {
		t.Parallel()

		r, err := preset.ParseRule([]any{"error", "always", map[string]any{"null": "ignore"}})
		require.NoError(t, err)
		assert.Equal(t, preset.SeverityError, r.Severity)
		assert.Equal(t, []any{"always", map[string]any{"null": "ignore"}}, r.Options)
	})

	t.Run("string list", func(t *testing.T) {
		t.Parallel()

		r, err := preset.ParseRule([]string{"warn", "smart"})
		require.NoError(t, err)
		assert.Equal(t, preset.Warn().With("smart"), r)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		_, err := preset.ParseRule([]any{})
		require.ErrorIs(t, err, preset.ErrInvalidRule)
	})

	t.Run("named rule errors", func(t *testing.T) {
		t.Parallel()

		_, err := preset.ParseRules(map[string]any{"eqeqeq": "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rules.eqeqeq")
	})
}

func TestSeverity_Text(t *testing.T) {
	t.Parallel()

	text, err := preset.SeverityWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(text))

	var s preset.Severity
	require.NoError(t, s.UnmarshalText([]byte("error")))
	assert.Equal(t, preset.SeverityError, s)
	assert.Equal(t, "severity(7)", preset.Severity(7).String())
}

func TestCloneRules_DeepCopy(t *testing.T) {
	t.Parallel()

	orig := map[string]preset.Rule{
		"no-console": preset.Warn().With(map[string]any{"allow": []any{"warn"}}),
	}
	clone := preset.CloneRules(orig)
	clone["no-console"].Options[0].(map[string]any)["allow"].([]any)[0] = "log"

	assert.Equal(t, "warn", orig["no-console"].Options[0].(map[string]any)["allow"].([]any)[0])
	assert.NotNil(t, preset.CloneRules(nil))
}
