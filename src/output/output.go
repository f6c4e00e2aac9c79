package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sofmeright/lintcomposer/src/compose"
	"github.com/sofmeright/lintcomposer/src/preset"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Render writes r to w in the given format. Color only affects text.
func Render(w io.Writer, r *compose.Resolved, format Format, color bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		RenderText(w, r, color)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderText writes a human-readable summary of r inside framed sections.
func RenderText(w io.Writer, r *compose.Resolved, color bool) {
	SectionStart(w, "lc_presets", "Presets")
	sec := NewSection(w, "Presets", "catalog "+r.CatalogVersion, color)
	if len(r.Presets) == 0 {
		sec.Row("%s", Dimmed("no optional presets enabled", color))
	}
	for _, p := range r.Presets {
		sec.Row("%s", colorize(string(p), colorCyan, color))
	}
	if len(r.Extra) > 0 {
		sec.Separator()
		keys := make([]string, 0, len(r.Extra))
		for k := range r.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sec.Row("%-16s%v %s", k, r.Extra[k], Dimmed("(passed through)", color))
		}
	}
	sec.Close()
	SectionEnd(w, "lc_presets")

	SectionStart(w, "lc_blocks", "Blocks")
	sec = NewSection(w, "Blocks", fmt.Sprintf("%d rules", len(r.Flatten(""))), color)
	sec.Row("%-16s%6s  %6s  %6s  %s", "block", "rules", "error", "warn", "files")
	for _, b := range r.Blocks {
		errs, warns := countSeverities(b.Rules)
		files := "*"
		if len(b.Files) > 0 {
			files = strings.Join(b.Files, " ")
		}
		sec.Row("%-16s%6d  %6s  %6s  %s", b.Name, len(b.Rules),
			colorize(fmt.Sprint(errs), colorRed, color && errs > 0),
			colorize(fmt.Sprint(warns), colorYellow, color && warns > 0),
			Dimmed(files, color))
	}
	sec.Close()
	SectionEnd(w, "lc_blocks")

	SectionStart(w, "lc_ignores", "Ignores")
	sec = NewSection(w, "Ignores", "", color)
	if len(r.Ignores) == 0 {
		sec.Row("%s", Dimmed("nothing ignored", color))
	}
	for _, g := range r.Ignores {
		sec.Row("%s", g)
	}
	if len(r.Includes) > 0 {
		sec.Separator()
		for _, g := range r.Includes {
			sec.Row("%s %s", colorize("include", colorBold, color), g)
		}
	}
	sec.Close()
	SectionEnd(w, "lc_ignores")
}

// RenderPresets writes one row per catalog preset.
func RenderPresets(w io.Writer, presets []preset.Preset, color bool) {
	sec := NewSection(w, "Presets", "", color)
	sec.Row("%-14s%6s  %6s  %s", "name", "order", "rules", "description")
	for _, p := range presets {
		name := string(p.Name)
		if p.Base {
			name += "*"
		}
		sec.Row("%-14s%6d  %6d  %s", name, p.Order, len(p.Rules), p.Description)
	}
	sec.Separator()
	sec.Row("%s", Dimmed("* always applied", color))
	sec.Close()
}

func countSeverities(rules map[string]preset.Rule) (errs, warns int) {
	for _, r := range rules {
		switch r.Severity {
		case preset.SeverityError:
			errs++
		case preset.SeverityWarn:
			warns++
		}
	}
	return errs, warns
}

func colorize(text, color string, enabled bool) string {
	if !enabled {
		return text
	}
	return color + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
