package output

import (
	"fmt"
	"io"
	"strings"
)

const sectionWidth = 61 // inner width between │ and line end

// Section renders a box-drawing framed output section.
type Section struct {
	w     io.Writer
	name  string
	color bool
}

// NewSection creates a section and writes its header.
// A non-empty note appears right-aligned in the header.
func NewSection(w io.Writer, name, note string, color bool) *Section {
	s := &Section{w: w, name: name, color: color}
	s.writeHeader(note)
	return s
}

// Row writes a content line inside the section frame.
func (s *Section) Row(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(s.w, "    │ %s\n", line)
}

// Separator writes a mid-section divider.
func (s *Section) Separator() {
	fmt.Fprintf(s.w, "    ├%s\n", strings.Repeat("─", sectionWidth))
}

// Close writes the section footer.
func (s *Section) Close() {
	fmt.Fprintf(s.w, "    └%s\n", strings.Repeat("─", sectionWidth))
}

// writeHeader renders: ── Name ──────────────────── note ──
func (s *Section) writeHeader(note string) {
	label := fmt.Sprintf("── %s ", s.name)

	suffix := "──"
	if note != "" {
		suffix = fmt.Sprintf(" %s ──", note)
	}

	fill := sectionWidth + 4 - len([]rune(label)) - len([]rune(suffix))
	if fill < 1 {
		fill = 1
	}

	if s.color {
		// dim cyan for header
		fmt.Fprintf(s.w, "\n    \033[2;36m%s%s%s\033[0m\n", label, strings.Repeat("─", fill), suffix)
	} else {
		fmt.Fprintf(s.w, "\n    %s%s%s\n", label, strings.Repeat("─", fill), suffix)
	}
}

// Dimmed returns dimmed text if color is enabled.
func Dimmed(text string, color bool) string {
	if !color {
		return text
	}
	return colorGray + text + colorReset
}
