package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formatter renders diagnostics with a source snippet and caret underline.
// The one-line ParseError.Error() rendering stays the machine format; this
// is the human-facing view.
type Formatter struct {
	sourceCache map[string]string
	context     int
	color       bool

	styleError   lipgloss.Style
	styleWarning lipgloss.Style
	styleInfo    lipgloss.Style
	styleGutter  lipgloss.Style
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithColor toggles ANSI styling of the output.
func WithColor(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.color = enabled
	}
}

// WithContext sets how many lines around the error line are shown.
func WithContext(lines int) FormatterOption {
	return func(f *Formatter) {
		if lines >= 0 {
			f.context = lines
		}
	}
}

// NewFormatter creates a diagnostic formatter.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		sourceCache:  make(map[string]string),
		context:      2,
		color:        true,
		styleError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		styleWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		styleInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		styleGutter:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddSource registers source text for a filename so snippets can be shown
// without touching the filesystem.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// loadSource returns source code for a file, reading and caching it on
// first use.
func (f *Formatter) loadSource(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("no filename")
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

func (f *Formatter) styleFor(level Severity) lipgloss.Style {
	switch level {
	case SeverityWarning:
		return f.styleWarning
	case SeverityInfo:
		return f.styleInfo
	default:
		return f.styleError
	}
}

func (f *Formatter) paint(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}

// Format writes the diagnostic to w, with a source snippet when the
// referenced file is available.
func (f *Formatter) Format(w io.Writer, e *ParseError) {
	level := string(e.Level)
	if level == "" {
		level = string(SeverityError)
	}

	fmt.Fprintf(w, "%s: %s\n", f.paint(f.styleFor(e.Level), level), e.Message)

	if !e.Loc.IsValid() {
		return
	}
	fmt.Fprintf(w, "%s %s\n", f.paint(f.styleGutter, " -->"), e.Loc)

	src, err := f.loadSource(e.Loc.Filename)
	if err != nil {
		return
	}
	f.printSnippet(w, src, e)
}

// printSnippet prints the error line with surrounding context and a caret
// under the error column.
func (f *Formatter) printSnippet(w io.Writer, src string, e *ParseError) {
	lines := strings.Split(src, "\n")
	if e.Loc.Line > len(lines) {
		return
	}

	start := e.Loc.Line - f.context
	if start < 1 {
		start = 1
	}
	end := e.Loc.Line + f.context
	if end > len(lines) {
		end = len(lines)
	}

	width := len(fmt.Sprintf("%d", end))
	fmt.Fprintf(w, "%s\n", f.paint(f.styleGutter, fmt.Sprintf("  %*s |", width, "")))

	for n := start; n <= end; n++ {
		gutter := f.paint(f.styleGutter, fmt.Sprintf("  %*d |", width, n))
		fmt.Fprintf(w, "%s %s\n", gutter, lines[n-1])
		if n == e.Loc.Line {
			pad := strings.Repeat(" ", e.Loc.Col)
			caret := f.paint(f.styleFor(e.Level), "^")
			fmt.Fprintf(w, "%s %s%s\n", f.paint(f.styleGutter, fmt.Sprintf("  %*s |", width, "")), pad, caret)
		}
	}

	fmt.Fprintf(w, "%s\n", f.paint(f.styleGutter, fmt.Sprintf("  %*s |", width, "")))
}
