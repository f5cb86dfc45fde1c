package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes the decision trace, in color when out is a terminal.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewPrinter picks the color profile from the environment when out is a
// terminal and falls back to plain text otherwise.
func NewPrinter(out io.Writer) *Printer {
	profile := termenv.Ascii
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.EnvColorProfile()
	}
	return &Printer{out: out, profile: profile}
}

// NewPlainPrinter never emits escape sequences.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out, profile: termenv.Ascii}
}

func (p *Printer) style(s, hex string, bold bool) string {
	if p.profile == termenv.Ascii {
		return s
	}
	st := p.profile.String(s).Foreground(p.profile.Color(hex))
	if bold {
		st = st.Bold()
	}
	return st.String()
}

// Step prints one decision: the chosen action, its value and the belief it was taken under.
func (p *Printer) Step(n int, action string, value float64, reward string, belief []string) {
	fmt.Fprintf(p.out, "%s %s value=%.4f reward=%s belief=[%s]\n",
		p.style(fmt.Sprintf("[%d]", n), "#818cf8", false),
		p.style(action, "#c084fc", true),
		value, reward,
		strings.Join(belief, " "),
	)
}

// Observe prints the observation fed back into the belief.
func (p *Printer) Observe(obs string) {
	fmt.Fprintf(p.out, "    observed %s\n", p.style(obs, "#f472b6", false))
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Issue prints a validation problem.
func (p *Printer) Issue(s string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style("✗", "#fb7185", true), s)
}

// OK prints a success line.
func (p *Printer) OK(s string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style("✓", "#4ade80", true), s)
}
