package doctor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgPassed   = "%d check(s) passed"
	msgWarnings = "%d warning(s)"
	msgFailures = "%d failure(s)"
)

func init() {
	for key, forms := range map[string][2]string{
		msgPassed:   {"1 check passed", "%d checks passed"},
		msgWarnings: {"1 warning", "%d warnings"},
		msgFailures: {"1 failure", "%d failures"},
	} {
		err := message.Set(language.English, key,
			plural.Selectf(1, "%d", "=1", forms[0], "other", forms[1]))
		if err != nil {
			panic(fmt.Sprintf("doctor: registering %q: %v", key, err))
		}
	}
}

var printer = message.NewPrinter(language.English)

// Render writes the report to w, one styled line per check followed by a
// summary. Colors follow w's terminal capabilities.
func Render(w io.Writer, r *Report) {
	re := lipgloss.NewRenderer(w)

	styles := map[Status]lipgloss.Style{
		StatusOK:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		StatusWarn: re.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		StatusFail: re.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		StatusSkip: re.NewStyle().Foreground(lipgloss.Color("245")),
	}
	nameStyle := re.NewStyle().Width(16)
	hintStyle := re.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)

	for _, c := range r.Checks {
		label := styles[c.Status].Render(fmt.Sprintf("[%-4s]", c.Status))
		fmt.Fprintf(w, "  %s %s %s\n", label, nameStyle.Render(c.Name), c.Detail)
		if c.Hint != "" && c.Status != StatusOK {
			fmt.Fprintf(w, "         %s\n", hintStyle.Render(c.Hint))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, Summary(r))
}

// Summary returns the counted one-line result.
func Summary(r *Report) string {
	return printer.Sprintf(msgPassed, r.Count(StatusOK)) + "; " +
		printer.Sprintf(msgWarnings, r.Count(StatusWarn)) + ", " +
		printer.Sprintf(msgFailures, r.Count(StatusFail))
}
