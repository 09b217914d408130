package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"printfmt/internal/diag"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждого diag печатает:
// template:<offset>: <SEV> <CODE>: <Message>
// затем сам шаблон с подчёркиванием ^~~~ по Span.
// Ожидается bag.Sort() заранее.
func Pretty(w io.Writer, template string, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "template:%d: %s %s: %s\n",
			d.Primary.Start, severityLabel(d.Severity, opts.Color),
			d.Code.ID(), d.Message)
		underline(w, template, d.Primary)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", n.Msg)
			underline(w, template, n.Span)
		}
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(sev.String())
	case diag.SevWarning:
		return warnColor.Sprint(sev.String())
	}
	return infoColor.Sprint(sev.String())
}

// underline prints the template and a caret line under the span.
// Column math goes through runewidth so multibyte literals around the
// directive keep the carets aligned.
func underline(w io.Writer, template string, sp diag.Span) {
	if template == "" || sp.Start > uint32(len(template)) {
		return
	}
	fmt.Fprintf(w, "  %s\n", template)

	end := sp.End
	if end > uint32(len(template)) {
		end = uint32(len(template))
	}
	lead := runewidth.StringWidth(template[:sp.Start])
	width := runewidth.StringWidth(template[sp.Start:end])

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lead))
	if width == 0 {
		b.WriteString("^")
	} else {
		b.WriteString("^")
		if width > 1 {
			b.WriteString(strings.Repeat("~", width-1))
		}
	}
	fmt.Fprintf(w, "  %s\n", b.String())
}
