package scan

import "printfmt/internal/diag"

type Options struct {
	// Reporter receives warning-severity diagnostics; may be nil, then
	// warnings are dropped (but parsing continues either way).
	Reporter diag.Reporter
}

func (sc *Scanner) warn(code diag.Code, sp diag.Span, msg string) {
	if sc.opts.Reporter != nil {
		sc.opts.Reporter.Report(code, diag.SevWarning, sp, msg)
	}
}
