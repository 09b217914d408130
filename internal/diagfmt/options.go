package diagfmt

// PrettyOpts управляет человекочитаемым выводом.
type PrettyOpts struct {
	// Color включает ANSI-цвета (решение принимает CLI по --color и TTY).
	Color bool
}
