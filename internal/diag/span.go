package diag

import "fmt"

// Span указывает на фрагмент шаблона в байтах: Start включительно,
// End не включительно. Шаблон один на вызов, поэтому файловой
// размерности нет.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start == s.End }

func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover расширяет span так, чтобы он покрывал other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
