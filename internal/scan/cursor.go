package scan

import (
	"fmt"

	"fortio.org/safecast"

	"printfmt/internal/diag"
)

// Cursor представляет собой позицию в шаблоне.
type Cursor struct {
	src []byte
	off uint32
	// limit is the exclusive upper bound for off.
	limit uint32
}

// NewCursor creates a cursor over the whole template, positioned at off.
func NewCursor(src []byte, off uint32) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("template length overflow: %w", err))
	}
	if off > limit {
		off = limit
	}
	return Cursor{src: src, off: off, limit: limit}
}

// EOF проверяет, достигнут ли конец шаблона.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= c.limit {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента.
type Mark uint32

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) diag.Span {
	return diag.Span{Start: uint32(m), End: c.off}
}

// Off returns the current byte offset into the template.
func (c *Cursor) Off() uint32 { return c.off }
