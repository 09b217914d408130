package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"printfmt/internal/driver"
	"printfmt/internal/spec"
)

// DirectiveDump is the machine shape of one parsed directive, shared by
// the JSON and msgpack encodings of "explain".
type DirectiveDump struct {
	Offset   uint32 `json:"offset" msgpack:"offset"`
	Raw      string `json:"raw" msgpack:"raw"`
	Position int    `json:"position,omitempty" msgpack:"position"`

	LeftJustify bool `json:"left_justify,omitempty" msgpack:"left_justify"`
	AlwaysSign  bool `json:"always_sign,omitempty" msgpack:"always_sign"`
	EmptySign   bool `json:"empty_sign,omitempty" msgpack:"empty_sign"`
	AltForm     bool `json:"alternate_form,omitempty" msgpack:"alternate_form"`
	ZeroPad     bool `json:"zero_padded,omitempty" msgpack:"zero_padded"`

	PrecedingWidth     int `json:"preceding_width,omitempty" msgpack:"preceding_width"`
	Width              int `json:"width,omitempty" msgpack:"width"`
	PrecedingPrecision int `json:"preceding_precision,omitempty" msgpack:"preceding_precision"`
	Precision          int `json:"precision" msgpack:"precision"`

	Length string `json:"length,omitempty" msgpack:"length"`
	Type   string `json:"type" msgpack:"type"`
}

// SlotDump is one positional-plan entry of the "explain" dump.
type SlotDump struct {
	Position int    `json:"position" msgpack:"position"`
	Length   string `json:"length,omitempty" msgpack:"length"`
	Type     string `json:"type" msgpack:"type"`
}

// InspectionDump bundles what "explain" emits machine-readably.
type InspectionDump struct {
	Template   string          `json:"template" msgpack:"template"`
	Positional bool            `json:"positional" msgpack:"positional"`
	Directives []DirectiveDump `json:"directives" msgpack:"directives"`
	Plan       []SlotDump      `json:"plan,omitempty" msgpack:"plan"`
}

func dumpOf(res *driver.Inspection) InspectionDump {
	out := InspectionDump{
		Template:   res.Template,
		Positional: res.Positional,
	}
	for _, d := range res.Directives {
		fs := d.Spec
		out.Directives = append(out.Directives, DirectiveDump{
			Offset:             d.Span.Start,
			Raw:                res.Template[d.Span.Start:d.Span.End],
			Position:           fs.Position,
			LeftJustify:        fs.LeftJustify,
			AlwaysSign:         fs.AlwaysSign,
			EmptySign:          fs.EmptySign,
			AltForm:            fs.AltForm,
			ZeroPad:            fs.ZeroPad,
			PrecedingWidth:     fs.PrecedingWidth,
			Width:              fs.Width,
			PrecedingPrecision: fs.PrecedingPrecision,
			Precision:          fs.Precision,
			Length:             fs.Length.String(),
			Type:               fs.Type.String(),
		})
	}
	if res.Plan != nil {
		for i, slot := range res.Plan.Slots() {
			out.Plan = append(out.Plan, SlotDump{
				Position: i + 1,
				Length:   slot.Length.String(),
				Type:     slot.Type.String(),
			})
		}
	}
	return out
}

// DirectivesPretty prints a field-by-field breakdown of every parsed
// directive, the tooling descendant of the old debug dump.
func DirectivesPretty(w io.Writer, res *driver.Inspection, opts PrettyOpts) error {
	for _, d := range res.Directives {
		fs := d.Spec
		raw := res.Template[d.Span.Start:d.Span.End]
		head := fmt.Sprintf("%q at %d", raw, d.Span.Start)
		if opts.Color {
			head = infoColor.Sprint(head)
		}
		if _, err := fmt.Fprintln(w, head); err != nil {
			return err
		}
		if fs.Position > 0 {
			fmt.Fprintf(w, "  position:  %d\n", fs.Position)
		}
		flags := ""
		for _, f := range []struct {
			set bool
			b   byte
		}{
			{fs.LeftJustify, '-'}, {fs.AlwaysSign, '+'}, {fs.EmptySign, ' '},
			{fs.AltForm, '#'}, {fs.ZeroPad, '0'},
		} {
			if f.set {
				flags += string(f.b)
			}
		}
		if flags != "" {
			fmt.Fprintf(w, "  flags:     %q\n", flags)
		}
		switch {
		case fs.PrecedingWidth > 0 && fs.Position > 0:
			fmt.Fprintf(w, "  width:     from argument %d\n", fs.PrecedingWidth)
		case fs.PrecedingWidth > 0:
			fmt.Fprintf(w, "  width:     from next argument\n")
		case fs.Width > 0:
			fmt.Fprintf(w, "  width:     %d\n", fs.Width)
		}
		switch {
		case fs.PrecedingPrecision > 0 && fs.Position > 0:
			fmt.Fprintf(w, "  precision: from argument %d\n", fs.PrecedingPrecision)
		case fs.PrecedingPrecision > 0:
			fmt.Fprintf(w, "  precision: from next argument\n")
		case fs.Precision != spec.PrecisionUnset:
			fmt.Fprintf(w, "  precision: %d\n", fs.Precision)
		}
		if fs.Length != spec.LenNone {
			fmt.Fprintf(w, "  length:    %s\n", fs.Length)
		}
		fmt.Fprintf(w, "  type:      %s\n", fs.Type)
	}
	if res.Plan != nil {
		fmt.Fprintf(w, "plan (%d slots):\n", len(res.Plan.Slots()))
		for i, slot := range res.Plan.Slots() {
			fmt.Fprintf(w, "  %d: %%%s%s\n", i+1, slot.Length, slot.Type)
		}
	}
	return nil
}

// DirectivesJSON emits the machine dump as indented JSON.
func DirectivesJSON(w io.Writer, res *driver.Inspection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dumpOf(res))
}

// DirectivesMsgpack emits the machine dump as msgpack, for tools that
// feed templates through at volume.
func DirectivesMsgpack(w io.Writer, res *driver.Inspection) error {
	return msgpack.NewEncoder(w).Encode(dumpOf(res))
}
