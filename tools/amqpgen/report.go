package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// WritePlanReport writes a line per class, method and field describing the
// compilation plan. The report is deterministic; the CLI logs it in debug
// mode.
func WritePlanReport(w io.Writer, p *SchemaPlan) error {
	var b strings.Builder
	for _, cp := range p.Classes {
		c := cp.Class
		handler := c.Handler
		if handler == "" {
			handler = "-"
		}
		fmt.Fprintf(&b, "class %s index=%d handler=%s\n", c.Name, c.Index, handler)

		for _, mp := range cp.Methods {
			m := mp.Method
			response := strings.Join(m.Responses, ",")
			if response == "" {
				response = "-"
			}
			fmt.Fprintf(&b, "  method %s index=%d role=%s synchronous=%t response=%s\n",
				m.Name, m.Index, mp.Role, m.Synchronous, response)

			for _, fp := range mp.Fields {
				b.WriteString("    ")
				b.WriteString(fp.Field.Name)
				b.WriteString(" ")
				b.WriteString(fp.Type.Category.String())
				if fp.Field.Reserved {
					b.WriteString(" reserved")
				}
				if slot := fp.Bit; slot != nil {
					fmt.Fprintf(&b, " bit=%d.%d.%d", slot.Group, slot.Byte, slot.Bit)
					if slot.StartsByte {
						b.WriteString(" start")
					}
					if slot.EndsByte {
						b.WriteString(" end")
					}
				}
				b.WriteString("\n")
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "writing plan report")
	}
	return nil
}
