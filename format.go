package isoduration

import (
	"strconv"
	"strings"
)

// String renders the components in canonical "PnYnMnDTnHnMnS" form,
// omitting unset fields. The zero value renders as "P", and week-form
// inputs come back in day form since Parse folds weeks into days. The
// output always re-parses to an equal Components value.
func (c Components) String() string {
	var b strings.Builder
	b.WriteByte('P')
	writeComponent(&b, c.Years, 'Y')
	writeComponent(&b, c.Months, 'M')
	writeComponent(&b, c.Days, 'D')
	if c.Hours != 0 || c.Minutes != 0 || c.Seconds != 0 {
		b.WriteByte('T')
		writeComponent(&b, c.Hours, 'H')
		writeComponent(&b, c.Minutes, 'M')
		writeComponent(&b, c.Seconds, 'S')
	}
	return b.String()
}

func writeComponent(b *strings.Builder, n int, designator byte) {
	if n == 0 {
		return
	}
	b.WriteString(strconv.Itoa(n))
	b.WriteByte(designator)
}
