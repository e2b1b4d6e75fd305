package gen

import (
	"bytes"
)

// tidy normalizes blank lines in generated source: trailing whitespace is
// stripped, runs of blank lines collapse to one, blank lines right inside
// braces are dropped, and the file ends with a single newline.
func tidy(src []byte) []byte {
	out := make([]byte, 0, len(src))

	var (
		pending bool // a blank line is waiting to be written
		prev    []byte
	)

	for _, line := range bytes.Split(src, []byte("\n")) {
		line = bytes.TrimRight(line, " \t\r")
		if len(line) == 0 {
			pending = prev != nil && !bytes.HasSuffix(prev, []byte("{"))
			continue
		}

		if pending && !bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("}")) {
			out = append(out, '\n')
		}

		pending = false
		prev = line

		out = append(out, line...)
		out = append(out, '\n')
	}

	return out
}
