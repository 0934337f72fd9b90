package generator

import "strings"

const (
	// NewlineCRLF emits every LF byte as CR LF.
	NewlineCRLF = "crlf"
	// NewlinePreserve emits the file bytes unchanged.
	NewlinePreserve = "preserve"

	// DefaultWrapWidth is the column budget of an array body line.
	DefaultWrapWidth = 96
	// MinWrapWidth fits exactly one "0xNN," value per line.
	MinWrapWidth = 5
	// DefaultSymbolPrefix is prepended to every array name.
	DefaultSymbolPrefix = "data_"

	// valueWidth is the width of one rendered value plus its separating space.
	valueWidth = len("0xNN, ")
)

const hexDigits = "0123456789abcdef"

// EncodeOptions controls byte-array rendering.
type EncodeOptions struct {
	// WrapWidth is the maximum length of a body line.
	WrapWidth int
	// CRLF renders every 0x0a byte as the pair 0x0d, 0x0a, whether or not
	// the source already carried a CR before it.
	CRLF bool
}

// ValuesPerLine reports how many values fit on a body line of the given width.
func ValuesPerLine(width int) int {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	n := (width + 1) / valueWidth
	if n < 1 {
		n = 1
	}
	return n
}

// Encode renders data as the body of a C array initializer.
// Each value is written as 0xNN followed by a comma, values on a line are
// separated by a single space, and lines never exceed opts.WrapWidth.
// The last value keeps its trailing comma. Empty data yields no lines.
func Encode(data []byte, opts EncodeOptions) []string {
	perLine := ValuesPerLine(opts.WrapWidth)

	var (
		lines []string
		line  strings.Builder
		n     int
	)
	emit := func(v byte) {
		if n == perLine {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
		}
		line.WriteString("0x")
		line.WriteByte(hexDigits[v>>4])
		line.WriteByte(hexDigits[v&0x0f])
		line.WriteByte(',')
		n++
	}

	for _, v := range data {
		if opts.CRLF && v == '\n' {
			emit('\r')
		}
		emit(v)
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
