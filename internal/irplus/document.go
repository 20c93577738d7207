package irplus

import (
	"fmt"
	"strings"
)

// FileExtension is the suffix irplus expects on importable documents.
const FileExtension = ".irplus"

// Device timing attributes for the WINLIRC_NEC1 target format. irplus
// matches these bit-exactly against its NEC demodulator; do not adjust.
const (
	formatName  = "WINLIRC_NEC1"
	columns     = 12
	onePulse    = 600
	oneSpace    = 1654
	zeroPulse   = 600
	zeroSpace   = 522
	headerPulse = 9051
	headerSpace = 4433
	gapSpace    = 108161
	gapPulse    = 601
	bitCount    = 16
	preBitCount = 16
	rowSplit    = 3
)

// Button is one rendered key: a display label and the packed code body,
// e.g. "0x20DE 0x50AF".
type Button struct {
	Label string
	Code  string
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Render assembles the full document: device header, a banner button
// naming the device, then one button per entry in input order.
func Render(brand, model string, buttons []Button) string {
	var b strings.Builder
	b.Grow(512 + len(buttons)*96)

	b.WriteString("<irplus>\n")
	fmt.Fprintf(&b,
		`  <device manufacturer="%s" model="%s" columns="%d" format="%s" one-pulse="%d" one-space="%d" zero-pulse="%d" zero-space="%d" header-pulse="%d" header-space="%d" gap-space="%d" gap-pulse="%d" bits="%d" pre-bits="%d" rowSplit="%d">`,
		attrEscaper.Replace(brand), attrEscaper.Replace(model),
		columns, formatName, onePulse, oneSpace, zeroPulse, zeroSpace,
		headerPulse, headerSpace, gapSpace, gapPulse, bitCount, preBitCount, rowSplit)
	b.WriteByte('\n')
	fmt.Fprintf(&b,
		"    <button label=\"%s-%s\" labelSize=\"15.0\" span=\"8\" backgroundColor=\"FF000000\"> </button>\n",
		attrEscaper.Replace(brand), attrEscaper.Replace(model))

	for _, button := range buttons {
		fmt.Fprintf(&b,
			"    <button label=\"%s\" labelSize=\"20.0\" span=\"4\">%s</button>\n",
			attrEscaper.Replace(button.Label), button.Code)
	}

	b.WriteString("  </device>\n")
	b.WriteString("</irplus>\n")
	return b.String()
}
