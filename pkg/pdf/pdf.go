// Package pdf пишет PDF-документ потоково: каждый объект уходит в writer сразу
// после формирования, в памяти держатся только смещения объектов для xref.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 72.0

	lineSpacing  = 1.2
	avgGlyphRate = 0.5
)

// Номера объектов, известные заранее. Остальные выдаются по мере генерации страниц.
const (
	catalogObj = 1
	pagesObj   = 2
	fontObj    = 3
	firstObj   = 4
)

var ErrClosed = errors.New("pdf: document is closed")

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Document потоковый PDF с одним шрифтом (Helvetica, WinAnsi).
// Вывод детерминирован: одинаковая последовательность вызовов дает одинаковые байты.
type Document struct {
	w       *countingWriter
	offsets []int64
	pages   []int

	fontSize float64
	y        float64

	inPage      bool
	streamObj   int
	streamStart int64
	pageHasText bool

	closed bool
	err    error
}

func New(w io.Writer) *Document {
	d := &Document{
		w:        &countingWriter{w: w},
		offsets:  make([]int64, firstObj),
		fontSize: 12,
	}

	d.printf("%%PDF-1.4\n%%\xe2\xe3\xcf\xd3\n")

	d.beginObj(catalogObj)
	d.printf("<< /Type /Catalog /Pages %d 0 R >>\n", pagesObj)
	d.endObj()

	d.beginObj(fontObj)
	d.printf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\n")
	d.endObj()

	return d
}

func (d *Document) SetFontSize(size float64) {
	if size > 0 {
		d.fontSize = size
	}
}

// Text выводит строку с новой строки текущим размером шрифта.
func (d *Document) Text(s string) error {
	return d.text(s, false)
}

func (d *Document) TextUnderlined(s string) error {
	return d.text(s, true)
}

func (d *Document) text(s string, underline bool) error {
	if d.closed {
		return ErrClosed
	}
	if d.err != nil {
		return d.err
	}

	lineHeight := d.fontSize * lineSpacing
	if !d.inPage {
		d.beginPage()
	} else if d.pageHasText && d.y-lineHeight < Margin {
		d.endPage()
		d.beginPage()
	}
	d.y -= lineHeight
	d.pageHasText = true

	d.printf("BT /F1 %s Tf %s %s Td (%s) Tj ET\n", num(d.fontSize), num(Margin), num(d.y), escape(s))
	if underline {
		width := float64(len([]rune(s))) * d.fontSize * avgGlyphRate
		lineY := d.y - d.fontSize*0.1
		d.printf("%s w %s %s m %s %s l S\n",
			num(d.fontSize/20), num(Margin), num(lineY), num(Margin+width), num(lineY))
	}
	return d.err
}

// Close дописывает незакрытую страницу, дерево страниц, xref и trailer.
// Нижележащий writer не закрывается.
func (d *Document) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true

	if !d.inPage && len(d.pages) == 0 {
		d.beginPage()
	}
	if d.inPage {
		d.endPage()
	}

	kids := make([]string, 0, len(d.pages))
	for _, p := range d.pages {
		kids = append(kids, strconv.Itoa(p)+" 0 R")
	}
	d.beginObj(pagesObj)
	d.printf("<< /Type /Pages /Kids [%s] /Count %d >>\n", strings.Join(kids, " "), len(d.pages))
	d.endObj()

	xref := d.w.n
	d.printf("xref\n0 %d\n", len(d.offsets))
	d.printf("0000000000 65535 f \n")
	for _, off := range d.offsets[1:] {
		d.printf("%010d 00000 n \n", off)
	}
	d.printf("trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(d.offsets), catalogObj, xref)

	return d.err
}

func (d *Document) beginPage() {
	d.streamObj = d.reserve(3)
	d.beginObj(d.streamObj)
	d.printf("<< /Length %d 0 R >>\nstream\n", d.streamObj+1)
	d.streamStart = d.w.n
	d.y = PageHeight - Margin
	d.inPage = true
	d.pageHasText = false
}

func (d *Document) endPage() {
	length := d.w.n - d.streamStart
	d.printf("endstream\n")
	d.endObj()

	d.beginObj(d.streamObj + 1)
	d.printf("%d\n", length)
	d.endObj()

	pageObj := d.streamObj + 2
	d.beginObj(pageObj)
	d.printf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>\n",
		pagesObj, num(PageWidth), num(PageHeight), fontObj, d.streamObj)
	d.endObj()

	d.pages = append(d.pages, pageObj)
	d.inPage = false
}

func (d *Document) reserve(n int) int {
	first := len(d.offsets)
	for range n {
		d.offsets = append(d.offsets, 0)
	}
	return first
}

func (d *Document) beginObj(n int) {
	d.offsets[n] = d.w.n
	d.printf("%d 0 obj\n", n)
}

func (d *Document) endObj() {
	d.printf("endobj\n")
}

func (d *Document) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	if _, err := fmt.Fprintf(d.w, format, args...); err != nil {
		d.err = fmt.Errorf("pdf: write: %w", err)
	}
}

func num(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// escape кодирует строку в WinAnsi и экранирует ее для строкового литерала PDF.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		switch {
		case c == '(' || c == ')' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
