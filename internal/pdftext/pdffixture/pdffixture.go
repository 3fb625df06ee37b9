// Package pdffixture writes small, valid PDFs for tests: one Helvetica font,
// absolutely positioned text, and an RGB fill color per text run.
package pdffixture

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// PageWidth and PageHeight are the MediaBox of every generated page (A4).
const (
	PageWidth  = 595
	PageHeight = 842
)

// Text is one Tj run. X and Y are PDF user space (origin bottom-left).
type Text struct {
	X, Y  float64
	Size  float64 // 10 when zero
	Color model.RGB
	Text  string
}

// Page lists its text runs in drawing order. Ops, when set, is appended
// verbatim to the content stream.
type Page struct {
	Texts []Text
	Ops   string

	// Streams are extra content streams. When set, /Contents is an array.
	Streams []string
	Fonts   []Font
	Forms   []Form
}

// Font is an additional Helvetica resource with explicit glyph widths, in
// thousandths of an em starting at FirstChar.
type Font struct {
	Name      string
	FirstChar int
	Widths    []float64
}

// Form is a form XObject the page can draw with "/Name Do".
type Form struct {
	Name   string
	Matrix string // "a b c d e f"; omitted when empty
	Texts  []Text
	Ops    string
	// Fonts, when set, gives the form its own /Resources holding only these
	// fonts. Otherwise fonts resolve against the page.
	Fonts []Font
}

// Line lays out cells left to right on one baseline, 120 points apart.
func Line(y float64, color model.RGB, cells ...string) []Text {
	out := make([]Text, 0, len(cells))
	for i, c := range cells {
		out = append(out, Text{X: 40 + float64(i)*120, Y: y, Color: color, Text: c})
	}
	return out
}

// Build renders pages into a PDF document.
func Build(pages ...Page) []byte {
	var objs []string
	add := func(body string) int {
		objs = append(objs, body)
		return len(objs)
	}

	catalog := add("") // patched below
	tree := add("")
	font := add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	addStream := func(dict, content string) int {
		return add(fmt.Sprintf("<< %s/Length %d >>\nstream\n%s\nendstream", dict, len(content), content))
	}
	fontRefs := func(fonts []Font) string {
		var refs []string
		for _, f := range fonts {
			widths := make([]string, len(f.Widths))
			for i, w := range f.Widths {
				widths[i] = num(w)
			}
			ref := add(fmt.Sprintf(
				"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding /FirstChar %d /LastChar %d /Widths [%s] >>",
				f.FirstChar, f.FirstChar+len(f.Widths)-1, strings.Join(widths, " ")))
			refs = append(refs, fmt.Sprintf("/%s %d 0 R", f.Name, ref))
		}
		return strings.Join(refs, " ")
	}

	kids := make([]string, 0, len(pages))
	for _, p := range pages {
		var xobjects []string
		for _, f := range p.Forms {
			dict := "/Type /XObject /Subtype /Form " + fmt.Sprintf("/BBox [0 0 %d %d] ", PageWidth, PageHeight)
			if f.Matrix != "" {
				dict += "/Matrix [" + f.Matrix + "] "
			}
			if len(f.Fonts) > 0 {
				dict += "/Resources << /Font << " + fontRefs(f.Fonts) + " >> >> "
			}
			ref := addStream(dict, Content(Page{Texts: f.Texts, Ops: f.Ops}))
			xobjects = append(xobjects, fmt.Sprintf("/%s %d 0 R", f.Name, ref))
		}

		contents := []string{fmt.Sprintf("%d 0 R", addStream("", Content(p)))}
		for _, extra := range p.Streams {
			contents = append(contents, fmt.Sprintf("%d 0 R", addStream("", extra)))
		}
		contentsRef := contents[0]
		if len(contents) > 1 {
			contentsRef = "[" + strings.Join(contents, " ") + "]"
		}

		resources := fmt.Sprintf("/Font << /F1 %d 0 R %s >>", font, fontRefs(p.Fonts))
		if len(xobjects) > 0 {
			resources += " /XObject << " + strings.Join(xobjects, " ") + " >>"
		}
		page := add(fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /Resources << %s >> /Contents %s >>",
			tree, resources, contentsRef))
		kids = append(kids, fmt.Sprintf("%d 0 R", page))
	}
	objs[catalog-1] = fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", tree)
	objs[tree-1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 %d %d] >>",
		strings.Join(kids, " "), len(kids), PageWidth, PageHeight)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, catalog, xref)
	return buf.Bytes()
}

// WriteFile builds a document and writes it to path.
func WriteFile(path string, pages ...Page) error {
	return os.WriteFile(path, Build(pages...), 0o644)
}

// Content renders the content stream of one page.
func Content(p Page) string {
	var sb strings.Builder
	for _, t := range p.Texts {
		size := t.Size
		if size == 0 {
			size = 10
		}
		fmt.Fprintf(&sb, "BT\n/F1 %s Tf\n%s %s %s rg\n1 0 0 1 %s %s Tm\n(%s) Tj\nET\n",
			num(size),
			num(float64(t.Color.R)/255), num(float64(t.Color.G)/255), num(float64(t.Color.B)/255),
			num(t.X), num(t.Y),
			Escape(t.Text))
	}
	if p.Ops != "" {
		sb.WriteString(p.Ops)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Escape quotes a string for use inside a PDF literal string.
func Escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
