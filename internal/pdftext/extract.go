// Package pdftext reads the text layer of a PDF together with the position
// and fill color of every text-showing operation.
//
// github.com/ledongthuc/pdf parses the file and tokenizes content streams.
// Its own Page.Content drops color, so the graphics state is tracked here.
package pdftext

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"

	"github.com/mutasi-dev/mutasi/internal/model"
)

const (
	// A4 portrait, used when a page has no MediaBox anywhere in its tree.
	defaultWidth  = 595.0
	defaultHeight = 842.0

	// TJ adjustments more negative than this (thousandths of an em) read as a space.
	spaceAdjustment = -200.0

	maxParentDepth = 32

	// Form XObjects may draw other forms; deeper nesting is ignored.
	maxFormDepth = 8
)

// Extract opens a PDF file and returns the spans of every page.
func Extract(path string) ([]model.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat pdf %s: %w", path, err)
	}

	pages, err := ExtractReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("read pdf %s: %w", path, err)
	}
	return pages, nil
}

// ExtractReader reads a PDF of the given size from r.
func ExtractReader(r io.ReaderAt, size int64) (pages []model.Page, err error) {
	// The pdf package panics on some malformed input.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	rd, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("not a valid pdf: %w", err)
	}

	n := rd.NumPage()
	for i := 1; i <= n; i++ {
		p := rd.Page(i)
		if p.V.IsNull() {
			continue
		}
		page := extractPage(p, i)
		logrus.WithFields(logrus.Fields{
			"page":  i,
			"spans": len(page.Spans),
		}).Debug("extracted page")
		pages = append(pages, page)
	}
	return pages, nil
}

// gstate is the subset of the PDF graphics state that affects where text
// lands and what color it has.
type gstate struct {
	ctm   matrix
	fill  model.RGB
	tc    float64 // character spacing
	tw    float64 // word spacing
	th    float64 // horizontal scale, 1 = 100%
	tl    float64 // leading
	tfs   float64 // font size
	trise float64
	font  string
}

type pageReader struct {
	number int
	top    float64 // MediaBox upper y, converts to top-origin

	g     gstate
	stack []gstate
	tm    matrix
	tlm   matrix

	pageRes pdf.Value // page /Resources, inherited through Parent
	res     pdf.Value // resources of the stream being interpreted
	fonts   map[string]fontEntry
	depth   int

	spans []model.Span
}

type fontEntry struct {
	font pdf.Font
	enc  pdf.TextEncoding
}

func extractPage(p pdf.Page, number int) model.Page {
	width, height, top := mediaBox(p.V)

	res := p.Resources()
	pr := &pageReader{
		number:  number,
		top:     top,
		g:       gstate{ctm: identity, th: 1},
		tm:      identity,
		tlm:     identity,
		pageRes: res,
		res:     res,
		fonts:   make(map[string]fontEntry),
	}

	// An array of streams is one content stream split into parts.
	contents := p.V.Key("Contents")
	if k := contents.Kind(); k == pdf.Array || k == pdf.Stream {
		pdf.Interpret(contents, pr.op)
	}

	return model.Page{Number: number, Width: width, Height: height, Spans: pr.spans}
}

// mediaBox returns width, height and the upper y bound of the page,
// following Parent links for inherited boxes.
func mediaBox(v pdf.Value) (width, height, top float64) {
	for i := 0; i < maxParentDepth && !v.IsNull(); i++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			llx, lly := box.Index(0).Float64(), box.Index(1).Float64()
			urx, ury := box.Index(2).Float64(), box.Index(3).Float64()
			return math.Abs(urx - llx), math.Abs(ury - lly), math.Max(lly, ury)
		}
		v = v.Key("Parent")
	}
	return defaultWidth, defaultHeight, defaultHeight
}

func popArgs(stk *pdf.Stack) []pdf.Value {
	n := stk.Len()
	args := make([]pdf.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = stk.Pop()
	}
	return args
}

func arrayValues(v pdf.Value) []pdf.Value {
	out := make([]pdf.Value, v.Len())
	for i := range out {
		out[i] = v.Index(i)
	}
	return out
}

func floats(args []pdf.Value) []float64 {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		if a.Kind() == pdf.Integer || a.Kind() == pdf.Real {
			out = append(out, a.Float64())
		}
	}
	return out
}

func (pr *pageReader) op(stk *pdf.Stack, op string) {
	args := popArgs(stk)
	num := floats(args)

	switch op {
	case "q":
		pr.stack = append(pr.stack, pr.g)
	case "Q":
		if n := len(pr.stack); n > 0 {
			pr.g = pr.stack[n-1]
			pr.stack = pr.stack[:n-1]
		}
	case "cm":
		if len(num) == 6 {
			pr.g.ctm = toMatrix(num).mul(pr.g.ctm)
		}
	case "Do":
		if len(args) == 1 {
			pr.drawForm(args[0].Name())
		}

	case "g":
		if len(num) == 1 {
			pr.g.fill = gray(num[0])
		}
	case "rg":
		if len(num) == 3 {
			pr.g.fill = rgb(num[0], num[1], num[2])
		}
	case "k":
		if len(num) == 4 {
			pr.g.fill = cmyk(num[0], num[1], num[2], num[3])
		}
	case "sc", "scn":
		pr.g.fill = fillColor(num, pr.g.fill)
	case "cs":
		pr.g.fill = model.Black

	case "BT":
		pr.tm = identity
		pr.tlm = identity
	case "ET":
	case "Tf":
		if len(args) == 2 {
			pr.g.font = args[0].Name()
			pr.g.tfs = args[1].Float64()
		}
	case "Tc":
		if len(num) == 1 {
			pr.g.tc = num[0]
		}
	case "Tw":
		if len(num) == 1 {
			pr.g.tw = num[0]
		}
	case "Tz":
		if len(num) == 1 {
			pr.g.th = num[0] / 100
		}
	case "TL":
		if len(num) == 1 {
			pr.g.tl = num[0]
		}
	case "Ts":
		if len(num) == 1 {
			pr.g.trise = num[0]
		}
	case "Td":
		if len(num) == 2 {
			pr.moveLine(num[0], num[1])
		}
	case "TD":
		if len(num) == 2 {
			pr.g.tl = -num[1]
			pr.moveLine(num[0], num[1])
		}
	case "Tm":
		if len(num) == 6 {
			pr.tm = toMatrix(num)
			pr.tlm = pr.tm
		}
	case "T*":
		pr.moveLine(0, -pr.g.tl)

	case "Tj":
		if len(args) == 1 && args[0].Kind() == pdf.String {
			pr.show([]pdf.Value{args[0]})
		}
	case "TJ":
		if len(args) == 1 && args[0].Kind() == pdf.Array {
			pr.show(arrayValues(args[0]))
		}
	case "'":
		if len(args) == 1 {
			pr.moveLine(0, -pr.g.tl)
			pr.show(args)
		}
	case "\"":
		if len(args) == 3 {
			pr.g.tw = args[0].Float64()
			pr.g.tc = args[1].Float64()
			pr.moveLine(0, -pr.g.tl)
			pr.show(args[2:])
		}
	}
}

func (pr *pageReader) moveLine(tx, ty float64) {
	pr.tlm = translate(tx, ty).mul(pr.tlm)
	pr.tm = pr.tlm
}

// drawForm interprets a form XObject in its own graphics state, with its
// /Matrix applied and its /Resources in scope. Image XObjects are skipped.
func (pr *pageReader) drawForm(name string) {
	xo := pr.res.Key("XObject").Key(name)
	if xo.IsNull() {
		xo = pr.pageRes.Key("XObject").Key(name)
	}
	if xo.Kind() != pdf.Stream || xo.Key("Subtype").Name() != "Form" || pr.depth >= maxFormDepth {
		return
	}

	g, stackLen := pr.g, len(pr.stack)
	tm, tlm := pr.tm, pr.tlm
	res, fonts := pr.res, pr.fonts
	defer func() {
		pr.g, pr.tm, pr.tlm = g, tm, tlm
		if len(pr.stack) > stackLen {
			pr.stack = pr.stack[:stackLen]
		}
		pr.res, pr.fonts = res, fonts
		pr.depth--
	}()
	pr.depth++

	if m := floats(arrayValues(xo.Key("Matrix"))); len(m) == 6 {
		pr.g.ctm = toMatrix(m).mul(pr.g.ctm)
	}
	if r := xo.Key("Resources"); !r.IsNull() {
		pr.res = r
		pr.fonts = make(map[string]fontEntry)
	}
	pdf.Interpret(xo, pr.op)
}

// encoder resolves the current font against the active resources, then the
// page's.
func (pr *pageReader) encoder() (pdf.Font, pdf.TextEncoding) {
	e, ok := pr.fonts[pr.g.font]
	if !ok {
		v := pr.res.Key("Font").Key(pr.g.font)
		if v.IsNull() {
			v = pr.pageRes.Key("Font").Key(pr.g.font)
		}
		f := pdf.Font{V: v}
		e = fontEntry{font: f, enc: f.Encoder()}
		pr.fonts[pr.g.font] = e
	}
	return e.font, e.enc
}

// show emits one span for a text-showing operation. parts mixes strings and
// TJ kerning numbers.
func (pr *pageReader) show(parts []pdf.Value) {
	font, enc := pr.encoder()

	trm := matrix{{pr.g.tfs * pr.g.th, 0, 0}, {0, pr.g.tfs, 0}, {0, pr.g.trise, 1}}.mul(pr.tm).mul(pr.g.ctm)
	x, y := trm[2][0], trm[2][1]
	size := math.Hypot(trm[1][0], trm[1][1])

	var sb strings.Builder
	for _, part := range parts {
		switch part.Kind() {
		case pdf.String:
			raw := part.RawString()
			sb.WriteString(enc.Decode(raw))
			pr.advance(font, raw)
		case pdf.Integer, pdf.Real:
			adj := part.Float64()
			if adj < spaceAdjustment {
				sb.WriteByte(' ')
			}
			pr.tm = translate(-adj/1000*pr.g.tfs*pr.g.th, 0).mul(pr.tm)
		}
	}

	text := strings.Join(strings.Fields(sb.String()), " ")
	if text == "" {
		return
	}
	pr.spans = append(pr.spans, model.Span{
		Text:  text,
		X:     x,
		Y:     pr.top - y,
		Size:  size,
		Color: pr.g.fill,
		Page:  pr.number,
	})
}

// advance moves the text matrix past raw, one single-byte character code at
// a time. Widths are looked up by code, not by decoded rune.
func (pr *pageReader) advance(font pdf.Font, raw string) {
	for i := 0; i < len(raw); i++ {
		code := raw[i]
		tx := font.Width(int(code))/1000*pr.g.tfs + pr.g.tc
		if code == ' ' {
			tx += pr.g.tw
		}
		pr.tm = translate(tx*pr.g.th, 0).mul(pr.tm)
	}
}
