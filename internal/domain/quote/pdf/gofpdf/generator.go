package gofpdf

import (
	"bytes"
	"log"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"hardings-auto/go_backend/internal/domain/quote/document"
)

// Fonts are optional TTF paths. Without Regular the generator falls back to
// the core Helvetica family, which only covers cp1252.
type Fonts struct {
	Regular string
	Bold    string
	Italic  string
}

type Generator struct {
	fonts Fonts
}

func New(fonts Fonts) *Generator { return &Generator{fonts: fonts} }

type rgb struct{ r, g, b int }

var (
	colorNavy   = rgb{29, 53, 87}
	colorBlue   = rgb{43, 76, 126}
	colorRed    = rgb{230, 57, 70}
	colorGray   = rgb{108, 117, 125}
	colorLight  = rgb{248, 249, 250}
	colorBorder = rgb{222, 226, 230}
	colorWhite  = rgb{255, 255, 255}
)

const margin = 15.0

type page struct {
	pdf    *gofpdf.Fpdf
	family string
	utf8   bool
	tr     func(string) string
	left   float64
	width  float64
	bottom float64
}

func (g *Generator) Generate(doc document.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(doc.Title, true)

	p := &page{pdf: pdf, family: "Helvetica", tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if g.fonts.Regular != "" {
		bold, italic := g.fonts.Bold, g.fonts.Italic
		if bold == "" {
			bold = g.fonts.Regular
		}
		if italic == "" {
			italic = g.fonts.Regular
		}
		log.Printf("quote pdf: load fonts regular=%s bold=%s italic=%s", g.fonts.Regular, bold, italic)
		pdf.AddUTF8Font("DejaVu", "", g.fonts.Regular)
		pdf.AddUTF8Font("DejaVu", "B", bold)
		pdf.AddUTF8Font("DejaVu", "I", italic)
		p.family = "DejaVu"
		p.utf8 = true
		p.tr = func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	p.left = margin
	p.width = pageW - 2*margin
	p.bottom = pageH - margin

	for i := 0; i < len(doc.Sections); i++ {
		s := doc.Sections[i]
		switch s.Kind {
		case document.SectionHeader:
			p.header(s)
		case document.SectionMeta:
			p.meta(s)
		case document.SectionClient, document.SectionVehicle:
			boxes := []document.Section{s}
			for i+1 < len(doc.Sections) && isBox(doc.Sections[i+1].Kind) && len(boxes) < 2 {
				i++
				boxes = append(boxes, doc.Sections[i])
			}
			p.boxes(boxes)
		case document.SectionServices:
			p.table(s)
		case document.SectionTotal:
			p.total(s)
		case document.SectionFooter:
			p.footer(s)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func isBox(k document.SectionKind) bool {
	return k == document.SectionClient || k == document.SectionVehicle
}

func (p *page) font(style string, size float64, c rgb) {
	p.pdf.SetFont(p.family, style, size)
	p.pdf.SetTextColor(c.r, c.g, c.b)
}

func (p *page) fill(c rgb) { p.pdf.SetFillColor(c.r, c.g, c.b) }

func (p *page) rule(c rgb, width float64) {
	y := p.pdf.GetY()
	p.pdf.SetDrawColor(c.r, c.g, c.b)
	p.pdf.SetLineWidth(width)
	p.pdf.Line(p.left, y, p.left+p.width, y)
}

// split wraps s to width w in the current font and returns printable lines.
func (p *page) split(s string, w float64) []string {
	if p.utf8 {
		return p.pdf.SplitText(s, w)
	}
	var out []string
	for _, l := range p.pdf.SplitLines([]byte(p.tr(s)), w) {
		out = append(out, string(l))
	}
	return out
}

func (p *page) ensure(h float64) {
	if p.pdf.GetY()+h > p.bottom {
		p.pdf.AddPage()
	}
}

func (p *page) header(s document.Section) {
	if !p.logo(s.Logo) {
		p.font("B", 20, colorNavy)
		p.pdf.CellFormat(p.width, 10, p.tr(s.Title), "", 1, "C", false, 0, "")
	}
	p.font("", 9, colorGray)
	for _, l := range s.Lines {
		p.pdf.CellFormat(p.width, 5, p.tr(l), "", 1, "C", false, 0, "")
	}
	p.pdf.Ln(3)
	p.rule(colorRed, 1.2)
	p.pdf.Ln(6)
}

// logo draws img centered and reports whether it did. A broken image is
// dropped in favour of the text header.
func (p *page) logo(img *document.Image) bool {
	if img == nil || len(img.Data) == 0 {
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: imageType(img.MimeType), ReadDpi: true}
	if opts.ImageType == "" {
		return false
	}
	p.pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(img.Data))
	if !p.pdf.Ok() {
		log.Printf("quote pdf: logo skipped: %v", p.pdf.Error())
		p.pdf.ClearError()
		return false
	}
	const w = 60.0
	p.pdf.ImageOptions("logo", p.left+(p.width-w)/2, p.pdf.GetY(), w, 0, true, opts, 0, "")
	p.pdf.Ln(2)
	return true
}

func imageType(mime string) string {
	switch mime {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	}
	return ""
}

func (p *page) meta(s document.Section) {
	if len(s.Fields) == 0 {
		return
	}
	colW := p.width / float64(len(s.Fields))
	p.fill(colorNavy)
	p.font("", 8, colorWhite)
	for i, f := range s.Fields {
		p.pdf.CellFormat(colW, 8, p.tr(strings.ToUpper(f.Label)), "", 0, align(i, len(s.Fields)), true, 0, "")
	}
	p.pdf.Ln(-1)
	p.font("B", 13, colorWhite)
	for i, f := range s.Fields {
		p.pdf.CellFormat(colW, 9, p.tr(f.Value), "", 0, align(i, len(s.Fields)), true, 0, "")
	}
	p.pdf.Ln(-1)
	p.pdf.Ln(6)
}

func align(i, n int) string {
	switch {
	case i == 0:
		return "L"
	case i == n-1:
		return "R"
	default:
		return "C"
	}
}

const (
	boxGap    = 5.0
	boxLabelW = 18.0
	boxLineH  = 6.0
)

func (p *page) boxes(secs []document.Section) {
	colW := (p.width - boxGap*float64(len(secs)-1)) / float64(len(secs))
	rows := 0
	for _, s := range secs {
		if len(s.Fields) > rows {
			rows = len(s.Fields)
		}
	}
	h := 10 + boxLineH*float64(rows) + 3
	p.ensure(h)
	y0 := p.pdf.GetY()

	for i, s := range secs {
		x := p.left + float64(i)*(colW+boxGap)
		p.fill(colorLight)
		p.pdf.Rect(x, y0, colW, h, "F")
		p.fill(colorBlue)
		p.pdf.Rect(x, y0, 1.2, h, "F")

		p.pdf.SetXY(x+4, y0+3)
		p.font("B", 10, colorBlue)
		p.pdf.CellFormat(colW-6, 6, p.tr(strings.ToUpper(s.Title)), "", 2, "L", false, 0, "")
		for _, f := range s.Fields {
			p.pdf.SetX(x + 4)
			p.font("B", 9, colorGray)
			p.pdf.CellFormat(boxLabelW, boxLineH, p.tr(f.Label+":"), "", 0, "L", false, 0, "")
			p.font("", 9, colorNavy)
			p.pdf.CellFormat(colW-boxLabelW-6, boxLineH, p.tr(trim(f.Value, 48)), "", 2, "L", false, 0, "")
		}
	}
	p.pdf.SetXY(p.left, y0+h)
	p.pdf.Ln(6)
}

const (
	amountW = 40.0
	padding = 2.5
)

func (p *page) table(s document.Section) {
	if s.Table == nil {
		return
	}
	p.ensure(24)
	p.font("B", 11, colorBlue)
	p.pdf.CellFormat(p.width, 7, p.tr(strings.ToUpper(s.Title)), "", 1, "L", false, 0, "")
	p.rule(colorRed, 0.8)
	p.pdf.Ln(3)

	descW := p.width - amountW
	p.fill(colorNavy)
	p.font("B", 9, colorWhite)
	cols := s.Table.Columns
	if len(cols) == 2 {
		p.pdf.CellFormat(descW, 8, p.tr(strings.ToUpper(cols[0])), "", 0, "L", true, 0, "")
		p.pdf.CellFormat(amountW, 8, p.tr(strings.ToUpper(cols[1])), "", 1, "R", true, 0, "")
	}

	for _, row := range s.Table.Rows {
		p.font("B", 10, colorNavy)
		nameLines := p.split(row.Description, descW-2*padding)
		var detailLines []string
		if row.Detail != "" {
			p.font("I", 8, colorGray)
			detailLines = p.split(row.Detail, descW-2*padding)
		}
		h := 2*padding + 5.5*float64(len(nameLines)) + 4.5*float64(len(detailLines))
		p.ensure(h)

		y := p.pdf.GetY()
		if row.Shaded {
			p.fill(colorLight)
			p.pdf.Rect(p.left, y, p.width, h, "F")
		}
		p.pdf.SetXY(p.left+padding, y+padding)
		p.font("B", 10, colorNavy)
		for _, l := range nameLines {
			p.pdf.SetX(p.left + padding)
			p.pdf.CellFormat(descW-2*padding, 5.5, l, "", 2, "L", false, 0, "")
		}
		p.font("I", 8, colorGray)
		for _, l := range detailLines {
			p.pdf.SetX(p.left + padding)
			p.pdf.CellFormat(descW-2*padding, 4.5, l, "", 2, "L", false, 0, "")
		}
		p.pdf.SetXY(p.left+descW, y+padding)
		p.font("B", 10, colorNavy)
		p.pdf.CellFormat(amountW-padding, 5.5, p.tr(row.Amount), "", 0, "R", false, 0, "")

		p.pdf.SetXY(p.left, y+h)
		p.rule(colorBorder, 0.2)
	}
	p.pdf.Ln(6)
}

func (p *page) total(s document.Section) {
	if len(s.Fields) == 0 {
		return
	}
	f := s.Fields[0]
	p.ensure(16)
	p.fill(colorRed)
	p.font("B", 12, colorWhite)
	p.pdf.CellFormat(p.width/2, 16, "  "+p.tr(strings.ToUpper(f.Label)), "", 0, "L", true, 0, "")
	p.font("B", 18, colorWhite)
	p.pdf.CellFormat(p.width/2, 16, p.tr(f.Value)+"  ", "", 1, "R", true, 0, "")
	p.pdf.Ln(8)
}

func (p *page) footer(s document.Section) {
	p.ensure(30)
	p.rule(colorBorder, 0.5)
	p.pdf.Ln(4)
	p.font("B", 9, colorGray)
	p.pdf.CellFormat(p.width, 5, p.tr(s.Title), "", 1, "C", false, 0, "")
	p.font("", 8, colorGray)
	for _, l := range s.Lines {
		p.pdf.CellFormat(p.width, 4.5, p.tr(l), "", 1, "C", false, 0, "")
	}
	p.pdf.Ln(2)
	p.font("I", 7, colorGray)
	for _, n := range s.Notes {
		p.pdf.CellFormat(p.width, 4, p.tr(n), "", 1, "C", false, 0, "")
	}
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
