// Package document holds the backend-agnostic printable form of a quote.
// PDF and print backends draw a Document; they never look at the quote itself.
package document

import "encoding/base64"

type SectionKind string

const (
	SectionHeader   SectionKind = "header"
	SectionMeta     SectionKind = "meta"
	SectionClient   SectionKind = "client"
	SectionVehicle  SectionKind = "vehicle"
	SectionServices SectionKind = "services"
	SectionTotal    SectionKind = "total"
	SectionFooter   SectionKind = "footer"
)

type Document struct {
	Title    string
	Sections []Section
}

// Section carries whichever of Fields, Table, Lines and Logo its kind uses.
type Section struct {
	Kind   SectionKind
	Title  string
	Fields []Field
	Table  *Table
	Lines  []string
	Notes  []string
	Logo   *Image
}

type Field struct {
	Label string
	Value string
}

type Table struct {
	Columns []string
	Rows    []Row
}

// Row is one line item. Detail is rendered as an italic sub-line; Shaded is
// a zebra hint only.
type Row struct {
	Description string
	Detail      string
	Amount      string
	Shaded      bool
}

type Image struct {
	Data     []byte
	MimeType string
}

func (i Image) DataURI() string {
	return "data:" + i.MimeType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

func (d Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
