// Package etree renders schedules as XML documents.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/showtimes"
)

// Ensure Renderer implements showtimes.Renderer at compile time.
var _ showtimes.Renderer = (*Renderer)(nil)

// Renderer writes a schedule as an indented XML document:
//
//	<schedule>
//	  <day date="2024-05-01">
//	    <showing start="18:00" end="20:15" runtime="120" language="OV">Film A</showing>
//	  </day>
//	</schedule>
//
// The end and runtime attributes are omitted when the runtime is unknown.
type Renderer struct {
	indent int
}

// NewRenderer creates a new Renderer that indents nested elements by two spaces.
func NewRenderer() *Renderer {
	return &Renderer{indent: 2}
}

// Render writes the XML document to w.
func (r *Renderer) Render(w io.Writer, s *showtimes.Schedule) error {
	doc := Document(s)
	doc.Indent(r.indent)
	_, err := doc.WriteTo(w)
	return err
}

// Document builds the XML tree for a schedule.
func Document(s *showtimes.Schedule) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("schedule")
	if s == nil {
		return doc
	}
	for _, day := range s.Days {
		d := root.CreateElement("day")
		d.CreateAttr("date", day.Date.String())
		for _, sh := range day.Showings {
			e := d.CreateElement("showing")
			e.CreateAttr("start", showtimes.FormatTime(sh.Start))
			if sh.HasRuntime() {
				e.CreateAttr("end", showtimes.FormatTime(sh.End))
				e.CreateAttr("runtime", strconv.Itoa(sh.Runtime))
				if sh.Overnight() {
					e.CreateAttr("overnight", "true")
				}
			}
			if sh.Language != showtimes.LanguageNone {
				e.CreateAttr("language", string(sh.Language))
			}
			e.SetText(sh.Title)
		}
	}
	return doc
}
