package report

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes a summary as a standalone HTML document.
type HTML struct {
	Title string // defaults to "Fabric Overlap"
}

// Write renders s as HTML to w.
func (h HTML) Write(w io.Writer, s *Summary) error {
	title := h.Title
	if title == "" {
		title = "Fabric Overlap"
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := appendElement(doc, atom.Html)
	head := appendElement(root, atom.Head)
	appendElement(head, atom.Title).AppendChild(text(title))
	body := appendElement(root, atom.Body)
	appendElement(body, atom.H1).AppendChild(text(title))
	//
	figures := appendElement(body, atom.Table, attr("class", "summary"))
	if s.Source != "" {
		row(figures, atom.Td, "Source", s.Source)
	}
	row(figures, atom.Td, "Claims", fmt.Sprint(s.Claims))
	row(figures, atom.Td, "Overlap", fmt.Sprint(s.OverlapArea))
	row(figures, atom.Td, "Union", fmt.Sprint(s.UnionArea))
	row(figures, atom.Td, "Isolated", isolatedIDs(s.Isolated))
	if len(s.Columns) > 0 {
		columns := appendElement(body, atom.Table, attr("class", "columns"))
		row(columns, atom.Th, "X", "Width", "Length", "Area")
		for _, c := range s.Columns {
			row(columns, atom.Td, fmt.Sprint(c.X), fmt.Sprint(c.Width),
				fmt.Sprint(c.Length), fmt.Sprint(c.Area))
		}
	}
	tracer().Debugf("rendering HTML report with %d columns", len(s.Columns))
	return html.Render(w, doc)
}

// --- Node construction -----------------------------------------------------

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func appendElement(parent *html.Node, a atom.Atom, attrs ...html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	parent.AppendChild(n)
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func row(table *html.Node, cell atom.Atom, values ...string) {
	tr := appendElement(table, atom.Tr)
	for _, v := range values {
		appendElement(tr, cell).AppendChild(text(v))
	}
}
