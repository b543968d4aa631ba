package readout

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes stats as an HTML description list, headed by title if
// title is non-empty:
//
//	<div class="stats"><h2>IBM</h2><dl><div><dt>Volume</dt><dd>1,234</dd></div>…</dl></div>
//
// Text is escaped by the renderer.
func RenderHTML(w io.Writer, title string, stats []Stat) error {
	root := element(atom.Div, html.Attribute{Key: "class", Val: "stats"})
	if title != "" {
		h := element(atom.H2)
		h.AppendChild(text(title))
		root.AppendChild(h)
	}
	dl := element(atom.Dl)
	for _, s := range stats {
		item := element(atom.Div)
		dt := element(atom.Dt)
		dt.AppendChild(text(s.Name))
		dd := element(atom.Dd)
		dd.AppendChild(text(s.Value))
		item.AppendChild(dt)
		item.AppendChild(dd)
		dl.AppendChild(item)
	}
	root.AppendChild(dl)
	return html.Render(w, root)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
