package convert

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Documents at or above this size skip the style-stripping pass.
const styleStripLimit = 5000

var (
	entityRe     = regexp.MustCompile(`(?i)&(?:#x[a-f0-9]+|#[0-9]+|[a-z0-9]+);?`)
	styleBlockRe = regexp.MustCompile(`(?i)<style[^>]*>([^<]|\n|\r\n)*</style>`)
	spaceRunRe   = regexp.MustCompile(`[ \n]+`)
)

// UnescapeHTML decodes character references (&amp;, &#39;, &#x2F;, ...) in s.
// Unknown named references are left untouched.
func UnescapeHTML(s string) string {
	return entityRe.ReplaceAllStringFunc(s, html.UnescapeString)
}

// HTMLToText returns the rendered text of an HTML document's body with runs
// of spaces and newlines collapsed to a single space. Block elements and <br>
// separate words; script, style, noscript and template contents are never
// rendered. Inline <style> blocks are removed first for documents shorter
// than 5000 bytes.
func HTMLToText(doc string) (string, error) {
	if len(doc) < styleStripLimit {
		doc = styleBlockRe.ReplaceAllString(doc, "")
	}
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", err
	}

	body := findElement(root, atom.Body)
	if body == nil {
		return "", nil
	}
	var b strings.Builder
	innerText(body, &b)
	return spaceRunRe.ReplaceAllString(strings.TrimSpace(b.String()), " "), nil
}

// HTMLToElement parses s as body content and returns its first node. The
// input is trimmed so a leading run of whitespace is never returned as a
// text node. Empty input yields nil.
func HTMLToElement(s string) (*html.Node, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// RenderNode serializes n back to HTML.
func RenderNode(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// Elements whose contents are not rendered.
var hiddenElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Head:     true,
}

// Elements laid out on their own line.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Details: true, atom.Dialog: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Summary: true, atom.Table: true, atom.Tr: true,
	atom.Td: true, atom.Th: true, atom.Caption: true, atom.Ul: true,
}

func innerText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if hiddenElements[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Br {
			b.WriteByte('\n')
			return
		}
	}
	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		innerText(c, b)
	}
	if block {
		b.WriteByte('\n')
	}
}
