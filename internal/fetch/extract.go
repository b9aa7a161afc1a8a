package fetch

import (
	"strings"

	"golang.org/x/net/html"
)

// Tags that never carry readable legal content. Their whole subtree is
// dropped before text extraction.
var strippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"footer":   true,
	"header":   true,
	"noscript": true,
	"aside":    true,
	"form":     true,
	"button":   true,
	"iframe":   true,
	"meta":     true,
	"link":     true,
	"img":      true,
	"figure":   true,
}

// Tags whose text is collected as standalone fragments.
var contentTags = map[string]bool{
	"p":  true,
	"li": true,
	"h1": true,
	"h2": true,
	"h3": true,
	"h4": true,
	"td": true,
	"dd": true,
}

// Content containers, most specific first. Government portals wrap the real
// page body in one of these; falling through to <body> picks up boilerplate
// that the fragment filter then has to fight.
var containerSelectors = []selector{
	{tag: "main"},
	{tag: "article"},
	{attr: "id", value: "content"},
	{attr: "id", value: "main-content"},
	{attr: "class", value: "content"},
	{attr: "class", value: "main-content"},
	{attr: "class", value: "node__content"},
	{tag: "body"},
}

type selector struct {
	tag   string
	attr  string
	value string
}

// ExtractText parses an HTML document and returns its readable text: one
// fragment per content element, capped at maxParagraphs, fragments shorter
// than minFragmentLen dropped. Returns "" when nothing useful survives.
func ExtractText(htmlSrc string, maxParagraphs, minFragmentLen int) string {
	doc, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return ""
	}
	stripSubtrees(doc)

	root := doc
	for _, sel := range containerSelectors {
		if node := findNode(doc, sel); node != nil {
			root = node
			break
		}
	}

	var fragments []string
	collectFragments(root, &fragments, maxParagraphs, minFragmentLen)
	return strings.Join(fragments, "\n")
}

func stripSubtrees(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && strippedTags[c.Data] {
			n.RemoveChild(c)
			continue
		}
		stripSubtrees(c)
	}
}

func findNode(n *html.Node, sel selector) *html.Node {
	if n.Type == html.ElementNode {
		if sel.tag != "" && n.Data == sel.tag {
			return n
		}
		if sel.attr != "" && hasAttr(n, sel.attr, sel.value) {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, sel); found != nil {
			return found
		}
	}
	return nil
}

func hasAttr(n *html.Node, key, value string) bool {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		if key == "class" {
			for _, cls := range strings.Fields(a.Val) {
				if cls == value {
					return true
				}
			}
			return false
		}
		return a.Val == value
	}
	return false
}

func collectFragments(n *html.Node, out *[]string, maxParagraphs, minFragmentLen int) {
	if len(*out) >= maxParagraphs {
		return
	}
	if n.Type == html.ElementNode && contentTags[n.Data] {
		text := strings.TrimSpace(nodeText(n))
		text = strings.Join(strings.Fields(text), " ")
		if len(text) > minFragmentLen && !strings.HasPrefix(text, "Skip to") {
			*out = append(*out, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectFragments(c, out, maxParagraphs, minFragmentLen)
	}
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
		sb.WriteString(" ")
	}
	return sb.String()
}
