package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser parses the rich-text fragments editors store in descriptions and quotes
type Parser struct{}

// Node represents an HTML node in the fragment tree
type Node struct {
	Type        html.NodeType
	Data        string
	Attr        []html.Attribute
	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// Fragment is a parsed rich-text fragment
type Fragment struct {
	Nodes []*Node
}

// NewParser creates a new HTML parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses a fragment from a string
func (p *Parser) ParseString(content string) (*Fragment, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses a fragment in <body> context
func (p *Parser) Parse(r io.Reader) (*Fragment, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, err
	}

	frag := &Fragment{Nodes: make([]*Node, 0, len(nodes))}
	for _, n := range nodes {
		frag.Nodes = append(frag.Nodes, convertNode(n, nil))
	}
	return frag, nil
}

// convertNode converts an html.Node to our Node structure
func convertNode(n *html.Node, parent *Node) *Node {
	if n == nil {
		return nil
	}

	node := &Node{
		Type:   n.Type,
		Data:   n.Data,
		Attr:   n.Attr,
		Parent: parent,
	}

	var lastChild *Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child := convertNode(c, node)
		if node.FirstChild == nil {
			node.FirstChild = child
		}
		if lastChild != nil {
			lastChild.NextSibling = child
			child.PrevSibling = lastChild
		}
		lastChild = child
	}
	node.LastChild = lastChild

	return node
}

// blockTags break words apart when their text is flattened
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "tr": true, "td": true, "th": true,
}

// Text flattens the fragment into plain text with collapsed whitespace
func (f *Fragment) Text() string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			tag := strings.ToLower(n.Data)
			if tag == "script" || tag == "style" {
				return
			}
			if blockTags[tag] {
				b.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[strings.ToLower(n.Data)] {
			b.WriteByte(' ')
		}
	}
	for _, n := range f.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// StripHTML removes markup and entities from s. Input that cannot be parsed
// is returned with its whitespace collapsed.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	frag, err := NewParser().ParseString(s)
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return frag.Text()
}
