package xmldoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

var (
	errNoRoot             = errors.New("no root element")
	errJunkAfterRoot      = errors.New("junk after document element")
	errTextOutsideRoot    = errors.New("text outside of the root element")
	errMisplacedXMLDecl   = errors.New("xml declaration not at start of document")
	errDirectiveAfterRoot = errors.New("directive after the root element")
)

// ParseError is returned when the input is not a well-formed XML document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid xml: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Node is a single element of a parsed document. Only the element text that
// precedes the first child element is kept, mixed content after it is dropped.
type Node struct {
	name     string
	attrs    map[string]string
	text     strings.Builder
	children []*Node
}

// Document is an immutable element tree.
type Document struct {
	root *Node
}

// Parse decodes text into a Document. Leading and trailing whitespace, comments
// and processing instructions outside of the root element are allowed; anything
// else is reported as a *ParseError.
func Parse(text string) (*Document, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root   *Node
		stack  []*Node
		scopes namespaceScopes
		first  = true
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, &ParseError{Err: errJunkAfterRoot}
			}

			scopes = scopes.push(t)

			node, err := newNode(t, scopes)
			if err != nil {
				return nil, &ParseError{Err: err}
			}

			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}

			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			scopes = scopes.pop()
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, &ParseError{Err: errTextOutsideRoot}
				}
				break
			}

			current := stack[len(stack)-1]
			if len(current.children) == 0 {
				current.text.Write(t)
			}
		case xml.ProcInst:
			if t.Target == "xml" && !first {
				return nil, &ParseError{Err: errMisplacedXMLDecl}
			}
		case xml.Directive:
			if root != nil {
				return nil, &ParseError{Err: errDirectiveAfterRoot}
			}
		}

		first = false
	}

	if root == nil {
		return nil, &ParseError{Err: errNoRoot}
	}

	return &Document{root: root}, nil
}

// namespaceScopes holds the namespace URIs declared by each open element.
type namespaceScopes [][]string

func (s namespaceScopes) push(start xml.StartElement) namespaceScopes {
	var declared []string

	for _, attr := range start.Attr {
		if isNamespaceDeclaration(attr.Name) {
			declared = append(declared, attr.Value)
		}
	}

	return append(s, declared)
}

func (s namespaceScopes) pop() namespaceScopes {
	return s[:len(s)-1]
}

// resolved reports whether space is a bound namespace URI. The decoder leaves
// an unbound prefix in place of the URI.
func (s namespaceScopes) resolved(space string) bool {
	if space == "" || space == xmlNamespace {
		return true
	}

	for _, declared := range s {
		for _, uri := range declared {
			if uri == space {
				return true
			}
		}
	}

	return false
}

func isNamespaceDeclaration(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}

func newNode(start xml.StartElement, scopes namespaceScopes) (*Node, error) {
	if !scopes.resolved(start.Name.Space) {
		return nil, fmt.Errorf("unbound prefix %q on element %q", start.Name.Space, start.Name.Local)
	}

	node := &Node{
		name:  start.Name.Local,
		attrs: make(map[string]string, len(start.Attr)),
	}

	seen := make(map[xml.Name]bool, len(start.Attr))

	for _, attr := range start.Attr {
		if seen[attr.Name] {
			return nil, fmt.Errorf("duplicate attribute %q on element %q", attr.Name.Local, start.Name.Local)
		}
		seen[attr.Name] = true

		if isNamespaceDeclaration(attr.Name) {
			continue
		}

		if !scopes.resolved(attr.Name.Space) {
			return nil, fmt.Errorf("unbound prefix %q on attribute %q", attr.Name.Space, attr.Name.Local)
		}

		node.attrs[attr.Name.Local] = attr.Value
	}

	return node, nil
}

func (d *Document) Root() *Node {
	return d.root
}

// Find resolves a slash separated path of child names starting at the root.
func (d *Document) Find(path string) *Node {
	return d.root.Find(path)
}

// FindAll returns every descendant of the root named name, in document order.
func (d *Document) FindAll(name string) []*Node {
	return d.root.FindAll(name)
}

// ChildText returns the text of the element at path, or nil when it is absent.
func (d *Document) ChildText(path string) *string {
	return d.root.ChildText(path)
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Text() string {
	return n.text.String()
}

func (n *Node) Children() []*Node {
	return n.children
}

// Attr returns the attribute value, or nil when the attribute is absent.
func (n *Node) Attr(name string) *string {
	value, ok := n.attrs[name]
	if !ok {
		return nil
	}

	return &value
}

// Find returns the first element matching the path. Every branch is searched,
// so a/b matches the b under the second a when the first a has none.
func (n *Node) Find(path string) *Node {
	return find(n, strings.Split(path, "/"))
}

func find(n *Node, steps []string) *Node {
	if len(steps) == 0 {
		return n
	}

	for _, child := range n.children {
		if child.name != steps[0] {
			continue
		}

		if found := find(child, steps[1:]); found != nil {
			return found
		}
	}

	return nil
}

// FindAll collects descendants named name, excluding n itself.
func (n *Node) FindAll(name string) []*Node {
	var found []*Node

	for _, child := range n.children {
		if child.name == name {
			found = append(found, child)
		}

		found = append(found, child.FindAll(name)...)
	}

	return found
}

func (n *Node) ChildText(path string) *string {
	node := n.Find(path)
	if node == nil {
		return nil
	}

	text := node.Text()
	return &text
}
