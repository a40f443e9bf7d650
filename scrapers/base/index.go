package base

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Element is a single node returned by a DocumentIndex query
type Element struct {
	sel *goquery.Selection
}

// Text returns the trimmed text content of the element
func (e Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// Attr returns the named attribute and whether it is present
func (e Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// FindByClass returns the first descendant with tag and class
func (e Element) FindByClass(tag, class string) (Element, bool) {
	return first(e.sel.Find(classSelector(tag, class)))
}

// DocumentIndex answers tag+class and tag+id queries over a parsed document
type DocumentIndex struct {
	doc *goquery.Document
}

// NewDocumentIndex wraps a parsed document
func NewDocumentIndex(doc *goquery.Document) *DocumentIndex {
	return &DocumentIndex{doc: doc}
}

// FindByClass returns the first element with tag and class. An empty tag matches any element.
func (idx *DocumentIndex) FindByClass(tag, class string) (Element, bool) {
	return first(idx.doc.Find(classSelector(tag, class)))
}

// FindAllByClass returns every element with tag and class in document order
func (idx *DocumentIndex) FindAllByClass(tag, class string) []Element {
	var elements []Element
	idx.doc.Find(classSelector(tag, class)).Each(func(i int, s *goquery.Selection) {
		elements = append(elements, Element{sel: s})
	})
	return elements
}

// FindByID returns the element with tag and id
func (idx *DocumentIndex) FindByID(tag, id string) (Element, bool) {
	return first(idx.doc.Find(anyTag(tag)).FilterFunction(func(i int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == id
	}))
}

func first(sel *goquery.Selection) (Element, bool) {
	if sel.Length() == 0 {
		return Element{}, false
	}
	return Element{sel: sel.First()}, true
}

// classSelector matches class as one whitespace-separated token of the class attribute.
// Class names are not escaped, so callers pass plain identifiers.
func classSelector(tag, class string) string {
	return anyTag(tag) + "." + class
}

func anyTag(tag string) string {
	if tag == "" {
		return "*"
	}
	return tag
}
