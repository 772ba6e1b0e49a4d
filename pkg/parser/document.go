// Package parser extracts player records from saved ranked leaderboard pages
package parser

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is one leaderboard profile page parsed into an element tree. A
// Document is parsed once and never modified; every extractor reads the same
// tree, so the record kinds can be pulled from it in any order or not at all.
type Document struct {
	doc *goquery.Document
}

// Parse reads a page into a Document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseFile reads and parses a saved page from disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return doc, nil
}

// nextNode steps to the next node in document order.
func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// findMarker returns the first text node containing the marker text,
// ignoring case. Section headings in these pages are plain text, so this is
// how the extractors anchor themselves before walking to the section's
// table.
func (d *Document) findMarker(marker string) *html.Node {
	marker = strings.ToLower(marker)
	for _, root := range d.doc.Nodes {
		for n := root; n != nil; n = nextNode(n) {
			if n.Type == html.TextNode && strings.Contains(strings.ToLower(n.Data), marker) {
				return n
			}
		}
	}
	return nil
}

// nextElement returns the first element after n in document order with the
// given tag, skipping elements whose class attribute does not contain
// classSubstr. An empty classSubstr accepts any class.
func nextElement(n *html.Node, tag, classSubstr string) *html.Node {
	for n = nextNode(n); n != nil; n = nextNode(n) {
		if n.Type != html.ElementNode || n.Data != tag {
			continue
		}
		if classSubstr == "" || strings.Contains(attrVal(n, "class"), classSubstr) {
			return n
		}
	}
	return nil
}

// attrVal returns an attribute's value, or "" when the node lacks it.
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Cell shapes shared by the record-kind extractors. The profile and results
// tables decorate some cells with change arrows or annotations, so a cell is
// either required to be a bare value or only to lead with one.
var (
	bareIntRe    = regexp.MustCompile(`^\d+$`)
	leadingIntRe = regexp.MustCompile(`^(\d+)`)
	intPctRe     = regexp.MustCompile(`^(\d+)%$`)
)

func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// cellInt parses a cell whose entire text is one integer.
func cellInt(s *goquery.Selection) (int, bool) {
	t := cellText(s)
	if !bareIntRe.MatchString(t) {
		return 0, false
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, false
	}
	return n, true
}

// cellLeadingInt parses a cell that starts with an integer and may trail
// arbitrary decoration.
func cellLeadingInt(s *goquery.Selection) (int, bool) {
	m := leadingIntRe.FindStringSubmatch(cellText(s))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// cellIntPct parses a cell whose entire text is an integer percentage,
// stripping the trailing percent sign.
func cellIntPct(s *goquery.Selection) (int, bool) {
	m := intPctRe.FindStringSubmatch(cellText(s))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
