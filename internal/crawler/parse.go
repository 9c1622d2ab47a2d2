package crawler

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

var (
	nonPriceChars = regexp.MustCompile(`[^0-9.,]`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// ParsePrice normalizes a scraped price string ("HK$1,299.00", "$ 25") into
// a decimal value. Thousand separators are stripped; a string with more than
// one decimal point keeps only the first.
func ParsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("price string is empty")
	}

	cleaned := nonPriceChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("could not parse price from %q", raw)
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if strings.Count(cleaned, ".") > 1 {
		parts := strings.Split(cleaned, ".")
		cleaned = parts[0] + "." + strings.Join(parts[1:], "")
	}

	if !strings.Contains(cleaned, ".") {
		cleaned += ".00"
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not parse price from %q: %w", raw, err)
	}
	return value, nil
}

// DeriveSKU builds a stable surrogate SKU from a listing's name and URL.
// None of the scraped retailers expose their internal product identifiers
// on search pages, so the sha1 of the normalized name (plus the URL slug
// when present) stands in for one.
func DeriveSKU(name, rawURL string) string {
	nameKey := strings.ToLower(strings.TrimSpace(whitespace.ReplaceAllString(name, " ")))

	base := nameKey
	if rawURL != "" {
		if parsed, err := url.Parse(rawURL); err == nil {
			path := strings.TrimRight(parsed.Path, "/")
			if path != "" {
				segments := strings.Split(path, "/")
				slug := strings.ToLower(segments[len(segments)-1])
				base = nameKey + "|" + slug
			}
		}
	}

	digest := sha1.Sum([]byte(base))
	return hex.EncodeToString(digest[:])[:12]
}

// ResolveURL joins a possibly-relative listing href against the page it was
// scraped from.
func ResolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// HasClass reports whether an element node carries the given CSS class.
func HasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// Attr returns the value of an attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// FindAll walks the subtree and collects element nodes matching tag and,
// when class is non-empty, carrying that class.
func FindAll(n *html.Node, tag, class string) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			if class == "" || HasClass(node, class) {
				matches = append(matches, node)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return matches
}

// FindFirst returns the first match of FindAll, or nil.
func FindFirst(n *html.Node, tag, class string) *html.Node {
	matches := FindAll(n, tag, class)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// FindLink returns the first anchor in the subtree that has an href.
func FindLink(n *html.Node) *html.Node {
	for _, a := range FindAll(n, "a", "") {
		if Attr(a, "href") != "" {
			return a
		}
	}
	return nil
}

// Text concatenates all text content beneath the node, trimmed.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// ParseHTML parses a page into a node tree. html.Parse tolerates the kind
// of malformed markup real retailer pages ship.
func ParseHTML(page string) (*html.Node, error) {
	return html.Parse(strings.NewReader(page))
}
