// Package availability decides whether the fetched appointment page shows
// bookable slots. The decision is a textual heuristic over the page body,
// not a structured parse of the site's markup.
package availability

import (
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultMarkers are the "no appointments" phrases the target page is known
// to render. Any one of them appearing in the body means no availability.
var DefaultMarkers = []string{
	"keine termine",
	"no appointments",
	"ausgebucht",
	"nicht verfügbar",
	"derzeit keine termine",
	"currently no appointments",
	"alle termine vergeben",
	"all appointments taken",
	"keine verfügbaren termine",
	"no available appointments",
	"keine freien termine",
	"no free appointments",
}

// positivePhrases are texts that, when present, get surfaced as slot details.
var positivePhrases = []string{
	"termine verfügbar",
	"appointments available",
	"freie termine",
	"free appointments",
	"buchbare termine",
	"bookable appointments",
	"termin wählen",
	"choose appointment",
	"verfügbare zeiten",
	"available times",
}

var bookingKeywords = []string{
	"termin buchen",
	"book appointment",
	"termin vereinbaren",
	"buchen",
}

// CheckResult is the outcome of one parse of the page body.
type CheckResult struct {
	Available bool      `json:"available"`
	Details   []string  `json:"details,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

type Parser struct {
	markers []string // lowercased negative phrases
}

// NewParser builds a parser with the given negative markers; an empty list
// selects DefaultMarkers.
func NewParser(markers []string) *Parser {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	lowered := make([]string, len(markers))
	for i, m := range markers {
		lowered[i] = strings.ToLower(m)
	}
	return &Parser{markers: lowered}
}

// Parse inspects the body text and returns the availability result stamped
// with now. It is deterministic: identical inputs yield identical results.
// An empty body is an anomaly and reads as unavailable.
func (p *Parser) Parse(body string, now time.Time) CheckResult {
	res := CheckResult{CheckedAt: now}

	if strings.TrimSpace(body) == "" {
		return res
	}

	lower := strings.ToLower(body)
	for _, m := range p.markers {
		if strings.Contains(lower, m) {
			return res
		}
	}

	res.Available = true
	res.Details = extractDetails(body)
	return res
}

// extractDetails walks the page markup for concrete booking affordances:
// enabled booking buttons, clickable time slots, availability texts, and
// date/time selectors. Best effort; an unparseable body yields no details.
func extractDetails(body string) []string {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var details []string
	seen := make(map[string]struct{})
	add := func(d string) {
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		details = append(details, d)
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a", "button":
				if !isDisabled(n) {
					text := strings.TrimSpace(nodeText(n))
					lower := strings.ToLower(text)
					for _, kw := range bookingKeywords {
						if strings.Contains(lower, kw) {
							add("booking action: " + text)
							break
						}
					}
					if looksLikeTimeSlot(text) {
						add("time slot: " + text)
					}
				}
			case "select":
				name := strings.ToLower(attr(n, "name"))
				if strings.Contains(name, "date") || strings.Contains(name, "time") || strings.Contains(name, "termin") {
					add("date selector: " + attr(n, "name"))
				}
			}
		}
		if n.Type == html.TextNode {
			lower := strings.ToLower(n.Data)
			for _, phrase := range positivePhrases {
				if strings.Contains(lower, phrase) {
					add("availability note: " + strings.TrimSpace(n.Data))
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return details
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isDisabled(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key == "disabled" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(attr(n, "class")), "disabled")
}

// looksLikeTimeSlot matches short button texts like "09:00" or "14:30".
func looksLikeTimeSlot(text string) bool {
	if text == "" || len(text) > 10 || !strings.Contains(text, ":") {
		return false
	}
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
