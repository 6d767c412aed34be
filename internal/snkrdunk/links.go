package snkrdunk

import (
	"net/url"
	"strings"
)

// DefaultWebURL is the root of the human-facing catalog site.
const DefaultWebURL = "https://snkrdunk.com/en"

// Links builds catalog web URLs.
type Links struct {
	webURL string
}

// NewLinks creates Links rooted at webURL, or DefaultWebURL when empty.
func NewLinks(webURL string) Links {
	if webURL == "" {
		webURL = DefaultWebURL
	}
	return Links{webURL: strings.TrimRight(webURL, "/")}
}

// ManualSearchURL returns the site search page for query.
func (l Links) ManualSearchURL(query string) string {
	return l.webURL + "/search/result?keyword=" + url.QueryEscape(query)
}

// ProductURL returns the product detail page.
func (l Links) ProductURL(id string) string {
	return l.webURL + "/trading-cards/" + url.PathEscape(id) + "?slide=right"
}
