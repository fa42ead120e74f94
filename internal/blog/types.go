package blog

import (
	"math"
	"strings"
	"time"

	"golang.org/x/net/html"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// Post is a blog article as delivered by the content API.
type Post struct {
	Slug            string
	Title           *i18n.Text
	Excerpt         *i18n.Text
	Content         *i18n.Text
	MetaTitle       *i18n.Text
	MetaDescription *i18n.Text
	Image           string
	Category        string
	Tags            []string
	Author          string
	PublishedAt     time.Time
	UpdatedAt       time.Time
}

// wordsPerMinute is the reading speed assumed for the "(N min read)" hint.
const wordsPerMinute = 200

// ReadingMinutes estimates reading time for body content, rounding up.
// HTML bodies are reduced to their text nodes before counting.
func ReadingMinutes(content string) int {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0
	}
	if strings.Contains(content, "<") {
		content = textContent(content)
	}
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// textContent strips markup, keeping text nodes separated by spaces. Parse
// failures fall back to the raw string so the estimate stays best-effort.
func textContent(raw string) string {
	node, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return sb.String()
}
