// Package cleaner normalizes text that crosses the external boundaries:
// HTML coming back from job boards and fenced markdown coming back from
// the generative backend.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRe   = regexp.MustCompile("<[^>]*>")
	spaceRe = regexp.MustCompile(`\s+`)
)

// CleanHTML strips page chrome from a scraped job description and returns
// the readable text blocks. Falls back to a plain tag strip when the input
// is not parseable HTML.
func CleanHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(tagRe.ReplaceAllString(html, " "))
	}

	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}

	if body := strings.TrimSpace(doc.Find("body").Text()); body != "" {
		return collapse(body)
	}
	return collapse(doc.Text())
}

// CleanResponse strips a surrounding markdown code fence from a model
// response. Responses without fences pass through trimmed.
func CleanResponse(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := strings.Index(response, "```") + 3
	for _, tag := range []string{"json", "markdown", "md", "text"} {
		if strings.HasPrefix(response[start:], tag) {
			start += len(tag)
			break
		}
	}
	end := strings.LastIndex(response, "```")
	if end > start {
		return strings.TrimSpace(response[start:end])
	}
	return strings.TrimSpace(response)
}

func collapse(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
