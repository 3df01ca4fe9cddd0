// Package fetcher pulls a public job posting and extracts the text that
// prefills the new-job step.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/abhishek622/hirewizard/pkg/model"
)

var (
	ErrInvalidURL = errors.New("invalid job posting url")
	ErrNoContent  = errors.New("job posting has no readable content")
)

const maxDescription = 8000

var (
	spaces   = regexp.MustCompile(`[ \t]+`)
	newlines = regexp.MustCompile(`\n{3,}`)
)

type Fetcher struct {
	http *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{http: &http.Client{Timeout: 15 * time.Second}}
}

// FetchJobPosting downloads rawURL and extracts a title and description.
func (f *Fetcher) FetchJobPosting(ctx context.Context, rawURL, userAgent string) (*model.JobPosting, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch job posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch job posting: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse job posting: %w", err)
	}

	posting := &model.JobPosting{URL: u.String(), Title: extractTitle(doc), Description: extractBody(doc)}
	if posting.Title == "" && posting.Description == "" {
		return nil, ErrNoContent
	}
	return posting, nil
}

func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t
		}
	}
	if t := cleanText(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return cleanText(doc.Find("title").First().Text())
}

func extractBody(doc *goquery.Document) string {
	root := doc.Find("main, article, [role=main]").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}
	root.Find("script, style, nav, header, footer, form").Remove()

	var parts []string
	root.Find("p, li").Each(func(_ int, s *goquery.Selection) {
		text := cleanText(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			text = "- " + text
		}
		parts = append(parts, text)
	})

	content := newlines.ReplaceAllString(strings.Join(parts, "\n"), "\n\n")
	content = strings.TrimSpace(content)
	return truncate(content, maxDescription)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// cleanText collapses runs of whitespace and drops blank lines.
func cleanText(text string) string {
	text = spaces.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, " ")
}
