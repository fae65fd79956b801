package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"presswatch/internal/model"
	"presswatch/internal/render"

	"github.com/PuerkitoBio/goquery"
)

const (
	googleBaseURL   = "https://news.google.com"
	googleSearchURL = "https://news.google.com/search?q=%s&hl=ko&gl=KR&ceid=KR:ko"
)

// GoogleAdapter scrapes Google News search results. Pagination is
// scroll-based: the first page loads on navigation, later pages need one
// extra scroll each.
type GoogleAdapter struct {
	Render render.Config
	Now    func() time.Time
}

func (a *GoogleAdapter) Name() string { return "google" }

func (a *GoogleAdapter) Search(ctx context.Context, keyword string, page, maxItems int) (Page, error) {
	pageURL := fmt.Sprintf(googleSearchURL, encodeQuery(keyword))
	scrolls := 0
	if page > 1 {
		scrolls = page - 1
	}

	var html string
	err := render.Do(ctx, a.Render, func(ctx context.Context) error {
		var err error
		html, err = render.CaptureHTML(ctx, pageURL, "article", scrolls)
		return err
	})
	if err != nil {
		return Page{}, fmt.Errorf("google: %q page %d: %w", keyword, page, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Page{}, fmt.Errorf("google: parse %q page %d: %w", keyword, page, err)
	}
	return a.extract(doc, keyword, maxItems), nil
}

func (a *GoogleAdapter) extract(doc *goquery.Document, keyword string, maxItems int) Page {
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}
	var out Page
	count := 0
	doc.Find("article").Each(func(i int, s *goquery.Selection) {
		if count >= maxItems {
			return
		}
		titleLink := s.Find("h3 a").First()
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			out.Skips = append(out.Skips, Skip{Index: i, Reason: SkipMissingTitle})
			return
		}
		href, ok := titleLink.Attr("href")
		if !ok || href == "" {
			out.Skips = append(out.Skips, Skip{Index: i, Reason: SkipMissingLink})
			return
		}
		articleURL := resolveGoogleHref(href)
		publisher := strings.TrimSpace(s.Find("div[data-n-tid] a").First().Text())
		if publisher == "" {
			publisher = "구글 뉴스"
		}
		dateISO := now.Format(model.TimeLayout)
		if dt, ok := s.Find("div[data-n-tid] time").First().Attr("datetime"); ok && dt != "" {
			if t, err := time.Parse(time.RFC3339, dt); err == nil {
				dateISO = t.Format(model.TimeLayout)
			}
		}
		imageURL, _ := s.Find("img[src^='https']").First().Attr("src")
		keywords := searchKeywords(keyword, title)

		out.Items = append(out.Items, model.NewsItem{
			ID:         model.MakeID("google", dateISO, fmt.Sprintf("%d", i)),
			Title:      title,
			Source:     "구글 뉴스",
			Publisher:  publisher,
			Date:       dateISO,
			URL:        articleURL,
			Summary:    title + " - " + publisher,
			Tags:       tagsFrom(keywords),
			Keywords:   keywords,
			IsScrapped: false,
			Type:       model.TypeNews,
			ImageURL:   imageURL,
		})
		count++
	})
	return out
}

// resolveGoogleHref turns the relative article hrefs Google News emits into
// absolute URLs.
func resolveGoogleHref(href string) string {
	if strings.HasPrefix(href, "./") {
		return googleBaseURL + href[1:]
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return googleBaseURL + href
}
