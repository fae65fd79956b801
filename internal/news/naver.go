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

const naverSearchURL = "https://search.naver.com/search.naver?where=news&query=%s&start=%d"

// NaverAdapter scrapes Naver news search results. The result list is
// script-populated, so every Search runs inside its own rendered session.
type NaverAdapter struct {
	Render render.Config
	Now    func() time.Time
}

func (a *NaverAdapter) Name() string { return "naver" }

func (a *NaverAdapter) Search(ctx context.Context, keyword string, page, maxItems int) (Page, error) {
	start := (page-1)*10 + 1
	pageURL := fmt.Sprintf(naverSearchURL, encodeQuery(keyword), start)

	var html string
	err := render.Do(ctx, a.Render, func(ctx context.Context) error {
		var err error
		html, err = render.CaptureHTML(ctx, pageURL, ".list_news", 1)
		return err
	})
	if err != nil {
		return Page{}, fmt.Errorf("naver: %q page %d: %w", keyword, page, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Page{}, fmt.Errorf("naver: parse %q page %d: %w", keyword, page, err)
	}
	return a.extract(doc, keyword, maxItems), nil
}

func (a *NaverAdapter) extract(doc *goquery.Document, keyword string, maxItems int) Page {
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}
	var out Page
	count := 0
	doc.Find(".list_news .bx").Each(func(i int, s *goquery.Selection) {
		if count >= maxItems {
			return
		}
		if s.Find(".link_ad").Length() > 0 {
			out.Skips = append(out.Skips, Skip{Index: i, Reason: SkipAd})
			return
		}
		titleLink := s.Find(".news_tit").First()
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
		publisher := strings.TrimSpace(s.Find(".info.press").First().Text())
		if publisher == "" {
			publisher = "네이버 뉴스"
		}
		summary := strings.TrimSpace(s.Find(".dsc_txt").First().Text())
		imageURL, _ := s.Find("img.thumb").First().Attr("src")
		dateISO := parseRelativeTime(s.Find(".info.time").First().Text(), now)
		keywords := searchKeywords(keyword, title)

		out.Items = append(out.Items, model.NewsItem{
			ID:         model.MakeID("naver", dateISO, fmt.Sprintf("%d", i)),
			Title:      title,
			Source:     "네이버 뉴스",
			Publisher:  publisher,
			Date:       dateISO,
			URL:        href,
			Summary:    summary,
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
