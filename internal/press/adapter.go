// Package press scrapes the press-release boards of the four tracked
// organizations and merges their output into one deduplicated batch.
package press

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"presswatch/internal/fetch"
	"presswatch/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// SkipReason says why a board row was excluded from a page result.
type SkipReason string

const (
	SkipNotice       SkipReason = "notice"
	SkipMissingTitle SkipReason = "missing-title"
	SkipMissingLink  SkipReason = "missing-link"
	SkipMissingDate  SkipReason = "missing-date"
	SkipBeforeWindow SkipReason = "before-window"
)

// Skip records one excluded row.
type Skip struct {
	Row    int
	Reason SkipReason
}

// Page is the result of scraping one list page: the normalized items plus
// an explicit record of every skipped row.
type Page struct {
	Items []model.PressItem
	Skips []Skip
}

// Adapter fetches one list page of a press-release source.
type Adapter interface {
	Name() string
	FetchPage(ctx context.Context, page int) (Page, error)
}

// boardAdapter is the shared scraper behind all four sources; only the
// selectors and identity fields differ per board.
type boardAdapter struct {
	key         string // id key, e.g. "fsc"
	displayName string
	tags        []string

	base    string
	listTpl string // {page} placeholder

	rowSel    string
	noticeSel string
	titleSel  string
	dateSel   string
	idParam   string // detail-link query param carrying a stable ordinal; "" = row index

	client *fetch.Client
	cutoff time.Time
}

func (a *boardAdapter) Name() string { return a.key }

func (a *boardAdapter) FetchPage(ctx context.Context, page int) (Page, error) {
	listURL := strings.ReplaceAll(a.listTpl, "{page}", strconv.Itoa(page))
	doc, err := a.client.Document(ctx, listURL)
	if err != nil {
		return Page{}, fmt.Errorf("%s: list page %d: %w", a.key, page, err)
	}
	return a.extract(doc), nil
}

func (a *boardAdapter) extract(doc *goquery.Document) Page {
	var out Page
	doc.Find(a.rowSel).Each(func(i int, row *goquery.Selection) {
		// Pinned notices are always excluded, regardless of date.
		if a.noticeSel != "" && row.Find(a.noticeSel).Length() > 0 {
			out.Skips = append(out.Skips, Skip{Row: i, Reason: SkipNotice})
			return
		}
		link := row.Find(a.titleSel).First()
		title := strings.TrimSpace(link.Text())
		if link.Length() == 0 || title == "" {
			out.Skips = append(out.Skips, Skip{Row: i, Reason: SkipMissingTitle})
			return
		}
		href, ok := link.Attr("href")
		if !ok || href == "" {
			out.Skips = append(out.Skips, Skip{Row: i, Reason: SkipMissingLink})
			return
		}
		dateCell := row.Find(a.dateSel).First()
		if dateCell.Length() == 0 {
			out.Skips = append(out.Skips, Skip{Row: i, Reason: SkipMissingDate})
			return
		}
		dateISO := model.ParseDate(dateCell.Text())
		// Hard filter, not a stop condition: boards interleave older rows.
		if t, err := time.Parse(model.TimeLayout, dateISO); err == nil && t.Before(a.cutoff) {
			out.Skips = append(out.Skips, Skip{Row: i, Reason: SkipBeforeWindow})
			return
		}
		ordinal := strconv.Itoa(i)
		if a.idParam != "" {
			if v := querySuffix(href, a.idParam); v != "" {
				ordinal = v
			}
		}
		out.Items = append(out.Items, model.PressItem{
			ID:           model.MakeID(a.key, dateISO, ordinal),
			Title:        title,
			Source:       a.displayName,
			Organization: a.displayName,
			Date:         dateISO,
			URL:          a.base + href,
			Summary:      title + " - " + a.displayName + " 보도자료",
			Tags:         append([]string(nil), a.tags...),
			IsScrapped:   false,
			Type:         model.TypeSource,
		})
	})
	return out
}

// querySuffix pulls the value of a query parameter out of a raw href without
// requiring the href to be a well-formed absolute URL.
func querySuffix(href, key string) string {
	_, rest, ok := strings.Cut(href, key+"=")
	if !ok {
		return ""
	}
	if i := strings.IndexByte(rest, '&'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
