// Package news scrapes the Naver and Google news indexes for a set of
// tracked keywords through a rendered browser session.
package news

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"presswatch/internal/model"
)

// SkipReason says why a result entry was excluded.
type SkipReason string

const (
	SkipAd           SkipReason = "ad"
	SkipMissingTitle SkipReason = "missing-title"
	SkipMissingLink  SkipReason = "missing-link"
)

// Skip records one excluded entry.
type Skip struct {
	Index  int
	Reason SkipReason
}

// Page is the result of one keyword search against one index.
type Page struct {
	Items []model.NewsItem
	Skips []Skip
}

// Adapter searches one news index for a keyword.
type Adapter interface {
	Name() string
	Search(ctx context.Context, keyword string, page, maxItems int) (Page, error)
}

var (
	reMinutesAgo = regexp.MustCompile(`(\d+)분 전`)
	reHoursAgo   = regexp.MustCompile(`(\d+)시간 전`)
	reDaysAgo    = regexp.MustCompile(`(\d+)일 전`)
)

// parseRelativeTime converts "N분 전" / "N시간 전" / "N일 전" into a
// canonical timestamp by subtracting the offset from the capture time.
// Unrecognized text falls back to the capture time itself.
func parseRelativeTime(text string, now time.Time) string {
	text = strings.TrimSpace(text)
	if m := reMinutesAgo.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.Add(-time.Duration(n) * time.Minute).Format(model.TimeLayout)
	}
	if m := reHoursAgo.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.Add(-time.Duration(n) * time.Hour).Format(model.TimeLayout)
	}
	if m := reDaysAgo.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -n).Format(model.TimeLayout)
	}
	return now.Format(model.TimeLayout)
}

// searchKeywords derives the keyword list for an item: the querying keyword
// first, then title tokens of at least two runes in title order, capped at
// five total.
func searchKeywords(keyword, title string) []string {
	kws := []string{keyword}
	for _, w := range strings.Fields(title) {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		if len(kws) >= 5 {
			break
		}
		dup := false
		for _, k := range kws {
			if k == w {
				dup = true
				break
			}
		}
		if !dup {
			kws = append(kws, w)
		}
	}
	return kws
}

// tagsFrom takes the first three keywords as display tags.
func tagsFrom(keywords []string) []string {
	n := len(keywords)
	if n > 3 {
		n = 3
	}
	return append([]string(nil), keywords[:n]...)
}

func encodeQuery(keyword string) string {
	return strings.ReplaceAll(keyword, " ", "+")
}
