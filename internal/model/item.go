package model

import (
	"strings"
	"time"
)

// TimeLayout is the canonical timestamp format shared by every record.
// It has no zone suffix, so string comparison orders same-format values
// chronologically.
const TimeLayout = "2006-01-02T15:04:05"

// Record type discriminators.
const (
	TypeSource = "source"
	TypeNews   = "news"
)

// PressItem is one regulatory/government announcement. IsScrapped and Memo
// belong to the downstream consumer; the pipeline sets them once at
// construction and never touches them again.
type PressItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Source       string   `json:"source"`
	Organization string   `json:"organization,omitempty"`
	Date         string   `json:"date"`
	URL          string   `json:"url"`
	Summary      string   `json:"summary"`
	Tags         []string `json:"tags"`
	IsScrapped   bool     `json:"isScrapped"`
	Type         string   `json:"type"`
	Memo         string   `json:"memo,omitempty"`
}

// NewsItem is one news-article hit for a tracked keyword. Source is the
// search engine that surfaced the article; Publisher is the outlet that
// wrote it.
type NewsItem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Source     string   `json:"source"`
	Publisher  string   `json:"publisher,omitempty"`
	Date       string   `json:"date"`
	URL        string   `json:"url"`
	Summary    string   `json:"summary"`
	Tags       []string `json:"tags"`
	Keywords   []string `json:"keywords"`
	IsScrapped bool     `json:"isScrapped"`
	Type       string   `json:"type"`
	ImageURL   string   `json:"imageUrl,omitempty"`
}

// dateLayouts are tried in order. The list covers the machine-readable
// forms the board sites emit plus the localized "Y년 M월 D일" form.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006.01.02 15:04:05",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"2006년 1월 2일",
	"2006년 01월 02일",
}

// ParseDate converts a raw date string into the canonical timestamp. When no
// known layout matches, it returns the current wall-clock time instead of an
// error; the caller always gets a usable timestamp, at the cost of losing
// the event time for unrecognized input.
func ParseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(TimeLayout)
		}
	}
	return time.Now().Format(TimeLayout)
}

// MakeID builds "source-YYYYMMDD-ordinal" from a source key, a canonical
// timestamp, and a disambiguating ordinal. Uniqueness is not guaranteed:
// two runs that assign the same ordinal for the same source and day collide.
// The format is a downstream contract, so a stronger content-hash scheme is
// deliberately not adopted here.
func MakeID(source, canonicalDate, ordinal string) string {
	datePart := canonicalDate
	if i := strings.IndexByte(datePart, 'T'); i >= 0 {
		datePart = datePart[:i]
	}
	datePart = strings.ReplaceAll(datePart, "-", "")
	return strings.ToLower(source) + "-" + datePart + "-" + ordinal
}
