package press

import (
	"time"

	"presswatch/internal/config"
	"presswatch/internal/fetch"
)

// NewFSC returns the adapter for 금융위원회 press releases.
func NewFSC(src config.SourceConfig, client *fetch.Client, cutoff time.Time) Adapter {
	return &boardAdapter{
		key:         "fsc",
		displayName: "금융위원회",
		tags:        []string{"금융위원회", "보도자료"},
		base:        src.Base,
		listTpl:     src.List,
		rowSel:      ".boardList tbody tr",
		noticeSel:   ".important, .notice",
		titleSel:    ".title a",
		dateSel:     "td.date, td:nth-child(5)",
		client:      client,
		cutoff:      cutoff,
	}
}

// NewFSS returns the adapter for 금융감독원 press releases.
func NewFSS(src config.SourceConfig, client *fetch.Client, cutoff time.Time) Adapter {
	return &boardAdapter{
		key:         "fss",
		displayName: "금융감독원",
		tags:        []string{"금융감독원", "보도자료"},
		base:        src.Base,
		listTpl:     src.List,
		rowSel:      ".boardList tbody tr",
		noticeSel:   ".noticeTag",
		titleSel:    ".title a",
		dateSel:     "td:nth-child(5)",
		idParam:     "nttId",
		client:      client,
		cutoff:      cutoff,
	}
}

// NewBOK returns the adapter for 한국은행 press releases.
func NewBOK(src config.SourceConfig, client *fetch.Client, cutoff time.Time) Adapter {
	return &boardAdapter{
		key:         "bok",
		displayName: "한국은행",
		tags:        []string{"한국은행", "보도자료"},
		base:        src.Base,
		listTpl:     src.List,
		rowSel:      ".bbs-list table tbody tr",
		noticeSel:   ".noti",
		titleSel:    ".bbs-subj a",
		dateSel:     ".bbs-date",
		idParam:     "nttId",
		client:      client,
		cutoff:      cutoff,
	}
}

// NewMSIT returns the adapter for 과학기술정보통신부 press releases.
func NewMSIT(src config.SourceConfig, client *fetch.Client, cutoff time.Time) Adapter {
	return &boardAdapter{
		key:         "msit",
		displayName: "과학기술정보통신부",
		tags:        []string{"과학기술정보통신부", "보도자료", "ICT"},
		base:        src.Base,
		listTpl:     src.List,
		rowSel:      ".pblancList table tbody tr",
		noticeSel:   ".noti, .notice",
		titleSel:    ".subj a",
		dateSel:     ".date",
		idParam:     "nttSeqNo",
		client:      client,
		cutoff:      cutoff,
	}
}
