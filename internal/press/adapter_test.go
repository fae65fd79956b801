package press

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"presswatch/internal/config"
	"presswatch/internal/fetch"
	"presswatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCutoff = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

const fscFixture = `<html><body><table class="boardList"><tbody>
<tr>
  <td class="notice">공지</td>
  <td class="title"><a href="/no010101?cn=1">고정 공지사항</a></td>
  <td class="date">2025-08-20</td>
</tr>
<tr>
  <td>101</td>
  <td class="title"><a href="/no010101?cn=101">전자금융거래 안전성 강화 방안</a></td>
  <td class="date">2025-08-12</td>
</tr>
<tr>
  <td>100</td>
  <td class="title"></td>
  <td class="date">2025-08-11</td>
</tr>
<tr>
  <td>99</td>
  <td class="title"><a href="/no010101?cn=99">보이스피싱 대응 현황</a></td>
  <td class="date">2025-08-10</td>
</tr>
<tr>
  <td>5</td>
  <td class="title"><a href="/no010101?cn=5">작년 결산 보도자료</a></td>
  <td class="date">2024-01-15</td>
</tr>
</tbody></table></body></html>`

func newTestClient() *fetch.Client {
	return fetch.NewClient(config.HTTPConfig{TimeoutSeconds: 5})
}

func TestFSCAdapterFixture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fscFixture))
	}))
	defer srv.Close()

	src := config.SourceConfig{Base: srv.URL, List: srv.URL + "/no010101?curPage={page}"}
	ad := NewFSC(src, newTestClient(), testCutoff)

	page, err := ad.FetchPage(context.Background(), 1)
	require.NoError(t, err)

	// 3 dated rows, 1 notice, 1 missing title; one dated row precedes the
	// window, leaving two records.
	require.Len(t, page.Items, 2)
	for _, it := range page.Items {
		assert.Equal(t, model.TypeSource, it.Type)
		assert.False(t, it.IsScrapped)
		ts, err := time.Parse(model.TimeLayout, it.Date)
		require.NoError(t, err)
		assert.False(t, ts.Before(testCutoff))
		assert.Equal(t, "금융위원회", it.Source)
		assert.Equal(t, "금융위원회", it.Organization)
	}
	assert.Equal(t, "전자금융거래 안전성 강화 방안", page.Items[0].Title)
	assert.Equal(t, srv.URL+"/no010101?cn=101", page.Items[0].URL)
	// FSC has no id query param, so the ordinal is the row index.
	assert.Equal(t, "fsc-20250812-1", page.Items[0].ID)

	reasons := make([]SkipReason, 0, len(page.Skips))
	for _, s := range page.Skips {
		reasons = append(reasons, s.Reason)
	}
	assert.ElementsMatch(t, []SkipReason{SkipNotice, SkipMissingTitle, SkipBeforeWindow}, reasons)
}

const fssFixture = `<html><body><table class="boardList"><tbody>
<tr>
  <td>12</td>
  <td class="title"><a href="/fss/bbs/view.do?nttId=84211&bbsId=B0000188">가상자산 이용자 보호 안내</a></td>
  <td>감독총괄국</td>
  <td>첨부</td>
  <td>2025-08-14</td>
</tr>
<tr>
  <td><span class="noticeTag">공지</span></td>
  <td class="title"><a href="/fss/bbs/view.do?nttId=1">상시 공지</a></td>
  <td>-</td>
  <td>-</td>
  <td>2025-08-01</td>
</tr>
</tbody></table></body></html>`

func TestFSSAdapterOrdinalFromLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fssFixture))
	}))
	defer srv.Close()

	src := config.SourceConfig{Base: srv.URL, List: srv.URL + "/list.do?pageIndex={page}"}
	ad := NewFSS(src, newTestClient(), testCutoff)

	page, err := ad.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "fss-20250814-84211", page.Items[0].ID)
	require.Len(t, page.Skips, 1)
	assert.Equal(t, SkipNotice, page.Skips[0].Reason)
}

func TestFetchPageHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := config.SourceConfig{Base: srv.URL, List: srv.URL + "/no010101?curPage={page}"}
	ad := NewFSC(src, newTestClient(), testCutoff)

	_, err := ad.FetchPage(context.Background(), 1)
	assert.Error(t, err)
}
