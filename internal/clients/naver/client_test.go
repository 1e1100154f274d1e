package naver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonlee/tansu/internal/models"
)

const itemPage = `<html><body>
<p class="no_today"><em><span class="blind">61,360</span></em></p>
</body></html>`

const marketIndexPage = `<html><body>
<ul id="exchangeList"><li><span class="value">1,432.50</span></li></ul>
</body></html>`

const kospiPage = `<html><body>
<em id="now_value">2,501.23</em>
</body></html>`

const newsPage = `<html><body>
<div class="_SECTION_HEADLINE_LIST">
<strong class="sa_text_strong">Headline one</strong>
<strong class="sa_text_strong">Headline two</strong>
<strong class="sa_text_strong">Headline three</strong>
</div>
</body></html>`

const newsPageAltLayout = `<html><body>
<ul class="sa_list_news">
<strong class="sa_text_strong">Alt headline</strong>
</ul>
</body></html>`

func newTestClient(t *testing.T, pages map[string]string) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if page, ok := pages[r.URL.Path]; ok {
			fmt.Fprint(w, page)
			return
		}
		http.NotFound(w, r)
	}))
	client := NewClient(
		WithBaseURL(server.URL),
		WithNewsBaseURL(server.URL),
		WithRateLimit(100),
	)
	return client, server
}

func TestGetQuoteLocal(t *testing.T) {
	client, server := newTestClient(t, map[string]string{"/item/main.naver": itemPage})
	defer server.Close()

	quote, err := client.GetQuote(context.Background(), "035720", models.MarketLocal)
	require.NoError(t, err)
	require.True(t, quote.HasPrice())

	price, _ := quote.Price.Float64()
	assert.InDelta(t, 61360, price, 0.001)
	assert.Empty(t, quote.History, "KRX quotes carry no history")
}

func TestGetQuoteRejectsForeignMarket(t *testing.T) {
	client := NewClient()

	quote, err := client.GetQuote(context.Background(), "TSLA", models.MarketForeign)
	assert.Error(t, err)
	assert.False(t, quote.HasPrice())
}

func TestGetQuoteMissingElement(t *testing.T) {
	client, server := newTestClient(t, map[string]string{"/item/main.naver": "<html><body></body></html>"})
	defer server.Close()

	quote, err := client.GetQuote(context.Background(), "035720", models.MarketLocal)
	assert.Error(t, err)
	assert.False(t, quote.HasPrice())
}

func TestGetUSDKRW(t *testing.T) {
	client, server := newTestClient(t, map[string]string{"/marketindex/": marketIndexPage})
	defer server.Close()

	rate, err := client.GetUSDKRW(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1432.50, rate, 0.001)
}

func TestGetKOSPI(t *testing.T) {
	client, server := newTestClient(t, map[string]string{"/sise/sise_index.naver": kospiPage})
	defer server.Close()

	value, err := client.GetKOSPI(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 2501.23, value, 0.001)
}

func TestTopHeadlines(t *testing.T) {
	client, server := newTestClient(t, map[string]string{"/section/101": newsPage})
	defer server.Close()

	headlines, err := client.TopHeadlines(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Headline one", "Headline two"}, headlines)
}

func TestTopHeadlinesAltLayout(t *testing.T) {
	client, server := newTestClient(t, map[string]string{"/section/101": newsPageAltLayout})
	defer server.Close()

	headlines, err := client.TopHeadlines(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alt headline"}, headlines)
}

func TestFetchHTTPError(t *testing.T) {
	client, server := newTestClient(t, map[string]string{})
	defer server.Close()

	_, err := client.GetKOSPI(context.Background())
	assert.Error(t, err)
}

func TestParseKoreanNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "61,360", want: 61360},
		{in: "1,432.50", want: 1432.50},
		{in: " 2,501.23 ", want: 2501.23},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseKoreanNumber(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
