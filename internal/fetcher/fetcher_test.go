package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html><head>
<title>Careers | Acme</title>
<meta property="og:title" content="Senior Go Engineer">
<script>var x = 1;</script>
</head><body>
<nav><p>Home</p></nav>
<main>
<h1>Go Engineer</h1>
<p>We build   payment
 rails.</p>
<ul><li>5+ years Go</li><li>PostgreSQL</li></ul>
</main>
<footer><p>Copyright</p></footer>
</body></html>`

func serve(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchJobPosting(t *testing.T) {
	srv := serve(t, postingHTML, http.StatusOK)

	p, err := NewFetcher().FetchJobPosting(context.Background(), srv.URL, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", p.Title)
	assert.Equal(t, "We build payment rails.\n- 5+ years Go\n- PostgreSQL", p.Description)
	assert.Equal(t, srv.URL, p.URL)
}

func TestFetchJobPostingTitleFallback(t *testing.T) {
	srv := serve(t, `<html><head><title> Only Title </title></head><body></body></html>`, http.StatusOK)

	p, err := NewFetcher().FetchJobPosting(context.Background(), srv.URL, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "Only Title", p.Title)
	assert.Empty(t, p.Description)
}

func TestFetchJobPostingErrors(t *testing.T) {
	f := NewFetcher()

	_, err := f.FetchJobPosting(context.Background(), "ftp://example.com/job", "test-agent")
	assert.ErrorIs(t, err, ErrInvalidURL)

	srv := serve(t, "gone", http.StatusNotFound)
	_, err = f.FetchJobPosting(context.Background(), srv.URL, "test-agent")
	assert.Error(t, err)

	empty := serve(t, "<html><body></body></html>", http.StatusOK)
	_, err = f.FetchJobPosting(context.Background(), empty.URL, "test-agent")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 8))

	s := "ab" + strings.Repeat("é", 4)
	got := truncate(s, 5)
	assert.Equal(t, "abé", got)
	assert.True(t, utf8.ValidString(got))

	long := strings.Repeat("x", maxDescription-1) + "日本"
	got = truncate(long, maxDescription)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, got, maxDescription-1)
}
