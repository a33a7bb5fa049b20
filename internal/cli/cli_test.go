package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/five82/ganjoor/ganjoor"
	"github.com/five82/ganjoor/internal/app"
)

type fakeAPI struct {
	mu       sync.Mutex
	requests []*url.URL
	headers  []http.Header
}

func (f *fakeAPI) last(t *testing.T) *url.URL {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "ganjoor", "testdata", name))
	require.NoError(t, err)
	return data
}

// newFakeAPI serves the library fixtures and points GANJOOR_BASE_URL at itself.
func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	poem := fixture(t, "poem.json")
	routes := map[string][]byte{
		"GET /api/ganjoor/poets":                    fixture(t, "poets.json"),
		"GET /api/ganjoor/poet/2":                   fixture(t, "poet.json"),
		"GET /api/ganjoor/poet":                     fixture(t, "poet.json"),
		"GET /api/ganjoor/cat/25":                   fixture(t, "category.json"),
		"GET /api/ganjoor/cat":                      fixture(t, "category.json"),
		"GET /api/ganjoor/poem/2130":                poem,
		"GET /api/ganjoor/poem":                     poem,
		"GET /api/ganjoor/poem/random":              poem,
		"GET /api/ganjoor/hafez/faal":               poem,
		"GET /api/ganjoor/poems/search":             []byte("[" + string(poem) + "]"),
		"GET /api/ganjoor/poems/similar":            []byte("[]"),
		"GET /api/ganjoor/poem/2130/songs":          []byte("[]"),
		"GET /api/ganjoor/poem/2130/comments":       []byte(`[{"id":1,"authorName":"مریم","htmlComment":"<p>زیبا</p>","replies":[{"id":2,"authorName":"علی","htmlComment":"موافقم"}]}]`),
		"GET /api/ganjoor/poem/2130/recitations":    []byte(`[{"id":5,"audioTitle":"خوانش","audioArtist":"راوی","mp3Url":"https://ganjgah.ir/a.mp3"}]`),
		"GET /api/ganjoor/poem/2130/images":         []byte(`[{"imageOrder":1,"thumbnailImageUrl":"https://img/thumb/1.jpg","altText":"نگاره"}]`),
		"GET /api/ganjoor/bookmark":                 []byte(`[{"poemId":2130}]`),
		"POST /api/users/login":                     []byte(`{"token":"tok-1"}`),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.requests = append(api.requests, r.URL)
		api.headers = append(api.headers, r.Header.Clone())
		api.mu.Unlock()

		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("GANJOOR_BASE_URL", srv.URL)
	t.Setenv("GANJOOR_USERNAME", "")
	t.Setenv("GANJOOR_PASSWORD", "")
	return api
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	root, r := newRootCommand()
	r.logger = zaptest.NewLogger(t)
	t.Cleanup(r.close)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.toml"),
		"--prefs", filepath.Join(dir, "prefs.toml"),
		"--no-cache",
	}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPoets(t *testing.T) {
	api := newFakeAPI(t)
	out, err := execute(t, "poets")
	require.NoError(t, err)
	assert.Contains(t, out, "    2  حافظ  /hafez")
	assert.Contains(t, out, "/khayyam")
	assert.Equal(t, "/api/ganjoor/poets", api.last(t).Path)
}

func TestPoet_ByIDAndURL(t *testing.T) {
	api := newFakeAPI(t)

	out, err := execute(t, "poet", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "/api/ganjoor/poet/image/hafez.gif")
	assert.Contains(t, out, "خواجه شمس‌الدین محمد")
	assert.Contains(t, out, "▸    25")

	_, err = execute(t, "poet", "/hafez")
	require.NoError(t, err)
	assert.Equal(t, "/hafez", api.last(t).Query().Get("url"))
}

func TestCategory(t *testing.T) {
	api := newFakeAPI(t)

	out, err := execute(t, "cat", "25", "--poems")
	require.NoError(t, err)
	assert.Contains(t, out, "غزلیات")
	assert.Contains(t, out, "•  2129  غزل شمارهٔ ۱")
	assert.Equal(t, "true", api.last(t).Query().Get("poems"))

	_, err = execute(t, "category", "/hafez/ghazal")
	require.NoError(t, err)
	q := api.last(t).Query()
	assert.Equal(t, "/hafez/ghazal", q.Get("url"))
	assert.Equal(t, "false", q.Get("poems"))
}

func TestPoem_DefaultFlags(t *testing.T) {
	api := newFakeAPI(t)
	out, err := execute(t, "poem", "2130")
	require.NoError(t, err)
	assert.Contains(t, out, "صلاح کار کجا و من خراب کجا\nببین تفاوت ره کز کجاست تا به کجا")
	assert.Contains(t, out, "حافظ » غزلیات")

	q := api.last(t).Query()
	assert.Equal(t, "true", q.Get("catInfo"))
	assert.Equal(t, "false", q.Get("comments"))
}

func TestPoem_CompleteByURL(t *testing.T) {
	api := newFakeAPI(t)
	out, err := execute(t, "poem", "/hafez/ghazal/sh2", "--complete", "--cat-info=false")
	require.NoError(t, err)
	assert.Contains(t, out, "موافقم", "embedded comments are printed")

	req := api.last(t)
	assert.Equal(t, "/api/ganjoor/poem", req.Path)
	assert.Equal(t, "/hafez/ghazal/sh2", req.Query().Get("url"))
	assert.Equal(t, "true", req.Query().Get("catInfo"), "complete overrides explicit flags")
	assert.Equal(t, "true", req.Query().Get("navigation"))
}

func TestPoem_InvalidAndMissing(t *testing.T) {
	newFakeAPI(t)

	_, err := execute(t, "poem", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")

	_, err = execute(t, "poem", "999")
	require.Error(t, err)
	assert.True(t, ganjoor.IsNotFound(err))
}

func TestRandomAndFaal(t *testing.T) {
	api := newFakeAPI(t)

	out, err := execute(t, "random", "--poet", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "غزل شمارهٔ ۲")
	assert.Equal(t, "2", api.last(t).Query().Get("poetId"))

	_, err = execute(t, "random")
	require.NoError(t, err)
	assert.Empty(t, api.last(t).RawQuery)

	_, err = execute(t, "faal")
	require.NoError(t, err)
	assert.Equal(t, "/api/ganjoor/hafez/faal", api.last(t).Path)
}

func TestSearch(t *testing.T) {
	api := newFakeAPI(t)

	out, err := execute(t, "search", " دل ", "--poet", "2", "--cat", "24", "--size", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "  2130  حافظ » غزلیات » غزل شمارهٔ ۲")

	q := api.last(t).Query()
	assert.Equal(t, "دل", q.Get("term"))
	assert.Equal(t, "2", q.Get("poetId"))
	assert.Equal(t, "24", q.Get("catId"))
	assert.Equal(t, "10", q.Get("PageSize"))

	_, err = execute(t, "search", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search term required")
}

func TestSimilar_Empty(t *testing.T) {
	api := newFakeAPI(t)
	out, err := execute(t, "similar", "--metre", "مفاعلن فعلاتن مفاعلن فعلن", "--rhyme", "ا")
	require.NoError(t, err)
	assert.Equal(t, "No similar poems.\n", out)
	assert.Equal(t, "ا", api.last(t).Query().Get("rhyme"))
}

func TestPoemLists(t *testing.T) {
	newFakeAPI(t)

	out, err := execute(t, "comments", "2130")
	require.NoError(t, err)
	assert.Contains(t, out, "مریم\nزیبا\n    علی\n    موافقم")

	out, err = execute(t, "recitations", "2130")
	require.NoError(t, err)
	assert.Contains(t, out, "https://ganjgah.ir/a.mp3")

	out, err = execute(t, "images", "2130")
	require.NoError(t, err)
	assert.Contains(t, out, "https://img/normal/1.jpg")

	out, err = execute(t, "songs", "2130")
	require.NoError(t, err)
	assert.Equal(t, "No songs.\n", out)

	_, err = execute(t, "songs", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid poem id "abc"`)
}

func TestLogin(t *testing.T) {
	api := newFakeAPI(t)

	_, err := execute(t, "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GANJOOR_PASSWORD")

	t.Setenv("GANJOOR_USERNAME", "reza")
	t.Setenv("GANJOOR_PASSWORD", "secret")
	out, err := execute(t, "login")
	require.NoError(t, err)
	assert.Equal(t, "Logged in as reza.\n", out)

	out, err = execute(t, "login", "--token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1\n", out)
	assert.Equal(t, "/api/users/login", api.last(t).Path)
}

func TestBookmarks(t *testing.T) {
	api := newFakeAPI(t)
	t.Setenv("GANJOOR_USERNAME", "reza")
	t.Setenv("GANJOOR_PASSWORD", "secret")

	out, err := execute(t, "bookmarks")
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"poemId\": 2130\n  }\n]\n", out)

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, "bearer tok-1", api.headers[len(api.headers)-1].Get("Authorization"))
}

func TestCacheClear_Disabled(t *testing.T) {
	newFakeAPI(t)
	_, err := execute(t, "cache", "clear")
	require.Error(t, err)
	assert.True(t, errors.Is(err, app.ErrCacheDisabled))
}

func TestInvalidConfig(t *testing.T) {
	newFakeAPI(t)
	t.Setenv("GANJOOR_BASE_URL", "ftp://nowhere")
	_, err := execute(t, "poets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		in      string
		want    ref
		wantErr bool
	}{
		{in: "2130", want: ref{id: 2130}},
		{in: " 7 ", want: ref{id: 7}},
		{in: "/hafez/ghazal/sh2", want: ref{url: "/hafez/ghazal/sh2"}},
		{in: "-3", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseRef(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
