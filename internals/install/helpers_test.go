package install

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeHost serves fixed files and counts requests per path
type fakeHost struct {
	srv *httptest.Server

	mu       sync.Mutex
	files    map[string][]byte
	failures map[string]int
	hits     map[string]int
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	h := &fakeHost{
		files:    map[string][]byte{},
		failures: map[string]int{},
		hits:     map[string]int{},
	}
	h.srv = httptest.NewServer(http.HandlerFunc(h.handle))
	t.Cleanup(h.srv.Close)
	return h
}

func (h *fakeHost) handle(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.hits[r.URL.Path]++
	body, ok := h.files[r.URL.Path]
	fail := h.failures[r.URL.Path] > 0
	if fail {
		h.failures[r.URL.Path]--
	}
	h.mu.Unlock()

	switch {
	case fail:
		http.Error(w, "try again", http.StatusInternalServerError)
	case !ok:
		http.NotFound(w, r)
	default:
		w.Write(body)
	}
}

func (h *fakeHost) URL(path string) string {
	return h.srv.URL + path
}

func (h *fakeHost) serve(path string, body []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.files[path] = body
}

func (h *fakeHost) serveString(path string, body string) {
	h.serve(path, []byte(body))
}

// failFirst makes the next n requests to path fail with a 500
func (h *fakeHost) failFirst(path string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[path] = n
}

func (h *fakeHost) hitCount(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[path]
}

func (h *fakeHost) totalHits() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	total := 0
	for _, n := range h.hits {
		total += n
	}
	return total
}

func newTestInstaller(t *testing.T, h *fakeHost) *Installer {
	t.Helper()
	inst := New(filepath.Join(t.TempDir(), "root"))
	inst.OS = "linux"
	inst.Arch = "amd64"
	inst.HTTP = h.srv.Client()
	inst.Hosts = Hosts{
		Meta:      h.srv.URL,
		Assets:    h.URL("/objects"),
		Libraries: h.URL("/maven/"),
	}
	return inst
}

func zipBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	buf, err := json.Marshal(v)
	require.NoError(t, err)
	return string(buf)
}

// m is a shorthand for json fixtures
type m map[string]interface{}
