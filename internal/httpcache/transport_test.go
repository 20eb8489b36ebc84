package httpcache

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varoOP/go-animethemes/internal/domain"
)

// memRepo is an in-memory domain.CacheRepo for transport tests.
type memRepo struct {
	mu      sync.Mutex
	entries map[string]*domain.CachedResponse
}

func newMemRepo() *memRepo {
	return &memRepo{entries: make(map[string]*domain.CachedResponse)}
}

func (m *memRepo) Get(_ context.Context, url string) (*domain.CachedResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[url], nil
}

func (m *memRepo) Store(_ context.Context, res *domain.CachedResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[res.URL] = res
	return nil
}

func (m *memRepo) Prune(_ context.Context, cutoff time.Time) (int, error) {
	return 0, nil
}

func TestTransportCachesSecondRequest(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"id": 15}`))
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: &Transport{
		Repo: newMemRepo(),
		TTL:  time.Hour,
		Log:  zerolog.Nop(),
	}}

	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL + "/anime/bakemonogatari")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, `{"id": 15}`, string(body))
	}

	assert.Equal(t, 1, hits, "second request must be served from cache")
}

func TestTransportExpiredEntryRefetches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	repo := newMemRepo()
	repo.entries[srv.URL+"/year"] = &domain.CachedResponse{
		URL:       srv.URL + "/year",
		Status:    200,
		Body:      []byte(`[1999]`),
		FetchedAt: time.Now().Add(-2 * time.Hour),
	}

	client := &http.Client{Transport: &Transport{
		Repo: repo,
		TTL:  time.Hour,
		Log:  zerolog.Nop(),
	}}

	resp, err := client.Get(srv.URL + "/year")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, hits, "expired entry must be refetched")
}

func TestTransportSkipsErrorResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	repo := newMemRepo()
	client := &http.Client{Transport: &Transport{Repo: repo, TTL: time.Hour, Log: zerolog.Nop()}}

	resp, err := client.Get(srv.URL + "/anime/x")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, repo.entries, "non-200 responses must not be cached")
}

func TestTransportNilRepoPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: &Transport{Log: zerolog.Nop()}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
