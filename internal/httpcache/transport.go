// Package httpcache provides a read-through caching http.RoundTripper over a
// domain.CacheRepo, so repeated CLI invocations reuse recent API responses
// instead of hitting the network.
package httpcache

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/varoOP/go-animethemes/internal/domain"
)

// Transport caches successful GET responses. Everything else is passed
// straight to the base round tripper.
type Transport struct {
	Base http.RoundTripper
	Repo domain.CacheRepo
	TTL  time.Duration
	Log  zerolog.Logger
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || t.Repo == nil {
		return t.base().RoundTrip(req)
	}

	key := req.URL.String()

	cached, err := t.Repo.Get(req.Context(), key)
	if err != nil {
		t.Log.Warn().Err(err).Str("url", key).Msg("cache lookup failed")
	} else if cached != nil && time.Since(cached.FetchedAt) < t.TTL {
		t.Log.Debug().Str("url", key).Msg("cache hit")
		return cachedResponse(req, cached), nil
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		resp.Body = io.NopCloser(bytes.NewReader(body))

		store := &domain.CachedResponse{
			URL:       key,
			Status:    resp.StatusCode,
			Body:      body,
			FetchedAt: time.Now(),
		}
		if err := t.Repo.Store(req.Context(), store); err != nil {
			t.Log.Warn().Err(err).Str("url", key).Msg("failed to store response in cache")
		}
	}

	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func cachedResponse(req *http.Request, cached *domain.CachedResponse) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode:    cached.Status,
		Status:        http.StatusText(cached.Status),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(cached.Body)),
		ContentLength: int64(len(cached.Body)),
		Request:       req,
	}
}
