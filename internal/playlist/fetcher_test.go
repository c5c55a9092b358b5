package playlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cinesub/subrip/internal/cache"
	"github.com/cinesub/subrip/internal/testutil"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	manifest := testutil.MediaManifest("seg0.webvtt", "seg1.webvtt")

	mux := http.NewServeMux()
	mux.HandleFunc("/good.m3u8", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(manifest))
	})
	mux.HandleFunc("/garbage.m3u8", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not a manifest</html>"))
	})
	mux.HandleFunc("/missing.m3u8", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := NewFetcher(server.Client(), nil, "test-agent")
	ctx := context.Background()

	if !fetcher.Validate(ctx, server.URL+"/good.m3u8") {
		t.Error("Validate(good manifest) = false, want true")
	}
	if fetcher.Validate(ctx, server.URL+"/garbage.m3u8") {
		t.Error("Validate(garbage) = true, want false")
	}
	if fetcher.Validate(ctx, server.URL+"/missing.m3u8") {
		t.Error("Validate(404) = true, want false")
	}
	if fetcher.Validate(ctx, "http://127.0.0.1:1/unreachable.m3u8") {
		t.Error("Validate(unreachable) = true, want false")
	}
}

func TestFetchMediaSegmentOrder(t *testing.T) {
	t.Parallel()

	manifest := testutil.MediaManifest("seg0.webvtt", "seg1.webvtt", "seg2.webvtt")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(manifest))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), nil, "test-agent")
	playlistURL := server.URL + "/subs/en/prog_index.m3u8"

	media, err := fetcher.FetchMedia(context.Background(), playlistURL)
	if err != nil {
		t.Fatalf("FetchMedia returned error: %v", err)
	}

	uris, err := SegmentURIs(media, playlistURL)
	if err != nil {
		t.Fatalf("SegmentURIs returned error: %v", err)
	}

	want := []string{
		server.URL + "/subs/en/seg0.webvtt",
		server.URL + "/subs/en/seg1.webvtt",
		server.URL + "/subs/en/seg2.webvtt",
	}
	if len(uris) != len(want) {
		t.Fatalf("got %d segment URIs, want %d", len(uris), len(want))
	}
	for i := range want {
		if uris[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, uris[i], want[i])
		}
	}
}

func TestFetchMasterRejectsMediaPlaylist(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testutil.MediaManifest("seg0.webvtt")))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), nil, "test-agent")
	if _, err := fetcher.FetchMaster(context.Background(), server.URL+"/main.m3u8"); err == nil {
		t.Error("FetchMaster accepted a media playlist")
	}
}

func TestFetchUsesCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(testutil.MediaManifest("seg0.webvtt")))
	}))
	defer server.Close()

	manifestCache, err := cache.New("memory", cache.ProviderConfig{Size: 8, TTL: time.Minute})
	if err != nil {
		t.Fatalf("cache.New returned error: %v", err)
	}
	defer manifestCache.Close()

	fetcher := NewFetcher(server.Client(), manifestCache, "test-agent")
	ctx := context.Background()
	url := server.URL + "/track.m3u8"

	if !fetcher.Validate(ctx, url) {
		t.Fatal("Validate = false, want true")
	}
	if _, err := fetcher.FetchMedia(ctx, url); err != nil {
		t.Fatalf("FetchMedia returned error: %v", err)
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1 (second read served from cache)", got)
	}
}
