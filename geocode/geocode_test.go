package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"facilitymap/database"
)

func initTestCache(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geocache.db")
	if err := database.InitDB(path); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(database.CloseDB)
}

func testClient(serverURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		baseURL:    serverURL,
		userAgent:  "facilitymap-test",
	}
}

func TestLookupUsesCacheBeforeNetwork(t *testing.T) {
	initTestCache(t)

	err := database.SaveCachedCoordinates("1 Main St", "Springfield", "62701", database.CachedCoordinates{
		Latitude: 39.8, Longitude: -89.6, Resolved: true,
	})
	if err != nil {
		t.Fatalf("SaveCachedCoordinates: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("cached address triggered a network request")
	}))
	defer server.Close()

	c := testClient(server.URL)
	coords := c.Lookup(context.Background(), "1 Main St", "Springfield", "62701")
	if coords.Latitude != 39.8 || coords.Longitude != -89.6 {
		t.Errorf("coords = %+v, want cached values", coords)
	}
}

func TestLookupCachesResolvedResult(t *testing.T) {
	initTestCache(t)

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if q := r.URL.Query().Get("q"); q != "2 Oak Ave, Dayton, 45402" {
			t.Errorf("query = %q", q)
		}
		if ua := r.Header.Get("User-Agent"); ua != "facilitymap-test" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Write([]byte(`[{"lat":"39.7589","lon":"-84.1916"}]`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	first := c.Lookup(context.Background(), "2 Oak Ave", "Dayton", "45402")
	second := c.Lookup(context.Background(), "2 Oak Ave", "Dayton", "45402")

	if first.Latitude != 39.7589 || first.Longitude != -84.1916 {
		t.Errorf("first = %+v", first)
	}
	if second != first {
		t.Errorf("second lookup = %+v, want cached %+v", second, first)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

func TestLookupFailureReturnsZeroAndIsCached(t *testing.T) {
	initTestCache(t)

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	coords := c.Lookup(context.Background(), "No Such Road", "Nowhere", "00000")
	if coords != (Coordinates{}) {
		t.Errorf("coords = %+v, want zero value", coords)
	}

	// A repeat of a known-bad address must not re-query.
	c.Lookup(context.Background(), "No Such Road", "Nowhere", "00000")
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

func TestBuildQuerySkipsEmptyParts(t *testing.T) {
	if got := buildQuery("1 Main St", "", "62701"); got != "1 Main St, 62701" {
		t.Errorf("buildQuery = %q", got)
	}
}
