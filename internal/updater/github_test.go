package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/vnd.github+json" {
			t.Errorf("missing github accept header")
		}
		fmt.Fprint(w, `{"tag_name": "v1.3.0", "html_url": "https://example.com/releases/v1.3.0"}`)
	}))
	defer srv.Close()

	u := New("1.0.0", WithHTTPClient(srv.Client()), WithAPIBase(srv.URL))
	release, err := u.CheckLatestVersion()
	if err != nil {
		t.Fatalf("CheckLatestVersion() error: %v", err)
	}
	if release.Version != "v1.3.0" {
		t.Errorf("Version = %q, want %q", release.Version, "v1.3.0")
	}
}

func TestCheckLatestVersionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u := New("1.0.0", WithHTTPClient(srv.Client()), WithAPIBase(srv.URL))
	if _, err := u.CheckLatestVersion(); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestCheckLatestVersionRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	u := New("1.0.0", WithHTTPClient(srv.Client()), WithAPIBase(srv.URL))
	_, err := u.CheckLatestVersion()
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
}
