package site_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/mysite/internal/site"
	"github.com/JaimeStill/mysite/internal/urls"
	"github.com/JaimeStill/mysite/pkg/module"
)

const adminBody = "admin subsystem"

func newTable(t *testing.T) *urls.Table {
	t.Helper()

	admin := module.New("/admin", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(adminBody))
	}))

	table, err := urls.New(site.URLPatterns(admin)...)
	if err != nil {
		t.Fatalf("urls.New() error = %v", err)
	}
	return table
}

func get(t *testing.T, h http.Handler, method, path string) *http.Response {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Result()
}

func TestIndex(t *testing.T) {
	table := newTable(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			resp := get(t, table, method, "/")
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}

			if ct := resp.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}

			if method == http.MethodHead {
				return
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != "OK: Django is running" {
				t.Errorf("body = %q, want %q", string(body), "OK: Django is running")
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	table := newTable(t)

	for _, path := range []string{"/nonexistent", "/index", "/home", "/index/", "/admins"} {
		t.Run(path, func(t *testing.T) {
			resp := get(t, table, http.MethodGet, path)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
			}
		})
	}
}

func TestAdminDelegation(t *testing.T) {
	table := newTable(t)

	for _, path := range []string{"/admin", "/admin/", "/admin/auth/user/"} {
		t.Run(path, func(t *testing.T) {
			resp := get(t, table, http.MethodGet, path)
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if string(body) != adminBody {
				t.Errorf("body = %q, want admin response", string(body))
			}
		})
	}
}

func TestURLPatterns_Order(t *testing.T) {
	routes := newTable(t).Routes()

	if len(routes) != 2 {
		t.Fatalf("len(routes) = %d, want 2", len(routes))
	}
	if routes[0].Kind != urls.KindInclude || routes[0].Pattern != "admin/" {
		t.Errorf("routes[0] = %s %q, want include %q", routes[0].Kind, routes[0].Pattern, "admin/")
	}
	if routes[1].Kind != urls.KindExact || routes[1].Pattern != "" || routes[1].Name != site.IndexName {
		t.Errorf("routes[1] = %s %q %q, want exact root named index", routes[1].Kind, routes[1].Pattern, routes[1].Name)
	}
}

func TestReverseIndex(t *testing.T) {
	got, err := newTable(t).Reverse(site.IndexName)
	if err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}
	if got != "/" {
		t.Errorf("Reverse(index) = %q, want %q", got, "/")
	}
}
