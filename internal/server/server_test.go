package server_test

import (
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/JaimeStill/mysite/internal/config"
	"github.com/JaimeStill/mysite/internal/server"
	"github.com/JaimeStill/mysite/pkg/lifecycle"
	"github.com/JaimeStill/mysite/pkg/logging"
)

func testConfig(t *testing.T) *config.ServerConfig {
	t.Helper()
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 1}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	cfg.Port = 0
	return cfg
}

func TestServer_StartAndShutdown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("test response"))
	})

	lc := lifecycle.New()
	sys := server.New(testConfig(t), 5*time.Second, handler, logging.Discard())

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	resp, err := http.Get("http://" + sys.Addr() + "/test")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(body) != "test response" {
		t.Errorf("body = %q, want %q", string(body), "test response")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if _, err := http.Get("http://" + sys.Addr() + "/test"); err == nil {
		t.Error("server still accepting connections after shutdown")
	}
}

func TestServer_Start_AddressInUse(t *testing.T) {
	lc := lifecycle.New()
	defer lc.Shutdown(time.Second)

	first := server.New(testConfig(t), time.Second, http.NotFoundHandler(), logging.Discard())
	if err := first.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	cfg := testConfig(t)
	host, port := splitAddr(t, first.Addr())
	cfg.Host = host
	cfg.Port = port

	second := server.New(cfg, time.Second, http.NotFoundHandler(), logging.Discard())
	if err := second.Start(lc); err == nil {
		t.Error("Start() succeeded on an address already in use")
	}
}

func splitAddr(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split %q: %v", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port %q: %v", portStr, err)
	}
	return host, port
}
