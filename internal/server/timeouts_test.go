package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	srv := New(":0", http.NotFoundHandler(), Timeouts{Write: 3 * time.Second})
	if srv.ReadTimeout != 10*time.Second || srv.IdleTimeout != 60*time.Second {
		t.Fatalf("defaults not applied: %+v", srv)
	}
	if srv.WriteTimeout != 3*time.Second {
		t.Fatalf("write timeout = %v", srv.WriteTimeout)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := New("127.0.0.1:0", http.NotFoundHandler(), Timeouts{Shutdown: time.Second})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv, Timeouts{Shutdown: time.Second}) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
