package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"receivecopy/internal/domain/receive"
	"receivecopy/internal/infrastructure/storage/memory"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	log := slog.Default()
	service := receive.NewService(receive.NewStore(memory.New(), log), 20, log)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(ln.Addr().String(), service, log)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunBadAddress(t *testing.T) {
	log := slog.Default()
	service := receive.NewService(receive.NewStore(memory.New(), log), 20, log)

	err := New("256.0.0.1:bad", service, log).Run(context.Background())
	assert.Error(t, err)
}
