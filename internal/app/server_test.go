//go:build !integration

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return strconv.Itoa(port)
}

func TestNewServer(t *testing.T) {
	server := NewServer(http.NotFoundHandler(), "8080")

	require.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 1<<20, server.httpServer.MaxHeaderBytes)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestNewServer_Options(t *testing.T) {
	server := NewServer(http.NotFoundHandler(), "8080",
		WithWriteTimeout(90*time.Second),
		WithShutdownTimeout(time.Second),
		WithWriteTimeout(0),
	)

	assert.Equal(t, 90*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, time.Second, server.shutdownTimeout)
}

func TestServer_Shutdown_NotStarted(t *testing.T) {
	server := NewServer(http.NotFoundHandler(), "0")

	assert.NoError(t, server.Shutdown())
}

func TestServer_Shutdown_RunsHooks(t *testing.T) {
	server := NewServer(http.NotFoundHandler(), "0")

	var order []string
	server.OnShutdown(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "hooks get the shutdown deadline")
		order = append(order, "first")
		return nil
	})
	server.OnShutdown(func(context.Context) error {
		order = append(order, "second")
		return errors.New("close failed")
	})
	server.OnShutdown(func(context.Context) error {
		order = append(order, "third")
		return nil
	})

	err := server.Shutdown()

	assert.EqualError(t, err, "close failed")
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestServer_Run_ServesUntilSignal(t *testing.T) {
	port := freePort(t)
	server := NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), port)

	closed := make(chan struct{})
	server.OnShutdown(func(context.Context) error {
		close(closed)
		return nil
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	url := fmt.Sprintf("http://127.0.0.1:%s/", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	proc, _ := os.FindProcess(os.Getpid())
	require.NoError(t, proc.Signal(syscall.SIGTERM))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}
	select {
	case <-closed:
	default:
		t.Fatal("shutdown hook did not run")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	server := NewServer(http.NotFoundHandler(), "invalid-port")

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not report the listen error")
	}
}
