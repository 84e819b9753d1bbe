//go:build integration

// Package testutil provides testcontainers helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the image started for integration tests.
const MongoImage = "mongo:7.0"

// MongoDBContainer wraps a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// SetupMongoDB starts a MongoDB container and returns its connection URI.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

// RunWithSharedMongoDB starts one container for the whole package, runs the
// tests and tears the container down. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongoDB(context.Background(), m))
//	}
func RunWithSharedMongoDB(ctx context.Context, m *testing.M) int {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		shared, sharedErr = SetupMongoDB(ctx)
	})
	if sharedErr != nil {
		panic(sharedErr)
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if err := shared.Cleanup(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// SharedMongoURI returns the URI of the package-wide container.
func SharedMongoURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("shared mongodb container not started; call RunWithSharedMongoDB from TestMain")
	}
	return shared.URI
}

// DatabaseName turns a test name into a unique, valid database name.
func DatabaseName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			return '_'
		}
		return r
	}, testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
