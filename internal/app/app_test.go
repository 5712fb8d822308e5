package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/mkaryagin/heartbeat/internal/config"
	testhelpers "github.com/mkaryagin/heartbeat/internal/test"
	"github.com/mkaryagin/heartbeat/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	server := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: ":9099"},
		Router: router,
	})

	if server.Addr != ":9099" {
		t.Fatalf("expected addr :9099, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatal("expected router to be the server handler")
	}
}

func TestNewSessionSweeper(t *testing.T) {
	sweeper := newSessionSweeper(sweeperParams{
		Store:  &testhelpers.SessionStoreStub{},
		Config: &config.Config{SessionSweepInterval: 10 * time.Millisecond},
		Logger: discardLogger(),
	})
	if sweeper == nil {
		t.Fatal("expected sweeper instance")
	}

	sweeper.Start(context.Background())
	sweeper.Stop()
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	store := &testhelpers.SessionStoreStub{}
	f := newFacade()

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Sweeper:    worker.NewSessionSweeper(store, 10*time.Millisecond, discardLogger()),
		Facade:     f.facade,
		Config:     &config.Config{AdminUsername: "admin", ShutdownTimeout: time.Second},
	})

	if len(lifecycle.Hooks) != 1 {
		t.Fatalf("expected one lifecycle hook, got %d", len(lifecycle.Hooks))
	}
	hook := lifecycle.Hooks[0]

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}
	if err := hook.OnStop(ctx); err != nil {
		t.Fatalf("on stop returned error: %v", err)
	}
}

func TestRegisterLifecycleSweeperOutlivesStartContext(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	store := &testhelpers.SessionStoreStub{}
	f := newFacade()

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Sweeper:    worker.NewSessionSweeper(store, 5*time.Millisecond, discardLogger()),
		Facade:     f.facade,
		Config:     &config.Config{AdminUsername: "admin", ShutdownTimeout: time.Second},
	})

	hook := lifecycle.Hooks[0]

	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Second)
	if err := hook.OnStart(startCtx); err != nil {
		cancelStart()
		t.Fatalf("on start returned error: %v", err)
	}
	cancelStart()

	time.Sleep(100 * time.Millisecond)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), time.Second)
	defer cancelStop()
	if err := hook.OnStop(stopCtx); err != nil {
		t.Fatalf("on stop returned error: %v", err)
	}

	if store.Swept == 0 {
		t.Fatal("expected sweeps to continue after the start context was cancelled")
	}
}

func TestRegisterLifecycleSeedsAdmin(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	f := newFacade()

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Sweeper:    worker.NewSessionSweeper(&testhelpers.SessionStoreStub{}, time.Minute, discardLogger()),
		Facade:     f.facade,
		Config:     &config.Config{AdminUsername: "admin", AdminPassword: "roots1", ShutdownTimeout: time.Second},
	})

	hook := lifecycle.Hooks[0]
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}
	defer func() {
		if err := hook.OnStop(ctx); err != nil {
			t.Fatalf("on stop returned error: %v", err)
		}
	}()

	admin, err := f.users.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("expected seeded admin, got error: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatal("expected seeded user to be admin")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	lifecycle := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	f := newFacade()

	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "bad addr"},
		Sweeper:    worker.NewSessionSweeper(&testhelpers.SessionStoreStub{}, time.Minute, discardLogger()),
		Facade:     f.facade,
		Config:     &config.Config{AdminUsername: "admin", ShutdownTimeout: time.Second},
	})

	hook := lifecycle.Hooks[0]
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}
	defer func() {
		if err := hook.OnStop(ctx); err != nil {
			t.Fatalf("on stop returned error: %v", err)
		}
	}()

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdowner to be notified about server failure")
	}
}

func TestLifecycleRecorderAppend(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	recorder.Append(fx.Hook{})
	recorder.Append(fx.Hook{})
	if len(recorder.Hooks) != 2 {
		t.Fatalf("expected two recorded hooks, got %d", len(recorder.Hooks))
	}
}
