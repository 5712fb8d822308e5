package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks appended during registration so tests can
// invoke OnStart and OnStop directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without running it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub counts shutdown requests and optionally signals a channel.
type ShutdownerStub struct {
	Called chan struct{}
	Count  int
}

// Shutdown records the invocation. The channel send never blocks.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	s.Count++
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
