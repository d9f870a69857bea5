package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Failure(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "delete-ticket",
		Duration: 3 * time.Millisecond,
		Err:      errors.New("ticket T-X: not found"),
		Fields:   map[string]any{"ref": "T-X"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "use_case=delete-ticket")
	assert.Contains(t, out, "duration_ms=3")
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, "ref=T-X")
	assert.Contains(t, out, `error="ticket T-X: not found"`)
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	assert.Same(t, obs, useCaseObserverOrNoop([]UseCaseObserver{nil, obs}))
}
