// Package writegate serializes mutations against the shared dataset.
// The whole system tolerates exactly one in-flight write at a time; a caller
// that cannot take the gate within the wait window is rejected, never queued.
package writegate

import (
	"context"
	"net/http"
	"time"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

const DefaultWait = 10 * time.Second

var ErrBusy = apperror.New(
	apperror.CodeServiceUnavailable,
	"Hệ thống đang bận, vui lòng thử lại sau",
	http.StatusServiceUnavailable,
)

type Gate struct {
	sem  chan struct{}
	wait time.Duration
}

func New(wait time.Duration) *Gate {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Gate{
		sem:  make(chan struct{}, 1),
		wait: wait,
	}
}

// Do runs fn while holding the gate. Returns ErrBusy when the gate cannot be
// taken within the wait window, or the context error when ctx ends first.
func (g *Gate) Do(ctx context.Context, fn func() error) error {
	timer := time.NewTimer(g.wait)
	defer timer.Stop()

	select {
	case g.sem <- struct{}{}:
	case <-timer.C:
		return ErrBusy
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-g.sem }()

	return fn()
}
