package ragagent

import (
	"context"
	"errors"
	"time"

	"github.com/rainzero1960/paperscout/pkg/jobs"
)

// ErrAlreadyRunning is returned when the user already has an async run
// in flight.
var ErrAlreadyRunning = errors.New("rag run already in progress for user")

// asyncTimeout bounds a background run that has no request deadline.
const asyncTimeout = 10 * time.Minute

// RunAsync starts the loop in the background and tracks it in the
// registry under the user's id. done receives the outcome; it runs on
// the background goroutine, so it must do its own error handling.
func (a *Agent) RunAsync(registry *jobs.Registry, req Request, done func(*Response, error)) error {
	if !registry.Start(req.UserID, 1) {
		return ErrAlreadyRunning
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		resp, err := a.Run(ctx, req)
		if err != nil {
			registry.Fail(req.UserID, err)
		} else {
			registry.Advance(req.UserID)
		}
		registry.Finish(req.UserID)

		if done != nil {
			done(resp, err)
		}
	}()
	return nil
}
