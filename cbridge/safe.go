package cbridge

import (
	"fmt"
	"runtime/debug"
	"time"

	"emperror.dev/errors"
	"github.com/Rican7/retry"
	"github.com/Rican7/retry/backoff"
	"github.com/Rican7/retry/strategy"
)

//Safety provides utility methods to safely invoke methods
type Safety struct{}

//SafeWithRetries safely invokes the function, retrying it up to retries times and recovering from panics
func (s *Safety) SafeWithRetries(funk func() error, retries uint) error {
	action := func(attempt uint) (actionErr error) {
		defer func() {
			if p := recover(); p != nil {
				pncMsg := fmt.Sprintf("%v\n%s", p, debug.Stack())
				actionErr = errors.New(pncMsg)
			}
		}()
		return funk()
	}

	return retry.Retry(action,
		strategy.Limit(retries),
		strategy.Backoff(backoff.Fibonacci(50*time.Millisecond)))
}
