// Package xtest holds small test helpers shared across this module's test
// files, in the spirit of the teacher's own internal/test package.
package xtest

import (
    "testing"
    "time"
)

// Completes runs f in a goroutine and fails the test via t.Errorf if it has
// not returned within duration. Useful for the larger boundary scenarios
// (e.g. the full transformation monoid T7, which enumerates 823543 elements)
// where a regression could turn a fast deterministic computation into a
// runaway one.
func Completes(t *testing.T, duration time.Duration, f func(), args ...interface{}) {
    done := make(chan struct{}, 1)
    timeout := time.After(duration)
    go func() {
        f()
        done <- struct{}{}
    }()

    select {
    case <-done:
    case <-timeout:
        if len(args) > 0 {
            t.Errorf("test timed out after "+duration.String()+": "+args[0].(string), args[1:]...)
        } else {
            t.Errorf("test timed out after %s", duration.String())
        }
    }
}
