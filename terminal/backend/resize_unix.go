//go:build unix

package backend

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize forwards SIGWINCH to ch without ever blocking; resizes that
// arrive while one is pending are merged.
func notifyResize(ch chan<- struct{}) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, unix.SIGWINCH)

	go func() {
		for {
			select {
			case <-sigs:
				select {
				case ch <- struct{}{}:
				default:
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
