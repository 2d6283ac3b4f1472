//go:build !unix

package backend

// notifyResize never fires: there is no resize signal to listen for.
func notifyResize(chan<- struct{}) (stop func()) {
	return func() {}
}
