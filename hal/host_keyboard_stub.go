//go:build !tinygo && !cgo

package hal

// Without the window backend there is no key source to poll.
func (k *hostKeyboard) poll() {}
