package subtle

import "runtime"

// Wipe sets every byte in x to zero.
//
//go:noinline
func Wipe(x []byte) {
	// noinline keeps the compiler from noticing that x is dead
	// after the call and removing the loop.
	for i := range x {
		x[i] = 0
	}
	runtime.KeepAlive(x)
}
