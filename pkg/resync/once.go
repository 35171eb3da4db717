package resync

import "sync"

// Once is like sync.Once but can be reset, mainly so that tests can reload singletons.
type Once struct {
	m    sync.Mutex
	done bool
}

// Do calls f if and only if Do has not been invoked since the last Reset.
func (o *Once) Do(f func()) {
	o.m.Lock()
	defer o.m.Unlock()
	if o.done {
		return
	}
	defer func() { o.done = true }()
	f()
}

// Reset makes the next call to Do invoke its function again.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	o.done = false
}
