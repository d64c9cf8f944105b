// internal/serial/loopback.go
package serial

import "sync"

// Loopback is an in-memory host channel.
// Inject plays the host sending data; Sent returns what the device wrote.
type Loopback struct {
	mu      sync.Mutex
	rx      []byte
	tx      []byte
	flushes int
}

func NewLoopback() *Loopback { return &Loopback{} }

// Inject queues bytes as if received from the host.
func (l *Loopback) Inject(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rx = append(l.rx, b...)
}

func (l *Loopback) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rx)
}

func (l *Loopback) ReadByte() (byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.rx) == 0 {
		return 0, ErrNoData
	}
	b := l.rx[0]
	l.rx = l.rx[1:]
	return b, nil
}

func (l *Loopback) Write(b []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tx = append(l.tx, b...)
	return len(b), nil
}

func (l *Loopback) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushes++
	return nil
}

// Sent returns a copy of everything written so far.
func (l *Loopback) Sent() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]byte, len(l.tx))
	copy(out, l.tx)
	return out
}

// Flushes reports how many times Flush was called.
func (l *Loopback) Flushes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flushes
}
