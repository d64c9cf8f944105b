// internal/serial/port.go
package serial

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	gserial "github.com/goburrow/serial"
)

// rxLimit bounds the receive buffer; bytes beyond it are dropped.
const rxLimit = 4096

// ErrNoData is returned by ReadByte when nothing is buffered.
var ErrNoData = errors.New("serial: no data available")

// Config is minimal line config.
type Config struct {
	Address  string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
	Timeout  time.Duration
}

// Port is a host channel over a byte stream.
// A background reader buffers incoming bytes so Available can report them
// without blocking.
type Port struct {
	rwc io.ReadWriteCloser

	mu      sync.Mutex
	rx      []byte
	dropped int
	err     error
	closed  bool

	done chan struct{}
}

// Open opens a serial device.
func Open(cfg Config) (*Port, error) {
	if cfg.Address == "" {
		return nil, errors.New("serial: address required")
	}

	p, err := gserial.Open(&gserial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Address, err)
	}

	return NewPort(p), nil
}

// NewPort starts buffering reads from rwc.
func NewPort(rwc io.ReadWriteCloser) *Port {
	p := &Port{
		rwc:  rwc,
		done: make(chan struct{}),
	}
	go p.pump()
	return p
}

func (p *Port) pump() {
	defer close(p.done)

	buf := make([]byte, 64)
	for {
		n, err := p.rwc.Read(buf)
		if n > 0 {
			p.mu.Lock()
			room := rxLimit - len(p.rx)
			if room < n {
				p.dropped += n - room
				n = room
			}
			p.rx = append(p.rx, buf[:n]...)
			p.mu.Unlock()
		}
		if err != nil {
			// read timeouts only mean the line was idle
			if errors.Is(err, gserial.ErrTimeout) {
				continue
			}
			p.mu.Lock()
			if !p.closed {
				p.err = err
			}
			p.mu.Unlock()
			return
		}
	}
}

// Available returns the number of buffered bytes.
func (p *Port) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.rx)
}

// ReadByte pops one buffered byte.
func (p *Port) ReadByte() (byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.rx) == 0 {
		if p.err != nil {
			return 0, p.err
		}
		return 0, ErrNoData
	}
	b := p.rx[0]
	p.rx = p.rx[1:]
	return b, nil
}

// Write blocks until p is handed to the device.
func (p *Port) Write(b []byte) (int, error) {
	return p.rwc.Write(b)
}

// Flush waits for outgoing data when the device supports it.
// Writes on a serial device are already synchronous.
func (p *Port) Flush() error {
	if f, ok := p.rwc.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Dropped reports bytes lost to a full receive buffer.
func (p *Port) Dropped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// Close closes the device and waits for the reader to stop.
func (p *Port) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	err := p.rwc.Close()
	<-p.done
	return err
}
