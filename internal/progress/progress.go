package progress

import (
	"sync"
	"time"

	"github.com/ryanfowler/huh/internal/core"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const frameInterval = 20 * time.Millisecond

// Spinner displays an animated status line to stderr while a long-running
// operation is in flight. When the operation completes, the Stop method must
// be called.
type Spinner struct {
	printer *core.Printer
	message string
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSpinner returns a started Spinner that renders message via p.
func NewSpinner(p *core.Printer, message string) *Spinner {
	s := &Spinner{
		printer: p,
		message: message,
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.renderLoop()
	return s
}

// Stop halts the animation, clears the status line, and restores the cursor.
// It blocks until the render loop has exited.
func (s *Spinner) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *Spinner) renderLoop() {
	defer s.wg.Done()

	p := s.printer
	p.WriteString("\x1b[?25l")
	p.Flush()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var i int
	for {
		select {
		case <-ticker.C:
			p.WriteString("\r")
			p.WriteString(frames[i%len(frames)])
			p.WriteString(" ")
			p.WriteString(s.message)
			p.WriteString("\x1b[K")
			p.Flush()
			i++
		case <-s.done:
			p.WriteString("\r\x1b[K\x1b[?25h")
			p.Flush()
			return
		}
	}
}
