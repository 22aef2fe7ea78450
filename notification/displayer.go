package notification

import (
	"fmt"
	"group-talk/domain"
	"io"
	"sync"

	"github.com/gookit/color"
)

// TerminalDisplayer renders alerts on a terminal.
type TerminalDisplayer struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
}

func NewTerminalDisplayer(out io.Writer, colours bool) *TerminalDisplayer {
	return &TerminalDisplayer{out: out, colours: colours}
}

func (d *TerminalDisplayer) Display(alert domain.Alert) error {
	header := fmt.Sprintf("🔔 [%d] %s", alert.ID, alert.Title)
	if d.colours {
		header = color.New(color.FgYellow, color.OpBold).Render(header)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := fmt.Fprintf(d.out, "%s\n%s\n", header, alert.Body)
	return err
}
