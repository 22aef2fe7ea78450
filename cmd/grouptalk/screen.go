package main

import (
	"fmt"
	"group-talk/domain"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const clockLayout = "15:04:05"

// Screen prints the chat as snapshots come in. Each message is printed once.
type Screen struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	me      string
	shown   map[uuid.UUID]struct{}
}

func NewScreen(out io.Writer, colours bool, me string) *Screen {
	return &Screen{out: out, colours: colours, me: me, shown: make(map[uuid.UUID]struct{})}
}

func (s *Screen) Apply(view domain.FeedView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range view.Messages {
		if _, ok := s.shown[m.ID]; ok {
			continue
		}
		s.shown[m.ID] = struct{}{}
		if _, err := fmt.Fprintln(s.out, s.line(m)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Screen) line(m domain.Message) string {
	sender := m.Sender
	if s.colours {
		if sender == s.me {
			sender = color.FgGreen.Render(sender)
		} else {
			sender = color.FgCyan.Render(sender)
		}
	}
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp.Local().Format(clockLayout), sender, m.Content)
}

func (s *Screen) Print(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.out, format+"\n", args...)
}

// Table prints messages as a table, for /history and /search.
func (s *Screen) Table(messages []domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Time", "Sender", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, m := range messages {
		table.Append([]string{m.Timestamp.Local().Format("2006-01-02 " + clockLayout), m.Sender, m.Content})
	}
	table.Render()
}
