package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/networth/view"
)

// Terminal streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// printMarkdown renders md on stdout. The raw markdown is printed when it
// cannot be rendered.
func printMarkdown(md string) {
	fmt.Fprint(stdout, renderMarkdown(md))
}

func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

var levelStyles = map[view.Level]lipgloss.Style{
	view.LevelSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	view.LevelWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	view.LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
}

// outputMu serializes the writes of notifications and log records, which
// come from concurrent refreshes.
var outputMu sync.Mutex

// lockedWriter writes to w under outputMu.
type lockedWriter struct {
	w io.Writer
}

func (l lockedWriter) Write(p []byte) (int, error) {
	outputMu.Lock()
	defer outputMu.Unlock()
	return l.w.Write(p)
}

// terminal notifies on w, one line per message. It is safe for concurrent use.
type terminal struct {
	w lockedWriter
}

func newTerminal(w io.Writer) terminal { return terminal{w: lockedWriter{w}} }

func (t terminal) Notify(level view.Level, message string) {
	label := levelStyles[level].Render(level.String() + ":")
	fmt.Fprintln(t.w, label+" "+message)
}

// prompter asks for confirmations on a terminal. Only "y" and "yes" confirm.
type prompter struct {
	w io.Writer
	r *bufio.Reader
}

func newPrompter(w io.Writer, r io.Reader) *prompter {
	return &prompter{w: w, r: bufio.NewReader(r)}
}

func (p *prompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.w, "%s [y/N] ", prompt)
	answer, err := p.r.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(p.w)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
