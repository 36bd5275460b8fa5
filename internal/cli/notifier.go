package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ytget/vdio/internal/download"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// successLine is the last line of a completed download
const successLine = "Download Completed Successfully!"

// TerminalNotifier reports a run on the terminal: log lines go to out,
// errors to errOut, and confirmations are asked with survey when interactive.
type TerminalNotifier struct {
	mu          sync.Mutex
	out         io.Writer
	errOut      io.Writer
	assumeYes   bool
	interactive bool
	styled      bool
	ask         func(message string) (bool, error)
}

var _ download.Notifier = (*TerminalNotifier)(nil)

// NewTerminalNotifier creates a notifier; prompting is enabled only when
// both stdin and stdout are terminals.
func NewTerminalNotifier(out, errOut io.Writer, assumeYes bool) *TerminalNotifier {
	tty := StdioIsTerminal()
	return &TerminalNotifier{
		out:         out,
		errOut:      errOut,
		assumeYes:   assumeYes,
		interactive: tty,
		styled:      tty,
		ask:         askConfirm,
	}
}

// StdioIsTerminal reports whether stdin and stdout are attached to a terminal
func StdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func askConfirm(message string) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{Message: message, Default: false}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (n *TerminalNotifier) Log(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if line == successLine {
		line = n.style(successStyle, line)
	}
	fmt.Fprintln(n.out, line)
}

// Confirm answers yes with --yes, asks on a terminal and declines otherwise
func (n *TerminalNotifier) Confirm(title, message string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintf(n.out, "%s\n%s\n", n.style(headerStyle, title), message)
	switch {
	case n.assumeYes:
		fmt.Fprintln(n.out, "Answering yes (--yes).")
		return true
	case n.interactive:
		ok, err := n.ask("Delete and download again?")
		if err != nil {
			fmt.Fprintf(n.errOut, "Prompt failed: %v\n", err)
			return false
		}
		return ok
	default:
		fmt.Fprintln(n.out, "Not a terminal, keeping existing files. Pass --yes to overwrite.")
		return false
	}
}

func (n *TerminalNotifier) NotifyError(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.errOut, "%s: %s\n", n.style(errorStyle, title), message)
}

// SetBusy is a no-op; the terminal runs one download per process
func (n *TerminalNotifier) SetBusy(bool) {}

func (n *TerminalNotifier) style(style lipgloss.Style, text string) string {
	if !n.styled {
		return text
	}
	return style.Render(text)
}
