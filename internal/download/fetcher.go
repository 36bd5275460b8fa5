package download

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ytget/vdio/internal/platform"
)

// yt-dlp invocation constants
const (
	DefaultExecutable = "yt-dlp"
	GetTitleFlag      = "--get-title"
	NoWarningsFlag    = "--no-warnings"
	OutputFlag        = "-o"
)

// Scanner buffer limits for process output
const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 1024 * 1024
)

// ProcessFetcher runs the yt-dlp executable as a child process
type ProcessFetcher struct {
	executable string
	baseArgs   []string // prepended to every invocation
	env        []string // added to the inherited environment
}

// NewProcessFetcher creates a fetcher for the given executable name or path
func NewProcessFetcher(executable string) *ProcessFetcher {
	if strings.TrimSpace(executable) == "" {
		executable = DefaultExecutable
	}
	return &ProcessFetcher{executable: executable}
}

// Executable returns the configured executable
func (f *ProcessFetcher) Executable() string {
	return f.executable
}

// LookPath resolves the executable, failing if it is not installed
func (f *ProcessFetcher) LookPath() (string, error) {
	path, err := exec.LookPath(f.executable)
	if err != nil {
		return "", fmt.Errorf("%s is not installed or not in PATH: %w", f.executable, err)
	}
	return path, nil
}

// Title runs the fetcher in title-only mode
func (f *ProcessFetcher) Title(ctx context.Context, url string) (string, error) {
	cmd := f.command(ctx, GetTitleFlag, url, NoWarningsFlag)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	errText := strings.TrimSpace(decodeOutput(stderr.Bytes()))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &RunError{
				Kind:     KindTitleFetchFailed,
				ExitCode: exitErr.ExitCode(),
				Output:   errText,
				Err:      err,
			}
		}
		return "", fmt.Errorf("failed to run %s: %w", f.executable, err)
	}

	title := firstLine(decodeOutput(stdout.Bytes()))
	if title == "" {
		return "", &RunError{
			Kind:   KindTitleFetchFailed,
			Output: errText,
			Err:    errors.New("fetcher returned an empty title"),
		}
	}
	return title, nil
}

// Download starts the fetcher in download mode with stdout and stderr merged
func (f *ProcessFetcher) Download(ctx context.Context, url, outputTemplate string) (LineStream, error) {
	cmd := f.command(ctx, url, OutputFlag, outputTemplate)

	// One pipe for both streams keeps the order the process wrote them in
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create output pipe: %w", err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return nil, fmt.Errorf("failed to start %s: %w", f.executable, err)
	}
	// The child holds its own copy of the write end
	pw.Close()

	scanner := bufio.NewScanner(transform.NewReader(pr, unicode.UTF8.NewDecoder()))
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)
	scanner.Split(ScanOutputLines)

	return &processStream{cmd: cmd, pipe: pr, scanner: scanner}, nil
}

func (f *ProcessFetcher) command(ctx context.Context, args ...string) *exec.Cmd {
	full := make([]string, 0, len(f.baseArgs)+len(args))
	full = append(full, f.baseArgs...)
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, f.executable, full...)
	if len(f.env) > 0 {
		cmd.Env = append(os.Environ(), f.env...)
	}
	platform.HideConsoleWindow(cmd)
	return cmd
}

// processStream yields the merged output lines of a running download
type processStream struct {
	cmd     *exec.Cmd
	pipe    *os.File
	scanner *bufio.Scanner
	line    string
}

func (s *processStream) Scan() bool {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		s.line = line
		return true
	}
	return false
}

func (s *processStream) Text() string {
	return s.line
}

func (s *processStream) Wait() (int, error) {
	scanErr := s.scanner.Err()
	if scanErr != nil {
		// Keep the child from blocking on a full pipe
		io.Copy(io.Discard, s.pipe)
	}

	err := s.cmd.Wait()
	s.pipe.Close()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), scanErr
		}
		return -1, err
	}
	if scanErr != nil {
		return 0, fmt.Errorf("failed to read process output: %w", scanErr)
	}
	return 0, nil
}

// ScanOutputLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a
// bare "\r", so carriage-return progress redraws become separate lines.
func ScanOutputLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A '\n' may follow in the next read
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// decodeOutput decodes process output as UTF-8, replacing invalid bytes
func decodeOutput(b []byte) string {
	decoded, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(decoded)
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
