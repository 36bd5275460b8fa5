package download

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

const helperEnv = "VDIO_WANT_HELPER_PROCESS"

// newHelperFetcher returns a fetcher that re-runs the test binary as a fake yt-dlp
func newHelperFetcher() *ProcessFetcher {
	return &ProcessFetcher{
		executable: os.Args[0],
		baseArgs:   []string{"-test.run=TestHelperProcess", "--"},
		env:        []string{helperEnv + "=1"},
	}
}

// TestHelperProcess is not a real test; it emulates yt-dlp for the tests below.
// The URL selects the behavior.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	defer os.Exit(0)

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no arguments")
		os.Exit(2)
	}
	args = args[1:]

	if len(args) == 3 && args[0] == GetTitleFlag && args[2] == NoWarningsFlag {
		switch args[1] {
		case "https://example.com/ok":
			fmt.Print("\n  Test Clip  \nsecond line\n")
		case "https://example.com/unicode":
			fmt.Println("Клип: \"quoted\" / slashed?")
		case "https://example.com/empty":
			fmt.Print("\n  \n")
		case "https://example.com/bad-bytes":
			os.Stdout.Write([]byte("Bad \xff Title\n"))
		default:
			fmt.Fprintln(os.Stderr, "ERROR: Unsupported URL: "+args[1])
			os.Exit(1)
		}
		return
	}

	if len(args) == 3 && args[1] == OutputFlag {
		switch args[0] {
		case "https://example.com/ok":
			fmt.Println("[youtube] ok: Downloading webpage")
			fmt.Fprintln(os.Stderr, "WARNING: something on stderr")
			fmt.Print("[download]  10.0% of 1.00MiB\r[download]  50.0% of 1.00MiB\r\n")
			fmt.Println("[download] Destination: " + args[2])
		case "https://example.com/bad-bytes":
			os.Stdout.Write([]byte("caf\xe9\n"))
		default:
			fmt.Println("[youtube] fail: Downloading webpage")
			fmt.Fprintln(os.Stderr, "ERROR: Video unavailable")
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "unexpected arguments: %q\n", args)
	os.Exit(2)
}

func TestProcessFetcher_Title(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "first non-empty line trimmed", url: "https://example.com/ok", want: "Test Clip"},
		{name: "unicode preserved", url: "https://example.com/unicode", want: "Клип: \"quoted\" / slashed?"},
		{name: "invalid bytes replaced", url: "https://example.com/bad-bytes", want: "Bad � Title"},
		{name: "empty output", url: "https://example.com/empty", wantErr: true},
		{name: "non-zero exit", url: "https://example.com/missing", wantErr: true},
	}

	f := newHelperFetcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Title(context.Background(), tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got title %q", got)
				}
				if KindOf(err) != KindTitleFetchFailed {
					t.Errorf("Expected kind %s, got %s", KindTitleFetchFailed, KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessFetcher_TitleFailureCarriesStderr(t *testing.T) {
	_, err := newHelperFetcher().Title(context.Background(), "https://example.com/missing")

	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("Expected *RunError, got %T", err)
	}
	if runErr.ExitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", runErr.ExitCode)
	}
	if !strings.Contains(runErr.Output, "Unsupported URL") {
		t.Errorf("Expected stderr in output, got %q", runErr.Output)
	}
}

func TestProcessFetcher_MissingExecutable(t *testing.T) {
	f := NewProcessFetcher("vdio-no-such-executable")

	if _, err := f.LookPath(); err == nil {
		t.Error("Expected LookPath error for missing executable")
	}

	_, err := f.Title(context.Background(), "https://example.com/ok")
	if err == nil {
		t.Fatal("Expected error for missing executable")
	}
	if KindOf(err) != KindUnexpectedFailure {
		t.Errorf("Expected kind %s, got %s", KindUnexpectedFailure, KindOf(err))
	}

	if _, err := f.Download(context.Background(), "https://example.com/ok", "out"); err == nil {
		t.Error("Expected Download error for missing executable")
	}
}

func TestNewProcessFetcher_Default(t *testing.T) {
	if got := NewProcessFetcher("  ").Executable(); got != DefaultExecutable {
		t.Errorf("Expected %q, got %q", DefaultExecutable, got)
	}
	if got := NewProcessFetcher("/opt/yt-dlp").Executable(); got != "/opt/yt-dlp" {
		t.Errorf("Expected custom executable, got %q", got)
	}
}

func collectLines(t *testing.T, stream LineStream) []string {
	t.Helper()
	var lines []string
	for stream.Scan() {
		lines = append(lines, stream.Text())
	}
	return lines
}

func TestProcessFetcher_DownloadSuccess(t *testing.T) {
	template := OutputPath(t.TempDir())
	stream, err := newHelperFetcher().Download(context.Background(), "https://example.com/ok", template)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	lines := collectLines(t, stream)
	code, err := stream.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}

	want := []string{
		"[youtube] ok: Downloading webpage",
		"WARNING: something on stderr",
		"[download]  10.0% of 1.00MiB",
		"[download]  50.0% of 1.00MiB",
		"[download] Destination: " + template,
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestProcessFetcher_DownloadFailure(t *testing.T) {
	stream, err := newHelperFetcher().Download(context.Background(), "https://example.com/fail", "out")
	if err != nil {
		t.Fatalf("Download failed to start: %v", err)
	}

	lines := collectLines(t, stream)
	code, err := stream.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if len(lines) != 2 || lines[1] != "ERROR: Video unavailable" {
		t.Errorf("Unexpected lines: %q", lines)
	}
}

func TestProcessFetcher_DownloadInvalidUTF8(t *testing.T) {
	stream, err := newHelperFetcher().Download(context.Background(), "https://example.com/bad-bytes", "out")
	if err != nil {
		t.Fatalf("Download failed to start: %v", err)
	}

	lines := collectLines(t, stream)
	if _, err := stream.Wait(); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if len(lines) != 1 || lines[0] != "caf�" {
		t.Errorf("Expected replacement character, got %q", lines)
	}
}

func TestScanOutputLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"newlines", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare carriage return", "10%\r20%\r30%\n", []string{"10%", "20%", "30%"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing carriage return", "a\r", []string{"a"}},
		{"empty lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := bufio.NewScanner(strings.NewReader(tt.input))
			scanner.Split(ScanOutputLines)

			var got []string
			for scanner.Scan() {
				got = append(got, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				t.Fatalf("Scan error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %q, got %q", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
