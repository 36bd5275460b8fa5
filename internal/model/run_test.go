package model

import (
	"errors"
	"testing"
	"time"
)

func TestOutcome_Message(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		expected string
	}{
		{"succeeded", Succeeded(), "download completed"},
		{"no title", AbortedNoTitle("ERROR: unsupported URL", nil), "aborted: title could not be fetched"},
		{"declined", AbortedDeclined(), "aborted: existing files kept"},
		{"failed with code", Failed(2, "", nil), "download failed with code 2"},
		{"failed with error", Failed(NoExitCode, "", errors.New("permission denied")), "failed: permission denied"},
		{"failed bare", Failed(NoExitCode, "", nil), "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Message(); got != tt.expected {
				t.Errorf("Message() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestOutcome_ExitCodes(t *testing.T) {
	if Succeeded().ExitCode != 0 {
		t.Errorf("Expected exit code 0 for success, got %d", Succeeded().ExitCode)
	}
	if AbortedDeclined().ExitCode != NoExitCode {
		t.Errorf("Expected NoExitCode for declined run, got %d", AbortedDeclined().ExitCode)
	}
	if AbortedNoTitle("", nil).ExitCode != NoExitCode {
		t.Errorf("Expected NoExitCode for title failure, got %d", AbortedNoTitle("", nil).ExitCode)
	}
}

func TestRun_Duration(t *testing.T) {
	run := &Run{}
	if run.Duration() != 0 {
		t.Errorf("Expected zero duration for unstarted run, got %v", run.Duration())
	}

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	run.StartedAt = start
	run.FinishedAt = start.Add(90 * time.Second)
	if run.Duration() != 90*time.Second {
		t.Errorf("Expected 90s, got %v", run.Duration())
	}
}

func TestRun_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"Test Clip", "https://example.com/v/1", "Test Clip"},
		{"", "https://example.com/v/1", "https://example.com/v/1"},
		{"   ", "https://example.com/v/2", "https://example.com/v/2"},
	}

	for _, test := range tests {
		run := &Run{Title: test.title, URL: test.url}
		if got := run.DisplayTitle(); got != test.expected {
			t.Errorf("DisplayTitle() with title=%q url=%q = %q, expected %q", test.title, test.url, got, test.expected)
		}
	}
}
