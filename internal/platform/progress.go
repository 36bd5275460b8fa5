package platform

import (
	"regexp"
	"strconv"
	"strings"
)

// DownloadLinePrefix starts every yt-dlp download status line
const DownloadLinePrefix = "[download]"

// Progress is the state reported by one yt-dlp progress line
type Progress struct {
	Percent float64 // 0-100
	Size    string  // total size as printed, e.g. "10.00MiB"
	Speed   string  // e.g. "1.23MiB/s", empty when unknown
	ETA     string  // e.g. "00:07", empty when unknown
}

var (
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
	sizePattern    = regexp.MustCompile(`of\s+~?\s*(\S+)`)
	speedPattern   = regexp.MustCompile(`at\s+(\S+/s)`)
	etaPattern     = regexp.MustCompile(`ETA\s+(\S+)`)
)

// ParseProgressLine extracts progress from a yt-dlp "[download]" line.
// It returns false for any other line.
func ParseProgressLine(line string) (Progress, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, DownloadLinePrefix) {
		return Progress{}, false
	}

	m := percentPattern.FindStringSubmatch(line)
	if m == nil {
		return Progress{}, false
	}
	percent, err := strconv.ParseFloat(m[1], 64)
	if err != nil || percent > 100 {
		return Progress{}, false
	}

	p := Progress{Percent: percent}
	if m := sizePattern.FindStringSubmatch(line); m != nil {
		p.Size = m[1]
	}
	if m := speedPattern.FindStringSubmatch(line); m != nil && !strings.HasPrefix(m[1], "Unknown") {
		p.Speed = m[1]
	}
	if m := etaPattern.FindStringSubmatch(line); m != nil && m[1] != "Unknown" {
		p.ETA = m[1]
	}
	return p, true
}

// Fraction returns the progress as a value between 0 and 1
func (p Progress) Fraction() float64 {
	return p.Percent / 100
}

// Summary joins the known size, speed and ETA for display next to a progress
// bar, e.g. "10.00MiB | 1.23MiB/s | ETA 00:07"
func (p Progress) Summary() string {
	parts := make([]string, 0, 3)
	if p.Size != "" {
		parts = append(parts, p.Size)
	}
	if p.Speed != "" {
		parts = append(parts, p.Speed)
	}
	if p.ETA != "" {
		parts = append(parts, "ETA "+p.ETA)
	}
	return strings.Join(parts, " | ")
}
