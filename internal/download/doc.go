package download

// Package download implements the download orchestration sequence built on
// top of the yt-dlp executable: title resolution, per-title folder and
// duplicate handling, and the streamed download itself. Front-ends supply a
// Notifier and receive log lines, confirmations and terminal status through it.
