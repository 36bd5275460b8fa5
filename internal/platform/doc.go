package platform

// Package platform contains OS integration: the file system used by downloads,
// console handling for child processes, opening folders, default paths and
// parsing of yt-dlp console lines.
