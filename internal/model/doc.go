package model

// Package model defines the data passed between the orchestrator and its
// front-ends: download requests, run records and terminal outcomes.
