package model

// Channel is an independent content namespace. Titles and scripts never
// cross channel boundaries.
type Channel struct {
	Name   string `json:"name" yaml:"name"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

// RejectedTitle pairs a rejected candidate title with the reason it was
// rejected: either a diversity-cap explanation or the existing title it
// was judged similar to.
type RejectedTitle struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ScriptResult is the outcome of generating a single script for a channel.
type ScriptResult struct {
	Script   string          `json:"script"`              // Full generated script text
	Accepted []string        `json:"accepted"`            // Titles accepted and persisted
	Rejected []RejectedTitle `json:"rejected,omitempty"`  // Titles filtered out as duplicates
	Model    string          `json:"model,omitempty"`     // Model that generated the script
	Tokens   int             `json:"tokens,omitempty"`    // Total tokens consumed
}
