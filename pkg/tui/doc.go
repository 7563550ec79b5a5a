// Package tui drives a terminal intake session for prior authorization
// claims. A Session walks the operator through every form field, re-prompts
// on validation failures, handles the optional clinical notes attachment,
// and submits through the form controller. Prompt rendering sits behind
// PromptDriver so session logic stays testable without a real terminal.
package tui
