package jiramsg

import (
	"regexp"
	"strings"
)

// ticketPattern matches the required shape of a commit title: a DSO Jira
// ticket reference followed by a capitalized summary. The project prefix is
// deliberately fixed and case-sensitive.
var ticketPattern = regexp.MustCompile(`^DSO-[0-9]+: [A-Z].*$`)

// lazySummaries are placeholder summaries that are rejected even when a
// ticket reference is present. Membership is checked after lowercasing and
// stripping trailing periods.
var lazySummaries = map[string]struct{}{
	"fix":     {},
	"fix.":    {},
	"work":    {},
	"wip":     {},
	"...":     {},
	"update":  {},
	"changes": {},
	"stuff":   {},
	"test":    {},
	"done":    {},
}

// Validate checks a commit message against the DSO ticket convention.
// Only the first line is evaluated; the body is ignored. It returns nil for
// a valid message and a user-facing error describing the rejection otherwise.
func Validate(message string) error {
	// Normalize line endings
	message = strings.ReplaceAll(message, "\r\n", "\n")

	trimmed := strings.TrimSpace(message)

	var firstLine string
	if trimmed != "" {
		firstLine, _, _ = strings.Cut(trimmed, "\n")
	}

	if firstLine == "" {
		return errEmptyMessage
	}

	// The lazy-summary check runs before the pattern check and uses whatever
	// text follows the first ": " (or the whole line if there is none).
	summary := firstLine

	_, after, found := strings.Cut(firstLine, ": ")
	if found {
		summary = after
	}

	summary = strings.TrimRight(strings.ToLower(strings.TrimSpace(summary)), ".")

	_, lazy := lazySummaries[summary]
	if lazy {
		return lazySummaryError(firstLine)
	}

	if !ticketPattern.MatchString(firstLine) {
		return missingTicketError(firstLine)
	}

	return nil
}
