package jiramsg

import (
	"errors"
	"fmt"
	"strings"
)

var errEmptyMessage = errors.New("Commit message is empty.")

// lazySummaryError reports a placeholder summary such as "fix" or "wip".
func lazySummaryError(firstLine string) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Lazy commit summary rejected: '%s'\n", firstLine))
	sb.WriteString("  Summaries like 'fix', 'work', or '...' are not allowed.\n")
	sb.WriteString("  Write a meaningful description of the change.")

	return errors.New(sb.String())
}

// missingTicketError reports a first line that does not carry a DSO ticket
// reference, with the required format and a worked example.
func missingTicketError(firstLine string) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Commit rejected: '%s'\n", firstLine))
	sb.WriteString("  Every commit must reference a Jira ticket from the DSO project.\n")
	sb.WriteString("  Required format: DSO-<number>: <Capitalized summary>\n")
	sb.WriteString("  Example:         DSO-42: Implement rate limiter with 20% jitter")

	return errors.New(sb.String())
}
