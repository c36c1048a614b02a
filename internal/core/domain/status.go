package domain

import (
	"fmt"
	"strings"
)

// Status is the derived campaign classification. It is recomputed from the
// current snapshot on every evaluation and never stored.
type Status string

const (
	StatusOngoing    Status = "ONGOING"
	StatusSuccessful Status = "SUCCESSFUL"
	StatusFailed     Status = "FAILED"
)

// Selector picks campaigns by status. SelectAll is a filter value only and
// never the status of a real campaign.
type Selector string

const (
	SelectAll        Selector = "ALL"
	SelectOngoing    Selector = Selector(StatusOngoing)
	SelectSuccessful Selector = Selector(StatusSuccessful)
	SelectFailed     Selector = Selector(StatusFailed)
)

// ParseSelector accepts the four selector labels case-insensitively. An empty
// value selects everything.
func ParseSelector(value string) (Selector, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", "ALL":
		return SelectAll, nil
	case "ONGOING":
		return SelectOngoing, nil
	case "SUCCESSFUL":
		return SelectSuccessful, nil
	case "FAILED":
		return SelectFailed, nil
	default:
		return "", fmt.Errorf("unknown status selector %q", value)
	}
}

// Matches reports whether a campaign with status s passes the selector.
func (s Selector) Matches(status Status) bool {
	return s == SelectAll || Status(s) == status
}
