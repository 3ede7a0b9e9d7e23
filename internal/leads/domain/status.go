// Package domain provides core business rules for the leads bounded context.
package domain

import "strings"

// EngagementStatus classifies a lead's responsiveness. It is set by the
// external chat classifier; this core only reads and branches on it.
type EngagementStatus string

const (
	StatusNotResponded EngagementStatus = "not_responded"
	StatusHot          EngagementStatus = "hot"
	StatusWarm         EngagementStatus = "warm"
	StatusCold         EngagementStatus = "cold"
)

// ParseEngagementStatus accepts both canonical values and the display forms
// the classifier emits ("Hot", "Not Responded").
func ParseEngagementStatus(value string) (EngagementStatus, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	switch EngagementStatus(normalized) {
	case StatusNotResponded, StatusHot, StatusWarm, StatusCold:
		return EngagementStatus(normalized), true
	}
	return "", false
}

// Label returns the display form used in reports.
func (s EngagementStatus) Label() string {
	switch s {
	case StatusNotResponded:
		return "Not Responded"
	case StatusHot:
		return "Hot"
	case StatusWarm:
		return "Warm"
	case StatusCold:
		return "Cold"
	}
	return string(s)
}

// Engaged reports whether the lead has responded at all.
func (s EngagementStatus) Engaged() bool {
	return s == StatusHot || s == StatusWarm || s == StatusCold
}
