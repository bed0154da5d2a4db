// Package domain contains core business types for the task board.
package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Task represents a work item on the board
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Effort      int       `json:"effort"` // person-days
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Status represents which list a task belongs to
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses lists every status in board order
var Statuses = []Status{StatusActive, StatusFinished}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// Title returns the list header for this status
func (s Status) Title() string {
	switch s {
	case StatusActive:
		return "Active Projects"
	case StatusFinished:
		return "Finished Projects"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

// ParseStatus converts a string into a Status
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalid, s)
	}
	return status, nil
}

// DaysPerMonth is the effort threshold at which display switches to months
const DaysPerMonth = 20

// EffortUnits holds the labels used when displaying effort
type EffortUnits struct {
	Day   string `json:"dayUnit" yaml:"dayUnit"`
	Month string `json:"monthUnit" yaml:"monthUnit"`
}

// DefaultEffortUnits returns the English unit labels
func DefaultEffortUnits() EffortUnits {
	return EffortUnits{Day: "person-days", Month: "person-months"}
}

// Format renders effort as person-days below DaysPerMonth, otherwise as
// person-months using exact decimal division.
func (u EffortUnits) Format(effort int) string {
	if effort < DaysPerMonth {
		return strconv.Itoa(effort) + " " + u.Day
	}
	months := float64(effort) / DaysPerMonth
	return strconv.FormatFloat(months, 'f', -1, 64) + " " + u.Month
}

// FormatEffort renders effort with the default units
func FormatEffort(effort int) string {
	return DefaultEffortUnits().Format(effort)
}
