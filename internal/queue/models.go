package queue

import "time"

// Status represents the lifecycle of a queue item.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConverting Status = "converting"
	StatusConverted  Status = "converted"
	StatusFailed     Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusConverting,
	StatusConverted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// ValidStatus reports whether value names a known lifecycle status.
func ValidStatus(value Status) bool {
	_, ok := statusSet[value]
	return ok
}

// Item represents a capture file tracked in the conversion queue.
type Item struct {
	ID           int64
	SourcePath   string
	Brand        string
	Model        string
	Status       Status
	OutputPath   string
	ButtonCount  int
	Attempts     int
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HealthSummary describes aggregated queue counts per lifecycle state.
type HealthSummary struct {
	Total      int
	Pending    int
	Converting int
	Converted  int
	Failed     int
}
