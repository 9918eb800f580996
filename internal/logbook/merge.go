package logbook

import "github.com/bodylab/trainlog/internal/domain"

// Merge returns existing followed by newEntries. Neither input is modified
// and the result never shares a backing array with existing.
func Merge(existing domain.ClientHistory, newEntries []domain.LogEntry) domain.ClientHistory {
	merged := make(domain.ClientHistory, 0, len(existing)+len(newEntries))
	merged = append(merged, existing...)
	merged = append(merged, newEntries...)
	return merged
}
