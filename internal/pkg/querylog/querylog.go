// Package querylog holds the process-wide log of chatbot query strings.
//
// The log is created once at bootstrap and injected into the handlers that
// need it. It is unbounded, append-only and lives only for the lifetime of
// the process. Appends from concurrent requests are not ordered relative to
// reads: a snapshot taken while another request is appending may or may not
// include that entry. The internal mutex only keeps the slice mutation
// memory-safe; it promises no atomicity across an exchange.
package querylog

import (
	"sort"
	"sync"
)

// QueryCount pairs a distinct query string with its occurrence count.
type QueryCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Log is an in-memory append-only query log.
type Log struct {
	mu      sync.Mutex
	entries []string
}

// New creates an empty query log.
func New() *Log {
	return &Log{}
}

// Append records one query string.
func (l *Log) Append(query string) {
	l.mu.Lock()
	l.entries = append(l.entries, query)
	l.mu.Unlock()
}

// Len returns the number of recorded queries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Top returns the n most frequent distinct query strings paired with their
// occurrence counts, ordered by descending count. Ties are broken by
// first-seen order among equally-frequent strings. Returns an empty slice
// for an empty log.
func (l *Log) Top(n int) []QueryCount {
	l.mu.Lock()
	entries := make([]string, len(l.entries))
	copy(entries, l.entries)
	l.mu.Unlock()

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, q := range entries {
		if _, ok := counts[q]; !ok {
			firstSeen[q] = i
		}
		counts[q]++
	}

	result := make([]QueryCount, 0, len(counts))
	for q, c := range counts {
		result = append(result, QueryCount{Text: q, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return firstSeen[result[i].Text] < firstSeen[result[j].Text]
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}
