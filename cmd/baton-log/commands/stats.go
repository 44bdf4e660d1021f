package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/baton-protocol/baton-go/pkg/log"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Stats holds aggregate statistics about a capture file.
type Stats struct {
	TotalEvents       int
	EventsByDirection map[log.Direction]int
	EventsByCategory  map[log.Category]int
	MessagesByKind    map[wire.MessageKind]int
	MessagesByTarget  map[wire.TargetGroup]int
	ErrorsByKind      map[log.ErrorKind]int
	IgnoredPayloads   int
	Sessions          map[string]*SessionStats

	// Tempo range over SetTempo messages; valid when TempoCount > 0.
	TempoCount int
	TempoMin   uint16
	TempoMax   uint16

	TimeRange struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single recorder session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Encoded   int
	Decoded   int
	Errors    int
}

func newStats() *Stats {
	return &Stats{
		EventsByDirection: make(map[log.Direction]int),
		EventsByCategory:  make(map[log.Category]int),
		MessagesByKind:    make(map[wire.MessageKind]int),
		MessagesByTarget:  make(map[wire.TargetGroup]int),
		ErrorsByKind:      make(map[log.ErrorKind]int),
		Sessions:          make(map[string]*SessionStats),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByDirection[event.Direction]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}
	if event.Direction == log.DirectionOut {
		sess.Encoded++
	} else {
		sess.Decoded++
	}

	if m := event.Message; m != nil {
		s.MessagesByKind[m.Kind]++
		s.MessagesByTarget[m.Target]++
		if bpm, ok := m.Tempo(); ok {
			if s.TempoCount == 0 || bpm < s.TempoMin {
				s.TempoMin = bpm
			}
			if s.TempoCount == 0 || bpm > s.TempoMax {
				s.TempoMax = bpm
			}
			s.TempoCount++
		}
	}
	if event.PayloadIgnored {
		s.IgnoredPayloads++
	}
	if event.Error != nil {
		s.ErrorsByKind[event.Error.Kind]++
		sess.Errors++
	}
}

// RunStats analyzes the capture file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Baton Capture Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Messages by Kind:")
	for _, kind := range wire.MessageKinds() {
		if count := stats.MessagesByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Messages by Target:")
	for _, target := range wire.TargetGroups() {
		if count := stats.MessagesByTarget[target]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", target.String()+":", count)
		}
	}

	if stats.TempoCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Tempo: %d-%d BPM over %d messages\n", stats.TempoMin, stats.TempoMax, stats.TempoCount)
	}
	if stats.IgnoredPayloads > 0 {
		fmt.Fprintf(w, "Ignored Payloads: %d\n", stats.IgnoredPayloads)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events (%d out, %d in), duration %s\n",
				shortenSessionID(s.id), s.stats.Events, s.stats.Encoded, s.stats.Decoded, duration)
			if s.stats.Errors > 0 {
				fmt.Fprintf(w, "             Errors: %d\n", s.stats.Errors)
			}
		}
	}

	if errs := stats.EventsByCategory[log.CategoryError]; errs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", errs)
		for _, kind := range []log.ErrorKind{log.ErrorKindShape, log.ErrorKindFieldCode, log.ErrorKindOther} {
			if count := stats.ErrorsByKind[kind]; count > 0 {
				fmt.Fprintf(w, "  %-20s %d\n", kind.String()+":", count)
			}
		}
	}
}
