package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/baton-protocol/baton-go/pkg/log"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

func createTestCapture(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.blog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test capture: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func msgPtr(m wire.Message) *wire.Message { return &m }

func u8(v uint8) *uint8 { return &v }

func intPtr(v int) *int { return &v }

var baseTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

// sessionEvents mimics a short recorder session: two encodes, a clean
// decode with an ignored payload and two rejected decodes.
func sessionEvents() []log.Event {
	const sess = "abc12345-6789-0123-4567-890abcdef012"
	return []log.Event{
		{
			Timestamp: baseTime, SessionID: sess, Direction: log.DirectionOut, Category: log.CategoryMessage,
			Packet:  []byte{0x4A, 0x00, 0x78},
			Message: msgPtr(wire.NewSetTempo(wire.ConductorC2, wire.TargetPercussion, 120)),
		},
		{
			Timestamp: baseTime.Add(time.Second), SessionID: sess, Direction: log.DirectionOut, Category: log.CategoryMessage,
			Packet:  []byte{0x43, 0x00, 0x5A},
			Message: msgPtr(wire.NewSetTempo(wire.ConductorC1, wire.TargetBrass, 90)),
		},
		{
			Timestamp: baseTime.Add(2 * time.Second), SessionID: sess, Direction: log.DirectionIn, Category: log.CategoryMessage,
			Packet:         []byte{0x98, 0x03, 0xE7},
			Message:        msgPtr(wire.Message{Kind: wire.KindStop, Conductor: wire.ConductorC4, Target: wire.TargetAll, Payload: 999}),
			PayloadIgnored: true,
		},
		{
			Timestamp: baseTime.Add(3 * time.Second), SessionID: sess, Direction: log.DirectionIn, Category: log.CategoryError,
			Packet: []byte{0xE3, 0x00, 0x3C},
			Error: &log.ErrorEventData{Kind: log.ErrorKindFieldCode, Message: "wire: unknown kind code 111 (7)",
				Field: "kind", Code: u8(7)},
		},
		{
			Timestamp: baseTime.Add(4 * time.Second), SessionID: sess, Direction: log.DirectionIn, Category: log.CategoryError,
			Packet: []byte{0x4A, 0x00},
			Error: &log.ErrorEventData{Kind: log.ErrorKindShape, Message: "wire: packet must be exactly 3 bytes, got 2",
				Length: intPtr(2)},
		},
	}
}
