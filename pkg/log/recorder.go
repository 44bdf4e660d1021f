package log

import (
	"time"

	"github.com/google/uuid"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Recorder runs the wire codec and reports each call to a Logger.
// It adds no behavior of its own: results and errors are exactly those of
// wire.Encode and wire.Decode.
type Recorder struct {
	logger    Logger
	sessionID string
	now       func() time.Time
}

// NewRecorder returns a Recorder with a fresh session ID.
// A nil logger disables capture.
func NewRecorder(logger Logger) *Recorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Recorder{
		logger:    logger,
		sessionID: uuid.New().String(),
		now:       time.Now,
	}
}

// SessionID returns the ID stamped on every event from this recorder.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Encode encodes m and logs an OUT event.
func (r *Recorder) Encode(m wire.Message) wire.Packet {
	pkt := wire.Encode(m)
	canonical := m.Canonical()
	r.logger.Log(Event{
		Timestamp: r.now(),
		SessionID: r.sessionID,
		Direction: DirectionOut,
		Category:  CategoryMessage,
		Packet:    pkt.Bytes(),
		Message:   &canonical,
	})
	return pkt
}

// Decode decodes data and logs an IN event, including failures.
func (r *Recorder) Decode(data []byte) (wire.Message, error) {
	msg, err := wire.Decode(data)

	event := Event{
		Timestamp: r.now(),
		SessionID: r.sessionID,
		Direction: DirectionIn,
		Packet:    append([]byte(nil), data...),
	}
	if err != nil {
		event.Category = CategoryError
		event.Error = NewErrorEventData(err)
	} else {
		event.Category = CategoryMessage
		event.Message = &msg
		event.PayloadIgnored = msg.PayloadIgnored()
	}
	r.logger.Log(event)

	return msg, err
}
