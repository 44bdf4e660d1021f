package log

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

func TestRecorderSessionIDIsUUID(t *testing.T) {
	rec := NewRecorder(nil)
	_, err := uuid.Parse(rec.SessionID())
	assert.NoError(t, err)
	assert.NotEqual(t, rec.SessionID(), NewRecorder(nil).SessionID())
}

func TestRecorderEncodeLogsOutEvent(t *testing.T) {
	mock := &mockLogger{}
	rec := NewRecorder(mock)

	msg := wire.Message{Kind: wire.KindStop, Conductor: wire.ConductorC4, Target: wire.TargetAll, Payload: 999}
	pkt := rec.Encode(msg)

	assert.Equal(t, wire.Encode(msg), pkt)
	require.Len(t, mock.events, 1)

	ev := mock.events[0]
	assert.Equal(t, DirectionOut, ev.Direction)
	assert.Equal(t, CategoryMessage, ev.Category)
	assert.Equal(t, rec.SessionID(), ev.SessionID)
	assert.Equal(t, []byte{0x98, 0x00, 0x00}, ev.Packet)
	require.NotNil(t, ev.Message)
	assert.Equal(t, uint16(0), ev.Message.Payload, "logged message is the canonical form")
	assert.False(t, ev.Timestamp.IsZero())
}

func TestRecorderDecodeLogsInEvent(t *testing.T) {
	mock := &mockLogger{}
	rec := NewRecorder(mock)

	msg, err := rec.Decode([]byte{0x98, 0x03, 0xE7})
	require.NoError(t, err)
	assert.Equal(t, wire.KindStop, msg.Kind)

	require.Len(t, mock.events, 1)
	ev := mock.events[0]
	assert.Equal(t, DirectionIn, ev.Direction)
	assert.Equal(t, CategoryMessage, ev.Category)
	assert.True(t, ev.PayloadIgnored)
	require.NotNil(t, ev.Message)
	assert.Equal(t, msg, *ev.Message)
}

func TestRecorderDecodeLogsErrors(t *testing.T) {
	mock := &mockLogger{}
	rec := NewRecorder(mock)

	_, err := rec.Decode([]byte{0xE3, 0x00, 0x3C})
	assert.True(t, errors.Is(err, wire.ErrUnknownFieldCode))

	_, err = rec.Decode([]byte{0x4A, 0x00})
	assert.True(t, errors.Is(err, wire.ErrInvalidInputShape))

	require.Len(t, mock.events, 2)
	assert.Equal(t, CategoryError, mock.events[0].Category)
	assert.Equal(t, ErrorKindFieldCode, mock.events[0].Error.Kind)
	assert.Nil(t, mock.events[0].Message)
	assert.Equal(t, ErrorKindShape, mock.events[1].Error.Kind)
	assert.Equal(t, []byte{0x4A, 0x00}, mock.events[1].Packet)
}

func TestRecorderDecodeCopiesInput(t *testing.T) {
	mock := &mockLogger{}
	rec := NewRecorder(mock)

	data := []byte{0x4A, 0x00, 0x78}
	_, err := rec.Decode(data)
	require.NoError(t, err)
	data[0] = 0xFF

	assert.Equal(t, byte(0x4A), mock.events[0].Packet[0])
}
