package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "IN", DirectionIn.String())
	assert.Equal(t, "OUT", DirectionOut.String())
	assert.Equal(t, "UNKNOWN", Direction(9).String())

	assert.Equal(t, "MESSAGE", CategoryMessage.String())
	assert.Equal(t, "ERROR", CategoryError.String())
	assert.Equal(t, "UNKNOWN", Category(9).String())

	assert.Equal(t, "INVALID_INPUT_SHAPE", ErrorKindShape.String())
	assert.Equal(t, "UNKNOWN_FIELD_CODE", ErrorKindFieldCode.String())
	assert.Equal(t, "OTHER", ErrorKindOther.String())
}

func TestNewErrorEventDataShape(t *testing.T) {
	_, err := wire.Decode([]byte{0x01, 0x02})
	require.Error(t, err)

	data := NewErrorEventData(err)
	assert.Equal(t, ErrorKindShape, data.Kind)
	require.NotNil(t, data.Length)
	assert.Equal(t, 2, *data.Length)
	assert.Nil(t, data.Code)
	assert.Empty(t, data.Field)
}

func TestNewErrorEventDataFieldCode(t *testing.T) {
	_, err := wire.Decode([]byte{0xC0, 0x00, 0x00})
	require.Error(t, err)

	data := NewErrorEventData(err)
	assert.Equal(t, ErrorKindFieldCode, data.Kind)
	assert.Equal(t, "kind", data.Field)
	require.NotNil(t, data.Code)
	assert.Equal(t, uint8(6), *data.Code)
	assert.Equal(t, err.Error(), data.Message)
}

func TestNewErrorEventDataOther(t *testing.T) {
	data := NewErrorEventData(errors.New("boom"))
	assert.Equal(t, ErrorKindOther, data.Kind)
	assert.Equal(t, "boom", data.Message)
}
