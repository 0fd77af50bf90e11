package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in   string
		want Align
	}{
		{"", AlignLeft},
		{"left", AlignLeft},
		{"Center", AlignCenter},
		{"RIGHT", AlignRight},
	}

	for _, tt := range tests {
		got, err := ParseAlign(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		if tt.in != "" {
			assert.Equal(t, tt.want.String(), got.String())
		}
	}

	_, err := ParseAlign("justify")
	assert.Error(t, err)
}

func TestSerialNotOpen(t *testing.T) {
	s := NewSerial("ttyACM0")
	assert.Equal(t, "ttyACM0", s.Name())

	_, err := s.Write([]byte{0x7C, 0x00})
	assert.Error(t, err)
	assert.Error(t, s.SetBaudRate(9600))
	assert.Error(t, s.Close())
}
