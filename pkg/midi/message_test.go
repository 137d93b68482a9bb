package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageBytes(t *testing.T) {
	testCases := []struct {
		name   string
		msg    *Message
		expect []byte
	}{
		{"note on", NewNoteOn(9, 36, 100), []byte{0x99, 36, 100}},
		{"note off", NewNoteOff(0, 60, 0), []byte{0x80, 60, 0}},
		{"program change", NewProgramChange(15, 3), []byte{0xcf, 3}},
		{"control change", NewControlChange(2, 7, 127), []byte{0xb2, 7, 127}},
		{"data masked", NewNoteOn(0x19, 0xff, 0x80), []byte{0x99, 0x7f, 0}},
		{"real-time", &Message{Status: Start}, []byte{0xfa}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.msg.Bytes())
			var buf bytes.Buffer
			n, err := tc.msg.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, tc.expect, buf.Bytes())
			require.Equal(t, int64(len(tc.expect)), n)
		})
	}
}

func TestMessageAccessors(t *testing.T) {
	m := NewNoteOn(9, 38, 0)
	require.Equal(t, NoteOn, m.Type())
	require.Equal(t, 9, m.Channel())
	require.Equal(t, byte(38), m.Note())
	require.True(t, m.IsNoteOff())
	require.False(t, m.IsNoteOn())
	require.Equal(t, "note-on ch=10 26 00", m.String())

	m = &Message{Status: Stop}
	require.True(t, m.IsRealtime())
	require.False(t, m.IsChannel())
	require.Equal(t, -1, m.Channel())
	require.Equal(t, byte(0), m.Velocity())
	require.Equal(t, "stop", m.String())

	m = &Message{Status: SongSelect, Data: []byte{4}}
	require.Equal(t, "song-select 04", m.String())
}
