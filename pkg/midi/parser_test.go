package midi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type parserTestCase struct {
	name   string
	input  []byte
	expect []*Message
}

func TestParser(t *testing.T) {
	testCases := []parserTestCase{
		{
			"note on",
			[]byte{0x99, 36, 100},
			[]*Message{NewNoteOn(9, 36, 100)},
		},
		{
			"running status",
			[]byte{0x99, 36, 100, 38, 90, 36, 0},
			[]*Message{NewNoteOn(9, 36, 100), NewNoteOn(9, 38, 90), NewNoteOn(9, 36, 0)},
		},
		{
			"one data byte messages",
			[]byte{0xc0, 5, 6, 0xd1, 64},
			[]*Message{NewProgramChange(0, 5), NewProgramChange(0, 6), {Status: 0xd1, Data: []byte{64}}},
		},
		{
			"real-time inside a message",
			[]byte{0x90, 60, 0xf8, 127, 0xfa, 61, 0xfc, 1},
			[]*Message{
				{Status: TimingClock},
				NewNoteOn(0, 60, 127),
				{Status: Start},
				{Status: Stop},
				NewNoteOn(0, 61, 1),
			},
		},
		{
			"undefined real-time ignored",
			[]byte{0xf9, 0xfd, 0xfe},
			[]*Message{{Status: ActiveSensing}},
		},
		{
			"stray data dropped",
			[]byte{1, 2, 3, 0xb0, 7, 100},
			[]*Message{NewControlChange(0, 7, 100)},
		},
		{
			"sysex skipped",
			[]byte{0x90, 60, 64, 0xf0, 0x7e, 1, 2, 3, 0xf7, 61, 64, 0x80, 61, 0},
			[]*Message{NewNoteOn(0, 60, 64), NewNoteOff(0, 61, 0)},
		},
		{
			"sysex ended by status",
			[]byte{0xf0, 1, 2, 0x92, 40, 50},
			[]*Message{NewNoteOn(2, 40, 50)},
		},
		{
			"system common",
			[]byte{0xf2, 0x10, 0x20, 0xf3, 7, 0xf6, 0xf1, 0x35},
			[]*Message{
				{Status: SongPosition, Data: []byte{0x10, 0x20}},
				{Status: SongSelect, Data: []byte{7}},
				{Status: TuneRequest},
				{Status: TimeCodeQuarter, Data: []byte{0x35}},
			},
		},
		{
			"system common cancels running status",
			[]byte{0x90, 60, 64, 0xf6, 61, 64},
			[]*Message{NewNoteOn(0, 60, 64), {Status: TuneRequest}},
		},
		{
			"status interrupts partial message",
			[]byte{0x90, 60, 0x80, 60, 0},
			[]*Message{NewNoteOff(0, 60, 0)},
		},
		{
			"undefined system common",
			[]byte{0x90, 60, 64, 0xf4, 1, 0xf5},
			[]*Message{NewNoteOn(0, 60, 64)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Parser
			require.Equal(t, tc.expect, p.ParseBytes(tc.input))
		})
	}
}

func TestParserStray(t *testing.T) {
	var p Parser
	require.True(t, p.Parse(0x40).Stray)
	require.Nil(t, p.Parse(0x99).Message)
	require.False(t, p.Parse(0x40).Stray)
	pr := p.Parse(0x40)
	require.False(t, pr.Stray)
	require.NotNil(t, pr.Message)

	p.Reset()
	require.True(t, p.Parse(0x40).Stray)
}

func TestParserSysExCount(t *testing.T) {
	var p Parser
	p.ParseBytes([]byte{0xf0, 1, 2, 3, 0xf8, 4, 0xf7})
	require.Equal(t, 4, p.SysExSkipped())
}
