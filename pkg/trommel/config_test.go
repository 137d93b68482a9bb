package trommel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/trommel.go/pkg/sequencer"
)

func testConfig() *Config {
	c := NewConfig()
	c.ID = "test"
	c.MQTTBrokerURL, c.WebsocketAddr, c.ConsolePort = "", "", ""
	return c
}

func TestConfigDefaults(t *testing.T) {
	c := testConfig()
	require.NoError(t, c.Validate())
	require.Equal(t, DefaultMIDIChannel, c.MIDIChannel)
	require.Equal(t, 7, c.NoteChannel(36))
	require.Equal(t, 0, c.NoteChannel(52))
	require.Equal(t, -1, c.NoteChannel(60))
	require.Equal(t, []string{"beat", "roll", "chase"}, c.PatternNames())
	require.NotNil(t, c.Pattern("roll"))
	require.Nil(t, c.Pattern("waltz"))

	c.Notes[0] = 60
	require.Equal(t, 52, DefaultNotes[0])
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"no id", func(c *Config) { c.ID = "" }},
		{"channel", func(c *Config) { c.MIDIChannel = 17 }},
		{"too many notes", func(c *Config) { c.Notes = append(c.Notes, 1) }},
		{"note range", func(c *Config) { c.Notes[2] = 128 }},
		{"duplicate note", func(c *Config) { c.Notes[1] = c.Notes[0] }},
		{"thru loopback", func(c *Config) { c.Thru, c.Loopback = true, true }},
		{"long beat", func(c *Config) { c.Drum.BeatDuration = time.Second }},
		{"unnamed pattern", func(c *Config) { c.Patterns = append(c.Patterns, sequencer.NewPattern("", 1)) }},
		{"empty pattern", func(c *Config) { c.Patterns = append(c.Patterns, sequencer.NewPattern("none")) }},
		{"duplicate pattern", func(c *Config) { c.Patterns = append(c.Patterns, sequencer.NewPattern("beat", 1)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testConfig()
			tc.modify(c)
			require.Error(t, c.Validate())
		})
	}
}

func TestConfigLoadYAML(t *testing.T) {
	c := testConfig()
	require.NoError(t, c.LoadYAML([]byte(`
midi-channel: 0
notes: [36, 38]
drum:
  beat: 30ms
patterns:
  - name: four
    steps: ["x.......", 0x02, "x.......", 0x02]
    bpm: 120
`)))
	require.NoError(t, c.Validate())
	require.Equal(t, "test", c.ID)
	require.Equal(t, 0, c.MIDIChannel)
	require.Equal(t, []int{36, 38}, c.Notes)
	require.Equal(t, 30*time.Millisecond, c.Drum.BeatDuration)
	require.Len(t, c.Patterns, 1)
	p := c.Patterns[0]
	require.Equal(t, []sequencer.Step{1, 2, 1, 2}, p.Steps)
	require.Equal(t, 120.0, p.BPM)
	require.True(t, p.Repeat)

	require.Error(t, c.LoadYAML([]byte("notes: {")))
}

func TestConfigLoadEnv(t *testing.T) {
	env := map[string]string{
		"TROMMEL_ID":           "kit",
		"TROMMEL_MQTT_URL":     "mqtt://localhost:1883/",
		"TROMMEL_MIDI_CHANNEL": "3",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
	c := testConfig()
	require.NoError(t, c.LoadEnv(lookup))
	require.Equal(t, "kit", c.ID)
	require.Equal(t, "mqtt://localhost:1883/", c.MQTTBrokerURL)
	require.Equal(t, 3, c.MIDIChannel)
	require.Empty(t, c.ConsolePort)

	env["TROMMEL_MIDI_CHANNEL"] = "ten"
	require.Error(t, c.LoadEnv(lookup))
}
