package trommel

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/robotalks/trommel.go/pkg/drum"
	"github.com/robotalks/trommel.go/pkg/sequencer"
)

// Config defines the configurations of the firmware.
type Config struct {
	// ID identifies the device on the console and the network.
	ID string `yaml:"id"`
	// MIDIChannel is the 1-based channel listened to, 0 for all channels.
	MIDIChannel int `yaml:"midi-channel"`
	// Notes maps drum channel n to the MIDI note Notes[n].
	Notes []int `yaml:"notes"`
	// VelocityBeats scales beat durations with note velocity.
	VelocityBeats bool `yaml:"velocity-beats"`
	// Thru echoes received MIDI bytes to the output.
	Thru bool `yaml:"thru"`
	// Loopback wires the output line back to the input.
	Loopback bool `yaml:"loopback"`

	Drum     drum.Config          `yaml:"drum"`
	Patterns []*sequencer.Pattern `yaml:"patterns"`

	// PollInterval is the foreground loop interval.
	PollInterval time.Duration `yaml:"poll-interval"`

	// MQTTBrokerURL enables publishing to MQTT, e.g.
	// mqtt://host:port/topic-prefix/
	MQTTBrokerURL string `yaml:"mqtt"`
	// WebsocketAddr enables the websocket event hub.
	WebsocketAddr string `yaml:"websocket"`
	// ConsolePort is the serial port of the text console, stdin/stdout
	// when empty.
	ConsolePort string `yaml:"console"`
	ConsoleBaud int    `yaml:"console-baud"`
}

// Defaults of the reference firmware.
const (
	DefaultMIDIChannel  = 10
	DefaultPollInterval = time.Millisecond
	DefaultConsoleBaud  = 19200
	envPrefix           = "TROMMEL_"
)

// DefaultNotes are the General MIDI drum notes of the drum channels.
var DefaultNotes = []int{52, 44, 42, 80, 70, 69, 38, 36}

// DefaultPatterns are built in.
var DefaultPatterns = []*sequencer.Pattern{
	sequencer.NewPattern("beat", 0x81, 0x04, 0x41, 0x04),
	sequencer.NewPattern("roll", 0x40, 0x40, 0x40, 0xc0),
	sequencer.NewPattern("chase", 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80),
}

var defaultConfig = Config{
	MIDIChannel:  DefaultMIDIChannel,
	Notes:        DefaultNotes,
	Drum:         drum.DefaultConfig(),
	Patterns:     DefaultPatterns,
	PollInterval: DefaultPollInterval,
	ConsoleBaud:  DefaultConsoleBaud,
}

func init() {
	defaultConfig.ID = DeviceID()
	if err := defaultConfig.LoadEnv(os.LookupEnv); err != nil {
		glog.Warningf("environment: %v", err)
	}
}

// DeviceID derives a stable ID from the machine ID.
func DeviceID() string {
	id, err := machineid.ProtectedID("trommel")
	if err != nil {
		host, _ := os.Hostname()
		if host == "" {
			host = "trommel"
		}
		return host
	}
	return id[:12]
}

type configFileFlag struct {
	path string
}

func (f *configFileFlag) String() string { return f.path }

func (f *configFileFlag) Set(path string) error {
	f.path = path
	return defaultConfig.LoadFile(path)
}

// SetupFlags sets command line flags. Settings from -config apply where
// the flag appears, flags after it override them.
func SetupFlags() {
	flag.Var(&configFileFlag{}, "config", "YAML config file")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Device ID")
	flag.IntVar(&defaultConfig.MIDIChannel, "midi-channel", defaultConfig.MIDIChannel, "MIDI channel 1-16, 0 for all")
	flag.BoolVar(&defaultConfig.VelocityBeats, "velocity-beats", defaultConfig.VelocityBeats, "Scale beats with note velocity")
	flag.BoolVar(&defaultConfig.Thru, "thru", defaultConfig.Thru, "Echo MIDI input to output")
	flag.BoolVar(&defaultConfig.Loopback, "loopback", defaultConfig.Loopback, "Wire MIDI output to input")
	flag.DurationVar(&defaultConfig.Drum.BeatDuration, "beat", defaultConfig.Drum.BeatDuration, "Beat duration")
	flag.IntVar(&defaultConfig.Drum.MaxActive, "max-beats", defaultConfig.Drum.MaxActive, "Maximum simultaneous beats")
	flag.DurationVar(&defaultConfig.PollInterval, "poll-interval", defaultConfig.PollInterval, "Foreground loop interval")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.WebsocketAddr, "websocket", defaultConfig.WebsocketAddr, "Websocket event hub address")
	flag.StringVar(&defaultConfig.ConsolePort, "console", defaultConfig.ConsolePort, "Console serial port, stdin/stdout if empty")
	flag.IntVar(&defaultConfig.ConsoleBaud, "console-baud", defaultConfig.ConsoleBaud, "Console serial baud rate")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	conf.Notes = slices.Clone(defaultConfig.Notes)
	conf.Patterns = slices.Clone(defaultConfig.Patterns)
	return &conf
}

// LoadFile merges the YAML file at path into c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.LoadYAML(data)
}

// LoadYAML merges YAML data into c. Fields absent from data are kept.
func (c *Config) LoadYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: %v", err)
	}
	return nil
}

// LoadEnv applies TROMMEL_* variables from lookup.
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	str := func(name string, val *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*val = v
		}
	}
	str("ID", &c.ID)
	str("MQTT_URL", &c.MQTTBrokerURL)
	str("WEBSOCKET", &c.WebsocketAddr)
	str("CONSOLE", &c.ConsolePort)
	if v, ok := lookup(envPrefix + "MIDI_CHANNEL"); ok && v != "" {
		ch, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMIDI_CHANNEL: %v", envPrefix, err)
		}
		c.MIDIChannel = ch
	}
	return nil
}

// Validate checks c for consistency.
func (c *Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("device id must be specified")
	}
	if c.MIDIChannel < 0 || c.MIDIChannel > 16 {
		return fmt.Errorf("invalid MIDI channel %d", c.MIDIChannel)
	}
	if len(c.Notes) > drum.Channels {
		return fmt.Errorf("%d notes for %d channels", len(c.Notes), drum.Channels)
	}
	for n, note := range c.Notes {
		if note < 0 || note > 127 {
			return fmt.Errorf("channel %d: invalid note %d", n, note)
		}
		if slices.Index(c.Notes, note) != n {
			return fmt.Errorf("channel %d: note %d already mapped", n, note)
		}
	}
	if c.Thru && c.Loopback {
		return fmt.Errorf("thru and loopback together would echo forever")
	}
	if c.Drum.BeatDuration > c.Drum.MaxBeatDuration && c.Drum.MaxBeatDuration > 0 {
		return fmt.Errorf("beat %v longer than the maximum %v", c.Drum.BeatDuration, c.Drum.MaxBeatDuration)
	}
	var names []string
	for n, p := range c.Patterns {
		if p == nil || p.Name == "" {
			return fmt.Errorf("pattern %d has no name", n)
		}
		if len(p.Steps) == 0 {
			return fmt.Errorf("pattern %q has no steps", p.Name)
		}
		if p.BPM < 0 {
			return fmt.Errorf("pattern %q: invalid bpm %v", p.Name, p.BPM)
		}
		if slices.Contains(names, p.Name) {
			return fmt.Errorf("pattern %q defined twice", p.Name)
		}
		names = append(names, p.Name)
	}
	return nil
}

// NoteChannel returns the drum channel of note, -1 if not mapped.
func (c *Config) NoteChannel(note byte) int {
	return slices.Index(c.Notes, int(note))
}

// Pattern returns the pattern named name.
func (c *Config) Pattern(name string) *sequencer.Pattern {
	if n := slices.IndexFunc(c.Patterns, func(p *sequencer.Pattern) bool { return p.Name == name }); n >= 0 {
		return c.Patterns[n]
	}
	return nil
}

// PatternNames lists the pattern names in program order.
func (c *Config) PatternNames() []string {
	names := make([]string, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		names = append(names, p.Name)
	}
	return names
}
