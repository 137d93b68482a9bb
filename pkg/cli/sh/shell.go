package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/trommel.go/pkg/bridge"
	"github.com/robotalks/trommel.go/pkg/bridge/mqtt"
	"github.com/robotalks/trommel.go/pkg/command"
)

// Config defines how the shell reaches devices.
type Config struct {
	MQTTBrokerURL string
	Baud          int
	// Device is connected at start: a serial port or a device ID on
	// the MQTT broker.
	Device string
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/",
	Baud:          command.DefaultBaud,
}

func init() {
	if val := os.Getenv("TROMMEL_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	defaultConfig.Device = os.Getenv("TROMMEL_DEVICE")
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Console serial baud rate")
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial port or device ID to connect")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool

	Shell  *ishell.Shell
	Config *Config
	Remote Remote

	bench *Bench
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[bench] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Remote == nil {
			c.Err(command.ErrNotConnected)
			return
		}
		fn(c)
	}
}

// WithBench wraps command func working on the simulated bench.
func WithBench(fn func(c *ishell.Context, b *Bench)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		b, err := ShellFrom(c).Bench()
		if err != nil {
			c.Err(err)
			return
		}
		fn(c, b)
	}
}

// Bench returns the simulated bench, created on first use.
func (s *Shell) Bench() (*Bench, error) {
	if s.bench == nil {
		b, err := NewBench()
		if err != nil {
			return nil, err
		}
		s.bench = b
	}
	return s.bench, nil
}

// Drum returns the connected device, or the bench firmware.
func (s *Shell) Drum() (Remote, error) {
	if s.Remote != nil {
		return s.Remote, nil
	}
	b, err := s.Bench()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Print prints v as JSON or with its String form.
func (s *Shell) Print(c *ishell.Context, v interface{}) {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(v)
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// DiscoverDevices lists the devices announced on the MQTT broker.
func (s *Shell) DiscoverDevices() ([]mqtt.DiscoveredDevice, error) {
	q, err := mqtt.NewQueueFromURL(s.Config.MQTTBrokerURL)
	if err != nil {
		return nil, err
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	defer q.Close()
	return mqtt.Discover(context.TODO(), q, bridge.DefaultDeviceType, mqtt.DefaultDiscoverTimeout)
}

// SelectDevice discovers devices and asks for a choice.
func (s *Shell) SelectDevice() (*mqtt.DiscoveredDevice, error) {
	devs, err := s.DiscoverDevices()
	if err != nil || len(devs) == 0 {
		return nil, err
	}
	var index int
	if len(devs) > 1 {
		if !s.Interactive {
			return nil, fmt.Errorf("more than 1 devices discovered in non-interactive mode")
		}
		items := make([]string, len(devs))
		for n, dev := range devs {
			items[n] = FormatDevice(dev)
		}
		index = s.Shell.MultiChoice(items, "Which one to connect?")
	}
	return &devs[index], nil
}

// isSerialPort tells serial port names from device IDs.
func isSerialPort(name string) bool {
	return strings.HasPrefix(name, "/") || strings.HasPrefix(strings.ToUpper(name), "COM")
}

// Connect connects the device on a serial port or the MQTT broker.
func (s *Shell) Connect(device string) (err error) {
	var remote Remote
	if isSerialPort(device) {
		remote, err = OpenSerial(device, s.Config.Baud)
	} else {
		remote, err = DialMQTT(s.Config.MQTTBrokerURL, bridge.DeviceRef{Type: bridge.DefaultDeviceType, ID: device})
	}
	if err != nil {
		return err
	}
	s.Disconnect()
	s.Remote = remote
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", remote.Name()))
	return nil
}

// Disconnect disconnects current device.
func (s *Shell) Disconnect() {
	if s.Remote != nil {
		s.Remote.Close()
		s.Remote = nil
		s.Shell.SetPrompt(unconnectedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect && s.Config.Device != "" {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.Device)
		}
		if err := s.Connect(s.Config.Device); err != nil {
			log.Fatalf("connect %q failed: %v", s.Config.Device, err)
		}
	}
	defer s.Disconnect()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// DiscoverCmd discovers devices.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			devs, err := s.DiscoverDevices()
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				infos := make([]interface{}, 0, len(devs))
				for _, dev := range devs {
					infos = append(infos, &dev.Info.DeviceInfo)
				}
				s.Print(c, infos)
				return
			}
			if len(devs) == 0 {
				c.Println("No devices found")
				return
			}
			for _, dev := range devs {
				c.Println(FormatDevice(dev))
			}
		},
	}

	// ConnectCmd connects a device.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "[SERIAL-PORT|ID]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var device string
			if len(c.Args) > 0 {
				device = c.Args[0]
			} else {
				dev, err := s.SelectDevice()
				if err != nil {
					c.Err(err)
					return
				}
				if dev == nil {
					c.Err(fmt.Errorf("no device discovered"))
					return
				}
				device = dev.Ref.ID
			}
			if err := s.Connect(device); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd disconnects current device.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(NewConfig()).WithAutoConnect(true).Run(flag.Args()...)
}
