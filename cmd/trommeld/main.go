package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/tarm/serial"

	"github.com/robotalks/trommel.go/pkg/bridge"
	"github.com/robotalks/trommel.go/pkg/bridge/mqtt"
	"github.com/robotalks/trommel.go/pkg/bridge/websocket"
	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/pads"
	"github.com/robotalks/trommel.go/pkg/softuart"
	"github.com/robotalks/trommel.go/pkg/trommel"
)

var (
	midiIn string
)

func init() {
	trommel.SetupFlags()
	pads.SetupFlags()
	flag.StringVar(&midiIn, "midi-in", midiIn, "Serial port driving the MIDI input line, - for stdin")
}

type console struct {
	io.Reader
	io.Writer
}

func openConsole(conf *trommel.Config) (io.ReadWriter, error) {
	if conf.ConsolePort == "" {
		return &console{Reader: os.Stdin, Writer: os.Stdout}, nil
	}
	return serial.OpenPort(&serial.Config{Name: conf.ConsolePort, Baud: conf.ConsoleBaud})
}

func openMIDIIn() (io.Reader, error) {
	if midiIn == "-" {
		return os.Stdin, nil
	}
	return serial.OpenPort(&serial.Config{Name: midiIn, Baud: softuart.BaudRate})
}

func main() {
	flag.Parse()

	conf := trommel.Default()
	fw, err := conf.NewFirmware()
	if err != nil {
		log.Fatalln(err)
	}
	publisher := bridge.NewPublisher()
	fw.Events = publisher
	loop := fx.NewLoop().Add(fw)

	if midiIn != "" {
		if midiIn == "-" && conf.ConsolePort == "" {
			log.Fatalln("stdin can't be both MIDI input and console")
		}
		r, err := openMIDIIn()
		if err != nil {
			log.Fatalln(err)
		}
		loop.Add(trommel.NewLineFeeder(r, fw.Board))
	}

	if pads.Default().Enabled {
		loop.Add(pads.NewConfig().NewPads())
	}

	con, err := openConsole(conf)
	if err != nil {
		log.Fatalln(err)
	}
	fw.AttachConsole(con)
	loop.Add(&trommel.ConsoleReader{Reader: con})

	ref := bridge.DeviceRef{Type: bridge.DefaultDeviceType, ID: conf.ID}
	if conf.MQTTBrokerURL != "" {
		dev, err := mqtt.NewDevice(conf.MQTTBrokerURL, ref, fw.Info())
		if err != nil {
			log.Fatalln(err)
		}
		publisher.Attach(dev)
		loop.Add(dev)
	}
	if conf.WebsocketAddr != "" {
		hub := websocket.NewHub(conf.WebsocketAddr)
		hub.Poster = loop
		publisher.Attach(hub)
		loop.AddRunnable(hub)
	}

	fw.Begin()
	if err := fw.Console.Greet(); err != nil {
		log.Fatalln(err)
	}
	loop.RunOrFail()
}
