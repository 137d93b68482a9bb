package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/robotalks/trommel.go/pkg/bridge"
	"github.com/robotalks/trommel.go/pkg/bridge/mqtt"
	"github.com/robotalks/trommel.go/pkg/cli/sh"
	"github.com/robotalks/trommel.go/pkg/msgs"
)

var (
	mqttURL  = "mqtt://localhost:1883/"
	deviceID = "+"
	discover bool
)

func init() {
	if val := os.Getenv("TROMMEL_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&deviceID, "device", deviceID, "Device ID to monitor, + for all.")
	flag.BoolVar(&discover, "discover", discover, "List the devices and exit.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	defer q.Close()

	if discover {
		devs, err := mqtt.Discover(context.Background(), q, bridge.DefaultDeviceType, mqtt.DefaultDiscoverTimeout)
		if err != nil {
			log.Fatalln(err)
		}
		for _, dev := range devs {
			log.Println(sh.FormatDevice(dev))
		}
		return
	}

	ref := bridge.DeviceRef{Type: bridge.DefaultDeviceType, ID: deviceID}
	q.Sub(ref.Name()+"/#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/"+mqtt.TopicMeta) && len(payload) == 0 {
			log.Printf("%s: gone", topic)
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: %s", topic, sh.FormatMessage(msg))
	}))
	<-(chan struct{})(nil)
}
