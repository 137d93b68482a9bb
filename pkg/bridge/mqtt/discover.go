package mqtt

import (
	"context"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/trommel.go/pkg/bridge"
	"github.com/robotalks/trommel.go/pkg/msgs"
)

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// DiscoveredDevice is a device found by its retained meta.
type DiscoveredDevice struct {
	Ref  bridge.DeviceRef
	Info *msgs.DeviceInfo
}

// Discover collects the devices of deviceType announcing themselves on
// the broker of q until timeout. q must be connected.
func Discover(ctx context.Context, q *Queue, deviceType string, timeout time.Duration) (res []DiscoveredDevice, err error) {
	resCh := make(chan DiscoveredDevice, 16)
	sub := q.Sub(DeviceTopic(bridge.DeviceRef{Type: deviceType, ID: "+"}, TopicMeta), Handler(func(topic string, payload []byte) {
		if dev, ok := parseMeta(topic, payload); ok {
			select {
			case resCh <- dev:
			case <-time.After(time.Second):
			}
		}
	}))
	defer sub.Close()

	if timeout <= 0 {
		timeout = DefaultDiscoverTimeout
	}
	expired := time.After(timeout)
	for {
		select {
		case dev := <-resCh:
			res = append(res, dev)
		case <-expired:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

// parseMeta decodes a meta topic. Cleared meta means the device is gone.
func parseMeta(topic string, payload []byte) (dev DiscoveredDevice, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 3 || items[2] != TopicMeta || len(payload) == 0 {
		return
	}
	dev.Ref = bridge.DeviceRef{Type: items[0], ID: items[1]}
	msg, err := msgs.Decode(payload)
	if err != nil {
		glog.Warningf("meta of %s: %v", dev.Ref.Name(), err)
		return
	}
	info, isInfo := msg.(*msgs.DeviceInfo)
	if !isInfo {
		return
	}
	dev.Info = info
	return dev, true
}
