// Package bridge carries drum events out of, and commands into, the
// firmware loop over packet transports (MQTT, websocket, byte streams).
package bridge
