// Package msgs defines the messages exchanged with the drum over the
// network: events reported by the firmware and commands sent to it.
//
// Producer of events, consumer of commands: the firmware
// Consumer of events, producer of commands: monitors and remote consoles
package msgs
