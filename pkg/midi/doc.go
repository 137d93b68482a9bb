// Package midi decodes and encodes the MIDI 1.0 byte stream.
//
// The Parser consumes one byte at a time, as it comes out of a serial
// receive queue, and yields complete messages. It understands running
// status, interleaved real-time bytes and system common messages. System
// exclusive data is skipped.
package midi
