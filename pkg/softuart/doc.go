// Package softuart implements an 8N1 asynchronous serial transceiver in
// software, at the fixed MIDI rate of 31250 baud.
//
// The receiver finds start bits with a falling edge interrupt and samples
// data and stop bits from a compare timer. The transmitter is clocked by a
// second compare channel. Neither engine has hardware framing support.
//
// Both engines exchange bytes with the foreground through 32 byte ring
// queues. Nothing is ever reported as an error: a full queue drops the
// byte, a framing error drops the frame and forces the receiver to wait
// for 11 idle bit times before it trusts the next start bit.
package softuart
