package midi

// ParseResult indicates the result after one parsing step.
type ParseResult struct {
	// Message is set when a message completed with this byte.
	Message *Message
	// Stray is set when a data byte arrived without a status to apply to.
	Stray bool
}

type parseState int

const (
	stateIdle  parseState = iota // no status, data bytes are stray
	stateData                    // collecting data bytes for status
	stateSysEx                   // skipping system exclusive data
)

// Parser is a streaming MIDI decoder. The zero value is ready to use.
type Parser struct {
	state   parseState
	status  byte
	running bool
	data    [2]byte
	recvLen int
	skipped int
}

// dataLen returns the number of data bytes following status.
func dataLen(status byte) int {
	if status < systemStatusBase {
		switch status &^ channelMask {
		case ProgramChange, ChannelPressure:
			return 1
		}
		return 2
	}
	switch status {
	case TimeCodeQuarter, SongSelect:
		return 1
	case SongPosition:
		return 2
	}
	return 0
}

// Reset drops any partial message and the running status.
func (p *Parser) Reset() {
	*p = Parser{}
}

// SysExSkipped returns the number of system exclusive bytes skipped so far.
func (p *Parser) SysExSkipped() int {
	return p.skipped
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	if b >= realtimeFirst {
		// real-time bytes may appear anywhere and leave the state alone
		if b == 0xf9 || b == 0xfd {
			return
		}
		pr.Message = &Message{Status: b}
		return
	}
	if b&statusBit != 0 {
		pr.Message = p.parseStatus(b)
		return
	}
	switch p.state {
	case stateSysEx:
		p.skipped++
	case stateData:
		p.data[p.recvLen] = b
		p.recvLen++
		if p.recvLen >= dataLen(p.status) {
			pr.Message = p.messageReady()
		}
	default:
		pr.Stray = true
	}
	return
}

// ParseBytes consumes buf and returns the completed messages.
func (p *Parser) ParseBytes(buf []byte) (msgs []*Message) {
	for _, b := range buf {
		if pr := p.Parse(b); pr.Message != nil {
			msgs = append(msgs, pr.Message)
		}
	}
	return
}

func (p *Parser) parseStatus(b byte) *Message {
	p.recvLen = 0
	switch {
	case b == SysEx:
		p.state, p.running = stateSysEx, false
		return nil
	case b == EndOfExclusive:
		p.state, p.running = stateIdle, false
		return nil
	case b >= systemStatusBase:
		// system common cancels running status
		p.running = false
		if b == 0xf4 || b == 0xf5 {
			p.state = stateIdle
			return nil
		}
	default:
		p.running = true
	}
	p.status = b
	if dataLen(b) == 0 {
		return p.messageReady()
	}
	p.state = stateData
	return nil
}

func (p *Parser) messageReady() *Message {
	m := &Message{Status: p.status}
	if p.recvLen > 0 {
		m.Data = append([]byte(nil), p.data[:p.recvLen]...)
	}
	p.recvLen = 0
	if p.running {
		p.state = stateData
	} else {
		p.state = stateIdle
	}
	return m
}
