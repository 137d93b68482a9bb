package sequencer

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults of a Pattern.
const (
	DefaultBPM    = 240
	DefaultRepeat = true
)

// Step is the set of channels hit together, bit n for channel n.
type Step uint8

// Channels returns the channels in s in ascending order.
func (s Step) Channels() (chs []int) {
	for ch := 0; s != 0; ch++ {
		if s&1 != 0 {
			chs = append(chs, ch)
		}
		s >>= 1
	}
	return
}

// String renders s as a row of channel marks, e.g. "x.x.....".
func (s Step) String() string {
	var sb strings.Builder
	for ch := 0; ch < 8; ch++ {
		if s&(1<<ch) != 0 {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// ParseStep parses a row of channel marks: 'x' or 'X' hits the channel at
// that position, '.', '-' or ' ' leave it alone.
func ParseStep(str string) (Step, error) {
	if len(str) > 8 {
		return 0, fmt.Errorf("step %q: more than 8 channels", str)
	}
	var s Step
	for ch, c := range []byte(str) {
		switch c {
		case 'x', 'X':
			s |= 1 << ch
		case '.', '-', ' ':
		default:
			return 0, fmt.Errorf("step %q: invalid mark %q", str, c)
		}
	}
	return s, nil
}

// UnmarshalYAML accepts either a channel mask or a row of channel marks.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	var mask uint8
	if err := value.Decode(&mask); err == nil {
		*s = Step(mask)
		return nil
	}
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	step, err := ParseStep(str)
	if err != nil {
		return err
	}
	*s = step
	return nil
}

// Pattern is a named sequence of steps.
type Pattern struct {
	Name   string  `yaml:"name"`
	Steps  []Step  `yaml:"steps"`
	BPM    float64 `yaml:"bpm"`
	Repeat bool    `yaml:"repeat"`
}

// NewPattern creates a repeating pattern at the default tempo.
func NewPattern(name string, steps ...Step) *Pattern {
	return &Pattern{Name: name, Steps: steps, BPM: DefaultBPM, Repeat: DefaultRepeat}
}

// UnmarshalYAML fills in the defaults for omitted fields.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	type plain Pattern
	v := plain{BPM: DefaultBPM, Repeat: DefaultRepeat}
	if err := value.Decode(&v); err != nil {
		return err
	}
	*p = Pattern(v)
	return nil
}

// StepPeriod returns the time between steps.
func (p *Pattern) StepPeriod() time.Duration {
	bpm := p.BPM
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return time.Duration(float64(time.Minute) / bpm)
}
