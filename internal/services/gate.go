package services

// GateHintThreshold is the number of failed attempts after which the hint shows.
const GateHintThreshold = 2

// GateState is the per-visit state of the entry screen. A fresh page load
// starts from the zero value.
type GateState struct {
	Attempts int
	Shake    bool
}

// Fail records a rejected passkey. Denials and verifier errors both land here.
func (s *GateState) Fail() {
	s.Attempts++
	s.Shake = true
}

func (s GateState) ShowHint() bool {
	return s.Attempts >= GateHintThreshold
}
