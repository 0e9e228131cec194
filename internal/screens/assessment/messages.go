package assessment

import "time"

// tickMsg is delivered once per second while a session runs. id names the
// session that scheduled it, so ticks left over from an earlier screen are
// dropped.
type tickMsg struct {
	id string
	at time.Time
}
