package redemption

import "time"

// Hold tracks the press-and-hold reveal gesture. Releasing before the
// full duration resets progress to zero; there is no partial-hold
// leniency. Only a completed hold may trigger the consume call.
type Hold struct {
	pressedAt *time.Time
}

func (h *Hold) Press(now time.Time) {
	if h.pressedAt == nil {
		t := now
		h.pressedAt = &t
	}
}

func (h *Hold) Release() {
	h.pressedAt = nil
}

func (h *Hold) Pressed() bool {
	return h.pressedAt != nil
}

// Progress reports hold completion in [0, 1].
func (h *Hold) Progress(now time.Time) float64 {
	if h.pressedAt == nil {
		return 0
	}

	elapsed := now.Sub(*h.pressedAt)
	if elapsed >= HoldDuration {
		return 1
	}
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(HoldDuration)
}

func (h *Hold) Completed(now time.Time) bool {
	return h.Progress(now) >= 1
}
