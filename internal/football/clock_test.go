package football

import "testing"

func TestNewClock(t *testing.T) {
	c := NewClock(300)

	if c.Remaining() != 300 {
		t.Errorf("Remaining() = %d, expected 300", c.Remaining())
	}
	if c.Expired() {
		t.Error("new clock should not be expired")
	}
	if c.Duration() != 300 {
		t.Errorf("Duration() = %d, expected 300", c.Duration())
	}
}

func TestClockLastTick(t *testing.T) {
	c := NewClock(1)

	if !c.Tick() {
		t.Error("Tick() should report expiry on the last second")
	}
	if c.Remaining() != 0 || !c.Expired() {
		t.Errorf("after last tick: remaining=%d expired=%v, expected 0/true", c.Remaining(), c.Expired())
	}
}

func TestClockTicksAreMonotonic(t *testing.T) {
	c := NewClock(300)
	prev := c.Remaining()
	expiries := 0

	for i := 0; i < 400; i++ {
		if c.Tick() {
			expiries++
		}
		rem := c.Remaining()
		if rem > prev {
			t.Fatalf("tick %d: remaining increased from %d to %d", i, prev, rem)
		}
		if rem < 0 {
			t.Fatalf("tick %d: remaining went negative: %d", i, rem)
		}
		if c.Expired() != (rem == 0) {
			t.Fatalf("tick %d: expired=%v with remaining=%d", i, c.Expired(), rem)
		}
		prev = rem
	}

	if expiries != 1 {
		t.Errorf("Tick() reported expiry %d times, expected exactly 1", expiries)
	}
	if !c.Expired() || c.Remaining() != 0 {
		t.Error("clock should stay expired at 0")
	}
}

func TestClockZeroDuration(t *testing.T) {
	c := NewClock(0)
	if !c.Expired() {
		t.Error("zero-duration clock should start expired")
	}
	if c.Tick() {
		t.Error("Tick() on an expired clock should not report expiry again")
	}

	if NewClock(-5).Remaining() != 0 {
		t.Error("negative duration should clamp to 0")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{300, "5:00"},
		{299, "4:59"},
		{61, "1:01"},
		{60, "1:00"},
		{59, "0:59"},
		{9, "0:09"},
		{0, "0:00"},
		{-3, "0:00"},
		{600, "10:00"},
	}

	for _, tc := range tests {
		if got := FormatClock(tc.seconds); got != tc.expected {
			t.Errorf("FormatClock(%d) = %q, expected %q", tc.seconds, got, tc.expected)
		}
	}
}
