package main

import (
	"testing"

	"github.com/vovakirdan/gridiron/internal/core"
)

func TestScriptsAlwaysRunUpfield(t *testing.T) {
	for _, name := range []string{"forward", "zigzag"} {
		drive := scripts[name]
		for n := 0; n < 32; n++ {
			in := drive(n)
			if !in.Held(core.Forward) || in.Held(core.Backward) {
				t.Fatalf("%s step %d: got %v", name, n, in)
			}
		}
	}
}

func TestIdleScript(t *testing.T) {
	for n := 0; n < 8; n++ {
		if !scripts["idle"](n).Empty() {
			t.Fatalf("idle step %d should hold nothing", n)
		}
	}
}

func TestZigzagAlternates(t *testing.T) {
	tests := []struct {
		step     int
		expected core.Direction
	}{
		{0, core.Left},
		{3, core.Left},
		{4, core.Right},
		{7, core.Right},
		{8, core.Left},
	}

	for _, tc := range tests {
		in := scripts["zigzag"](tc.step)
		if !in.Held(tc.expected) {
			t.Errorf("zigzag step %d = %v, expected %v held", tc.step, in, tc.expected)
		}
	}
}
