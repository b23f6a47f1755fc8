package otherwise

import (
	"math"
	"testing"
	"time"
)

type point struct {
	x, y int
}

func TestLooseEqual(t *testing.T) {
	t.Parallel()

	moment := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same int", 42, 42, true},
		{"int and int64", 42, int64(42), true},
		{"int and float", 42, 42.0, true},
		{"float fraction", 42, 42.5, false},
		{"negative and unsigned", -1, uint(1), false},
		{"unsigned and int", uint8(7), 7, true},
		{"strings", "a", "a", true},
		{"string and number", "42", 42, false},
		{"nil and nil", nil, nil, true},
		{"nil and zero", nil, 0, false},
		{"unexported fields", point{1, 2}, point{1, 2}, true},
		{"unexported fields differ", point{1, 2}, point{2, 1}, false},
		{"maps", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"int above 2^53 and nearby float", int64(9007199254740993), float64(9007199254740992), false},
		{"int above 2^53 and same float", int64(9007199254740992), float64(9007199254740992), true},
		{"unsigned above 2^53 and nearby float", uint64(9007199254740993), float64(9007199254740992), false},
		{"float beyond int64", float64(1e30), int64(math.MaxInt64), false},
		{"negative float and unsigned", -1.0, uint(1), false},
		{"times in different zones", moment, moment.In(time.FixedZone("X", 3600)), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LooseEqual(tt.a, tt.b); got != tt.want {
				t.Fatalf("LooseEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDeepEqual_StrictKinds(t *testing.T) {
	t.Parallel()

	if DeepEqual(42, int64(42)) {
		t.Fatalf("DeepEqual must not equate different kinds")
	}
	if !DeepEqual([]point{{1, 2}}, []point{{1, 2}}) {
		t.Fatalf("DeepEqual must compare unexported fields")
	}

	got, _ := Match[bool](int64(42)).WithEqual(DeepEqual).When(42, true).Otherwise(false)
	if got {
		t.Fatalf("strict equality must not match 42 against int64(42)")
	}
}
