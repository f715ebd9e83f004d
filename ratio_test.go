package pixfmt

import "testing"

func TestRatioNormalization(t *testing.T) {
	tests := []struct {
		num, den int
		want     Ratio
	}{
		{4, 2, Ratio{2, 1}},
		{4, 3, Ratio{4, 3}},
		{8, 4, Ratio{2, 1}},
		{0, 5, Ratio{0, 1}},
		{-4, 2, Ratio{-2, 1}},
		{4, -2, Ratio{-2, 1}},
	}
	for _, tt := range tests {
		if got := NewRatio(tt.num, tt.den); got != tt.want {
			t.Errorf("NewRatio(%d, %d) = %v, want %v", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestRatioArithmetic(t *testing.T) {
	half := NewRatio(1, 2)
	third := NewRatio(1, 3)

	if got := half.Add(third); got != NewRatio(5, 6) {
		t.Errorf("1/2 + 1/3 = %v, want 5/6", got)
	}
	if got := half.Mul(third); got != NewRatio(1, 6) {
		t.Errorf("1/2 * 1/3 = %v, want 1/6", got)
	}
	if got := half.Div(third); got != NewRatio(3, 2) {
		t.Errorf("1/2 / 1/3 = %v, want 3/2", got)
	}
	if half.Cmp(third) != 1 || third.Cmp(half) != -1 || half.Cmp(half) != 0 {
		t.Error("Cmp ordering is wrong")
	}
}

func TestRatioString(t *testing.T) {
	if got := Whole(2).String(); got != "2" {
		t.Errorf("Whole(2).String() = %q, want 2", got)
	}
	if got := NewRatio(4, 3).String(); got != "4/3" {
		t.Errorf("NewRatio(4, 3).String() = %q, want 4/3", got)
	}
	if got := Sub(2, 2).String(); got != "2:2" {
		t.Errorf("Sub(2, 2).String() = %q, want 2:2", got)
	}
}
