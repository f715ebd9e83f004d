package pixfmt

import "strconv"

// Ratio is an exact rational number kept in lowest terms with a positive
// denominator. Subsampling divisors and all derived arithmetic use Ratio
// rather than floats so that equal layouts always compare equal.
type Ratio struct {
	Num int
	Den int
}

// Whole returns the integer n as a Ratio.
func Whole(n int) Ratio {
	return Ratio{Num: n, Den: 1}
}

// NewRatio returns num/den reduced to lowest terms. A zero denominator
// yields an invalid Ratio rejected later by plane validation.
func NewRatio(num, den int) Ratio {
	if den < 0 {
		num, den = -num, -den
	}
	if den == 0 {
		return Ratio{Num: num, Den: 0}
	}
	if num == 0 {
		return Ratio{Num: 0, Den: 1}
	}
	n := num
	if n < 0 {
		n = -n
	}
	g := gcd(n, den)
	return Ratio{Num: num / g, Den: den / g}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsInt reports whether the ratio is a whole number.
func (r Ratio) IsInt() bool { return r.Den == 1 }

// Float converts the ratio to a float64.
func (r Ratio) Float() float64 { return float64(r.Num) / float64(r.Den) }

// Mul returns r*o in lowest terms.
func (r Ratio) Mul(o Ratio) Ratio { return NewRatio(r.Num*o.Num, r.Den*o.Den) }

// Div returns r/o in lowest terms.
func (r Ratio) Div(o Ratio) Ratio { return NewRatio(r.Num*o.Den, r.Den*o.Num) }

// Add returns r+o in lowest terms.
func (r Ratio) Add(o Ratio) Ratio { return NewRatio(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den) }

// Cmp compares r with o, returning -1, 0 or 1.
func (r Ratio) Cmp(o Ratio) int {
	l, rr := r.Num*o.Den, o.Num*r.Den
	switch {
	case l < rr:
		return -1
	case l > rr:
		return 1
	default:
		return 0
	}
}

// String renders the ratio as "n" when whole, else "n/d".
func (r Ratio) String() string {
	if r.Den == 1 {
		return strconv.Itoa(r.Num)
	}
	return strconv.Itoa(r.Num) + "/" + strconv.Itoa(r.Den)
}

// Subsampling is a plane's horizontal and vertical subsampling divisors:
// how many luma samples share one sample of this plane in each direction.
type Subsampling struct {
	X Ratio
	Y Ratio
}

// Sub builds an integer subsampling pair.
func Sub(x, y int) Subsampling {
	return Subsampling{X: Whole(x), Y: Whole(y)}
}

func (s Subsampling) valid() bool {
	return s.X.Num > 0 && s.X.Den > 0 && s.Y.Num > 0 && s.Y.Den > 0
}

func (s Subsampling) normalized() Subsampling {
	return Subsampling{X: NewRatio(s.X.Num, s.X.Den), Y: NewRatio(s.Y.Num, s.Y.Den)}
}

// String renders the pair as "x:y".
func (s Subsampling) String() string {
	return s.X.String() + ":" + s.Y.String()
}
