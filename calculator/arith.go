package calculator

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"

	"github.com/shopspring/decimal"
)

// Arithmetic faults. These escape a single command and are counted by the
// Driver.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNonTerminating   = errors.New("non-terminating decimal expansion; no exact representable decimal result")
	ErrNegativeSqrt     = errors.New("square root of a negative number")
	ErrInexactSqrt      = errors.New("square root has no exact decimal representation")
	ErrMalformedNumber  = errors.New("malformed numeric literal")
	ErrInvalidOperation = errors.New("invalid operation")
)

// maxPowExponent bounds the exponent accepted by pow.
const maxPowExponent = 999999999

var numericRegexp = regexp.MustCompile(`^(?:-?\d+(?:\.\d+)?|-?\.\d+)$`)

// isNumeric reports whether s is a plain decimal literal: an optional
// leading minus, then digits with an optional fraction, or a bare fraction.
func isNumeric(s string) bool {
	return numericRegexp.MatchString(s)
}

// parseDecimal parses any literal accepted by the decimal package,
// including exponent notation.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %v", ErrMalformedNumber, s, err)
	}
	return d, nil
}

var (
	bigTen  = big.NewInt(10)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
)

// fromParts builds coef * 10^exp, checking that exp fits the decimal
// exponent range.
func fromParts(coef *big.Int, exp int64) (decimal.Decimal, error) {
	if exp > math.MaxInt32 || exp < math.MinInt32 {
		return decimal.Zero, fmt.Errorf("%w: exponent %d out of range", ErrInvalidOperation, exp)
	}
	return decimal.NewFromBigInt(coef, int32(exp)), nil
}

// normalize strips trailing zeros from the coefficient so that the value
// carries no redundant fractional zeros.
func normalize(d decimal.Decimal) decimal.Decimal {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return decimal.Zero
	}
	exp := int64(d.Exponent())
	q, r := new(big.Int), new(big.Int)
	for exp < math.MaxInt32 {
		q.QuoRem(coef, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		coef, q = q, coef
		exp++
	}
	return decimal.NewFromBigInt(coef, int32(exp))
}

// countFactor divides every factor f out of n, returning the count.
func countFactor(n, f *big.Int) int64 {
	var count int64
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(n, f, r)
		if r.Sign() != 0 {
			return count
		}
		n.Set(q)
		count++
	}
}

// quoExact returns x / y exactly. The quotient of two decimals terminates
// only when the reduced denominator has no prime factors other than 2 and 5;
// otherwise ErrNonTerminating is returned.
func quoExact(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}

	r := new(big.Rat).SetFrac(x.Coefficient(), y.Coefficient())
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())

	twos := countFactor(den, bigTwo)
	fives := countFactor(den, bigFive)
	if den.Cmp(big.NewInt(1)) != 0 {
		return decimal.Zero, ErrNonTerminating
	}

	// num / (2^twos * 5^fives) == num * 10^k / 10^k / den with
	// k = max(twos, fives), and the scaled numerator divides exactly.
	k := max(twos, fives)
	scale := new(big.Int).Exp(bigTwo, big.NewInt(k-twos), nil)
	scale.Mul(scale, new(big.Int).Exp(bigFive, big.NewInt(k-fives), nil))
	num.Mul(num, scale)

	exp := int64(x.Exponent()) - int64(y.Exponent()) - k
	return fromParts(num, exp)
}

// sqrtExact returns the square root of x when it has a finite decimal
// expansion.
func sqrtExact(x decimal.Decimal) (decimal.Decimal, error) {
	switch x.Sign() {
	case -1:
		return decimal.Zero, ErrNegativeSqrt
	case 0:
		return decimal.Zero, nil
	}

	coef := x.Coefficient()
	exp := int64(x.Exponent())
	if exp%2 != 0 {
		coef.Mul(coef, bigTen)
		exp--
	}
	root := new(big.Int).Sqrt(coef)
	if new(big.Int).Mul(root, root).Cmp(coef) != 0 {
		return decimal.Zero, ErrInexactSqrt
	}
	return fromParts(root, exp/2)
}

// powInt returns x raised to the integer power n. Negative powers are
// computed as 1 / x^-n and must have an exact decimal result.
func powInt(x decimal.Decimal, n int64) (decimal.Decimal, error) {
	if n > maxPowExponent || n < -maxPowExponent {
		return decimal.Zero, fmt.Errorf("%w: exponent %d out of range", ErrInvalidOperation, n)
	}
	if n == 0 {
		return decimal.NewFromInt(1), nil
	}

	mag := n
	if mag < 0 {
		mag = -mag
	}
	coef := new(big.Int).Exp(x.Coefficient(), big.NewInt(mag), nil)
	p, err := fromParts(coef, int64(x.Exponent())*mag)
	if err != nil {
		return decimal.Zero, err
	}
	if n > 0 {
		return p, nil
	}
	return quoExact(decimal.NewFromInt(1), p)
}

var maxIntArg = decimal.NewFromInt(math.MaxInt32)

// truncInt truncates d toward zero for use as an integer argument.
func truncInt(d decimal.Decimal) (int64, error) {
	t := d.Truncate(0)
	if t.Abs().GreaterThan(maxIntArg) {
		return 0, fmt.Errorf("%w: %s is out of integer range", ErrInvalidOperation, d)
	}
	return t.IntPart(), nil
}

// roundHalfUp rounds x to the nearest integer with halves going toward
// positive infinity.
func roundHalfUp(x decimal.Decimal) decimal.Decimal {
	return x.Add(decimal.New(5, -1)).Floor()
}

// roundSignificant rounds x to digits significant digits, halves away from
// zero. Zero digits leaves x unchanged.
func roundSignificant(x decimal.Decimal, digits int64) (decimal.Decimal, error) {
	if digits < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative precision %d", ErrInvalidOperation, digits)
	}
	if digits == 0 || x.IsZero() {
		return x, nil
	}
	coef := x.Coefficient()
	have := int64(len(coef.Abs(coef).String()))
	if have <= digits {
		return x, nil
	}
	places := -(int64(x.Exponent()) + have - digits)
	if places > math.MaxInt32 || places < math.MinInt32 {
		return decimal.Zero, fmt.Errorf("%w: precision %d out of range", ErrInvalidOperation, digits)
	}
	return x.Round(int32(places)), nil
}

// exactFloat returns the exact decimal value of the finite binary float f.
// A float64 is m * 2^e with an integer m, and for negative e that equals
// m * 5^-e * 10^e.
func exactFloat(f float64) decimal.Decimal {
	frac, exp := math.Frexp(f)
	mant := big.NewInt(int64(frac * (1 << 53)))
	shift := exp - 53
	if shift >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(shift)), 0)
	}
	mant.Mul(mant, new(big.Int).Exp(bigFive, big.NewInt(int64(-shift)), nil))
	return decimal.NewFromBigInt(mant, int32(shift))
}

// trig applies a float64 function to x and converts the result back to a
// decimal, keeping every digit of the binary result.
func trig(f func(float64) float64, x decimal.Decimal) (decimal.Decimal, error) {
	v, _ := x.Float64()
	r := f(v)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return decimal.Zero, fmt.Errorf("%w: result %v is not a finite number", ErrInvalidOperation, r)
	}
	return exactFloat(r), nil
}
