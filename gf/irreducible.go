package gf

import (
	"math/big"
	"sync"

	"github.com/getssss/ssss/logging"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logging.NewLogger("GF")
}

// irredCoeff lists, for every degree 8, 16, ..., MaxDegree, the three middle
// exponents of a low-weight irreducible pentanomial
// x^deg + x^a + x^b + x^c + 1. Entry (deg/8 - 1) holds (a, b, c).
var irredCoeff = [MaxDegree / 8 * 3]uint8{
	4, 3, 1, 5, 3, 1, 4, 3, 1, 7, 3, 2, 5, 4, 3, 5, 3, 2, 7, 4, 2, 4, 3, 1,
	10, 9, 3, 9, 4, 2, 7, 6, 2, 10, 9, 6, 4, 3, 1, 5, 4, 3, 4, 3, 1, 7, 2, 1,
	5, 3, 2, 7, 4, 2, 6, 3, 2, 5, 3, 2, 15, 3, 2, 11, 3, 2, 9, 8, 7, 7, 2, 1,
	5, 3, 2, 9, 3, 1, 7, 3, 1, 9, 8, 3, 9, 4, 2, 8, 5, 3, 15, 14, 10, 10, 5, 2,
	9, 6, 2, 9, 3, 2, 9, 5, 2, 11, 10, 1, 7, 3, 2, 11, 2, 1, 9, 7, 4, 4, 3, 1,
	8, 3, 1, 7, 4, 1, 7, 2, 1, 13, 11, 6, 5, 3, 2, 7, 3, 2, 8, 7, 5, 12, 3, 2,
	13, 10, 6, 5, 3, 2, 5, 3, 2, 9, 5, 2, 9, 7, 2, 13, 4, 3, 4, 3, 1, 11, 6, 4,
	18, 9, 6, 19, 18, 13, 11, 3, 2, 15, 9, 6, 4, 3, 1, 16, 5, 2, 15, 14, 6, 8, 5, 2,
	15, 11, 2, 11, 6, 2, 7, 5, 3, 8, 3, 1, 19, 16, 9, 11, 9, 6, 15, 7, 6, 13, 4, 3,
	14, 13, 3, 13, 6, 3, 9, 5, 2, 19, 13, 6, 19, 10, 3, 11, 6, 5, 9, 2, 1, 14, 3, 2,
	13, 3, 1, 7, 5, 4, 11, 9, 8, 11, 6, 5, 23, 16, 9, 19, 14, 6, 23, 10, 2, 8, 3, 2,
	5, 4, 3, 9, 6, 4, 4, 3, 1, 13, 8, 6, 13, 11, 1, 13, 10, 3, 11, 6, 5, 19, 17, 4,
	15, 14, 7, 13, 9, 6, 9, 7, 3, 9, 7, 1, 14, 3, 2, 11, 8, 2, 11, 6, 4, 13, 5, 2,
	11, 5, 1, 11, 4, 1, 19, 10, 3, 21, 10, 6, 13, 3, 1, 15, 7, 1, 13, 12, 10, 11, 9, 5,
	19, 13, 8, 14, 4, 3, 17, 9, 5, 14, 11, 2, 17, 12, 4, 9, 8, 5, 13, 11, 4, 18, 15, 3,
	11, 10, 1, 11, 6, 5, 19, 17, 9, 16, 9, 5, 10, 9, 6, 12, 4, 3, 9, 5, 2, 19, 6, 1,
}

var (
	polyMu    sync.Mutex
	polyCache = make(map[int]*big.Int)
)

// irreducible returns the reducing polynomial for the given degree. Table
// entries are checked with Rabin's criterion before first use; an entry
// that fails the check falls back to the search path. Selected polynomials
// are cached per degree for the lifetime of the process.
func irreducible(degree int) *big.Int {
	polyMu.Lock()
	defer polyMu.Unlock()
	if p, ok := polyCache[degree]; ok {
		return p
	}
	p := tabulated(degree)
	if p == nil || !IsIrreducible(p) {
		log.Debugf("no tabulated polynomial for degree %d, searching", degree)
		p = search(degree)
	}
	polyCache[degree] = p
	return p
}

// tabulated builds the pentanomial recorded for degree, or nil when the
// table has no entry.
func tabulated(degree int) *big.Int {
	if degree < 8 || degree > MaxDegree || degree%8 != 0 {
		return nil
	}
	k := (degree/8 - 1) * 3
	p := new(big.Int)
	p.SetBit(p, degree, 1)
	p.SetBit(p, int(irredCoeff[k]), 1)
	p.SetBit(p, int(irredCoeff[k+1]), 1)
	p.SetBit(p, int(irredCoeff[k+2]), 1)
	p.SetBit(p, 0, 1)
	return p
}

// search walks odd candidates upward from x^degree + 1 until one passes
// the irreducibility test.
func search(degree int) *big.Int {
	c := new(big.Int)
	c.SetBit(c, degree, 1)
	c.SetBit(c, 0, 1)
	two := big.NewInt(2)
	for !IsIrreducible(c) {
		c.Add(c, two)
	}
	return c
}

// IsIrreducible applies Rabin's criterion to p over GF(2): p of degree m is
// irreducible iff x^(2^m) = x (mod p) and gcd(p, x^(2^(m/q)) + x) = 1 for
// every prime q dividing m.
func IsIrreducible(p *big.Int) bool {
	deg := p.BitLen() - 1
	if deg < 1 {
		return false
	}
	if p.Bit(0) == 0 {
		// divisible by x
		return false
	}
	x := big.NewInt(2)
	for _, q := range primeFactors(deg) {
		h := xPow2k(deg/q, p)
		h.Xor(h, x)
		if polyGCD(p, h).BitLen() != 1 {
			return false
		}
	}
	h := xPow2k(deg, p)
	h.Xor(h, x)
	return h.Sign() == 0
}

// xPow2k computes x^(2^k) mod p by k squarings in GF(2)[x]/p.
func xPow2k(k int, p *big.Int) *big.Int {
	t := big.NewInt(2)
	for i := 0; i < k; i++ {
		t = mulMod(t, t, p)
	}
	return t
}

// mulMod computes a*b mod p with carry-less schoolbook multiplication.
func mulMod(a, b, p *big.Int) *big.Int {
	r := new(big.Int)
	t := new(big.Int).Set(a)
	for i, n := 0, b.BitLen(); i < n; i++ {
		if b.Bit(i) == 1 {
			r.Xor(r, t)
		}
		t.Lsh(t, 1)
	}
	return polyMod(r, p)
}

// polyMod reduces a modulo p by XOR-shifting p against every bit of a at
// or above p's degree. The argument a is consumed.
func polyMod(a, p *big.Int) *big.Int {
	d := p.BitLen() - 1
	t := new(big.Int)
	for a.BitLen() > d {
		a.Xor(a, t.Lsh(p, uint(a.BitLen()-1-d)))
	}
	return a
}

// polyGCD computes the greatest common divisor of a and b in GF(2)[x].
func polyGCD(a, b *big.Int) *big.Int {
	u := new(big.Int).Set(a)
	v := new(big.Int).Set(b)
	for v.Sign() != 0 {
		u, v = v, polyMod(u, v)
	}
	return u
}

// primeFactors returns the distinct prime factors of n in ascending order.
func primeFactors(n int) []int {
	var out []int
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			out = append(out, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}
