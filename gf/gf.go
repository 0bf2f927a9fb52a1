/*
Package gf implements arithmetic in binary extension fields GF(2^m).

Field elements are polynomials over GF(2) held in big integers: bit k of the
integer is the coefficient of x^k. Addition is XOR; multiplication is
carry-less schoolbook multiplication reduced modulo an irreducible polynomial
of degree m chosen at construction time.
*/
package gf

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// MaxDegree is the largest supported extension degree. Secrets wider than
// MaxDegree/8 bytes cannot be shared.
const MaxDegree = 1024

// ErrZeroInverse is returned by Invert when asked for the inverse of the
// zero element.
var ErrZeroInverse = errors.New("gf: zero has no multiplicative inverse")

// Field represents GF(2^m) for a fixed degree m together with the
// irreducible polynomial the multiplication reduces by.
type Field struct {
	degree int
	poly   *big.Int
}

// New constructs the field GF(2^degree). The degree must be a positive
// multiple of 8 not exceeding MaxDegree; the reducing polynomial is taken
// from the built-in table or, failing that, discovered by search.
func New(degree int) (*Field, error) {
	if degree <= 0 || degree%8 != 0 || degree > MaxDegree {
		return nil, fmt.Errorf("gf: unsupported field degree %d", degree)
	}
	return &Field{degree: degree, poly: irreducible(degree)}, nil
}

// Degree returns the extension degree m.
func (f *Field) Degree() int {
	return f.degree
}

// ByteLen returns the number of bytes needed to hold one field element.
func (f *Field) ByteLen() int {
	return (f.degree + 7) / 8
}

// Polynomial returns a copy of the reducing polynomial.
func (f *Field) Polynomial() *big.Int {
	return new(big.Int).Set(f.poly)
}

// Add returns a + b. Addition in characteristic 2 is XOR and does not
// depend on the reducing polynomial, so it is field-independent.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Xor(a, b)
}

// Mul returns a * b reduced modulo the field polynomial.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	return mulMod(a, b, f.poly)
}

// Invert returns the multiplicative inverse of a, computed with the
// extended Euclidean algorithm over GF(2)[x].
func (f *Field) Invert(a *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, ErrZeroInverse
	}
	u := new(big.Int).Set(a)
	v := new(big.Int).Set(f.poly)
	g1 := big.NewInt(1)
	g2 := new(big.Int)
	t := new(big.Int)
	for u.BitLen() > 1 {
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u.Xor(u, t.Lsh(v, uint(j)))
		g1.Xor(g1, t.Lsh(g2, uint(j)))
	}
	return polyMod(g1, f.poly), nil
}

// Random draws a uniform field element from r. The element is assembled
// from ByteLen random bytes with the bits above the degree masked off;
// zero is a possible outcome.
func (f *Field) Random(r io.Reader) (*big.Int, error) {
	buf := make([]byte, f.ByteLen())
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	if rem := f.degree % 8; rem != 0 {
		buf[0] &= byte(1<<uint(rem)) - 1
	}
	x := new(big.Int).SetBytes(buf)
	for i := range buf {
		buf[i] = 0
	}
	return x, nil
}

// Element imports a big-endian byte string as a field element. The input
// must not be wider than the field.
func (f *Field) Element(b []byte) (*big.Int, error) {
	x := new(big.Int).SetBytes(b)
	if x.BitLen() > f.degree {
		return nil, fmt.Errorf("gf: value of %d bits does not fit GF(2^%d)", x.BitLen(), f.degree)
	}
	return x, nil
}

// Bytes exports a field element as ByteLen big-endian bytes.
func (f *Field) Bytes(a *big.Int) []byte {
	out := make([]byte, f.ByteLen())
	a.FillBytes(out)
	return out
}
