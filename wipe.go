package ssss

import (
	"math/big"
	"runtime"
)

// Wipe overwrites b with zeros. The KeepAlive call keeps the stores from
// being treated as dead by the compiler.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// wipeInt clears the limbs backing z before resetting it to zero.
func wipeInt(z *big.Int) {
	if z == nil {
		return
	}
	w := z.Bits()
	for i := range w {
		w[i] = 0
	}
	z.SetInt64(0)
	runtime.KeepAlive(w)
}

func wipeInts(zs []*big.Int) {
	for _, z := range zs {
		wipeInt(z)
	}
}
