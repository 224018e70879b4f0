package params

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const grainSize = 80

// grain is the 80-bit self-shrinking Grain LFSR used to derive Poseidon round
// constants. The register is a ring: bit i lives at (head+i) mod 80.
type grain struct {
	bits *bitset.BitSet
	head uint
}

func newGrain(width, fullRounds, partialRounds int) *grain {
	g := &grain{bits: bitset.New(grainSize)}

	var pos uint
	push := func(v uint64, n int) {
		for i := n - 1; i >= 0; i-- {
			g.bits.SetTo(pos, (v>>uint(i))&1 == 1)
			pos++
		}
	}
	push(1, 2) // prime field
	push(0, 4) // x^alpha S-box
	push(fr.Bits, 12)
	push(uint64(width), 12)
	push(uint64(fullRounds), 10)
	push(uint64(partialRounds), 10)
	push(1<<30-1, 30)

	for range 160 {
		g.step()
	}
	return g
}

func (g *grain) at(i uint) uint {
	if g.bits.Test((g.head + i) % grainSize) {
		return 1
	}
	return 0
}

func (g *grain) step() uint {
	b := g.at(62) ^ g.at(51) ^ g.at(38) ^ g.at(23) ^ g.at(13) ^ g.at(0)
	g.bits.SetTo(g.head, b == 1)
	g.head = (g.head + 1) % grainSize
	return b
}

// next emits one output bit: bits are drawn in pairs and the second is kept
// only when the first is set.
func (g *grain) next() uint {
	for {
		first := g.step()
		second := g.step()
		if first == 1 {
			return second
		}
	}
}

// element samples a field element by rejection, most significant bit first.
func (g *grain) element(modulus *big.Int) *big.Int {
	for {
		v := new(big.Int)
		for range fr.Bits {
			v.Lsh(v, 1)
			if g.next() == 1 {
				v.SetBit(v, 0, 1)
			}
		}
		if v.Cmp(modulus) < 0 {
			return v
		}
	}
}

// Generate derives a constant table for the given widths. Round constants come
// from a Grain LFSR seeded with the field size, width and round counts; the MDS
// matrix is the Cauchy matrix M[i][j] = 1/(i+j+width).
func Generate(widths []int, fullRounds, partialRounds int) *Table {
	tbl := &Table{
		RoundConstants: make(map[int][]string, len(widths)),
		MDS:            make(map[int][][]string, len(widths)),
	}
	modulus := fr.Modulus()
	for _, w := range widths {
		g := newGrain(w, fullRounds, partialRounds)
		rc := make([]string, w*(fullRounds+partialRounds))
		for i := range rc {
			rc[i] = g.element(modulus).String()
		}
		tbl.RoundConstants[w] = rc

		mds := make([][]string, w)
		for i := range mds {
			mds[i] = make([]string, w)
			for j := range mds[i] {
				var e fr.Element
				e.SetUint64(uint64(i + j + w))
				e.Inverse(&e)
				mds[i][j] = e.BigInt(new(big.Int)).String()
			}
		}
		tbl.MDS[w] = mds
	}
	return tbl
}
