// Package curve implements scalar and point arithmetic for secp256k1 (C1).
//
// Scalars are tracked modulo the group order N as math/big integers;
// point arithmetic delegates to the Jacobian group law in
// github.com/decred/dcrd/dcrec/secp256k1/v4. Serialization is the
// protocol's own fixed 64-byte X||Y encoding (§3), not DER or SEC1.
package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// N is the order of the secp256k1 base point group.
var N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// fieldP is the field prime, used for the on-curve check in Deserialize
// and for point negation.
var fieldP, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

var curveB = big.NewInt(7)

// Scalar is an integer modulo N.
type Scalar struct {
	v *big.Int
}

// NewScalar returns the zero scalar.
func NewScalar() *Scalar {
	return &Scalar{v: new(big.Int)}
}

func (s *Scalar) reduce() *Scalar {
	s.v.Mod(s.v, N)
	return s
}

// ScalarFromBytes reduces a big-endian byte string modulo N.
// Per spec §4.1, out-of-range scalars are accepted and reduced rather
// than rejected; the biased reduction this introduces is unchanged
// from the source.
func ScalarFromBytes(b []byte) *Scalar {
	s := &Scalar{v: new(big.Int).SetBytes(b)}
	return s.reduce()
}

// ScalarFromBigInt reduces x modulo N.
func ScalarFromBigInt(x *big.Int) *Scalar {
	s := &Scalar{v: new(big.Int).Set(x)}
	return s.reduce()
}

// ScalarFromUint64 builds a scalar from a small integer, useful for party
// indices in Lagrange interpolation.
func ScalarFromUint64(u uint64) *Scalar {
	return &Scalar{v: new(big.Int).SetUint64(u)}
}

// RandomScalar draws a uniform value in [1, N).
func RandomScalar(rnd io.Reader) (*Scalar, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	nMinus1 := new(big.Int).Sub(N, big.NewInt(1))
	for {
		x, err := rand.Int(rnd, nMinus1)
		if err != nil {
			return nil, fmt.Errorf("curve: random scalar: %w", err)
		}
		x.Add(x, big.NewInt(1))
		return &Scalar{v: x}, nil
	}
}

// Set copies o into s and returns s.
func (s *Scalar) Set(o *Scalar) *Scalar {
	s.v.Set(o.v)
	return s
}

// Clone returns an independent copy.
func (s *Scalar) Clone() *Scalar {
	return &Scalar{v: new(big.Int).Set(s.v)}
}

// Add sets s = s + o (mod N) and returns s.
func (s *Scalar) Add(o *Scalar) *Scalar {
	s.v.Add(s.v, o.v)
	return s.reduce()
}

// Sub sets s = s - o (mod N) and returns s.
func (s *Scalar) Sub(o *Scalar) *Scalar {
	s.v.Sub(s.v, o.v)
	return s.reduce()
}

// Mul sets s = s * o (mod N) and returns s.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	s.v.Mul(s.v, o.v)
	return s.reduce()
}

// Negate sets s = -s (mod N) and returns s.
func (s *Scalar) Negate() *Scalar {
	s.v.Neg(s.v)
	return s.reduce()
}

// Inverse sets s = s^-1 (mod N) and returns s. Panics if s is zero, since
// no caller in this protocol ever inverts a zero scalar (Lagrange
// denominators are always products of nonzero party-index differences).
func (s *Scalar) Inverse() *Scalar {
	if s.v.Sign() == 0 {
		panic("curve: inverse of zero scalar")
	}
	s.v.ModInverse(s.v, N)
	return s
}

// Equal reports whether s and o represent the same residue mod N.
func (s *Scalar) Equal(o *Scalar) bool {
	return s.v.Cmp(o.v) == 0
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// BigInt returns the underlying value; callers must not mutate it.
func (s *Scalar) BigInt() *big.Int {
	return s.v
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() [32]byte {
	var out [32]byte
	b := s.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// String renders s as a decimal string, matching the token format's
// arbitrary-precision numeric fields (§6).
func (s *Scalar) String() string {
	return s.v.String()
}

func toModNScalar(s *Scalar) secp256k1.ModNScalar {
	var ms secp256k1.ModNScalar
	b := s.Bytes()
	ms.SetByteSlice(b[:])
	return ms
}

// Point is an affine point on secp256k1, including the identity.
type Point struct {
	x, y       *big.Int
	isIdentity bool
}

// NewPoint returns the identity element (point at infinity).
func NewPoint() *Point {
	return &Point{isIdentity: true}
}

// pointFromJacobian converts a (possibly infinite) Jacobian point.
func pointFromJacobian(j *secp256k1.JacobianPoint) *Point {
	if j.Z.IsZero() {
		return &Point{isIdentity: true}
	}
	j.ToAffine()
	xb := j.X.Bytes()
	yb := j.Y.Bytes()
	return &Point{
		x: new(big.Int).SetBytes(xb[:]),
		y: new(big.Int).SetBytes(yb[:]),
	}
}

func (p *Point) toJacobian() secp256k1.JacobianPoint {
	var j secp256k1.JacobianPoint
	if p.isIdentity {
		return j // zero-value Z == 0, the identity sentinel
	}
	var xb, yb [32]byte
	xBytes := p.x.Bytes()
	yBytes := p.y.Bytes()
	copy(xb[32-len(xBytes):], xBytes)
	copy(yb[32-len(yBytes):], yBytes)
	j.X.SetBytes(&xb)
	j.Y.SetBytes(&yb)
	j.Z.SetInt(1)
	return j
}

// ScalarBaseMult computes s·G.
func ScalarBaseMult(s *Scalar) *Point {
	ms := toModNScalar(s)
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&ms, &result)
	return pointFromJacobian(&result)
}

// ActOnBase is an alias for ScalarBaseMult(s), matching the chainable
// naming the teacher's curve.Scalar uses (s.ActOnBase() == s·G).
func (s *Scalar) ActOnBase() *Point {
	return ScalarBaseMult(s)
}

// Act multiplies p by s, i.e. computes s·p. Matches the teacher's
// chainable curve.Scalar.Act(point) naming.
func (s *Scalar) Act(p *Point) *Point {
	return p.ScalarMult(s)
}

// ScalarMult computes s·p.
func (p *Point) ScalarMult(s *Scalar) *Point {
	if p.isIdentity || s.IsZero() {
		return NewPoint()
	}
	ms := toModNScalar(s)
	pj := p.toJacobian()
	var result secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&ms, &pj, &result)
	return pointFromJacobian(&result)
}

// Add computes p + q.
func (p *Point) Add(q *Point) *Point {
	if p.isIdentity {
		return q.Clone()
	}
	if q.isIdentity {
		return p.Clone()
	}
	pj, qj := p.toJacobian(), q.toJacobian()
	var result secp256k1.JacobianPoint
	secp256k1.AddNonConst(&pj, &qj, &result)
	return pointFromJacobian(&result)
}

// Negate computes -p.
func (p *Point) Negate() *Point {
	if p.isIdentity {
		return NewPoint()
	}
	negY := new(big.Int).Sub(fieldP, p.y)
	negY.Mod(negY, fieldP)
	return &Point{x: new(big.Int).Set(p.x), y: negY}
}

// Clone returns an independent copy of p.
func (p *Point) Clone() *Point {
	if p.isIdentity {
		return NewPoint()
	}
	return &Point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y)}
}

// Equal reports whether p and q are the same point.
func (p *Point) Equal(q *Point) bool {
	if p.isIdentity || q.isIdentity {
		return p.isIdentity == q.isIdentity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.isIdentity
}

// Coords returns the affine coordinates of p. Panics on the identity;
// callers must check IsIdentity first (mirrors Serialize's own check).
func (p *Point) Coords() (x, y *big.Int) {
	if p.isIdentity {
		panic("curve: identity point has no affine coordinates")
	}
	return p.x, p.y
}

// Serialize encodes p as 64 bytes: 32-byte big-endian X || 32-byte
// big-endian Y. The identity is encoded as 64 zero bytes (§3).
func (p *Point) Serialize() [64]byte {
	var out [64]byte
	if p.isIdentity {
		return out
	}
	xb := p.x.Bytes()
	yb := p.y.Bytes()
	copy(out[32-len(xb):32], xb)
	copy(out[64-len(yb):64], yb)
	return out
}

// Deserialize decodes a 64-byte X||Y point, validating it lies on the
// curve (ErrNotOnCurve) unless it is the all-zero identity encoding.
func Deserialize(b []byte) (*Point, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("curve: serialized point must be 64 bytes, got %d", len(b))
	}
	x := new(big.Int).SetBytes(b[:32])
	y := new(big.Int).SetBytes(b[32:])
	if x.Sign() == 0 && y.Sign() == 0 {
		return NewPoint(), nil
	}
	if !isOnCurve(x, y) {
		return nil, ErrNotOnCurve
	}
	return &Point{x: x, y: y}, nil
}

func isOnCurve(x, y *big.Int) bool {
	if x.Cmp(fieldP) >= 0 || y.Cmp(fieldP) >= 0 {
		return false
	}
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, fieldP)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, fieldP)

	return lhs.Cmp(rhs) == 0
}
