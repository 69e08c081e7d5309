package token

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/luxfi/bekd/internal/curve"
)

// tokenJSON mirrors spec §6's on-disk shape: c/rho/tags/sigma as hex
// strings, R0/R1/hA/A as arbitrary-precision decimal numbers encoded as
// JSON strings (to avoid float64 truncation on unmarshal), matching the
// original wallet_client.py's plain-int JSON emission.
type tokenJSON struct {
	TU  tuJSON  `json:"TU"`
	TCA tcaJSON `json:"TCA"`
}

type tuJSON struct {
	C   string `json:"c"`
	Rho string `json:"rho"`
}

type tcaJSON struct {
	R0    [2]string `json:"R0"`
	R1    [2]string `json:"R1"`
	HA    string    `json:"hA"`
	Sigma string    `json:"sigma"`
	A     []string  `json:"A"`
	Tags  []string  `json:"tags"`
}

// MarshalJSON implements json.Marshaler.
func (t *Token) MarshalJSON() ([]byte, error) {
	if t.TCA.R0.IsIdentity() || t.TCA.R1.IsIdentity() {
		return nil, fmt.Errorf("token: cannot marshal a token with an identity envelope point")
	}
	r0x, r0y := t.TCA.R0.Coords()
	r1x, r1y := t.TCA.R1.Coords()

	out := tokenJSON{
		TU: tuJSON{
			C:   hex.EncodeToString(t.TU.C[:]),
			Rho: hex.EncodeToString(t.TU.Rho[:]),
		},
		TCA: tcaJSON{
			R0:    [2]string{r0x.String(), r0y.String()},
			R1:    [2]string{r1x.String(), r1y.String()},
			HA:    t.TCA.HA.String(),
			Sigma: hex.EncodeToString(t.TCA.Sigma),
			A:     make([]string, len(t.TCA.A)),
			Tags:  make([]string, len(t.TCA.Tags)),
		},
	}
	for i, a := range t.TCA.A {
		out.TCA.A[i] = a.String()
	}
	for i, tg := range t.TCA.Tags {
		out.TCA.Tags[i] = hex.EncodeToString(tg)
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Token) UnmarshalJSON(data []byte) error {
	var in tokenJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("token: %w", err)
	}

	c, err := decodeHex32(in.TU.C)
	if err != nil {
		return fmt.Errorf("token: decoding c: %w", err)
	}
	rho, err := decodeHex32(in.TU.Rho)
	if err != nil {
		return fmt.Errorf("token: decoding rho: %w", err)
	}
	t.TU = TU{C: c, Rho: rho}

	r0, err := pointFromDecimalPair(in.TCA.R0)
	if err != nil {
		return fmt.Errorf("token: decoding R0: %w", err)
	}
	r1, err := pointFromDecimalPair(in.TCA.R1)
	if err != nil {
		return fmt.Errorf("token: decoding R1: %w", err)
	}
	hA, err := scalarFromDecimal(in.TCA.HA)
	if err != nil {
		return fmt.Errorf("token: decoding hA: %w", err)
	}
	sigma, err := hex.DecodeString(in.TCA.Sigma)
	if err != nil {
		return fmt.Errorf("token: decoding sigma: %w", err)
	}

	a := make([]*curve.Scalar, len(in.TCA.A))
	for i, s := range in.TCA.A {
		v, err := scalarFromDecimal(s)
		if err != nil {
			return fmt.Errorf("token: decoding A[%d]: %w", i, err)
		}
		a[i] = v
	}

	tags := make([][]byte, len(in.TCA.Tags))
	for i, s := range in.TCA.Tags {
		v, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("token: decoding tags[%d]: %w", i, err)
		}
		tags[i] = v
	}

	t.TCA = TCA{
		R0:    r0,
		R1:    r1,
		HA:    hA,
		Sigma: sigma,
		A:     a,
		Tags:  tags,
	}
	return nil
}

func decodeHex32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func scalarFromDecimal(s string) (*curve.Scalar, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal integer %q", s)
	}
	return curve.ScalarFromBigInt(v), nil
}

func pointFromDecimalPair(pair [2]string) (*curve.Point, error) {
	x, ok := new(big.Int).SetString(pair[0], 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal integer %q", pair[0])
	}
	y, ok := new(big.Int).SetString(pair[1], 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal integer %q", pair[1])
	}
	var ser [64]byte
	xb := x.Bytes()
	yb := y.Bytes()
	copy(ser[32-len(xb):32], xb)
	copy(ser[64-len(yb):64], yb)
	return curve.Deserialize(ser[:])
}
