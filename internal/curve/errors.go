package curve

import "errors"

// ErrNotOnCurve is returned by Deserialize when the given coordinates do
// not satisfy the secp256k1 curve equation. Callers such as token
// decoding and the CA node facade pass it on inside their own errors.
var ErrNotOnCurve = errors.New("curve: point is not on secp256k1")
