package domainhash

import "strconv"

// formatFloat is the canonical feature encoding referenced by H0: fixed
// 8-decimal-place notation. This is a deliberate, documented choice
// between implementations (spec §9 flags float->string as brittle);
// "%.8f"-equivalent precision is enough to preserve equality for the
// biometric simulator's generated values without depending on a
// particular language's float-repr algorithm.
func formatFloat(w float64) string {
	return strconv.FormatFloat(w, 'f', 8, 64)
}
