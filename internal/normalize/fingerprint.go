package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint derives the deduplication key for a transaction from its
// four identity fields. Identical tuples always collide: that is the
// dedupe signal, so two genuinely distinct transactions sharing a
// date, amount, cleaned description, and account are indistinguishable.
// Fields are joined with a pipe without escaping; a pipe inside a
// field could in theory cause a false collision.
func Fingerprint(txnDate string, amountCents int64, descClean, accountID string) string {
	key := fmt.Sprintf("%s|%d|%s|%s", txnDate, amountCents, descClean, accountID)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
