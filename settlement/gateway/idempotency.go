package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// TransferIdempotencyKey derives the key for moving an authorization's funds
// to the provider. It depends only on (orderID, paymentIntentRef), so a
// crashed-and-restarted sweep asks the processor for the same transfer again
// instead of creating a second one.
func TransferIdempotencyKey(orderID int64, paymentIntentRef string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("transfer/%d/%s", orderID, paymentIntentRef)))
	return "tr_" + hex.EncodeToString(sum[:16])
}

// AuthorizationIdempotencyKey derives the key for authorizing a batch of
// entries. The sorted id set makes the key independent of request ordering, so
// a retried approval of the same batch reuses the original authorization.
func AuthorizationIdempotencyKey(orderID int64, entryIDs []int64) string {
	ids := append([]int64(nil), entryIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "authorize/%d", orderID)
	for _, id := range ids {
		fmt.Fprintf(&b, "/%d", id)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return "auth_" + hex.EncodeToString(sum[:16])
}
