package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferIdempotencyKey(t *testing.T) {
	key := TransferIdempotencyKey(42, "pi_abc123")

	assert.True(t, strings.HasPrefix(key, "tr_"))
	assert.Len(t, key, 3+32)

	// Same inputs, same key: a restarted sweep must ask the processor for the
	// same transfer again.
	assert.Equal(t, key, TransferIdempotencyKey(42, "pi_abc123"))

	assert.NotEqual(t, key, TransferIdempotencyKey(43, "pi_abc123"))
	assert.NotEqual(t, key, TransferIdempotencyKey(42, "pi_abc124"))
}

func TestAuthorizationIdempotencyKey(t *testing.T) {
	key := AuthorizationIdempotencyKey(7, []int64{3, 1, 2})

	assert.True(t, strings.HasPrefix(key, "auth_"))

	// Request ordering must not change the key; the batch is the same batch.
	assert.Equal(t, key, AuthorizationIdempotencyKey(7, []int64{1, 2, 3}))
	assert.Equal(t, key, AuthorizationIdempotencyKey(7, []int64{2, 3, 1}))

	assert.NotEqual(t, key, AuthorizationIdempotencyKey(8, []int64{1, 2, 3}))
	assert.NotEqual(t, key, AuthorizationIdempotencyKey(7, []int64{1, 2}))
	assert.NotEqual(t, key, AuthorizationIdempotencyKey(7, []int64{1, 2, 4}))
}

func TestAuthorizationIdempotencyKey_DoesNotMutateInput(t *testing.T) {
	ids := []int64{3, 1, 2}
	AuthorizationIdempotencyKey(7, ids)
	assert.Equal(t, []int64{3, 1, 2}, ids)
}
