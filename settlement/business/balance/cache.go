package balance

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/settlement/model"
)

// BalanceCluster is the cache cluster for provider balance snapshots
var BalanceCluster = cache.NewCluster("balance-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Snapshots keeps the last known balance per connected account. Entries live
// well past the freshness TTL on purpose: a stale snapshot is the fallback
// when the processor is unreachable.
var Snapshots = cache.NewStructKeyspace[model.BalanceKey, model.ProviderBalanceSnapshot](
	BalanceCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "balance/:ProviderAccountID",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
