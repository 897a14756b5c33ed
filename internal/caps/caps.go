// Package caps answers the "build-time flag" design note of spec.md §9:
// whether a Document's optional per-Document promotion cache is
// worth sizing generously on this CPU. It is grounded on the teacher's
// own capability-gating idiom (minio/simdjson-go's simdjson_amd64.go,
// which gates its SIMD fast path on cpuid.CPU.Supports(cpuid.AVX2,
// cpuid.CLMUL)) — lazyjson has no SIMD path of its own, since the
// scanner is pull-based rather than a bulk structural-bits pass, but
// reuses the same capability check to pick a cache bucket count: wider
// cache lines favour a larger default bucket count for the
// promotion-cache map lazyjson.Document keeps when WithCachePromotion
// is enabled.
package caps

import "github.com/klauspost/cpuid/v2"

const (
	smallBuckets = 8
	largeBuckets = 64
)

// PromotionBuckets returns the default initial bucket count for a
// Document's per-instance promotion cache. It is a heuristic, not a
// correctness requirement: any positive value is safe, this only
// trades a little extra up-front allocation against rehashing on CPUs
// with enough cache bandwidth to make that worthwhile.
func PromotionBuckets() int {
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.CLMUL) {
		return largeBuckets
	}
	return smallBuckets
}
