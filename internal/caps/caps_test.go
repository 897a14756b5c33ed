package caps

import "testing"

func TestPromotionBucketsIsPositive(t *testing.T) {
	n := PromotionBuckets()
	if n != smallBuckets && n != largeBuckets {
		t.Fatalf("PromotionBuckets returned %d, want %d or %d", n, smallBuckets, largeBuckets)
	}
}
