//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPolyHashAlgorithm_BucketNumber(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewPolyHashAlgorithm(10)

		// Execute
		bucketNo := h.BucketNumber([]byte("Alice"))

		// Check
		assert.Equal(t, int64(8), bucketNo, "create a valid bucket number")
	})

	t.Run("reduces modulo table size after every byte", func(t *testing.T) {
		// Prepare
		h := NewPolyHashAlgorithm(7)

		// Execute
		bucketNo := h.BucketNumber([]byte("Bob"))

		// Check
		assert.Equal(t, int64(3), bucketNo, "create a valid bucket number")
	})

	t.Run("stays within range for long keys", func(t *testing.T) {
		// Prepare
		key := make([]byte, 1022)
		for i := range key {
			key[i] = byte(i)
		}
		h := NewPolyHashAlgorithm(13)

		// Execute
		bucketNo := h.BucketNumber(key)

		// Check
		assert.GreaterOrEqual(t, bucketNo, int64(0), "bucket number not negative")
		assert.Less(t, bucketNo, int64(13), "bucket number below table size")
	})
}

func TestPolyHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewPolyHashAlgorithm(10)
		assert.Equal(t, int64(10), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(17)

		// Check
		assert.Equal(t, int64(17), h.GetTableSize(), "correct tableSize value")
	})
}
