package hashfunc

import (
	"github.com/zeebo/xxh3"
)

// XXH3HashAlgorithm - A ready made BucketAlgorithm implemented using xxh3.Hash to create a
// hash value over the key and then reducing it modulo the table size. It costs a little more
// per short key than the internal polynomial hash but is far more uniform on skewed key sets.
type XXH3HashAlgorithm struct {
	tableSize int64
}

// NewXXH3HashAlgorithm - Returns a pointer to a new XXH3HashAlgorithm instance
func NewXXH3HashAlgorithm(tableSize int64) *XXH3HashAlgorithm {
	ha := &XXH3HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the bucket algorithm.
//   - tableSize is the number of buckets the frequency table addresses
func (X *XXH3HashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// BucketNumber - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXH3HashAlgorithm) BucketNumber(key []byte) int64 {
	h := xxh3.Hash(key)
	return int64(h % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented bucket function is supporting
func (X *XXH3HashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
