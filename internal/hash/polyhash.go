package hash

// PolyHashAlgorithm - The internally used bucket selection algorithm is a polynomial rolling hash with
// multiplier 31, reduced modulo the table size after every byte. It is cheap and spreads cooperative
// inputs well enough, but it is in no way cryptographic: adversarial keys can pile up in one bucket.
type PolyHashAlgorithm struct {
	tableSize int64
}

// NewPolyHashAlgorithm - Returns a pointer to a new PolyHashAlgorithm instance
func NewPolyHashAlgorithm(tableSize int64) *PolyHashAlgorithm {
	ha := &PolyHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the bucket algorithm.
//   - tableSize is the number of buckets the frequency table addresses
func (P *PolyHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = tableSize
}

// BucketNumber - Given key it generates an index (bucket) between 0 and table size - 1
func (P *PolyHashAlgorithm) BucketNumber(key []byte) int64 {
	var h uint64
	size := uint64(P.tableSize)
	for _, b := range key {
		h = (h*31 + uint64(b)) % size
	}

	return int64(h)
}

// GetTableSize - Returns the table size the implemented bucket function is supporting
func (P *PolyHashAlgorithm) GetTableSize() int64 {
	return P.tableSize
}
