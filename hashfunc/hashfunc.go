package hashfunc

// BucketAlgorithm - Interface that permits an implementation using the frequency table to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type BucketAlgorithm interface {
	// SetTableSize - Sets the table size for the bucket algorithm.
	// It is called once when the frequency table is created, with the fixed bucket capacity chosen by the
	// coordinator. Hence, if a custom algorithm is supplied that already holds a table size, it will be
	// overwritten by the capacity of the table it is attached to.
	//   - tableSize is the number of buckets the frequency table addresses
	SetTableSize(tableSize int64)

	// BucketNumber - Given key it generates an index (bucket) between 0 and table size - 1.
	// Any number returned outside that range will result in an error down stream.
	BucketNumber(key []byte) int64

	// GetTableSize - Returns the table size the implemented bucket function is supporting.
	// It is very important that this function return the actual table size and not just the size given at
	// instantiating time or in a call to SetTableSize, should the implementation round it in any way.
	GetTableSize() int64
}
