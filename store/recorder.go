package store

import (
	"sort"
)

// Recorder is implemented by anything returned from NewRecordingStore.
type Recorder interface {
	// KVPairs maps every written key to its last value, nil for deletes.
	KVPairs() map[string][]byte
	// Keys returns every written key in ascending order.
	Keys() [][]byte
}

// RecordingStore wraps a store and remembers every key written through it,
// including writes that arrive through a batch or a cache wrap.
type RecordingStore struct {
	KVStore
	changes map[string][]byte
}

var (
	_ CacheableKVStore = (*RecordingStore)(nil)
	_ Recorder         = (*RecordingStore)(nil)
)

// NewRecordingStore returns a recorder around db.
func NewRecordingStore(db KVStore) *RecordingStore {
	return &RecordingStore{
		KVStore: db,
		changes: make(map[string][]byte),
	}
}

func (r *RecordingStore) KVPairs() map[string][]byte {
	return r.changes
}

func (r *RecordingStore) Keys() [][]byte {
	keys := make([]string, 0, len(r.changes))
	for k := range r.changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make([][]byte, len(keys))
	for i, k := range keys {
		res[i] = []byte(k)
	}
	return res
}

// Set records the change while performing it.
func (r *RecordingStore) Set(key, value []byte) error {
	if err := r.KVStore.Set(key, value); err != nil {
		return err
	}
	r.changes[string(key)] = value
	return nil
}

// Delete records the change while performing it.
func (r *RecordingStore) Delete(key []byte) error {
	if err := r.KVStore.Delete(key); err != nil {
		return err
	}
	r.changes[string(key)] = nil
	return nil
}

// NewBatch makes sure all writes go through this one
func (r *RecordingStore) NewBatch() Batch {
	return &recorderBatch{
		changes: r.changes,
		b:       r.KVStore.NewBatch(),
	}
}

// CacheWrap makes sure all cached writes also go through this
func (r *RecordingStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(r, r.NewBatch(), nil)
}

type recorderBatch struct {
	changes map[string][]byte
	ops     []Op
	b       Batch
}

var _ Batch = (*recorderBatch)(nil)

func (r *recorderBatch) Set(key, value []byte) error {
	r.ops = append(r.ops, SetOp(key, value))
	return r.b.Set(key, value)
}

func (r *recorderBatch) Delete(key []byte) error {
	r.ops = append(r.ops, DelOp(key))
	return r.b.Delete(key)
}

// Write records the batched ops only once they reach the store.
func (r *recorderBatch) Write() error {
	if err := r.b.Write(); err != nil {
		return err
	}
	for _, op := range r.ops {
		if op.IsSet() {
			r.changes[string(op.key)] = op.value
		} else {
			r.changes[string(op.key)] = nil
		}
	}
	r.ops = nil
	return nil
}
