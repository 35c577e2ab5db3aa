package store

import (
	"bytes"

	"github.com/google/btree"
)

// MemStore returns an in memory store without persistence, the default
// for tests.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// BTreeCacheWrap buffers writes in a btree on top of a read only store.
// Reads see the buffered writes first. Write flushes them to the batch it
// was created with, Discard drops them.
type BTreeCacheWrap struct {
	tree  *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache over kv whose writes end up in batch.
// A nil free list allocates a new one; pass the list of a parent cache to
// share nodes between nested caches.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		tree:  btree.NewWithFreeList(2, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap nests another cache. It writes into this one.
func (c BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(c, c.NewBatch(), c.free)
}

// NewBatch returns a batch that writes into this cache.
func (c BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(c)
}

// Write flushes all buffered changes and empties the cache.
func (c BTreeCacheWrap) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops all buffered changes. Nodes go back to the free list.
func (c BTreeCacheWrap) Discard() {
	for c.tree.DeleteMin() != nil {
	}
	if nb, ok := c.batch.(*NonAtomicBatch); ok {
		nb.ops = nil
	}
}

func (c BTreeCacheWrap) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(&entry{key: key, value: value})
	return c.batch.Set(key, value)
}

// Delete records a tombstone, so the key reads as missing even when the
// store below still has it.
func (c BTreeCacheWrap) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(&entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

func (c BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e := c.lookup(key); e != nil {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.back.Get(key)
}

func (c BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e := c.lookup(key); e != nil {
		return !e.deleted, nil
	}
	return c.back.Has(key)
}

func (c BTreeCacheWrap) lookup(key []byte) *entry {
	item := c.tree.Get(&entry{key: key})
	if item == nil {
		return nil
	}
	return item.(*entry)
}

// Iterator returns the keys in [start, end) in ascending order, buffered
// changes merged over the store below.
func (c BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := c.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(cachedRange(c.tree, start, end), parent)
}

// entry is a buffered write. A deleted entry is a tombstone.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = (*entry)(nil)

func (e *entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(*entry).key) < 0
}
