package store

import (
	"bytes"

	"github.com/google/btree"
)

// cachedRange collects all buffered entries within [start, end). A nil
// bound is open on that side.
func cachedRange(bt *btree.BTree, start, end []byte) []*entry {
	var items []*entry
	collect := func(item btree.Item) bool {
		items = append(items, item.(*entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(&entry{key: end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(&entry{key: start}, collect)
	default:
		bt.AscendRange(&entry{key: start}, &entry{key: end}, collect)
	}
	return items
}

// mergeIterator combines the cached writes of a BTreeCacheWrap with the
// iterator of the store below it. A cached item shadows the parent entry
// with the same key and deleted items are skipped.
type mergeIterator struct {
	cache  []*entry
	parent Iterator

	key, value []byte
	valid      bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(cache []*entry, parent Iterator) (*mergeIterator, error) {
	it := &mergeIterator{cache: cache, parent: parent}
	if err := it.advance(); err != nil {
		parent.Close()
		return nil, err
	}
	return it, nil
}

// advance moves to the next visible entry.
func (it *mergeIterator) advance() error {
	for {
		switch {
		case len(it.cache) == 0 && !it.parent.Valid():
			it.valid = false
			return nil
		case len(it.cache) == 0:
			return it.takeParent()
		}

		head := it.cache[0]
		if it.parent.Valid() {
			cmp := bytes.Compare(it.parent.Key(), head.key)
			if cmp < 0 {
				return it.takeParent()
			}
			if cmp == 0 {
				// Cached value wins, drop the one from the parent.
				if err := it.parent.Next(); err != nil {
					return err
				}
			}
		}

		it.cache = it.cache[1:]
		if !head.deleted {
			it.key, it.value, it.valid = head.key, head.value, true
			return nil
		}
	}
}

// takeParent copies the current parent entry, as the parent may reuse its
// buffers, and moves the parent forward.
func (it *mergeIterator) takeParent() error {
	it.key = append([]byte(nil), it.parent.Key()...)
	it.value = append([]byte(nil), it.parent.Value()...)
	it.valid = true
	return it.parent.Next()
}

// Valid implements Iterator and returns true iff it can be read
func (it *mergeIterator) Valid() bool {
	return it.valid
}

// Next moves to the next visible key.
func (it *mergeIterator) Next() error {
	return it.advance()
}

// Key returns the key of the cursor.
func (it *mergeIterator) Key() []byte {
	return it.key
}

// Value returns the value of the cursor.
func (it *mergeIterator) Value() []byte {
	return it.value
}

// Close releases the Iterator.
func (it *mergeIterator) Close() {
	it.parent.Close()
	it.cache = nil
	it.valid = false
}
