package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/iov-one/vault/vaulttest/assert"
)

// testSuite runs the same checks against every CacheableKVStore
// implementation. Only the constructor differs.
type testSuite struct {
	makeBase func(t testing.TB) (base CacheableKVStore, cleanup func())
}

// GetSet does basic sanity checks on our cache
func (s *testSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase(t)
	defer cleanup()

	k, v := []byte("acct:initializer"), []byte("lamports")
	assertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("acct:taker"), []byte("tokens")
	assertGetHas(t, cache, k2, nil, false)
	assert.Nil(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	assert.Nil(t, cache.Write())
	assertGetHas(t, base, k, v, true)
	assertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("acct:escrow"), []byte("record")
	c2 := base.CacheWrap()
	assertGetHas(t, c2, k, v, true)
	assert.Nil(t, c2.Set(k3, v3))
	c2.Discard()
	assertGetHas(t, base, k3, nil, false)

	// and commit another
	c3 := base.CacheWrap()
	assert.Nil(t, c3.Delete(k))
	assert.Nil(t, c3.Write())

	assertGetHas(t, base, k, nil, false)
	assertGetHas(t, base, k2, v2, true)
	assertGetHas(t, base, k3, nil, false)
}

// NestedCache checks that a cache of a cache only reaches the base once
// both layers are written.
func (s *testSuite) NestedCache(t *testing.T) {
	base, cleanup := s.makeBase(t)
	defer cleanup()

	outer := base.CacheWrap()
	inner := outer.CacheWrap()
	k, v := []byte("acct:deposit"), []byte("x")
	assert.Nil(t, inner.Set(k, v))

	assertGetHas(t, outer, k, nil, false)
	assert.Nil(t, inner.Write())
	assertGetHas(t, outer, k, v, true)
	assertGetHas(t, base, k, nil, false)
	assert.Nil(t, outer.Write())
	assertGetHas(t, base, k, v, true)
}

// CacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func (s *testSuite) CacheConflicts(t *testing.T) {
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model // Key is what we query, Value is what we expect
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			childOps:      []Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			parentQueries: []Model{{ks[1], vs[1]}, {ks[2], vs[2]}, {ks[3], nil}},
			childQueries:  []Model{{ks[1], vs[11]}, {ks[2], nil}, {ks[3], vs[7]}},
		},
		"set after delete": {
			parentOps:     []Op{SetOp(ks[4], vs[4])},
			childOps:      []Op{DelOp(ks[4]), SetOp(ks[4], vs[5])},
			parentQueries: []Model{{ks[4], vs[4]}},
			childQueries:  []Model{{ks[4], vs[5]}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase(t)
			defer cleanup()

			for _, op := range tc.parentOps {
				assert.Nil(t, op.Apply(parent))
			}

			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				assert.Nil(t, op.Apply(child))
			}

			for _, q := range tc.parentQueries {
				assertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
			for _, q := range tc.childQueries {
				assertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			assert.Nil(t, child.Write())
			for _, q := range tc.childQueries {
				assertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
		})
	}
}

// FuzzIterator makes sure the basic iterator works. Includes random
// deletes, but not nested iterators.
func (s *testSuite) FuzzIterator(t *testing.T) {
	const Size = 50
	const DeleteCount = 20

	toSet := randModels(Size, 8, 40)
	toDel := randModels(DeleteCount, 8, 40)
	expect := sortModels(toSet)
	ops := append(makeSetOps(toSet...), makeDelOps(toDel...)...)

	parentSet := randModels(Size, 8, 40)
	parentDel := randModels(DeleteCount, 8, 40)
	parentOps := append(makeSetOps(parentSet...), makeDelOps(parentDel...)...)

	both := sortModels(append(toSet, parentSet...))

	cases := map[string]iterCase{
		"just write to a child with empty parent": {
			child: ops,
			queries: []rangeQuery{
				{nil, nil, expect},
				{expect[10].Key, nil, expect[10:]},
				{nil, expect[Size-8].Key, expect[:Size-8]},
				{expect[17].Key, expect[28].Key, expect[17:28]},
			},
		},
		"iterator combines child and parent": {
			pre:   parentOps,
			child: ops,
			queries: []rangeQuery{
				{nil, nil, both},
				{both[10].Key, nil, both[10:]},
				{nil, both[Size-8].Key, both[:Size-8]},
				{both[17].Key, both[28].Key, both[17:28]},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase(t)
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

// IteratorWithConflicts covers cached values shadowing and deleting the
// values of the parent.
func (s *testSuite) IteratorWithConflicts(t *testing.T) {
	ms := randModels(6, 20, 100)
	a, a2, b, b2, c, d := ms[0], ms[1], ms[2], ms[3], ms[4], ms[5]
	// a2, b2 have same keys, different values
	a2.Key = a.Key
	b2.Key = b.Key

	expect0 := sortModels([]Model{a, b, c})
	expect1 := sortModels([]Model{a2, b2, c, d})
	expect2 := []Model{c}

	cases := map[string]iterCase{
		"iterate in child only": {
			child: makeSetOps(a, b, c),
			queries: []rangeQuery{
				{nil, nil, expect0},
				{expect0[1].Key, expect0[2].Key, expect0[1:2]},
			},
		},
		"iterate over parent only": {
			pre: makeSetOps(a, b, c),
			queries: []rangeQuery{
				{nil, nil, expect0},
				{expect0[1].Key, expect0[2].Key, expect0[1:2]},
			},
		},
		"simple combination": {
			pre:   makeSetOps(a, b),
			child: makeSetOps(c),
			queries: []rangeQuery{
				{nil, nil, expect0},
				{expect0[1].Key, expect0[2].Key, expect0[1:2]},
			},
		},
		"overwrite data should show child data": {
			pre:   makeSetOps(a, b, c),
			child: makeSetOps(a2, b2, d),
			queries: []rangeQuery{
				{nil, nil, expect1},
				{expect1[1].Key, expect1[3].Key, expect1[1:3]},
			},
		},
		"deletes in child hide parent data": {
			pre:   makeSetOps(a, c, d),
			child: makeDelOps(a, b, d),
			queries: []rangeQuery{
				{nil, nil, expect2},
				{nil, c.Key, nil},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase(t)
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

func assertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.EqualBytes(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	if _, err := rand.Read(res); err != nil {
		panic(err)
	}
	return res
}

// randKeys returns a slice of count keys, all of a given size
func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(size)
	}
	return res
}

// randModels produces a random set of models
func randModels(count, keySize, valueSize int) []Model {
	models := make([]Model, count)
	for i := 0; i < count; i++ {
		models[i].Key = randBytes(keySize)
		models[i].Value = randBytes(valueSize)
	}
	return models
}

// iterCase is a test case for iteration
type iterCase struct {
	pre     []Op
	child   []Op
	queries []rangeQuery
}

func (i iterCase) verify(t testing.TB, base CacheableKVStore) {
	t.Helper()
	for _, op := range i.pre {
		assert.Nil(t, op.Apply(base))
	}

	child := base.CacheWrap()
	for _, op := range i.child {
		assert.Nil(t, op.Apply(child))
	}

	for _, q := range i.queries {
		iter, err := child.Iterator(q.start, q.end)
		assert.Nil(t, err)

		for n := 0; n < len(q.expected); n++ {
			if !iter.Valid() {
				t.Fatalf("iterator exhausted after %d of %d entries", n, len(q.expected))
			}
			if !bytes.Equal(q.expected[n].Key, iter.Key()) {
				t.Fatalf("Expected key: %X\nGot keys %d = %X", q.expected[n].Key, n, iter.Key())
			}
			assert.EqualBytes(t, q.expected[n].Value, iter.Value())
			assert.Nil(t, iter.Next())
		}
		if iter.Valid() {
			t.Fatalf("unexpected extra key %X", iter.Key())
		}
		iter.Close()
	}
}

// range query checks the results of iteration
type rangeQuery struct {
	start    []byte
	end      []byte
	expected []Model
}

// sortModels returns a copy of the models sorted by key
func sortModels(models []Model) []Model {
	res := make([]Model, len(models))
	copy(res, models)
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}

func makeSetOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = SetOp(m.Key, m.Value)
	}
	return res
}

func makeDelOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = DelOp(m.Key)
	}
	return res
}
