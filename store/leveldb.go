package store

import (
	"github.com/iov-one/vault/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is a persistent store kept in a goleveldb database. It is the
// ledger of the command line client.
type LevelDB struct {
	db *leveldb.DB
}

var _ CacheableKVStore = (*LevelDB)(nil)

// OpenLevelDB opens or creates the database in the given directory.
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s: %s", path, err)
	}
	return &LevelDB{db: db}, nil
}

// MemLevelDB returns a database that lives in memory only.
func MemLevelDB() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open memory storage: %s", err)
	}
	return &LevelDB{db: db}, nil
}

// Close releases the database. It must not be used afterwards.
func (l *LevelDB) Close() error {
	if err := l.db.Close(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Get returns nil if the key does not exist.
func (l *LevelDB) Get(key []byte) ([]byte, error) {
	val, err := l.db.Get(key, nil)
	switch err {
	case nil:
		return val, nil
	case leveldb.ErrNotFound:
		return nil, nil
	default:
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
}

func (l *LevelDB) Has(key []byte) (bool, error) {
	ok, err := l.db.Has(key, nil)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

func (l *LevelDB) Set(key, value []byte) error {
	if err := l.db.Put(key, value, &opt.WriteOptions{Sync: true}); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (l *LevelDB) Delete(key []byte) error {
	if err := l.db.Delete(key, &opt.WriteOptions{Sync: true}); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Iterator returns keys in [start, end) in ascending order.
func (l *LevelDB) Iterator(start, end []byte) (Iterator, error) {
	it := l.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)
	li := &levelIterator{it: it}
	if err := li.Next(); err != nil {
		it.Release()
		return nil, err
	}
	return li, nil
}

// NewBatch returns a batch written in a single atomic leveldb write.
func (l *LevelDB) NewBatch() Batch {
	return &levelBatch{db: l.db, batch: new(leveldb.Batch)}
}

// CacheWrap returns a btree cache whose Write flushes to disk atomically.
func (l *LevelDB) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(l, l.NewBatch(), nil)
}

type levelBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *levelBatch) Set(key, value []byte) error {
	b.batch.Put(key, value)
	return nil
}

func (b *levelBatch) Delete(key []byte) error {
	b.batch.Delete(key)
	return nil
}

func (b *levelBatch) Write() error {
	err := b.db.Write(b.batch, &opt.WriteOptions{Sync: true})
	b.batch.Reset()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

type levelIterator struct {
	it    iterator.Iterator
	valid bool
}

func (i *levelIterator) Valid() bool {
	return i.valid
}

func (i *levelIterator) Next() error {
	i.valid = i.it.Next()
	if err := i.it.Error(); err != nil {
		i.valid = false
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (i *levelIterator) Key() []byte {
	return i.it.Key()
}

func (i *levelIterator) Value() []byte {
	return i.it.Value()
}

func (i *levelIterator) Close() {
	i.it.Release()
	i.valid = false
}
