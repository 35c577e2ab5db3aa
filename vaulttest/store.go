package vaulttest

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/vault/store"
)

// LevelDB returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of store.MemStore when you
// want the exact same storage implementation as the command line ledger.
func LevelDB(t testing.TB) (db *store.LevelDB, cleanup func()) {
	dir, err := ioutil.TempDir("", "vaulttest")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	db, err = store.OpenLevelDB(filepath.Join(dir, "ledger"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("cannot open leveldb: %s", err)
	}
	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}
