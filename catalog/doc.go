// Package catalog stores generated path records in an embedded Badger
// key-value database so a lamp workshop can keep a library of patterns and
// reload any of them later.
//
// # Model
//
//	🗄 Store — one Badger DB; a directory path, or fully in-memory when the
//	          path is empty (useful for tests and one-shot runs).
//	🔑 Keys  — UUIDv4 strings assigned by Put; values are the pathio JSON
//	          encoding of the record.
//
// # Operations
//
//	Open(dir)  → *Store
//	Put(rec)   → id
//	Get(id)    → Record or ErrNotFound
//	List()     → ids in key order
//	Close()
//
// The catalog is storage only: records pass through pathio untouched and
// the algorithmic core never consults it.
package catalog
