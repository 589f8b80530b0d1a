// Package index implements the keyed store every generated component index
// delegates to.
//
// Index is single-writer: it performs no locking and must not be shared
// across goroutines without external synchronization. Guarded wraps the same
// operations behind a read/write mutex for hosts that share a store.
package index
