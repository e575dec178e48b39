// This is a module implementing a concurrent in-memory hierarchical
// namespace: a tree of folders addressed by UNIX-style paths, safe for
// concurrent List/Create/Remove/Move calls from many goroutines.
//
// See package github.com/eerio/concurrent-file-system/tree for the public
// API. The locking primitive it builds on, a reader/writer lock with
// starvation-avoidance guarantees beyond what sync.RWMutex offers, lives in
// package github.com/eerio/concurrent-file-system/rwlock.
package concurrentfs
