package tree

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/eerio/concurrent-file-system/internal/childmap"
	"github.com/eerio/concurrent-file-system/rwlock"
)

// node is one folder. Its child-map is guarded by its own RWLock; the
// RWLock of a node says nothing about its descendants' maps (spec §3).
//
// id exists only for diagnosing lock contention in log output (node.String)
// — it is never surfaced as folder metadata, which spec §1 puts out of
// scope.
type node struct {
	id       uuid.UUID
	lock     *rwlock.RWLock
	children *childmap.Map[*node]
}

func newNode() *node {
	return &node{
		id:       uuid.New(),
		lock:     rwlock.New(),
		children: childmap.New[*node](),
	}
}

func (n *node) String() string {
	return fmt.Sprintf("node(%s)", n.id)
}

// free tears down n and, recursively, everything below it. It takes no
// locks: spec §4.7 requires the caller to guarantee no concurrent operation
// is in flight anywhere in the subtree before calling it.
func free(n *node) {
	n.children.Each(func(_ string, child *node) {
		free(child)
	})
}
