package tree

import "github.com/eerio/concurrent-file-system/internal/pathrule"

// descendLock walks from root down path, acquiring a read lock on every
// intermediate node — every node strictly above the target — and returns
// the target node, itself left unlocked (the caller decides what lock, if
// any, to take on it). If a component along the way has no matching
// child, descent stops and returns nil; every read lock acquired up to and
// including the node where the lookup failed is retained, to be released
// by a later descendUnlock call over the same path (spec §4.2, LOCK mode).
func descendLock(root *node, path string) *node {
	cur := root
	rest := path
	for {
		component, next, ok := pathrule.Split(rest)
		if !ok {
			return cur
		}
		cur.lock.RLock()
		child, found := cur.children.Get(component)
		if !found {
			return nil
		}
		cur = child
		rest = next
	}
}

// descendUnlock releases the read locks a prior descendLock call over the
// same path acquired, in reverse (LIFO) order, via post-order recursion:
// it recurses into the child before releasing the current node's lock, so
// the deepest lock acquired is the first one released (spec §4.2, UNLOCK
// mode). It tolerates the tail of path being missing, matching a
// descendLock call that aborted partway through.
func descendUnlock(root *node, path string) *node {
	if root == nil {
		return nil
	}
	component, rest, ok := pathrule.Split(path)
	if !ok {
		return root
	}
	child, found := root.children.Get(component)
	var target *node
	if found {
		target = descendUnlock(child, rest)
	}
	root.lock.RUnlock()
	if !found {
		return nil
	}
	return target
}

// descendWeak walks from root down path without touching any locks. It is
// used once an ancestor write lock already dominates the whole path, so no
// further synchronization is needed to traverse it safely (spec §4.2, WEAK
// mode; used by Move below its LCA write lock).
func descendWeak(root *node, path string) *node {
	cur := root
	rest := path
	for {
		component, next, ok := pathrule.Split(rest)
		if !ok {
			return cur
		}
		child, found := cur.children.Get(component)
		if !found {
			return nil
		}
		cur = child
		rest = next
	}
}
