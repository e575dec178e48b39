// Package tree implements the concurrent in-memory hierarchical namespace
// described in spec §4.2–4.7: a tree of folders addressed by UNIX-style
// paths, safe for concurrent List/Create/Remove/Move calls from many
// goroutines.
//
// Every public operation follows the same shape (spec §2): validate the
// path, descend from the root acquiring read locks on each intermediate
// node, perform its mutation under a single write lock held at the
// deepest appropriate node, then release the read locks in reverse
// (LIFO) order. Move is the one operation that must touch two parents at
// once; it does so under a single write lock at their least common
// ancestor (LCA) rather than two independently ordered locks, which is
// the only strategy in this package proven deadlock-free against the
// read-locks-held-while-descending discipline every other operation
// relies on (spec §4.6, §9).
package tree

import (
	"github.com/eerio/concurrent-file-system/internal/pathrule"
	"github.com/eerio/concurrent-file-system/status"
)

// Tree is the root handle of a namespace. The zero value is not usable;
// construct with New.
type Tree struct {
	root *node
}

// New returns a tree containing a single, empty root folder "/".
func New() *Tree {
	return &Tree{root: newNode()}
}

// Free releases every node in the tree. The caller must guarantee that no
// other operation on this Tree is in flight or will be started again
// (spec §4.7): Free takes no locks.
func (t *Tree) Free() {
	free(t.root)
}

// List renders the immediate children of path as a comma-separated string
// of names. It returns a non-OK status.Code if path is malformed or does
// not name an existing folder.
func (t *Tree) List(path string) (string, status.Code) {
	if !pathrule.IsValid(path) {
		return "", status.EINVAL
	}

	target := descendLock(t.root, path)
	if target == nil {
		descendUnlock(t.root, path)
		return "", wrapf(status.ENOENT, "list %q", path)
	}

	target.lock.RLock()
	result := target.children.Render()
	target.lock.RUnlock()

	descendUnlock(t.root, path)
	return result, status.OK
}

// Create adds a new, empty folder at path. path's parent must already
// exist and must not already contain a child with path's terminal
// component.
func (t *Tree) Create(path string) status.Code {
	if !pathrule.IsValid(path) {
		return status.EINVAL
	}
	if path == pathrule.Root {
		return status.EEXIST
	}

	parentPath, component, _ := pathrule.SplitParent(path)
	parent := descendLock(t.root, parentPath)
	if parent == nil {
		descendUnlock(t.root, parentPath)
		return wrapf(status.ENOENT, "create %q: parent %q", path, parentPath)
	}

	candidate := newNode()
	parent.lock.Lock()
	inserted := parent.children.Insert(component, candidate)
	parent.lock.Unlock()

	descendUnlock(t.root, parentPath)

	if !inserted {
		free(candidate)
		return wrapf(status.EEXIST, "create %q", path)
	}
	return status.OK
}

// Remove deletes the folder at path, which must exist and have no
// children of its own. The root folder can never be removed.
func (t *Tree) Remove(path string) status.Code {
	if !pathrule.IsValid(path) {
		return status.EINVAL
	}
	if path == pathrule.Root {
		return status.EBUSY
	}

	parentPath, component, _ := pathrule.SplitParent(path)
	parent := descendLock(t.root, parentPath)
	if parent == nil {
		descendUnlock(t.root, parentPath)
		return wrapf(status.ENOENT, "remove %q: parent %q", path, parentPath)
	}

	parent.lock.Lock()
	result := status.OK
	child, found := parent.children.Get(component)
	switch {
	case !found:
		result = wrapf(status.ENOENT, "remove %q", path)
	case child.children.Len() > 0:
		result = wrapfNode(status.ENOTEMPTY, child, "remove %q", path)
	default:
		// Holding parent's write lock guarantees no operation can
		// currently be inside, or about to enter, child: it has no
		// children of its own, so no descent can be under way below
		// it, and no descent can be arriving at it either, since that
		// would require a read lock on parent that we are holding
		// exclusively. Safe to free it right here.
		parent.children.Remove(component)
		free(child)
	}
	parent.lock.Unlock()

	descendUnlock(t.root, parentPath)
	return result
}

// Move relocates the folder at source, together with its whole subtree, to
// target. source and target name the folder itself, not its parent.
func (t *Tree) Move(source, target string) status.Code {
	if !pathrule.IsValid(source) {
		return status.EINVAL
	}
	if !pathrule.IsValid(target) {
		return status.EINVAL
	}
	if source == pathrule.Root {
		return status.EBUSY
	}
	if target == pathrule.Root {
		return status.EEXIST
	}

	if pathrule.StartsWithStrictly(target, source) {
		// Moving a folder into its own subtree.
		return wrapf(status.EINVMV, "move %q -> %q", source, target)
	}
	if pathrule.StartsWithStrictly(source, target) {
		found := descendLock(t.root, source)
		descendUnlock(t.root, source)
		if found != nil {
			return wrapfNode(status.EEXIST, found, "move %q -> %q", source, target)
		}
		return wrapf(status.ENOENT, "move %q -> %q", source, target)
	}
	if source == target {
		// Moving a folder onto itself: a no-op success (spec Design
		// Notes resolve the ambiguity this way).
		return status.OK
	}

	sourceParentPath, sourceComponent, _ := pathrule.SplitParent(source)
	targetParentPath, targetComponent, _ := pathrule.SplitParent(target)
	lcaPath := pathrule.LongestCommonAncestor(sourceParentPath, targetParentPath)

	lca := descendLock(t.root, lcaPath)
	if lca == nil {
		descendUnlock(t.root, lcaPath)
		return wrapf(status.ENOENT, "move %q -> %q: common ancestor %q", source, target, lcaPath)
	}
	defer descendUnlock(t.root, lcaPath)

	// The whole subtree rooted at lca is now exclusively ours: any other
	// operation reaching into it would first need a read lock on lca or
	// one of its ancestors, all of which we hold. Everything below lca
	// can therefore be walked without taking any further locks.
	lca.lock.Lock()
	defer lca.lock.Unlock()

	sourceParent := descendWeak(t.root, sourceParentPath)
	targetParent := descendWeak(t.root, targetParentPath)
	if sourceParent == nil || targetParent == nil {
		return wrapf(status.ENOENT, "move %q -> %q: parent missing", source, target)
	}

	sourceNode, found := sourceParent.children.Get(sourceComponent)
	if !found {
		return wrapf(status.ENOENT, "move %q -> %q", source, target)
	}

	sourceParent.children.Remove(sourceComponent)
	if !targetParent.children.Insert(targetComponent, sourceNode) {
		// Target collision: fully compensate by reinstating the node at
		// its original location before reporting failure (spec §7).
		sourceParent.children.Insert(sourceComponent, sourceNode)
		existing, _ := targetParent.children.Get(targetComponent)
		return wrapfNode(status.EEXIST, existing, "move %q -> %q", source, target)
	}
	return status.OK
}
