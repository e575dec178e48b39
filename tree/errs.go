package tree

import (
	"log"

	"github.com/pkg/errors"

	"github.com/eerio/concurrent-file-system/status"
)

// Debug, when set, makes failed operations log their path context before
// returning — the tree package's equivalent of nodefs.Options.Debug in the
// teacher. Off by default; this package has no other configuration (spec
// Non-goals exclude environment variables and config files).
var Debug = false

// wrapf attaches path context to a non-OK status code and, if Debug is set,
// logs it — mirroring how winfsp-go-winfsp annotates OS failures with
// their call site (errors.Wrapf) before the caller sees a bare code. The
// returned Code is always exactly the one passed in; wrapping only adds
// context for diagnostics, never changes the outcome.
func wrapf(code status.Code, format string, args ...interface{}) status.Code {
	if code == status.OK || !Debug {
		return code
	}
	log.Println(errors.Wrapf(code, format, args...))
	return code
}

// wrapfNode is wrapf plus the identity of the node the failure concerns —
// the tree-level counterpart of the per-Inode debug identity the teacher
// logs through nodefs.Options.Debug, used where an operation already has a
// concrete offending node in hand (the existing child on a collision, the
// node blocking a move) rather than just a path.
func wrapfNode(code status.Code, n *node, format string, args ...interface{}) status.Code {
	if code == status.OK || !Debug {
		return code
	}
	log.Printf("%s: %v", n, errors.Wrapf(code, format, args...))
	return code
}
