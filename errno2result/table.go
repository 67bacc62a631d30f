// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import (
	"maps"
	"slices"
	"syscall"

	"github.com/rbmk-project/common/runtimex"
	"github.com/rbmk-project/oserr/result"
)

// entry maps a platform error code to its result.
type entry struct {
	errno  syscall.Errno
	result result.Code
}

// index is the read-only lookup map built from the platform table.
var index = newIndex(table)

// newIndex builds the lookup map for the given entries.
//
// Synonyms may appear as distinct entries sharing the same numeric
// value on some platforms (e.g., EAGAIN and EWOULDBLOCK on Linux); this
// is fine as long as they agree on the result.
func newIndex(entries []entry) map[syscall.Errno]result.Code {
	out := make(map[syscall.Errno]result.Code, len(entries))
	for _, e := range entries {
		runtimex.Assert(e.result.Valid(), "errno2result: invalid result in table")
		runtimex.Assert(e.result != result.Success, "errno2result: SUCCESS in table")
		runtimex.Assert(e.result != result.Unexpected, "errno2result: UNEXPECTED in table")
		if prev, found := out[e.errno]; found {
			runtimex.Assert(prev == e.result, "errno2result: conflicting table entries")
		}
		out[e.errno] = e.result
	}
	return out
}

// Lookup returns the result for the given platform error code and
// whether the code is in the table. It has no side effects and, unlike
// [Translator.Translate], never emits diagnostics.
func Lookup(errno syscall.Errno) (result.Code, bool) {
	code, found := index[errno]
	if !found {
		return result.Unexpected, false
	}
	return code, true
}

// Known returns the platform error codes in the table, sorted.
func Known() []syscall.Errno {
	return slices.Sorted(maps.Keys(index))
}
