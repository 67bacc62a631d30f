//go:build !unix && !windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import "syscall"

// errClassOf returns the empty string: errclass only knows
// the Unix and Windows error constants.
func errClassOf(errno syscall.Errno) string {
	return ""
}
