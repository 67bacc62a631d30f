//go:build !unix && !windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import "syscall"

var (
	fidelityCases []fidelityCase
	synonyms      [][]syscall.Errno
)
