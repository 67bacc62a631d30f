//go:build unix || windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import (
	"syscall"

	"github.com/rbmk-project/common/errclass"
)

// errClassOf returns the errclass classification of errno.
func errClassOf(errno syscall.Errno) string {
	return errclass.New(errno)
}
