//go:build unix

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import (
	"syscall"

	"github.com/rbmk-project/oserr/result"
	"golang.org/x/sys/unix"
)

// fidelityCases are the codes every table must map precisely.
var fidelityCases = []fidelityCase{
	{"EACCES", unix.EACCES, result.NoPermission},
	{"ENOMEM", unix.ENOMEM, result.NoMemory},
	{"EAGAIN", unix.EAGAIN, result.WouldBlock},
	{"EWOULDBLOCK", unix.EWOULDBLOCK, result.WouldBlock},
	{"ECONNREFUSED", unix.ECONNREFUSED, result.ConnectionRefused},
	{"EINTR", unix.EINTR, result.Interrupted},
	{"ENOENT", unix.ENOENT, result.NoSuchEntity},
	{"EEXIST", unix.EEXIST, result.AlreadyExists},
	{"EHOSTUNREACH", unix.EHOSTUNREACH, result.HostUnreachable},
	{"ENETUNREACH", unix.ENETUNREACH, result.NetworkUnreachable},
	{"EADDRINUSE", unix.EADDRINUSE, result.AddressInUse},
	{"ETIMEDOUT", unix.ETIMEDOUT, result.TimedOut},
	{"EIO", unix.EIO, result.IOError},
	{"EPIPE", unix.EPIPE, result.ConnectionReset},
	{"EINPROGRESS", unix.EINPROGRESS, result.InProgress},
}

// connRefusedErrno is the platform code for a refused connection.
const connRefusedErrno = unix.ECONNREFUSED

// synonyms are platform codes collapsing into the same result.
//
// EAGAIN and EWOULDBLOCK are numerically equal on Linux and Darwin, so
// that group only shows many-to-one where they differ; the other groups
// are numerically distinct everywhere.
var synonyms = [][]syscall.Errno{
	{unix.EACCES, unix.EPERM},
	{unix.ENFILE, unix.EMFILE},
	{unix.EAGAIN, unix.EWOULDBLOCK},
	{unix.EPIPE, unix.ECONNRESET, unix.ECONNABORTED},
	{unix.ENOSPC, unix.EDQUOT},
}
