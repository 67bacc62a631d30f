//go:build unix

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import (
	"github.com/rbmk-project/oserr/result"
	"golang.org/x/sys/unix"
)

var table = []entry{
	// files
	{unix.ENOTDIR, result.InvalidFile},
	{unix.ELOOP, result.InvalidFile},
	{unix.EINVAL, result.InvalidFile},
	{unix.ENAMETOOLONG, result.InvalidFile},
	{unix.EBADF, result.InvalidFile},
	{unix.ENOENT, result.NoSuchEntity},
	{unix.EACCES, result.NoPermission},
	{unix.EPERM, result.NoPermission},
	{unix.EEXIST, result.AlreadyExists},
	{unix.EIO, result.IOError},
	{unix.ENFILE, result.TooManyOpenFiles},
	{unix.EMFILE, result.TooManyOpenFiles},
	{unix.ENOSPC, result.DiskFull},
	{unix.EDQUOT, result.DiskFull},

	// memory
	{unix.ENOMEM, result.NoMemory},

	// non-blocking I/O and signals
	{unix.EAGAIN, result.WouldBlock},
	{unix.EWOULDBLOCK, result.WouldBlock},
	{unix.EINPROGRESS, result.InProgress},
	{unix.EINTR, result.Interrupted},

	// sockets
	{unix.EPIPE, result.ConnectionReset},
	{unix.ECONNRESET, result.ConnectionReset},
	{unix.ECONNABORTED, result.ConnectionReset},
	{unix.ENOTCONN, result.NotConnected},
	{unix.ETIMEDOUT, result.TimedOut},
	{unix.ENOBUFS, result.NoResources},
	{unix.EAFNOSUPPORT, result.FamilyNotSupported},
	{unix.ENETDOWN, result.NetworkDown},
	{unix.EHOSTDOWN, result.HostDown},
	{unix.ENETUNREACH, result.NetworkUnreachable},
	{unix.EHOSTUNREACH, result.HostUnreachable},
	{unix.EADDRINUSE, result.AddressInUse},
	{unix.EADDRNOTAVAIL, result.AddressNotAvailable},
	{unix.ECONNREFUSED, result.ConnectionRefused},
}
