//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import (
	"github.com/rbmk-project/oserr/result"
	"golang.org/x/sys/windows"
)

var table = []entry{
	// Win32 files
	{windows.ERROR_FILE_NOT_FOUND, result.NoSuchEntity},
	{windows.ERROR_PATH_NOT_FOUND, result.NoSuchEntity},
	{windows.ERROR_ACCESS_DENIED, result.NoPermission},
	{windows.ERROR_FILE_EXISTS, result.AlreadyExists},
	{windows.ERROR_ALREADY_EXISTS, result.AlreadyExists},
	{windows.ERROR_TOO_MANY_OPEN_FILES, result.TooManyOpenFiles},
	{windows.ERROR_INVALID_HANDLE, result.InvalidFile},
	{windows.ERROR_INVALID_NAME, result.InvalidFile},
	{windows.ERROR_DISK_FULL, result.DiskFull},
	{windows.ERROR_HANDLE_DISK_FULL, result.DiskFull},

	// Win32 memory
	{windows.ERROR_NOT_ENOUGH_MEMORY, result.NoMemory},
	{windows.ERROR_OUTOFMEMORY, result.NoMemory},

	// Win32 network (overlapped I/O completions)
	{windows.ERROR_OPERATION_ABORTED, result.ConnectionReset},
	{windows.ERROR_NETNAME_DELETED, result.ConnectionReset},
	{windows.ERROR_HOST_UNREACHABLE, result.HostUnreachable},
	{windows.ERROR_PORT_UNREACHABLE, result.HostUnreachable},
	{windows.ERROR_NETWORK_UNREACHABLE, result.NetworkUnreachable},
	{windows.ERROR_CONNECTION_REFUSED, result.ConnectionRefused},

	// Winsock
	{windows.WSAEINVAL, result.InvalidFile},
	{windows.WSAEACCES, result.NoPermission},
	{windows.WSAEMFILE, result.TooManyOpenFiles},
	{windows.WSAEWOULDBLOCK, result.WouldBlock},
	{windows.WSAEINPROGRESS, result.InProgress},
	{windows.WSAEINTR, result.Interrupted},
	{windows.WSAECONNRESET, result.ConnectionReset},
	{windows.WSAECONNABORTED, result.ConnectionReset},
	{windows.WSAENOTCONN, result.NotConnected},
	{windows.WSAETIMEDOUT, result.TimedOut},
	{windows.WSAENOBUFS, result.NoResources},
	{windows.WSAEAFNOSUPPORT, result.FamilyNotSupported},
	{windows.WSAENETDOWN, result.NetworkDown},
	{windows.WSAEHOSTDOWN, result.HostDown},
	{windows.WSAENETUNREACH, result.NetworkUnreachable},
	{windows.WSAEHOSTUNREACH, result.HostUnreachable},
	{windows.WSAEADDRINUSE, result.AddressInUse},
	{windows.WSAEADDRNOTAVAIL, result.AddressNotAvailable},
	{windows.WSAECONNREFUSED, result.ConnectionRefused},
}
