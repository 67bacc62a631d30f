//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

import (
	"syscall"

	"github.com/rbmk-project/oserr/result"
	"golang.org/x/sys/windows"
)

// fidelityCases are the codes every table must map precisely.
var fidelityCases = []fidelityCase{
	{"ERROR_ACCESS_DENIED", windows.ERROR_ACCESS_DENIED, result.NoPermission},
	{"WSAEACCES", windows.WSAEACCES, result.NoPermission},
	{"ERROR_NOT_ENOUGH_MEMORY", windows.ERROR_NOT_ENOUGH_MEMORY, result.NoMemory},
	{"WSAEWOULDBLOCK", windows.WSAEWOULDBLOCK, result.WouldBlock},
	{"WSAECONNREFUSED", windows.WSAECONNREFUSED, result.ConnectionRefused},
	{"ERROR_CONNECTION_REFUSED", windows.ERROR_CONNECTION_REFUSED, result.ConnectionRefused},
	{"WSAEINTR", windows.WSAEINTR, result.Interrupted},
	{"ERROR_FILE_NOT_FOUND", windows.ERROR_FILE_NOT_FOUND, result.NoSuchEntity},
	{"ERROR_FILE_EXISTS", windows.ERROR_FILE_EXISTS, result.AlreadyExists},
	{"WSAEHOSTUNREACH", windows.WSAEHOSTUNREACH, result.HostUnreachable},
	{"WSAENETUNREACH", windows.WSAENETUNREACH, result.NetworkUnreachable},
	{"WSAEADDRINUSE", windows.WSAEADDRINUSE, result.AddressInUse},
	{"WSAETIMEDOUT", windows.WSAETIMEDOUT, result.TimedOut},
	{"WSAEINPROGRESS", windows.WSAEINPROGRESS, result.InProgress},
}

// connRefusedErrno is the platform code for a refused connection.
const connRefusedErrno = windows.WSAECONNREFUSED

// synonyms are distinct platform codes collapsing into the same result.
var synonyms = [][]syscall.Errno{
	{windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND},
	{windows.ERROR_ACCESS_DENIED, windows.WSAEACCES},
	{windows.ERROR_NOT_ENOUGH_MEMORY, windows.ERROR_OUTOFMEMORY},
	{windows.ERROR_CONNECTION_REFUSED, windows.WSAECONNREFUSED},
	{windows.WSAECONNRESET, windows.WSAECONNABORTED, windows.ERROR_NETNAME_DELETED},
}
