// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package result defines the closed set of portable operation outcomes.

Every member has a fixed numeric value that is never reused or renumbered,
so downstream code may switch over [Code] exhaustively and persist or log
codes across releases. New members are only ever appended.

# Naming

[Code.String] returns the SCREAMING_CASE name (e.g., "WOULD_BLOCK"), which
is also the text encoding. [Code.Text] returns a short human description.
*/
package result

import (
	"fmt"
	"strconv"
)

// Code is a portable operation outcome.
type Code uint32

const (
	// Success indicates the operation succeeded.
	Success Code = 0

	// NoMemory indicates memory exhaustion.
	NoMemory Code = 1

	// NoPermission indicates the caller lacks the required permission.
	NoPermission Code = 2

	// NoSuchEntity indicates a missing file or resource.
	NoSuchEntity Code = 3

	// AlreadyExists indicates the resource is already present.
	AlreadyExists Code = 4

	// WouldBlock indicates a non-blocking operation would have blocked.
	WouldBlock Code = 5

	// ConnectionRefused indicates the peer refused the connection.
	ConnectionRefused Code = 6

	// HostUnreachable indicates there is no route to the host.
	HostUnreachable Code = 7

	// NetworkUnreachable indicates there is no route to the network.
	NetworkUnreachable Code = 8

	// AddressInUse indicates the local address is already bound.
	AddressInUse Code = 9

	// Interrupted indicates the operation was interrupted by a signal.
	Interrupted Code = 10

	// TimedOut indicates the operation timed out.
	TimedOut Code = 11

	// IOError indicates a generic I/O failure.
	IOError Code = 12

	// Unexpected is the catch-all for platform errors without a mapping.
	Unexpected Code = 13

	// InvalidFile indicates a bad path, descriptor, or argument.
	InvalidFile Code = 14

	// TooManyOpenFiles indicates a process or system descriptor limit.
	TooManyOpenFiles Code = 15

	// ConnectionReset indicates the connection was reset or aborted.
	ConnectionReset Code = 16

	// NotConnected indicates the socket is not connected.
	NotConnected Code = 17

	// NoResources indicates kernel buffer space ran out.
	NoResources Code = 18

	// FamilyNotSupported indicates the address family is not supported.
	FamilyNotSupported Code = 19

	// NetworkDown indicates the network is down.
	NetworkDown Code = 20

	// HostDown indicates the host is down.
	HostDown Code = 21

	// AddressNotAvailable indicates the local address cannot be assigned.
	AddressNotAvailable Code = 22

	// DiskFull indicates no space or quota is left on the device.
	DiskFull Code = 23

	// InProgress indicates a non-blocking operation is still in progress.
	InProgress Code = 24

	// numCodes is one past the last valid code.
	numCodes = 25
)

// names is indexed by [Code].
var names = [numCodes]string{
	Success:             "SUCCESS",
	NoMemory:            "NO_MEMORY",
	NoPermission:        "NO_PERMISSION",
	NoSuchEntity:        "NO_SUCH_ENTITY",
	AlreadyExists:       "ALREADY_EXISTS",
	WouldBlock:          "WOULD_BLOCK",
	ConnectionRefused:   "CONNECTION_REFUSED",
	HostUnreachable:     "HOST_UNREACHABLE",
	NetworkUnreachable:  "NETWORK_UNREACHABLE",
	AddressInUse:        "ADDRESS_IN_USE",
	Interrupted:         "INTERRUPTED",
	TimedOut:            "TIMED_OUT",
	IOError:             "IO_ERROR",
	Unexpected:          "UNEXPECTED",
	InvalidFile:         "INVALID_FILE",
	TooManyOpenFiles:    "TOO_MANY_OPEN_FILES",
	ConnectionReset:     "CONNECTION_RESET",
	NotConnected:        "NOT_CONNECTED",
	NoResources:         "NO_RESOURCES",
	FamilyNotSupported:  "FAMILY_NOT_SUPPORTED",
	NetworkDown:         "NETWORK_DOWN",
	HostDown:            "HOST_DOWN",
	AddressNotAvailable: "ADDRESS_NOT_AVAILABLE",
	DiskFull:            "DISK_FULL",
	InProgress:          "IN_PROGRESS",
}

// texts is indexed by [Code].
var texts = [numCodes]string{
	Success:             "success",
	NoMemory:            "out of memory",
	NoPermission:        "permission denied",
	NoSuchEntity:        "file not found",
	AlreadyExists:       "file exists",
	WouldBlock:          "would block",
	ConnectionRefused:   "connection refused",
	HostUnreachable:     "host unreachable",
	NetworkUnreachable:  "network unreachable",
	AddressInUse:        "address in use",
	Interrupted:         "interrupted",
	TimedOut:            "timed out",
	IOError:             "I/O error",
	Unexpected:          "unexpected error",
	InvalidFile:         "invalid file",
	TooManyOpenFiles:    "too many open files",
	ConnectionReset:     "connection reset",
	NotConnected:        "not connected",
	NoResources:         "ran out of resources",
	FamilyNotSupported:  "IPv4/IPv6 not supported",
	NetworkDown:         "network down",
	HostDown:            "host down",
	AddressNotAvailable: "address not available",
	DiskFull:            "disk full",
	InProgress:          "operation in progress",
}

// Valid returns whether c is a member of the closed set.
func (c Code) Valid() bool {
	return c < numCodes
}

// String returns the name of the code, or "Code(N)" if c is not valid.
func (c Code) String() string {
	if !c.Valid() {
		return "Code(" + strconv.FormatUint(uint64(c), 10) + ")"
	}
	return names[c]
}

// Text returns a short human readable description of the code.
func (c Code) Text() string {
	if !c.Valid() {
		return "unknown result code " + strconv.FormatUint(uint64(c), 10)
	}
	return texts[c]
}

// Temporary returns whether retrying the same operation unchanged
// may succeed, i.e., [WouldBlock], [Interrupted], and [InProgress].
func (c Code) Temporary() bool {
	switch c {
	case WouldBlock, Interrupted, InProgress:
		return true
	default:
		return false
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("result: cannot marshal invalid code %d", uint32(c))
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Code) UnmarshalText(data []byte) error {
	value, err := Parse(string(data))
	if err != nil {
		return err
	}
	*c = value
	return nil
}

// Parse returns the [Code] whose name is the given string.
func Parse(name string) (Code, error) {
	for idx, candidate := range names {
		if candidate == name {
			return Code(idx), nil
		}
	}
	return Unexpected, fmt.Errorf("result: unknown code name %q", name)
}

// All returns all the valid codes sorted by numeric value.
func All() []Code {
	codes := make([]Code, 0, numCodes)
	for idx := range numCodes {
		codes = append(codes, Code(idx))
	}
	return codes
}
