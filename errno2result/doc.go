// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package errno2result translates platform error codes to [result.Code].

A failed system call reports a platform specific number ([syscall.Errno]
on Unix-like systems and on Windows). Call sites translate it once, right
after the failure, and from then on only reason about the portable
[result.Code] vocabulary.

# Design Principles

1. Translation is total: every input yields a valid [result.Code].

2. Translation is deterministic and stateless: the result depends on the
input code only, never on the call site or on previous calls.

3. Unknown codes map to [result.Unexpected] and emit exactly one
diagnostic naming the code and the call site.

4. The diagnostic sink is injected through [Translator]; the zero
value emits nothing.

5. Several platform codes may collapse into the same result (e.g.,
EAGAIN and EWOULDBLOCK both map to [result.WouldBlock]).

# Platform Tables

The mapping table is selected at build time:

- table_unix.go for Unix-like systems using x/sys/unix

- table_windows.go for Windows using x/sys/windows (Winsock and Win32 codes)

- table_other.go for any other system, where the table is empty and
every code takes the fallback path

Each table is indexed once during package initialization and is
read-only afterwards, so a [*Translator] is safe for concurrent use.

# Call-Site Context

[Translator.TranslateAt] takes the file and line explicitly, while
[Translator.Translate] and [Translator.FromError] capture the location of
their caller. The location is only used by the diagnostic and is only
captured when the code is not in the table.
*/
package errno2result
