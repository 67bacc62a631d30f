//go:build !unix && !windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errno2result

// table is empty: every code maps to UNEXPECTED.
var table = []entry{}
