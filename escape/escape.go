// Package escape quotes arbitrary text so that a shell will read it back
// as a single literal argument.
//
// Two independent escapers are provided. Posix wraps raw bytes in single
// quotes for POSIX sh/bash style shells. Windows applies the double-quote
// and backslash-doubling convention understood by CreateProcess and the
// Microsoft C runtime's argv parser. Quote selects the escaper matching
// the build platform.
//
// Both escapers are pure and total: any byte or code unit sequence is
// accepted, including invalid UTF-8 and unpaired surrogates, and is
// preserved verbatim. When no quoting is required the input is returned
// unchanged without allocating, so callers must not mutate the input
// through the returned slice.
package escape
