// Package socketerr classifies raw platform errors into socket error
// categories.
//
// Only errors carrying a result code that a [Table] maps to a known
// [Category] are elevated, as [*Error], which retains the original as its
// cause. Everything else passes through [Classifier.Classify] unchanged, so
// unrelated failures (out of memory, access denied, arbitrary platform
// faults) are never mistaken for socket errors.
//
// The categories are modeled after the WinRT SocketErrorStatus enumeration.
// Result codes come from one of two numbering spaces, HRESULTs and native
// errno values, each with its own table. By default, HRESULTs are looked up
// in [HResultTable], on every platform, and errno values in [ErrnoTable],
// for the build platform.
package socketerr
