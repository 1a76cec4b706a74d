// Package option contains the zero-or-one producer. A Some emits its value
// on the first positive request and then finishes; a None finishes
// immediately at subscribe time, since no demand could ever matter. Neither
// can fail.
package option
