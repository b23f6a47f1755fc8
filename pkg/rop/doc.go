// Package rop holds the Result[T] carrier shared by the otherwise matcher:
// a value or the error that replaced it, stamped with an id and creation
// time.
//
// Highlights:
// - Success/Fail/From: construct Result[T]
// - Unpack: back to a (T, error) pair
// - IsNil: nil check that also sees typed nil pointers behind interfaces
package rop
