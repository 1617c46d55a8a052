// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern string and placeholder values in
// the same way as fmt.Errorf().
//
// The pattern string identifies the error. Packages that want callers to be
// able to classify an error export the pattern as a const string, for example:
//
//	const AddressError = "invalid address (%#04x)"
//
//	err := curated.Errorf(AddressError, 0xfea0)
//	if curated.Is(err, AddressError) {
//		...
//	}
//
// The Has() function checks whether the pattern occurs anywhere in the chain
// of wrapped curated errors:
//
//	e := curated.Errorf("mbc1: %v", curated.Errorf(AddressError, 0xfea0))
//	curated.Has(e, AddressError) // true
//	curated.Is(e, AddressError)  // false
//
// The Error() implementation normalises the message by removing adjacent
// duplicate parts, where parts are separated by ": ". This means a function
// can add context to an error without worrying whether the callee has added
// the same context already.
//
// A curated error that wraps another error (ie. an error is one of the
// placeholder values) can be unwrapped with errors.Unwrap() from the standard
// library. This keeps errors from the os package reachable with errors.Is()
// and errors.As().
package curated
