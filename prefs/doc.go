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

// Package prefs facilitates the storage of preferential values in the
// GopherDMG system. It is intended to be used for values that persist between
// executions of the program.
//
// A preference value is one of the types defined in this package (Bool, Int,
// String). Values are associated with a key and a Disk instance with the
// Disk.Add() function. Keys are arbitrary but by convention are dot
// separated, for example "hardware.openbus".
//
// The file written by Disk.Save() is a simple text file. The first line is a
// warning not to edit the file by hand and each following line is a
// "key :: value" pair, sorted by key. Keys in the file that are unknown to the
// Disk are preserved when the file is saved.
//
// Values can be overridden from the command line. A preferences string of
// the form "key::value; key::value" is added with PushCommandLineStack() and
// matching keys are applied whenever a Disk is loaded, taking precedence over
// the values on disk.
package prefs
