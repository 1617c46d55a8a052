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

// Package logger is the central logging facility for GopherDMG. There is one
// central log for the entire application, accessed through the package level
// functions. Additional, independent logs can be created with NewLogger() but
// this is really only useful for testing.
//
// Each entry in the log is made up of a tag and a detail. The tag is usually
// the short name of the package making the log entry. Repeated entries with
// the same tag and detail are collapsed into one entry with a repeat count.
//
// Every logging request must be accompanied by a Permission. The Allow value
// can be used when an entry should always be made.
package logger
