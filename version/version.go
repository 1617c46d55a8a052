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

// Package version reports the version of the application. The version number
// is set by the linker for release builds. Otherwise it is decided by the
// presence of vcs information in the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherDMG"

// set with -ldflags "-X github.com/jetsetilly/gopherdmg/version.number=v0.1.0"
var number string

var version string
var revision string

// Version returns the version string, the vcs revision and whether this is a
// numbered release.
//
// The version string is "unreleased" if the binary was built from a vcs
// checkout without a version number and "local" if there is no vcs information
// at all.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line suitable for printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = decide(number, buildSettings())
}

func buildSettings() map[string]string {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

// decide version and revision strings from the linker supplied number and the
// build settings
func decide(number string, settings map[string]string) (string, string) {
	revision := settings["vcs.revision"]
	if revision == "" {
		revision = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	if number != "" {
		return number, revision
	}

	if _, ok := settings["vcs"]; ok {
		return "unreleased", revision
	}

	return "local", revision
}
