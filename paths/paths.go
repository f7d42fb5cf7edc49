// This file is part of uart8250.
//
// uart8250 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uart8250 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uart8250.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path"
)

// the name of the resource directory in the current directory. if it is not
// present then configDir in the user's config directory is used
const (
	localResourcePath = ".uart8250"
	configDir         = "uart8250"
)

// ResourcePath returns the path to the file in the resource sub-directory.
// The sub-directory is created if necessary. Either argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	pth, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return path.Join(pth, file), nil
}

func getBasePath(subPth string) (string, error) {
	var pth string

	if _, err := os.Stat(localResourcePath); err == nil {
		pth = path.Join(localResourcePath, subPth)
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = path.Join(cnf, configDir, subPth)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", err
	}

	return pth, nil
}
