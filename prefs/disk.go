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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/jetsetilly/uart8250/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not accessed until Load() or Save() is called.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to the disk. The key may contain letters, digits and
// the period character only.
func (dsk *Disk) Add(key string, p pref) error {
	for _, r := range key {
		if !(r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return curated.Errorf(IllegalKey, r, key)
		}
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	dsk.entries[key] = p

	return nil
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, key := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, separator, dsk.entries[key]))
	}
	return s.String()
}

// Reset all preference values to their zero values.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, key := range dsk.keys() {
		if err := dsk.entries[key].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the preferences file into a map. a missing file is not an error
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, curated.Errorf(DiskError, err)
		}
		return values, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, fmt.Sprintf("not a preferences file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		values[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return values, nil
}

// Save current preference values to disk. Values in the file for keys that
// have not been added to this Disk are preserved, so more than one Disk can
// share a file.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		values[key] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, values[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error and
// leaves the values unchanged.
//
// Values in the top group of the command line stack take precedence over
// the values on disk. A command line value is consumed by the first Disk
// that loads it.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for _, key := range dsk.keys() {
		p := dsk.entries[key]

		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
			continue
		}

		if v, ok := values[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}
