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

package linecontrol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/uart8250/curated"
)

// Config is the character format described by the lower six bits of the line
// control register.
type Config struct {
	WordLength int
	Parity     Parity
	StopBits   int
}

// Default8N1 is eight data bits, no parity and one stop bit. Encodes to 0x03.
var Default8N1 = Config{WordLength: 8, Parity: ParityNone, StopBits: 1}

// Validate returns an InvalidFieldValue error for the first field that is out
// of range.
func (cfg Config) Validate() error {
	if err := ValidateWordLength(cfg.WordLength); err != nil {
		return err
	}
	if err := ValidateParity(cfg.Parity); err != nil {
		return err
	}
	return ValidateStopBits(cfg.StopBits)
}

// Encode returns the register value with the three character format fields
// replaced by the Config. The DLAB and break bits of lcr are preserved. The
// returned value is lcr unchanged if the Config is invalid.
func (cfg Config) Encode(lcr uint8) (uint8, error) {
	if err := cfg.Validate(); err != nil {
		return lcr, err
	}

	// none of the setters can fail after Validate()
	lcr, _ = SetWordLength(lcr, cfg.WordLength)
	lcr, _ = SetParity(lcr, cfg.Parity)
	lcr, _ = SetStopBits(lcr, cfg.StopBits)
	return lcr, nil
}

// Decode the character format from a register value. The error is
// UnrecognisedParity if the parity field holds a reserved pattern, in which
// case the other fields of the returned Config are still valid.
func Decode(lcr uint8) (Config, error) {
	p, err := GetParity(lcr)
	return Config{
		WordLength: GetWordLength(lcr),
		Parity:     p,
		StopBits:   GetStopBits(lcr),
	}, err
}

// String returns the Config in the conventional notation. For example, "8N1".
// Two stop bits with a five bit word are shown as 1.5 stop bits.
func (cfg Config) String() string {
	stop := fmt.Sprintf("%d", cfg.StopBits)
	if cfg.StopBits == 2 && cfg.WordLength == 5 {
		stop = "1.5"
	}
	return fmt.Sprintf("%d%c%s", cfg.WordLength, cfg.Parity.Letter(), stop)
}

// ParseConfig is the inverse of Config.String(). The parity letter is case
// insensitive. A stop bit value of "1.5" is accepted only with a five bit
// word.
func ParseConfig(s string) (Config, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 3 {
		return Config{}, curated.Errorf(InvalidConfig, s)
	}

	var cfg Config

	n, err := strconv.Atoi(s[:1])
	if err != nil {
		return Config{}, curated.Errorf(InvalidConfig, s)
	}
	cfg.WordLength = n

	switch s[1] {
	case 'N':
		cfg.Parity = ParityNone
	case 'O':
		cfg.Parity = ParityOdd
	case 'E':
		cfg.Parity = ParityEven
	case 'M':
		cfg.Parity = ParityMark
	case 'S':
		cfg.Parity = ParitySpace
	default:
		return Config{}, curated.Errorf(InvalidConfig, s)
	}

	switch s[2:] {
	case "1":
		cfg.StopBits = 1
	case "2":
		cfg.StopBits = 2
	case "1.5":
		if cfg.WordLength != 5 {
			return Config{}, curated.Errorf(InvalidConfig, s)
		}
		cfg.StopBits = 2
	default:
		return Config{}, curated.Errorf(InvalidConfig, s)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
