// This file is part of vamiga.
//
// vamiga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vamiga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vamiga.  If not, see <https://www.gnu.org/licenses/>.

// Package config implements the Amiga's fixed configuration surface as a
// closed enum of typed preference cells, generalised from gopher2600/prefs'
// open string-keyed registry: spec.md lists a small, fixed, documented set
// of options rather than an open one, so an Option is a Go constant, not a
// string key.
package config

import (
	"fmt"

	"github.com/amiga-go/vamiga/curated"
)

// Option identifies one entry in the fixed configuration surface.
type Option int

const (
	MODEL Option = iota
	KB_LAYOUT
	CHIP_RAM
	SLOW_RAM
	FAST_RAM
	RT_CLOCK
	EMULATE_SPRITES
	CLX_SPR_SPR
	CLX_SPR_PLF
	CLX_PLF_PLF
	FILTER_ACTIVATION
	FILTER_TYPE
	CPU_SPEED
	BLITTER_ACCURACY
	FIFO_BUFFERING
	SERIAL_DEVICE
	DRIVE_SPEED
	numOptions
)

func (o Option) String() string {
	switch o {
	case MODEL:
		return "MODEL"
	case KB_LAYOUT:
		return "KB_LAYOUT"
	case CHIP_RAM:
		return "CHIP_RAM"
	case SLOW_RAM:
		return "SLOW_RAM"
	case FAST_RAM:
		return "FAST_RAM"
	case RT_CLOCK:
		return "RT_CLOCK"
	case EMULATE_SPRITES:
		return "EMULATE_SPRITES"
	case CLX_SPR_SPR:
		return "CLX_SPR_SPR"
	case CLX_SPR_PLF:
		return "CLX_SPR_PLF"
	case CLX_PLF_PLF:
		return "CLX_PLF_PLF"
	case FILTER_ACTIVATION:
		return "FILTER_ACTIVATION"
	case FILTER_TYPE:
		return "FILTER_TYPE"
	case CPU_SPEED:
		return "CPU_SPEED"
	case BLITTER_ACCURACY:
		return "BLITTER_ACCURACY"
	case FIFO_BUFFERING:
		return "FIFO_BUFFERING"
	case SERIAL_DEVICE:
		return "SERIAL_DEVICE"
	case DRIVE_SPEED:
		return "DRIVE_SPEED"
	}
	return "UNKNOWN"
}

// Model enumerates the MODEL option's values.
type Model int

const (
	A500 Model = iota
	A1000
	A2000
)

// enumSets lists, for the integer-valued options with a fixed value set,
// the values configure() will accept. Options with a step-quantised range
// (FAST_RAM) are range-checked instead; see rangeSets. Integer options in
// neither table accept any int; see validate.
var enumSets = map[Option][]int{
	MODEL:             {int(A500), int(A1000), int(A2000)},
	CHIP_RAM:          {256, 512},
	SLOW_RAM:          {0, 256, 512},
	CPU_SPEED:         {1, 2, 4},
	BLITTER_ACCURACY:  {0, 1, 2},
}

// rangeSets lists, for every option with a step-quantised numeric range, its
// {min, max, step}.
var rangeSets = map[Option][3]int{
	FAST_RAM: {0, 8192, 64},
}

// boolOptions lists every option whose value is a bool rather than an int.
var boolOptions = map[Option]bool{
	RT_CLOCK:        true,
	EMULATE_SPRITES: true,
	CLX_SPR_SPR:     true,
	CLX_SPR_PLF:     true,
	CLX_PLF_PLF:     true,
	FIFO_BUFFERING:  true,
}

// Hook is called immediately after a configure() call accepts a new value.
// It may return an error to veto the change (which is treated exactly like
// an out-of-range value: ConfigRejected, no state change).
type Hook func(opt Option, value interface{}) error

// Cell is a single configuration entry.
type Cell struct {
	opt      Option
	value    interface{}
	hookPost Hook
}

// Config is the complete configuration surface for one Amiga instance.
// Every cell exists up front (the surface is closed) so Get never needs a
// presence check.
type Config struct {
	cells [numOptions]Cell

	// per-drive configuration, keyed by drive number 0-3. DF0 (index 0)
	// cannot be disconnected; see SetDriveConnect.
	driveConnect [4]bool
	driveType    [4]string
}

// New returns a Config with every option at its Amiga-500 factory default.
func New() *Config {
	c := &Config{}
	for o := Option(0); o < numOptions; o++ {
		c.cells[o] = Cell{opt: o, value: defaultValue(o)}
	}
	c.driveConnect[0] = true
	for i := range c.driveType {
		c.driveType[i] = "3.5DD"
	}
	return c
}

func defaultValue(o Option) interface{} {
	switch o {
	case MODEL:
		return int(A500)
	case CHIP_RAM:
		return 512
	case SLOW_RAM:
		return 0
	case FAST_RAM:
		return 0
	case CPU_SPEED:
		return 1
	case BLITTER_ACCURACY:
		return 2
	case EMULATE_SPRITES, CLX_SPR_SPR, CLX_SPR_PLF, CLX_PLF_PLF, FIFO_BUFFERING:
		return false
	case RT_CLOCK:
		return false
	default:
		return 0
	}
}

// SetHookPost installs a callback invoked after opt is accepted. Used, e.g.,
// to trigger updateMemSrcTable() when CHIP_RAM changes.
func (c *Config) SetHookPost(opt Option, hook Hook) {
	c.cells[opt].hookPost = hook
}

// Configure attempts to set opt to value, returning false (ConfigRejected)
// without any state change if value is not in the option's enumerated or
// range set.
func (c *Config) Configure(opt Option, value interface{}) (bool, error) {
	if opt < 0 || opt >= numOptions {
		return false, curated.Errorf(curated.ConfigRejected, opt)
	}

	if !validate(opt, value) {
		return false, curated.Errorf(curated.ConfigRejected, opt)
	}

	cell := &c.cells[opt]
	if cell.hookPost != nil {
		if err := cell.hookPost(opt, value); err != nil {
			return false, curated.Errorf(curated.ConfigRejected, opt)
		}
	}
	cell.value = value

	return true, nil
}

func validate(opt Option, value interface{}) bool {
	if boolOptions[opt] {
		_, ok := value.(bool)
		return ok
	}

	iv, ok := toInt(value)
	if !ok {
		return false
	}

	if set, ok := enumSets[opt]; ok {
		for _, v := range set {
			if v == iv {
				return true
			}
		}
		return false
	}

	if r, ok := rangeSets[opt]; ok {
		min, max, step := r[0], r[1], r[2]
		if iv < min || iv > max {
			return false
		}
		if step > 0 && (iv-min)%step != 0 {
			return false
		}
		return true
	}

	// options with no enumerated/range set (KB_LAYOUT, FILTER_ACTIVATION,
	// FILTER_TYPE, SERIAL_DEVICE, DRIVE_SPEED) accept any int; the concrete
	// enumeration of layout ids / filter types / serial devices lives
	// outside this core per spec.md's external-collaborator boundary.
	return true
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case Model:
		return int(v), true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of c, used by the hardware package's snapshot
// system to capture configuration state without aliasing the live Config.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

// RestoreValues copies every cell's value and the per-drive settings from
// other into c, leaving c's installed hooks untouched (a restored snapshot
// must not resurrect hooks bound to a torn-down Amiga instance).
func (c *Config) RestoreValues(other *Config) {
	for i := range c.cells {
		c.cells[i].value = other.cells[i].value
	}
	c.driveConnect = other.driveConnect
	c.driveType = other.driveType
}

// Get returns the current value of opt.
func (c *Config) Get(opt Option) interface{} {
	return c.cells[opt].value
}

// GetInt returns the current value of opt as an int, panicking if opt is a
// bool-valued option (programmer error, not a configuration error).
func (c *Config) GetInt(opt Option) int {
	iv, ok := toInt(c.cells[opt].value)
	if !ok {
		panic(fmt.Sprintf("config: %s is not an int option", opt))
	}
	return iv
}

// GetBool returns the current value of opt as a bool.
func (c *Config) GetBool(opt Option) bool {
	return c.cells[opt].value.(bool)
}

// SetDriveConnect configures whether drive n is connected. DF0 can never be
// disconnected (UnsupportedFeature is not raised here; the call is simply
// a no-op returning false, matching ConfigRejected's "no state change").
func (c *Config) SetDriveConnect(drive int, connect bool) (bool, error) {
	if drive == 0 && !connect {
		return false, curated.Errorf(curated.ConfigRejected, "DRIVE_CONNECT")
	}
	c.driveConnect[drive] = connect
	return true, nil
}

// DriveConnect reports whether drive n is connected.
func (c *Config) DriveConnect(drive int) bool {
	return c.driveConnect[drive]
}

// SetDriveType configures the drive type for drive n. Only 3.5" DD drives
// are supported; anything else is UnsupportedFeature.
func (c *Config) SetDriveType(drive int, driveType string) (bool, error) {
	if driveType != "3.5DD" {
		return false, curated.Errorf(curated.UnsupportedFeature, driveType)
	}
	c.driveType[drive] = driveType
	return true, nil
}

// DriveType reports the configured drive type for drive n.
func (c *Config) DriveType(drive int) string {
	return c.driveType[drive]
}
