// Package ddev decomposes device numbers the way illumos lays them out.
//
// A native dev_t is 64 bits wide with the minor number in the low 32 bits.
// Mount options and statvfs(2) report the "compressed" 32-bit form instead,
// which keeps 14 bits of major and 18 bits of minor.
package ddev

import (
	"fmt"
	"strconv"
)

const (
	nBitsMinor64 = 32
	maxMin64     = 0xffffffff

	nBitsMinor32 = 18
	maxMin32     = 0x3ffff
	maxMaj32     = 0x3fff
)

// Dev is a native (expanded) device number.
type Dev uint64

// Mkdev builds a device number from its components.
func Mkdev(major, minor uint32) Dev {
	return Dev(uint64(major)<<nBitsMinor64 | uint64(minor))
}

// Major returns the driver/family half of the device number.
func (d Dev) Major() uint32 { return uint32(uint64(d) >> nBitsMinor64) }

// Minor returns the instance half of the device number.
func (d Dev) Minor() uint32 { return uint32(uint64(d) & maxMin64) }

func (d Dev) String() string { return fmt.Sprintf("%x", uint64(d)) }

// Expand32 turns a compressed 32-bit device number into a native one.
func Expand32(c uint32) Dev {
	return Mkdev((c>>nBitsMinor32)&maxMaj32, c&maxMin32)
}

// ParseCompressed parses the hexadecimal rendering used by the "dev"
// mount option and expands it.
func ParseCompressed(s string) (Dev, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid compressed device %q: %w", s, err)
	}
	return Expand32(uint32(v)), nil
}
