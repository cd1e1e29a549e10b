// Package geo implements the geohash codec and great-circle distance used by the spatial index.
//
// A geohash interleaves longitude and latitude bisection bits (longitude first) and emits one
// base-32 symbol per 5 bits. Hashes sharing a prefix lie in the same cell, so a prefix scan over
// lexicographically sorted hashes returns everything inside that cell.
package geo

import (
	"math"
	"strings"

	"github.com/46h1/buzzer/internal/errors"

	"github.com/paulmach/orb"
)

const (
	// StoragePrecision is the precision persisted with every location record (~153m x 153m).
	StoragePrecision = 7
	// SearchPrecision is the candidate prefix length for proximity search (~39km x 19.5km).
	SearchPrecision = 4
	// MaxPrecision is the longest hash Encode produces.
	MaxPrecision = 12

	// RangeSentinel sorts after every alphabet symbol; prefix+RangeSentinel is an exclusive upper bound.
	RangeSentinel = "~"

	alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"
)

// ErrInvalidGeohash is returned when a hash contains a symbol outside the alphabet.
var ErrInvalidGeohash = errors.New("invalid geohash")

var decodeMap [256]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = int8(i)
	}
}

// Encode returns the geohash of (lat, lon). Precision is clamped to [1, MaxPrecision].
func Encode(lat, lon float64, precision int) string {
	precision = clampPrecision(precision)

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	var sb strings.Builder
	sb.Grow(precision)

	evenBit := true // longitude first
	bit, idx := 0, 0
	for sb.Len() < precision {
		if evenBit {
			mid := (lonMin + lonMax) / 2
			if lon >= mid {
				idx = idx<<1 | 1
				lonMin = mid
			} else {
				idx <<= 1
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat >= mid {
				idx = idx<<1 | 1
				latMin = mid
			} else {
				idx <<= 1
				latMax = mid
			}
		}
		evenBit = !evenBit

		bit++
		if bit == 5 {
			sb.WriteByte(alphabet[idx])
			bit, idx = 0, 0
		}
	}

	return sb.String()
}

// Decode returns the cell covered by hash. The bound's Min is the south-west corner.
func Decode(hash string) (orb.Bound, error) {
	if hash == "" {
		return orb.Bound{}, errors.Wrap(ErrInvalidGeohash, "empty hash")
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	evenBit := true
	for i := 0; i < len(hash); i++ {
		val := decodeMap[hash[i]]
		if val < 0 {
			return orb.Bound{}, errors.Wrapf(ErrInvalidGeohash, "symbol %q at %d", hash[i], i)
		}

		for mask := 16; mask > 0; mask >>= 1 {
			set := int(val)&mask != 0
			if evenBit {
				mid := (lonMin + lonMax) / 2
				if set {
					lonMin = mid
				} else {
					lonMax = mid
				}
			} else {
				mid := (latMin + latMax) / 2
				if set {
					latMin = mid
				} else {
					latMax = mid
				}
			}
			evenBit = !evenBit
		}
	}

	return orb.Bound{
		Min: orb.Point{lonMin, latMin},
		Max: orb.Point{lonMax, latMax},
	}, nil
}

// DecodeCenter returns the centre of the cell covered by hash.
func DecodeCenter(hash string) (orb.Point, error) {
	bound, err := Decode(hash)
	if err != nil {
		return orb.Point{}, err
	}

	return bound.Center(), nil
}

// PrefixRange returns the half-open range [lower, upper) holding every hash that starts with prefix.
func PrefixRange(prefix string) (lower, upper string) {
	return prefix, prefix + RangeSentinel
}

// PrefixRangeFor encodes (lat, lon) at prefixLength and returns the range of its cell.
func PrefixRangeFor(lat, lon float64, prefixLength int) (lower, upper string) {
	return PrefixRange(Encode(lat, lon, prefixLength))
}

// Neighbors returns the 8 cells of the same precision surrounding hash, starting north and going clockwise.
// Cells beyond a pole are skipped; longitude wraps around the antimeridian.
func Neighbors(hash string) ([]string, error) {
	bound, err := Decode(hash)
	if err != nil {
		return nil, err
	}

	center := bound.Center()
	height := bound.Max.Lat() - bound.Min.Lat()
	width := bound.Max.Lon() - bound.Min.Lon()

	offsets := [8][2]float64{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}

	neighbors := make([]string, 0, len(offsets))
	for _, off := range offsets {
		lat := center.Lat() + off[0]*height
		if lat > 90 || lat < -90 {
			continue
		}
		lon := wrapLongitude(center.Lon() + off[1]*width)
		neighbors = append(neighbors, Encode(lat, lon, len(hash)))
	}

	return neighbors, nil
}

// ValidateCoordinates reports whether lat/lon are finite and in range.
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func clampPrecision(precision int) int {
	if precision < 1 {
		return 1
	}
	if precision > MaxPrecision {
		return MaxPrecision
	}

	return precision
}

func wrapLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}

	return lon
}
