package fatnav

import (
	"time"
)

// ParseDate decodes a 16 bit FAT date stamp, which is relative to the
// MS-DOS epoch of 1980-01-01:
//  Bits 0-4:  day of month, 1-31
//  Bits 5-8:  month of year, 1-12
//  Bits 9-15: years since 1980, 0-127
// The returned time always has a clock time of 00:00:00 UTC.
//
// Day or month 0 is invalid per the on-disk format, in that case the zero
// time.Time is returned so callers can use time.Time.IsZero.
func ParseDate(input uint16) time.Time {
	day := input & 0x1F
	month := input & 0x1E0 >> 5
	year := input & 0xFE00 >> 9

	if day == 0 || month == 0 {
		return time.Time{}
	}

	return time.Date(1980+int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
}

// ParseTime decodes a 16 bit FAT time stamp with its 2 second granularity:
//  Bits 0-4:   2 second count, 0-29
//  Bits 5-10:  minutes, 0-59
//  Bits 11-15: hours, 0-23
// The returned time always has a date of January 1, year 1, so a time stamp
// of 00:00:00 satisfies time.Time.IsZero.
//
// Out of range field values simply add up into the next unit, capped at
// 23:59:59. That only happens on invalid time fields.
func ParseTime(input uint16) time.Time {
	seconds := int(input&0x1F) * 2
	minutes := input & 0x7E0 >> 5
	hours := input & 0xF800 >> 11

	result := time.Date(1, 1, 1, int(hours), int(minutes), seconds, 0, time.UTC)
	if result.Day() > 1 {
		return time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC)
	}

	return result
}
