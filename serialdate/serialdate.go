// Package serialdate converts spreadsheet serial day numbers to calendar
// fields and back.
//
// A serial is a float64 whose integer part counts days from the epoch and
// whose fractional part is the time of day.  Two epochs exist:
//
//   - [Epoch1900]: day 1 is 1900-01-01 and day 0 is the fictitious
//     1900-01-00.  Lotus 1-2-3 treated 1900 as a leap year and spreadsheet
//     applications keep the mistake, so day 60 is 1900-02-29 and every day
//     before it is one off relative to the proleptic Gregorian calendar.
//   - [Epoch1904]: day 0 is 1904-01-01, a plain offset of 1462 days with no
//     phantom leap day.
//
// [DateFromSerial] and [ClockFromFraction] expose the raw fields, including
// the two dates [time.Time] cannot represent.  [ToTime] is the lossy
// convenience conversion for callers that want a [time.Time].
package serialdate

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Epoch selects the date system of a workbook.
type Epoch uint8

const (
	// Epoch1900 is the default Windows date system.
	Epoch1900 Epoch = iota
	// Epoch1904 is the legacy Macintosh date system.
	Epoch1904
)

// Offset1904 is the number of days between the two epochs.
const Offset1904 = 1462

// MaxSerial1900 is the last valid 1900-system day (9999-12-31).
const MaxSerial1900 = 2_958_465

// String implements fmt.Stringer.
func (e Epoch) String() string {
	switch e {
	case Epoch1900:
		return "1900"
	case Epoch1904:
		return "1904"
	}
	return fmt.Sprintf("Epoch(%d)", uint8(e))
}

// EpochFor maps the workbook's date1904 flag to an Epoch.
func EpochFor(date1904 bool) Epoch {
	if date1904 {
		return Epoch1904
	}
	return Epoch1900
}

// MaxSerial returns the last valid day number for e.
func (e Epoch) MaxSerial() int {
	if e == Epoch1904 {
		return MaxSerial1900 - Offset1904
	}
	return MaxSerial1900
}

var (
	// ErrNegativeSerial is returned for serials below zero.
	ErrNegativeSerial = errors.New("serialdate: negative serial")
	// ErrSerialRange is returned for serials past 9999-12-31 or non-finite
	// values.
	ErrSerialRange = errors.New("serialdate: serial out of range")
)

// Date holds calendar fields.  Day may be 0 (1900-01-00) and the pair
// Month=2, Day=29 may occur in 1900 (the phantom leap day).
type Date struct {
	Year  int
	Month int
	Day   int
}

// Clock holds time-of-day fields.
type Clock struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// DateTime combines the two.
type DateTime struct {
	Date
	Clock
}

var (
	base1900 = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	base1904 = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
	// Day 61 onwards is counted from 1899-12-30 so that the phantom leap
	// day is absorbed.
	base1900Late = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
)

// DateFromSerial returns the calendar date of day number days.
func DateFromSerial(days int, e Epoch) (Date, error) {
	if days < 0 {
		return Date{}, fmt.Errorf("serialdate: day %d: %w", days, ErrNegativeSerial)
	}
	if days > e.MaxSerial() {
		return Date{}, fmt.Errorf("serialdate: day %d: %w", days, ErrSerialRange)
	}
	if e == Epoch1904 {
		return dateOf(base1904.AddDate(0, 0, days)), nil
	}
	switch {
	case days == 0:
		return Date{Year: 1900, Month: 1, Day: 0}, nil
	case days == 60:
		return Date{Year: 1900, Month: 2, Day: 29}, nil
	case days < 60:
		return dateOf(base1900.AddDate(0, 0, days)), nil
	default:
		return dateOf(base1900Late.AddDate(0, 0, days)), nil
	}
}

func dateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Serial is the inverse of DateFromSerial.  Dates before the epoch yield a
// negative day count.
func (d Date) Serial(e Epoch) int {
	if e == Epoch1904 {
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		return daysBetween(base1904, t)
	}
	if d.Year == 1900 && d.Month == 1 && d.Day == 0 {
		return 0
	}
	if d.Year == 1900 && d.Month == 2 && d.Day == 29 {
		return 60
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	n := daysBetween(base1900Late, t)
	if n < 61 {
		n--
	}
	return n
}

// daysBetween counts whole days between two UTC midnights.  It works on
// Unix seconds because time.Duration cannot span more than 292 years.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / 86400)
}

// Weekday returns the day of week the application shows for day number
// days.  In the 1900 system day 1 is a Sunday, which is wrong for the
// real 1900-01-01 but consistent with the phantom leap day.
func Weekday(days int, e Epoch) time.Weekday {
	off := 6
	if e == Epoch1904 {
		// 1904-01-01 was a Friday.
		off = 5
	}
	w := (days + off) % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

// ClockFromFraction splits a fraction of a day into clock fields, rounded to
// the nearest microsecond.  frac is clamped to [0, 1).
func ClockFromFraction(frac float64) Clock {
	if frac < 0 || math.IsNaN(frac) {
		frac = 0
	}
	const microsPerDay = 86_400_000_000
	us := int64(math.Round(frac * microsPerDay))
	if us >= microsPerDay {
		us = microsPerDay - 1
	}
	return ClockFromMicros(us)
}

// ClockFromMicros splits a microsecond count within one day.
func ClockFromMicros(us int64) Clock {
	secs := us / 1_000_000
	return Clock{
		Hour:        int(secs / 3600),
		Minute:      int(secs / 60 % 60),
		Second:      int(secs % 60),
		Microsecond: int(us % 1_000_000),
	}
}

// Fraction is the inverse of ClockFromFraction.
func (c Clock) Fraction() float64 {
	us := ((int64(c.Hour)*60+int64(c.Minute))*60+int64(c.Second))*1_000_000 + int64(c.Microsecond)
	return float64(us) / 86_400_000_000
}

// FromSerial decomposes a full serial into date and clock fields.
func FromSerial(serial float64, e Epoch) (DateTime, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return DateTime{}, fmt.Errorf("serialdate: serial %v: %w", serial, ErrSerialRange)
	}
	if serial < 0 {
		return DateTime{}, fmt.Errorf("serialdate: serial %v: %w", serial, ErrNegativeSerial)
	}
	days := math.Floor(serial)
	clock := ClockFromFraction(serial - days)
	if days > float64(e.MaxSerial()) {
		return DateTime{}, fmt.Errorf("serialdate: serial %v: %w", serial, ErrSerialRange)
	}
	date, err := DateFromSerial(int(days), e)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: date, Clock: clock}, nil
}

// Serial is the inverse of FromSerial.
func (dt DateTime) Serial(e Epoch) float64 {
	return float64(dt.Date.Serial(e)) + dt.Clock.Fraction()
}

// FromTime returns the serial of t's wall-clock fields in epoch e.  The
// location of t is kept as is; callers convert to the desired zone first.
func FromTime(t time.Time, e Epoch) float64 {
	y, m, d := t.Date()
	dt := DateTime{
		Date: Date{Year: y, Month: int(m), Day: d},
		Clock: Clock{
			Hour:        t.Hour(),
			Minute:      t.Minute(),
			Second:      t.Second(),
			Microsecond: t.Nanosecond() / 1000,
		},
	}
	return dt.Serial(e)
}

// FromDuration returns d as a fraction of days, the serial form of an
// elapsed time.
func FromDuration(d time.Duration) float64 {
	return float64(d) / float64(24*time.Hour)
}

// ToTime converts a serial to a [time.Time] in UTC.
//
// The conversion follows pyxlsb and excelize rather than the raw fields:
//
//   - serial 0 is midnight on 1900-01-01
//   - serials 1 to 60 are counted from 1899-12-31, so 60 becomes 1900-03-01
//   - serials from 61 are shifted back one day to absorb the phantom leap day
//
// The time of day is rounded to whole seconds (see fracSeconds).
func ToTime(serial float64, e Epoch) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, fmt.Errorf("serialdate: ToTime: invalid value %v: %w", serial, ErrSerialRange)
	}
	if serial < 0 {
		return time.Time{}, fmt.Errorf("serialdate: ToTime: serial %v: %w", serial, ErrNegativeSerial)
	}
	// One past the last valid day, so that 9999-12-31 23:59:59.6 can still
	// round up.
	if maxSerial := e.MaxSerial() + 1; serial > float64(maxSerial) {
		return time.Time{}, fmt.Errorf("serialdate: ToTime: serial %v exceeds maximum supported value %d: %w", serial, maxSerial, ErrSerialRange)
	}

	secs, rollover := fracSeconds(serial)
	days := int(serial) + rollover
	clock := time.Duration(secs) * time.Second

	// AddDate keeps the day count out of time.Duration, which overflows
	// after 292 years.
	if e == Epoch1904 {
		return base1904.AddDate(0, 0, days).Add(clock), nil
	}
	switch {
	case days == 0:
		return time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).Add(clock), nil
	case days >= 61:
		return base1900.AddDate(0, 0, days-1).Add(clock), nil
	default:
		return base1900.AddDate(0, 0, days).Add(clock), nil
	}
}

// fracSeconds converts the fractional day of serial to whole seconds
// (0-86399) plus a day rollover of 0 or 1.  A roundEpsilon of 1e-9 day is
// added before truncating to nanoseconds and more than half a second
// rounds up, matching excelize.
func fracSeconds(serial float64) (secs int64, rollover int) {
	const roundEpsilon = 1e-9
	const nanosPerDay = float64(24 * time.Hour)
	frac := serial - math.Trunc(serial) + roundEpsilon
	dur := time.Duration(frac * nanosPerDay)
	secs = int64(dur / time.Second)
	if dur%time.Second > 500*time.Millisecond {
		secs++
	}
	if secs < 0 {
		secs = 0
	}
	return secs % 86400, int(secs / 86400)
}
