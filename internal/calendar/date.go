// Package calendar provides the in-game calendar date. Dates are plain
// values: always normalized, copied freely, compared by field.
package calendar

import "fmt"

// Date is a normalized (day, month, year) calendar value.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Epoch is day zero of the simulation clock.
var Epoch = Date{Day: 1, Month: 3, Year: 2023}

// New returns a normalized Date. Out-of-range day or month values roll into
// adjacent months and years.
func New(day, month, year int) Date {
	// Normalize the month first so the day-number conversion sees a valid
	// month index.
	year += (month - 1) / 12
	month = (month-1)%12 + 1
	if month < 1 {
		month += 12
		year--
	}
	return fromJulianDay(julianDay(Date{Day: 1, Month: month, Year: year}) + day - 1)
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DaysInMonth returns the length of the given month.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// julianDay converts a normalized date to a Julian day number.
func julianDay(d Date) int {
	a := (14 - d.Month) / 12
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3
	return d.Day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// fromJulianDay is the inverse of julianDay.
func fromJulianDay(jd int) Date {
	a := jd + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	e := (4*c + 3) / 1461
	f := c - 1461*e/4
	m := (5*f + 2) / 153
	return Date{
		Day:   f - (153*m+2)/5 + 1,
		Month: m + 3 - 12*(m/10),
		Year:  100*b + e - 4800 + m/10,
	}
}

// DayNumber returns the number of days since the epoch (1 March 2023).
// The epoch itself is day 0; earlier dates are negative.
func (d Date) DayNumber() int {
	return julianDay(d) - julianDay(Epoch)
}

// FromDayNumber returns the Date n days after the epoch.
func FromDayNumber(n int) Date {
	return fromJulianDay(julianDay(Epoch) + n)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return fromJulianDay(julianDay(d) + n)
}

// Sub returns the number of days from other to d.
func (d Date) Sub(other Date) int {
	return julianDay(d) - julianDay(other)
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d follows other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether both dates are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}
