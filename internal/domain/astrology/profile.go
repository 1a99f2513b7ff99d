package astrology

import (
	"time"
)

// Fallback details used when a caller has no birth data for a seeker.
const (
	FallbackName      = "Seeker"
	FallbackPlace     = "Unknown"
	FallbackBirthTime = "12:00"
)

// BuildProfile validates in and derives its profile relative to the current
// date. Only *ValidationError is ever returned.
func BuildProfile(in InputData) (Profile, error) {
	return BuildProfileAt(in, time.Now())
}

// BuildProfileAt is BuildProfile with an explicit "today", used for age and
// future-date checks.
func BuildProfileAt(in InputData, today time.Time) (Profile, error) {
	details, err := validate(in, today)
	if err != nil {
		return Profile{}, err
	}
	sign := ZodiacSign(details.date.Month(), details.date.Day())
	return Profile{
		Name:       details.name,
		BirthPlace: details.place,
		Sign:       sign,
		Element:    ElementOf(sign),
		LifePath:   LifePathNumber(details.date),
		TimeTrait:  TimeTrait(details.clock.Hour()),
		Seed:       Seed(details.name, details.date),
		AgeYears:   ageYears(details.date, calendarDay(today)),
	}, nil
}

// FallbackInput describes an anonymous seeker born today at noon. Blank name
// or place fall back to FallbackName and FallbackPlace.
func FallbackInput(name, place string, today time.Time) InputData {
	in := InputData{
		Name:       name,
		BirthDate:  today.Format(dateLayout),
		BirthTime:  FallbackBirthTime,
		BirthPlace: place,
	}
	if isBlank(in.Name) {
		in.Name = FallbackName
	}
	if isBlank(in.BirthPlace) {
		in.BirthPlace = FallbackPlace
	}
	return in
}

// ageYears counts completed years. A Feb 29 birthday falls on Feb 28 in
// common years.
func ageYears(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	month, day := birth.Month(), birth.Day()
	if month == time.February && day == 29 && !isLeapYear(today.Year()) {
		day = 28
	}
	if today.Month() < month || (today.Month() == month && today.Day() < day) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
