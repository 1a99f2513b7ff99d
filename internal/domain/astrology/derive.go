package astrology

import (
	"fmt"
	"time"
)

// zodiacCutoffs maps the last MMDD of each sign, ascending. The trailing
// 1231 entry wraps late December back to Capricorn.
var zodiacCutoffs = [...]struct {
	mmdd int
	sign Sign
}{
	{119, Capricorn},
	{218, Aquarius},
	{320, Pisces},
	{419, Aries},
	{520, Taurus},
	{620, Gemini},
	{722, Cancer},
	{822, Leo},
	{922, Virgo},
	{1022, Libra},
	{1121, Scorpio},
	{1221, Sagittarius},
	{1231, Capricorn},
}

var elementBySign = [signCount]Element{
	Aries:       Fire,
	Leo:         Fire,
	Sagittarius: Fire,
	Taurus:      Earth,
	Virgo:       Earth,
	Capricorn:   Earth,
	Gemini:      Air,
	Libra:       Air,
	Aquarius:    Air,
	Cancer:      Water,
	Scorpio:     Water,
	Pisces:      Water,
}

var timeTraitCutoffs = [...]struct {
	hour  int
	label string
}{
	{5, "early riser clarity"},
	{11, "forenoon momentum"},
	{16, "afternoon adaptability"},
	{20, "evening reflection"},
	{24, "night-owl intuition"},
}

// ZodiacSign returns the sun sign for a calendar month and day. A date that
// falls exactly on a cutoff belongs to the sign ending there.
func ZodiacSign(month time.Month, day int) Sign {
	mmdd := int(month)*100 + day
	for _, c := range zodiacCutoffs {
		if mmdd <= c.mmdd {
			return c.sign
		}
	}
	return Capricorn
}

// ElementOf returns the element family of a sign.
func ElementOf(s Sign) Element {
	if !s.Valid() {
		return Earth
	}
	return elementBySign[s]
}

// LifePathNumber reduces the digits of the YYYYMMDD form of date to a single
// digit, stopping early at the master numbers 11, 22 and 33.
func LifePathNumber(date time.Time) int {
	y, m, d := date.Date()
	sum := digitSum(fmt.Sprintf("%04d%02d%02d", y, int(m), d))
	for sum > 9 && !isMasterNumber(sum) {
		sum = digitSum(fmt.Sprint(sum))
	}
	return sum
}

func isMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func digitSum(digits string) int {
	sum := 0
	for _, r := range digits {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}

// TimeTrait labels an hour of the 24-hour clock.
func TimeTrait(hour int) string {
	for _, c := range timeTraitCutoffs {
		if hour < c.hour {
			return c.label
		}
	}
	return timeTraitCutoffs[len(timeTraitCutoffs)-1].label
}
