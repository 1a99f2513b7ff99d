package astrology

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func TestBuildProfileScenario(t *testing.T) {
	in := InputData{Name: "Ada", BirthDate: "1990-12-25", BirthTime: "14:30", BirthPlace: "London"}

	p, err := BuildProfileAt(in, testToday)
	require.NoError(t, err)
	require.Equal(t, "Ada", p.Name)
	require.Equal(t, "London", p.BirthPlace)
	require.Equal(t, Capricorn, p.Sign)
	require.Equal(t, Earth, p.Element)
	require.Equal(t, 11, p.LifePath)
	require.Equal(t, "afternoon adaptability", p.TimeTrait)
	require.Equal(t, Seed("ada", mustDate(t, "1990-12-25")), p.Seed)
	require.Equal(t, 35, p.AgeYears)

	again, err := BuildProfileAt(in, testToday)
	require.NoError(t, err)
	require.Equal(t, p, again)
}

func TestBuildProfileLateNight(t *testing.T) {
	in := InputData{Name: "Owl", BirthDate: "2000-06-01", BirthTime: "23:59", BirthPlace: "Oslo"}

	p, err := BuildProfileAt(in, testToday)
	require.NoError(t, err)
	require.Equal(t, "night-owl intuition", p.TimeTrait)
}

func TestBuildProfileAcceptsSecondsAndTrimsInput(t *testing.T) {
	in := InputData{Name: "  Grace ", BirthDate: " 1906-12-09 ", BirthTime: "06:15:30", BirthPlace: " New York "}

	p, err := BuildProfileAt(in, testToday)
	require.NoError(t, err)
	require.Equal(t, "Grace", p.Name)
	require.Equal(t, "New York", p.BirthPlace)
	require.Equal(t, Sagittarius, p.Sign)
	require.Equal(t, "forenoon momentum", p.TimeTrait)
}

func TestBuildProfileValidation(t *testing.T) {
	valid := InputData{Name: "Ada", BirthDate: "1990-12-25", BirthTime: "14:30", BirthPlace: "London"}

	cases := []struct {
		name   string
		mutate func(*InputData)
		field  string
		reason string
	}{
		{name: "empty name", mutate: func(in *InputData) { in.Name = "" }, field: "name", reason: "name is required"},
		{name: "whitespace name", mutate: func(in *InputData) { in.Name = "   " }, field: "name", reason: "name is required"},
		{name: "malformed date", mutate: func(in *InputData) { in.BirthDate = "25/12/1990" }, field: "birthDate", reason: "birth date is invalid"},
		{name: "impossible date", mutate: func(in *InputData) { in.BirthDate = "1990-02-30" }, field: "birthDate", reason: "birth date is invalid"},
		{name: "future date", mutate: func(in *InputData) { in.BirthDate = "2026-10-16" }, field: "birthDate", reason: "birth date cannot be in the future"},
		{name: "malformed time", mutate: func(in *InputData) { in.BirthTime = "25:00" }, field: "birthTime", reason: "birth time is invalid"},
		{name: "empty time", mutate: func(in *InputData) { in.BirthTime = "" }, field: "birthTime", reason: "birth time is invalid"},
		{name: "empty place", mutate: func(in *InputData) { in.BirthPlace = " " }, field: "birthPlace", reason: "birth place is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)

			_, err := BuildProfileAt(in, testToday)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Equal(t, tc.field, vErr.Field)
			require.Equal(t, tc.reason, vErr.Error())
			require.Equal(t, err, Validate(in, testToday))
		})
	}
}

func TestBuildProfileBornToday(t *testing.T) {
	in := InputData{Name: "New", BirthDate: "2026-10-15", BirthTime: "00:00", BirthPlace: "Here"}

	p, err := BuildProfileAt(in, testToday)
	require.NoError(t, err)
	require.Equal(t, 0, p.AgeYears)
	require.Equal(t, Libra, p.Sign)
}

func TestAgeYearsAccountsForBirthday(t *testing.T) {
	today := mustDate(t, "2026-10-15")
	require.Equal(t, 36, ageYears(mustDate(t, "1990-10-15"), today))
	require.Equal(t, 35, ageYears(mustDate(t, "1990-10-16"), today))
	require.Equal(t, 0, ageYears(mustDate(t, "2027-01-01"), today))

	leapling := mustDate(t, "2000-02-29")
	require.Equal(t, 22, ageYears(leapling, mustDate(t, "2023-02-27")))
	require.Equal(t, 23, ageYears(leapling, mustDate(t, "2023-02-28")))
	require.Equal(t, 23, ageYears(leapling, mustDate(t, "2024-02-28")))
	require.Equal(t, 24, ageYears(leapling, mustDate(t, "2024-02-29")))
	require.Equal(t, 0, ageYears(leapling, mustDate(t, "2001-02-27")))
	require.Equal(t, 1, ageYears(leapling, mustDate(t, "2001-02-28")))
}

func TestFallbackInput(t *testing.T) {
	in := FallbackInput("", "  ", testToday)
	require.Equal(t, InputData{Name: FallbackName, BirthDate: "2026-10-15", BirthTime: FallbackBirthTime, BirthPlace: FallbackPlace}, in)

	p, err := BuildProfileAt(in, testToday)
	require.NoError(t, err)
	require.Equal(t, Libra, p.Sign)
	require.Equal(t, Air, p.Element)
	require.Equal(t, "afternoon adaptability", p.TimeTrait)

	named := FallbackInput("Ada", "London", testToday)
	require.Equal(t, "Ada", named.Name)
	require.Equal(t, "London", named.BirthPlace)
}
