package astrology

import (
	"fmt"
	"strings"
)

// Sign is one of the twelve tropical zodiac signs.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
	signCount
)

var signNames = [signCount]string{
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
	Pisces:      "Pisces",
}

// Signs lists every sign in calendar order starting with Aries.
func Signs() []Sign {
	out := make([]Sign, 0, signCount)
	for s := Aries; s < signCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s < signCount
}

func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// MarshalText renders the sign label.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown sign %d", int(s))
	}
	return []byte(signNames[s]), nil
}

// UnmarshalText accepts a sign label, case-insensitive.
func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSign resolves a sign label.
func ParseSign(label string) (Sign, error) {
	for i, name := range signNames {
		if strings.EqualFold(name, strings.TrimSpace(label)) {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sign %q", label)
}

// Element is one of the four classical element families.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
	elementCount
)

var elementNames = [elementCount]string{
	Fire:  "Fire",
	Earth: "Earth",
	Air:   "Air",
	Water: "Water",
}

// Valid reports whether e is one of the four elements.
func (e Element) Valid() bool {
	return e >= Fire && e < elementCount
}

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// MarshalText renders the element label.
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("unknown element %d", int(e))
	}
	return []byte(elementNames[e]), nil
}

// UnmarshalText accepts an element label, case-insensitive.
func (e *Element) UnmarshalText(text []byte) error {
	label := strings.TrimSpace(string(text))
	for i, name := range elementNames {
		if strings.EqualFold(name, label) {
			*e = Element(i)
			return nil
		}
	}
	return fmt.Errorf("unknown element %q", label)
}

// InputData is the raw birth information collected by a caller.
// Dates use YYYY-MM-DD and times use HH:MM or HH:MM:SS.
type InputData struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	BirthTime  string `json:"birthTime"`
	BirthPlace string `json:"birthPlace"`
}

// Profile is the derived attribute record for one person. It is built once
// by BuildProfile and passed by value to the text generators.
type Profile struct {
	Name       string  `json:"name"`
	BirthPlace string  `json:"birthPlace"`
	Sign       Sign    `json:"sign"`
	Element    Element `json:"element"`
	LifePath   int     `json:"lifePath"`
	TimeTrait  string  `json:"timeTrait"`
	Seed       uint64  `json:"seed"`
	AgeYears   int     `json:"ageYears"`
}
