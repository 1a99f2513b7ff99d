package astrology

import (
	"fmt"
	"strings"
)

var signTraits = [signCount]string{
	Aries:       "bold, pioneering energy",
	Taurus:      "steady, grounded presence",
	Gemini:      "curious, communicative spark",
	Cancer:      "intuitive, nurturing vibe",
	Leo:         "radiant, expressive leadership",
	Virgo:       "practical, detail-oriented focus",
	Libra:       "harmonizing, diplomatic balance",
	Scorpio:     "deep, transformative magnetism",
	Sagittarius: "adventurous, truth-seeking spirit",
	Capricorn:   "ambitious, disciplined drive",
	Aquarius:    "visionary, original perspective",
	Pisces:      "creative, empathetic flow",
}

var adviceByElement = [elementCount][2]string{
	Fire: {
		"Channel your momentum into one clear goal this week.",
		"Take a small risk that excites you—start, then iterate.",
	},
	Earth: {
		"Build a simple routine; consistency will compound.",
		"Tackle one practical task that reduces friction in your life.",
	},
	Air: {
		"Write your thoughts—clarity comes from articulation.",
		"Have a meaningful conversation that stretches your thinking.",
	},
	Water: {
		"Trust your intuition; journal a gut feeling and act on it.",
		"Protect your energy—set one gentle boundary today.",
	},
}

var lifePathThemes = map[int]string{
	1:  "leadership and fresh starts",
	2:  "partnership and cooperation",
	3:  "creativity and communication",
	4:  "stability and systems",
	5:  "change and exploration",
	6:  "care and responsibility",
	7:  "reflection and depth",
	8:  "ambition and impact",
	9:  "service and completion",
	11: "intuition and insight",
	22: "vision and building",
	33: "service through creativity",
}

const fallbackLifePathTheme = "growth"

// Greeting is the salutation shown above a reading.
func Greeting(p Profile) string {
	return fmt.Sprintf("Hello %s! Here's your cosmic snapshot:", p.Name)
}

// GenerateReading renders the daily reading for p. The advice line is picked
// by p.Seed, so the same profile always reads the same.
func GenerateReading(p Profile) string {
	lines := []string{
		fmt.Sprintf("• Sun sign: %s (%s element) — %s.", p.Sign, p.Element, signTrait(p.Sign)),
		fmt.Sprintf("• Life path %d: a theme of %s.", p.LifePath, LifePathTheme(p.LifePath)),
		fmt.Sprintf("• Your natural rhythm leans toward %s.", p.TimeTrait),
		"\nFocus for you:",
		"→ " + Advice(p),
	}
	return strings.Join(lines, "\n")
}

// LifePathTheme describes a life path number.
func LifePathTheme(lifePath int) string {
	if theme, ok := lifePathThemes[lifePath]; ok {
		return theme
	}
	return fallbackLifePathTheme
}

// Advice returns the seed-selected advice for the profile's element.
func Advice(p Profile) string {
	options := adviceByElement[elementIndex(p.Element)]
	return options[p.Seed%uint64(len(options))]
}

func signTrait(s Sign) string {
	if !s.Valid() {
		return "balanced energy"
	}
	return signTraits[s]
}

func elementIndex(e Element) Element {
	if !e.Valid() {
		return Earth
	}
	return e
}
