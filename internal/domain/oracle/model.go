package oracle

import (
	"time"

	"github.com/yanqian/ai-astrologer/internal/domain/astrology"
)

// Config drives the oracle service.
type Config struct {
	SessionTTL   time.Duration
	DefaultName  string
	DefaultPlace string
}

// ReadingRequest carries the birth details submitted by a caller.
type ReadingRequest struct {
	Name       string `json:"name" binding:"max=64"`
	BirthDate  string `json:"birthDate"`
	BirthTime  string `json:"birthTime"`
	BirthPlace string `json:"birthPlace" binding:"max=64"`
}

// ReadingResponse is returned to API consumers.
type ReadingResponse struct {
	Greeting     string            `json:"greeting"`
	Reading      string            `json:"reading"`
	Profile      astrology.Profile `json:"profile"`
	SessionToken string            `json:"sessionToken,omitempty"`
	DurationMs   int64             `json:"durationMs"`
}

// QuestionRequest asks the oracle a free-text question. Without a session
// token the answer is based on an anonymous seeker profile built from Name
// and BirthPlace.
type QuestionRequest struct {
	Question     string `json:"question"`
	SessionToken string `json:"sessionToken,omitempty"`
	Name         string `json:"name,omitempty" binding:"max=64"`
	BirthPlace   string `json:"birthPlace,omitempty" binding:"max=64"`
}

// QuestionResponse is the oracle's answer.
type QuestionResponse struct {
	Answer       string            `json:"answer"`
	Topic        astrology.Topic   `json:"topic"`
	Sign         astrology.Sign    `json:"sign"`
	Element      astrology.Element `json:"element"`
	Personalized bool              `json:"personalized"`
	Tip          string            `json:"tip,omitempty"`
	DurationMs   int64             `json:"durationMs"`
}

func (r ReadingRequest) input() astrology.InputData {
	return astrology.InputData{
		Name:       r.Name,
		BirthDate:  r.BirthDate,
		BirthTime:  r.BirthTime,
		BirthPlace: r.BirthPlace,
	}
}
