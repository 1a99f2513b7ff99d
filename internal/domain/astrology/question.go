package astrology

import (
	"fmt"
	"strings"
)

// Topic is the keyword bucket a question falls into.
type Topic string

const (
	TopicCareer       Topic = "career"
	TopicRelationship Topic = "relationship"
	TopicWellbeing    Topic = "wellbeing"
	TopicGeneral      Topic = "general"
)

type topicBucket struct {
	topic    Topic
	keywords []string
	framing  string
	tipLine  string
	tips     [elementCount]string
}

// topicBuckets are matched in order; the first hit wins. The last bucket has
// no keywords and always matches.
var topicBuckets = []topicBucket{
	{
		topic:    TopicCareer,
		keywords: []string{"career", "job", "work", "promotion"},
		framing:  "Career insight for a %s: prioritize momentum over perfection.",
		tipLine:  "Practical nudge: %s.",
		tips: [elementCount]string{
			Fire:  "act boldly on one opportunity; follow up within 48 hours",
			Earth: "map a 2-week plan and ship one concrete deliverable",
			Air:   "pitch your ideas to a mentor; refine with feedback",
			Water: "trust rapport—nurture a key relationship this week",
		},
	},
	{
		topic:    TopicRelationship,
		keywords: []string{"love", "relationship", "partner", "marriage", "dating"},
		framing:  "Matters of the heart for a %s: lead with presence and honesty.",
		tipLine:  "Gentle guidance: %s.",
		tips: [elementCount]string{
			Fire:  "plan a playful micro-adventure",
			Earth: "express care through a reliable act",
			Air:   "share a thoughtful conversation starter",
			Water: "create a cozy space to open up",
		},
	},
	{
		topic:    TopicWellbeing,
		keywords: []string{"health", "stress", "energy", "sleep", "wellbeing"},
		framing:  "Wellbeing for a %s: listen to your body's signals.",
		tipLine:  "Today’s anchor: %s.",
		tips: [elementCount]string{
			Fire:  "10-minute high-energy movement",
			Earth: "consistent bedtime and hydration",
			Air:   "mind dump to clear mental loops",
			Water: "slow breath and soothing music",
		},
	},
	{
		topic:   TopicGeneral,
		framing: "For a %s, the path clears as you act with intention.",
		tipLine: "Guidance: %s",
		tips: [elementCount]string{
			Fire:  "Take one inspired step and observe the result.",
			Earth: "Simplify one thing; consistency will open doors.",
			Air:   "Ask a better question; clarity invites direction.",
			Water: "Honor your feelings; softness can be strong.",
		},
	},
}

// ClassifyQuestion returns the topic of a free-text question using
// case-insensitive substring matching.
func ClassifyQuestion(question string) Topic {
	return matchBucket(question).topic
}

// AnswerQuestion returns a two-line answer: a framing line naming the sign
// and a tip chosen by element. Callers reject blank questions beforehand.
func AnswerQuestion(question string, p Profile) string {
	bucket := matchBucket(question)
	return fmt.Sprintf(bucket.framing, p.Sign) + "\n" +
		fmt.Sprintf(bucket.tipLine, bucket.tips[elementIndex(p.Element)])
}

func matchBucket(question string) topicBucket {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, bucket := range topicBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(q, kw) {
				return bucket
			}
		}
	}
	return topicBuckets[len(topicBuckets)-1]
}
