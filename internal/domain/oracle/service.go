package oracle

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/ai-astrologer/internal/domain/astrology"
	"github.com/yanqian/ai-astrologer/internal/domain/session"
	apperrors "github.com/yanqian/ai-astrologer/pkg/errors"
)

const anonymousTip = "Fill in your birth details for a more tailored answer."

// Service exposes readings and question answering to transports.
type Service interface {
	Reading(ctx context.Context, req ReadingRequest) (ReadingResponse, error)
	Ask(ctx context.Context, req QuestionRequest) (QuestionResponse, error)
}

// TokenIssuer signs and verifies session handles.
type TokenIssuer interface {
	Issue(id string) (string, error)
	Parse(token string) (string, error)
}

type service struct {
	cfg    Config
	store  session.Store
	tokens TokenIssuer
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the oracle domain. now decides what "today" is for age
// and future-date checks.
func NewService(cfg Config, store session.Store, tokens TokenIssuer, logger *slog.Logger, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		cfg:    cfg,
		store:  store,
		tokens: tokens,
		logger: logger.With("component", "oracle.service"),
		now:    now,
	}
}

func (s *service) Reading(ctx context.Context, req ReadingRequest) (ReadingResponse, error) {
	start := s.now()
	profile, err := astrology.BuildProfileAt(req.input(), start)
	if err != nil {
		return ReadingResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), err)
	}

	resp := ReadingResponse{
		Greeting: astrology.Greeting(profile),
		Reading:  astrology.GenerateReading(profile),
		Profile:  profile,
	}

	token, err := s.remember(ctx, profile, start)
	if err != nil {
		s.logger.Warn("session not stored", "error", err)
	} else {
		resp.SessionToken = token
	}

	resp.DurationMs = s.now().Sub(start).Milliseconds()
	s.logger.Info("reading generated", "sign", profile.Sign.String(), "element", profile.Element.String(), "life_path", profile.LifePath, "session", resp.SessionToken != "")
	return resp, nil
}

func (s *service) Ask(ctx context.Context, req QuestionRequest) (QuestionResponse, error) {
	start := s.now()
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return QuestionResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "please type a question", nil)
	}

	var (
		profile      astrology.Profile
		personalized bool
		tip          string
	)
	if strings.TrimSpace(req.SessionToken) != "" {
		record, err := s.recall(ctx, req.SessionToken)
		if err != nil {
			return QuestionResponse{}, err
		}
		profile = record.Profile
		personalized = true
	} else {
		fallback, err := s.seekerProfile(req, start)
		if err != nil {
			return QuestionResponse{}, err
		}
		profile = fallback
		tip = anonymousTip
	}

	topic := astrology.ClassifyQuestion(question)
	resp := QuestionResponse{
		Answer:       astrology.AnswerQuestion(question, profile),
		Topic:        topic,
		Sign:         profile.Sign,
		Element:      profile.Element,
		Personalized: personalized,
		Tip:          tip,
		DurationMs:   s.now().Sub(start).Milliseconds(),
	}
	s.logger.Info("question answered", "topic", string(topic), "sign", profile.Sign.String(), "personalized", personalized)
	return resp, nil
}

func (s *service) remember(ctx context.Context, profile astrology.Profile, now time.Time) (string, error) {
	if s.store == nil || s.tokens == nil {
		return "", apperrors.Wrap(apperrors.CodeSessionError, "sessions disabled", nil)
	}
	record := session.Record{ID: session.NewID(), Profile: profile, CreatedAt: now.UTC()}
	if err := s.store.Save(ctx, record, s.cfg.SessionTTL); err != nil {
		return "", apperrors.Wrap(apperrors.CodeSessionError, "failed to save session", err)
	}
	token, err := s.tokens.Issue(record.ID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeSessionError, "failed to issue session token", err)
	}
	return token, nil
}

func (s *service) recall(ctx context.Context, token string) (session.Record, error) {
	if s.store == nil || s.tokens == nil {
		return session.Record{}, apperrors.Wrap(apperrors.CodeInvalidSession, "sessions are disabled", nil)
	}
	id, err := s.tokens.Parse(token)
	if err != nil {
		return session.Record{}, apperrors.Wrap(apperrors.CodeInvalidSession, "session token is invalid", err)
	}
	record, ok, err := s.store.Load(ctx, id)
	if err != nil {
		return session.Record{}, apperrors.Wrap(apperrors.CodeSessionError, "failed to load session", err)
	}
	if !ok {
		return session.Record{}, apperrors.Wrap(apperrors.CodeInvalidSession, "session has expired", nil)
	}
	return record, nil
}

func (s *service) seekerProfile(req QuestionRequest, today time.Time) (astrology.Profile, error) {
	name := firstNonBlank(req.Name, s.cfg.DefaultName)
	place := firstNonBlank(req.BirthPlace, s.cfg.DefaultPlace)
	profile, err := astrology.BuildProfileAt(astrology.FallbackInput(name, place, today), today)
	if err != nil {
		return astrology.Profile{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), err)
	}
	return profile, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
