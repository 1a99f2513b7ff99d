package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/ai-astrologer/internal/domain/astrology"
)

type cliOptions struct {
	now          func() time.Time
	defaultName  string
	defaultPlace string
}

// birthFlags are shared by every subcommand that derives a profile.
type birthFlags struct {
	name   string
	date   string
	clock  string
	place  string
	asJSON bool
}

func (f *birthFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "your name")
	cmd.Flags().StringVar(&f.date, "date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.clock, "time", "", "birth time (HH:MM or HH:MM:SS)")
	cmd.Flags().StringVar(&f.place, "place", "", "birth place")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of text")
}

func (f *birthFlags) input() astrology.InputData {
	return astrology.InputData{Name: f.name, BirthDate: f.date, BirthTime: f.clock, BirthPlace: f.place}
}

// hasBirthDate reports whether the caller asked for a personal profile.
func (f *birthFlags) hasBirthDate() bool {
	return strings.TrimSpace(f.date) != ""
}

// validateBirthFlags rejects bad birth details before any output is written.
func validateBirthFlags(flags *birthFlags, opts cliOptions, required bool) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error {
		if !required && !flags.hasBirthDate() {
			return nil
		}
		return astrology.Validate(flags.input(), opts.now())
	}
}

func newRootCmd(opts cliOptions) *cobra.Command {
	if opts.now == nil {
		opts.now = time.Now
	}
	root := &cobra.Command{
		Use:           "astrologer",
		Short:         "Playful astrology readings from your birth details",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReadingCmd(opts), newAskCmd(opts))
	return root
}

func newReadingCmd(opts cliOptions) *cobra.Command {
	flags := &birthFlags{}
	cmd := &cobra.Command{
		Use:     "reading",
		Short:   "Derive your profile and print a reading",
		Example: `  astrologer reading --name Ada --date 1990-12-25 --time 14:30 --place London`,
		Args:    cobra.NoArgs,
		PreRunE: validateBirthFlags(flags, opts, true),
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := astrology.BuildProfileAt(flags.input(), opts.now())
			if err != nil {
				return err
			}
			greeting := astrology.Greeting(profile)
			reading := astrology.GenerateReading(profile)
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Greeting string            `json:"greeting"`
					Reading  string            `json:"reading"`
					Profile  astrology.Profile `json:"profile"`
				}{greeting, reading, profile})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", greeting, reading)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newAskCmd(opts cliOptions) *cobra.Command {
	flags := &birthFlags{}
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question in light of your profile",
		Long:  `Answer a free-text question. With --date the profile is derived from the
given birth details; without it a seeker born today at noon is assumed.`,
		Example: `  astrologer ask "Will I get a promotion?" --name Ada --date 1990-12-25 --time 14:30 --place London`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: validateBirthFlags(flags, opts, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return errors.New("please type a question")
			}
			today := opts.now()

			personalized := flags.hasBirthDate()
			in := flags.input()
			if !personalized {
				in = astrology.FallbackInput(firstNonBlank(flags.name, opts.defaultName), firstNonBlank(flags.place, opts.defaultPlace), today)
			}
			profile, err := astrology.BuildProfileAt(in, today)
			if err != nil {
				return err
			}

			answer := astrology.AnswerQuestion(question, profile)
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Answer       string            `json:"answer"`
					Topic        astrology.Topic   `json:"topic"`
					Sign         astrology.Sign    `json:"sign"`
					Element      astrology.Element `json:"element"`
					Personalized bool              `json:"personalized"`
				}{answer, astrology.ClassifyQuestion(question), profile.Sign, profile.Element, personalized})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
