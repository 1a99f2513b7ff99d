// Command astrologer prints birth-chart readings and answers questions from
// the terminal.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/yanqian/ai-astrologer/internal/infra/config"
	"github.com/yanqian/ai-astrologer/pkg/util"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	loc, err := util.LoadLocation(cfg.Astrology.Timezone)
	if err != nil {
		log.Fatalf("failed to load timezone: %v", err)
	}

	root := newRootCmd(cliOptions{
		now:          util.Clock(loc),
		defaultName:  cfg.Astrology.DefaultName,
		defaultPlace: cfg.Astrology.DefaultPlace,
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
