package main

import (
	"encoding/json"
	"errors"
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/noguess-games/minesweeper/mines"
)

var (
	log = logrus.New()

	configPath string
	verbose    bool
	profiling  bool
)

func init() {
	const usage = "board preset file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.BoolVar(&profiling, "profile", false, "write a CPU profile to the working directory")
}

// Preset is a named board configuration. The built-in table can be
// extended or overridden from the -config JSON file.
type Preset struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Hazards int `json:"hazards"`
}

var presets = map[string]Preset{
	"beginner":     {Width: 9, Height: 9, Hazards: 10},
	"intermediate": {Width: 16, Height: 16, Hazards: 40},
	"expert":       {Width: 30, Height: 16, Hazards: 99},
}

func loadPresets(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	loaded := map[string]Preset{}
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return err
	}
	for name, p := range loaded {
		presets[name] = p
		log.WithFields(logrus.Fields{
			"preset": name, "width": p.Width, "height": p.Height, "hazards": p.Hazards,
		}).Debug("preset loaded")
	}
	return nil
}

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		mines.Log.SetLevel(logrus.DebugLevel)
	}

	if profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if configPath != "" {
		if err := loadPresets(configPath); err != nil {
			log.Fatalf("unable to load presets from %s: %s", configPath, err)
		}
	}

	rl, err := readline.New("mines> ")
	if err != nil {
		log.Fatal("unable to open terminal: ", err)
	}
	defer rl.Close()

	s := &session{}
	s.printUsage()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil {
			return
		}
		if quit := s.execute(line); quit {
			return
		}
	}
}
