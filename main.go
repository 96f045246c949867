package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tatianab/dungeon-escape/internal/command"
	"github.com/tatianab/dungeon-escape/internal/config"
	"github.com/tatianab/dungeon-escape/internal/engine"
	"github.com/tatianab/dungeon-escape/internal/logger"
	"github.com/tatianab/dungeon-escape/internal/models"
	"github.com/tatianab/dungeon-escape/internal/world"
)

// Plain line-oriented play: one command per line on stdin, narration on stdout.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, closeLog, err := logger.Output(cfg.LogFile, os.Stderr)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Init(cfg.LogLevel, cfg.LogFormat, out)

	dungeon, err := models.LoadDungeon(cfg.DungeonFile)
	if err != nil {
		fmt.Printf("Error loading dungeon: %v\n", err)
		if names, _ := models.ListDungeons(cfg.DungeonDir); len(names) > 0 {
			fmt.Printf("Available dungeons in %s: %s\n", cfg.DungeonDir, strings.Join(names, ", "))
		}
		os.Exit(1)
	}

	eng, err := engine.NewEngine(dungeon, world.NewRandSource(cfg.Seed))
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}

	printLines(eng.Intro())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		turn := eng.ProcessTurn(command.Parse(scanner.Text()))
		printLines(turn.Lines)
		if turn.Status.Terminal() {
			return
		}
	}
	fmt.Println()
	fmt.Println("Thank you for playing.  Good bye.")
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}
