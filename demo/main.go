// Terminal viewer for the aggregator: fetch all configured sources and
// browse the combined entry list interactively.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"ainews/aggregator"
	"ainews/config"
	"ainews/demo/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	hours := flag.Int("hours", config.DefaultWindowHours, "look-back window in hours")
	flag.Parse()

	// Fetcher logs would corrupt the TUI frame; discard them here.
	log.SetOutput(io.Discard)

	m := tui.NewModel(aggregator.New(), *hours)
	program := tea.NewProgram(m)

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
