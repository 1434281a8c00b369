package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quickpick/internal/config"
	"quickpick/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var filterMatches bool
	var noWrap bool
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.BoolVar(&filterMatches, "filter", false, "Hide non-matching rows while searching")
	flag.BoolVar(&noWrap, "no-wrap", false, "Stop at the list edges instead of wrapping")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("quickpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if filterMatches {
		cfg.Picker.Search = true
		cfg.Picker.FilterMatches = true
	}
	if noWrap {
		cfg.Picker.WrapAround = false
	}

	// Entries piped on stdin take precedence over the configured catalog
	if entries := readStdinEntries(); len(entries) > 0 {
		cfg.Entries = entries
	}
	if len(cfg.Entries) == 0 {
		fmt.Fprintln(os.Stderr, "No entries to pick from: configure [[entry]] tables or pipe labels on stdin")
		os.Exit(1)
	}

	uiModel, err := ui.NewModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building picker: %v\n", err)
		os.Exit(1)
	}

	// Stdout carries the accepted label, so the UI renders to stderr
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	uiModel.Pager().SetProgram(p)

	final, err := p.Run()
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	m, ok := final.(ui.Model)
	if !ok {
		os.Exit(1)
	}
	result, accepted := m.Result()
	if !accepted {
		os.Exit(1)
	}
	fmt.Println(result)
}

// loadConfig loads from an explicit path when given, otherwise from the user
// config directory with a default fallback.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.NewServiceAt(path).LoadFromPath(path)
	}

	cfg, err := config.NewService().Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

// readStdinEntries reads one leaf entry per line when stdin is a pipe.
// Lines ending in "/" become group headers.
func readStdinEntries() []config.Entry {
	fi, err := os.Stdin.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice != 0 {
		return nil
	}

	var entries []config.Entry
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if n := len(line); line[n-1] == '/' {
			entries = append(entries, config.Entry{Label: line[:n-1], Group: true})
			continue
		}
		entries = append(entries, config.Entry{Label: line})
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Error reading stdin: %v", err)
	}
	return entries
}
