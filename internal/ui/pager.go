package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerDoneMsg contains the result of a pager command
type pagerDoneMsg struct {
	err error
}

// PagerOps handles handing the terminal over to the ov pager. The program
// reference is wired in after tea.NewProgram; the struct is shared by
// pointer so the copy held inside the program sees it.
type PagerOps struct {
	program *tea.Program
}

// SetProgram sets the Bubble Tea program used for terminal management.
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content in the ov pager, releasing and restoring the
// terminal around it.
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
