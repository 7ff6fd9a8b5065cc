package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressBar reports test-file counting progress
type ProgressBar struct {
	bar *progressbar.ProgressBar
	w   io.Writer
}

// NewProgressBar creates a progress bar drawn on w. The bar is sized by Start.
func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{w: w}
}

// Start draws an empty bar over total test files
func (p *ProgressBar) Start(total int) {
	w := p.w
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.CyanString("Counting tests: ")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Add advances the bar by n files
func (p *ProgressBar) Add(n int) {
	if p.bar != nil {
		_ = p.bar.Add(n)
	}
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// ProgressEnabled reports whether a requested progress bar should be drawn.
// The bar goes to stderr and is suppressed when stderr is not a terminal.
func ProgressEnabled(requested bool) bool {
	return requested && term.IsTerminal(int(os.Stderr.Fd()))
}
