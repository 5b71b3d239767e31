package internal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Console writes run progress as colored status lines.
type Console struct {
	out     io.Writer
	spinner *spinner.Spinner
	action  string

	ok, fail, detail, plain *color.Color
}

type ConsoleOptions struct {
	Out io.Writer

	// Spinner, when set, is written to instead of printing plain
	// start and stop lines. Use it only for terminals.
	Spinner *os.File

	Color bool
}

// NewConsole creates a Console.
func NewConsole(opts ConsoleOptions) *Console {
	c := &Console{out: opts.Out}
	c.ok = color.New(color.FgGreen)
	c.fail = color.New(color.FgRed)
	c.detail = color.New(color.FgHiBlack)
	c.plain = color.New(color.FgWhite)
	for _, m := range []*color.Color{c.ok, c.fail, c.detail, c.plain} {
		if opts.Color {
			m.EnableColor()
		} else {
			m.DisableColor()
		}
	}

	if opts.Spinner != nil {
		c.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(opts.Spinner))
	}
	return c
}

// Start begins the activity indicator.
func (c *Console) Start(msg string) {
	c.action = msg
	if c.spinner == nil {
		fmt.Fprintf(c.out, "%s...\n", c.ok.Sprint(msg))
		return
	}
	c.spinner.Suffix = " " + c.ok.Sprint(msg)
	c.spinner.Start()
}

// Stop ends the activity indicator.
func (c *Console) Stop(msg string) {
	if c.spinner == nil {
		fmt.Fprintf(c.out, "%s... %s\n", c.ok.Sprint(c.action), c.ok.Sprint(msg))
		return
	}
	c.spinner.FinalMSG = fmt.Sprintf("%s... %s\n", c.ok.Sprint(c.action), c.ok.Sprint(msg))
	c.spinner.Stop()
}

func (c *Console) Success(msg string) {
	c.line(c.ok.Sprint("success"), msg)
}

func (c *Console) Failure(msg string) {
	c.line(c.fail.Sprint("error"), msg)
}

// line prints a status line, pausing the spinner so the two don't interleave.
func (c *Console) line(status, msg string) {
	active := c.spinner != nil && c.spinner.Active()
	if active {
		c.spinner.Stop()
	}
	fmt.Fprintf(c.out, "%s %s\n", status, c.detail.Sprint(msg))
	if active {
		c.spinner.Start()
	}
}

// Summary prints the final counts.
func (c *Console) Summary(res Result) {
	fmt.Fprintln(c.out, c.plain.Sprintf("%d tweet(s) successfully deleted.", res.Deleted))
	fmt.Fprintln(c.out, c.plain.Sprintf("%d tweet(s) successfully unretweeted.", res.Unretweeted))
}

// Error prints a fatal message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.fail.Sprint("error"), msg)
}
