// Package ui provides colored status lines, tables and spinners for the
// non-interactive parts of muxpick.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	Green = color.New(color.FgGreen).SprintFunc()
	Red   = color.New(color.FgRed).SprintFunc()
	Blue  = color.New(color.FgBlue).SprintFunc()
	Cyan  = color.New(color.FgCyan).SprintFunc()
	Bold  = color.New(color.Bold).SprintFunc()
	Dim   = color.New(color.Faint).SprintFunc()
)

// Stdout and Stderr are the destinations for status lines.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Success prints a success message with a green checkmark.
func Success(msg string) {
	fmt.Fprintf(Stdout, "%s %s\n", Green("✓"), msg)
}

// Successf prints a formatted success message.
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Error prints an error message with a red X.
func Error(msg string) {
	fmt.Fprintf(Stderr, "%s %s\n", Red("✗"), msg)
}

// Errorf prints a formatted error message.
func Errorf(format string, args ...interface{}) {
	Error(fmt.Sprintf(format, args...))
}

// Info prints an info message with a blue arrow.
func Info(msg string) {
	fmt.Fprintf(Stdout, "%s %s\n", Blue("→"), msg)
}

// Infof prints a formatted info message.
func Infof(format string, args ...interface{}) {
	Info(fmt.Sprintf(format, args...))
}

// NewTable creates a borderless left-aligned table writing to w.
func NewTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("  ")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	return table
}

// WithSpinner runs fn while showing a spinner on stderr.
func WithSpinner(msg string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(Stderr))
	s.Suffix = " " + msg
	_ = s.Color("cyan")
	s.Start()
	err := fn()
	s.Stop()
	return err
}
