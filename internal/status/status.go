// Package status renders the one-line footer printed after the child exits:
// exit code and elapsed time, centered between runs of filler dots.
package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/brandonbloom/wslrun/internal/colwidth"
	"github.com/brandonbloom/wslrun/internal/syserr"
	"github.com/brandonbloom/wslrun/internal/timefmt"
)

// OpConsoleQuery names the width query in a ConsoleQueryError.
const OpConsoleQuery = "GetConsoleScreenBufferInfo failed"

// ConsoleQueryError reports that the terminal width could not be determined.
type ConsoleQueryError struct{ syserr.Failure }

// Captions are the localized texts of the footer.
type Captions struct {
	ExitCode string
	Elapsed  string
	Done     string
}

func DefaultCaptions() Captions {
	return Captions{
		ExitCode: "返回值",
		Elapsed:  "用时",
		Done:     "进程已结束。按任意键关闭窗口...",
	}
}

// Renderer writes footers to Out, sized to the width reported by Width.
type Renderer struct {
	Out      io.Writer
	Width    func() (int, error)
	Palette  Palette
	Captions Captions
}

// Render queries the terminal width and writes the footer for a child that
// exited with exitCode after elapsedSeconds. Nothing is written when the
// width is unavailable.
func (r *Renderer) Render(exitCode int, elapsedSeconds float64) error {
	width, err := r.Width()
	if err != nil {
		return &ConsoleQueryError{syserr.New(OpConsoleQuery, err)}
	}
	_, err = io.WriteString(r.Out, r.Line(width, exitCode, elapsedSeconds))
	return err
}

// Line returns the footer for a terminal width columns wide, followed by the
// completion caption. Both end in a newline.
func (r *Renderer) Line(width, exitCode int, elapsedSeconds float64) string {
	exitLabel := ExitLabel(r.Captions.ExitCode, exitCode)
	timeLabel := TimeLabel(r.Captions.Elapsed, elapsedSeconds)
	filler := strings.Repeat(string(colwidth.Filler), FillerWidth(width, exitLabel, timeLabel)/colwidth.Rune(colwidth.Filler))

	outcome := r.Palette.Style(ToneFor(exitCode))
	warning := r.Palette.Style(ToneWarning)
	muted := r.Palette.Style(ToneMuted)

	var b strings.Builder
	b.WriteString(paint(muted.Label, filler))
	b.WriteString(paint(outcome.Caret, string(colwidth.CaretLeft)))
	b.WriteString(paint(outcome.Label, exitLabel))
	b.WriteString(paint(warning.Label, timeLabel))
	b.WriteString(paint(warning.Caret, string(colwidth.CaretRight)))
	b.WriteString(filler)
	b.WriteString("\n")
	b.WriteString(r.Captions.Done)
	b.WriteString("\n")
	return b.String()
}

// ExitLabel formats the exit code label, padded by one space on each side.
func ExitLabel(caption string, exitCode int) string {
	return fmt.Sprintf(" %s %d ", caption, exitCode)
}

// TimeLabel formats the elapsed time label, padded by one space on each side.
func TimeLabel(caption string, elapsedSeconds float64) string {
	return fmt.Sprintf(" %s %s ", caption, timefmt.Elapsed(elapsedSeconds))
}

// LabelWidth is the number of columns taken by both labels and the two carets
// framing them.
func LabelWidth(exitLabel, timeLabel string) int {
	return colwidth.String(exitLabel) + colwidth.String(timeLabel) +
		colwidth.Rune(colwidth.CaretLeft) + colwidth.Rune(colwidth.CaretRight)
}

// FillerWidth is the number of columns of filler on each side of the labels.
// It is zero when the labels alone overflow the terminal.
func FillerWidth(width int, exitLabel, timeLabel string) int {
	n := (width - LabelWidth(exitLabel, timeLabel)) / 2
	if n < 0 {
		return 0
	}
	return n
}
