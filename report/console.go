package report

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode tells a Console when to use colors.
type ColorMode int8

// Auto uses colors if stdout is a terminal.
const (
	Auto ColorMode = iota
	Always
	Never
)

func (m ColorMode) String() string {
	switch m {
	case Always:
		return "always"
	case Never:
		return "never"
	}
	return "auto"
}

// ParseColorMode reads "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return Auto, fmt.Errorf("unknown color mode %q", s)
}

// Console writes a summary as aligned plain text.
type Console struct {
	label  *color.Color
	figure *color.Color
	strong *color.Color
}

// NewConsole creates a console writer. For mode Auto, colors are enabled only
// if stdout is a terminal.
func NewConsole(mode ColorMode) *Console {
	c := &Console{
		label:  color.New(color.FgBlue),
		figure: color.New(color.Bold),
		strong: color.New(color.FgRed, color.Bold),
	}
	enabled := mode == Always || (mode == Auto && term.IsTerminal(int(os.Stdout.Fd())))
	for _, col := range []*color.Color{c.label, c.figure, c.strong} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	tracer().Debugf("console colors enabled = %v", enabled)
	return c
}

// Write outputs s to w. It stops at the first failing write.
func (c *Console) Write(w io.Writer, s *Summary) error {
	type entry struct {
		label, value string
		hl           *color.Color
	}
	var entries []entry
	if s.Source != "" {
		entries = append(entries, entry{"source", s.Source, c.figure})
	}
	entries = append(entries,
		entry{"claims", fmt.Sprint(s.Claims), c.figure},
		entry{"overlap", fmt.Sprint(s.OverlapArea), c.strong},
		entry{"union", fmt.Sprint(s.UnionArea), c.figure},
		entry{"isolated", isolatedIDs(s.Isolated), c.figure},
	)
	for _, e := range entries {
		if _, err := c.label.Fprintf(w, "%-10s", e.label); err != nil {
			return err
		}
		if _, err := e.hl.Fprintln(w, e.value); err != nil {
			return err
		}
	}
	if len(s.Columns) == 0 {
		return nil
	}
	if _, err := c.label.Fprintf(w, "\n%8s %8s %8s %8s\n", "x", "width", "length", "area"); err != nil {
		return err
	}
	for _, col := range s.Columns {
		if _, err := fmt.Fprintf(w, "%8d %8d %8d %8d\n", col.X, col.Width, col.Length, col.Area); err != nil {
			return err
		}
	}
	return nil
}

func isolatedIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(s, " ")
}
