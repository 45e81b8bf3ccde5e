package claims

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/fabric"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Claim is a numbered rectangle.
type Claim struct {
	ID int
	fabric.Rectangle
}

// String returns c in claim notation.
func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.Left, c.Top, c.Width, c.Height)
}

// notation lists the markers of a claim in order. Every marker is followed by
// a number.
var notation = [...]string{"#", "@", ",", ":", "x"}

// tokenize splits a line into numbers and single-character markers, dropping
// whitespace. A number is a run of digits with an optional leading '-'.
func tokenize(line string) []string {
	var tokens []string
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	for i := 0; i < len(line); {
		switch c := line[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '-' || isDigit(c):
			j := i + 1
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			tokens = append(tokens, line[i:j])
			i = j
		default:
			tokens = append(tokens, line[i:i+1])
			i++
		}
	}
	return tokens
}

// Parse reads a single claim. Whitespace between the parts of a claim is
// optional. Parse does not check the rectangle for validity, this is left to
// the fabric operations.
func Parse(line string) (Claim, error) {
	tokens := tokenize(line)
	if len(tokens) != 2*len(notation) {
		return Claim{}, fmt.Errorf("%w: malformed claim %q", ErrSyntax, line)
	}
	var n [len(notation)]int
	for i, marker := range notation {
		if tokens[2*i] != marker {
			return Claim{}, fmt.Errorf("%w: expected %q, have %q in %q", ErrSyntax, marker, tokens[2*i], line)
		}
		v, err := strconv.Atoi(tokens[2*i+1])
		if err != nil {
			return Claim{}, fmt.Errorf("%w: %q is not a number in %q", ErrSyntax, tokens[2*i+1], line)
		}
		n[i] = v
	}
	return Claim{ID: n[0], Rectangle: fabric.Rect(n[1], n[2], n[3], n[4])}, nil
}

// Scan reads claims from r, one per line. The error for a malformed line
// carries its line number.
func Scan(r io.Reader) ([]Claim, error) {
	var claims []Claim
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			tracer().Errorf("line %d: %v", lineno, err)
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		claims = append(claims, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("scanned %d claims from %d lines", len(claims), lineno)
	return claims, nil
}

// Load reads a file of claims. The file must be a regular file.
func Load(name string) ([]Claim, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f)
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}

// Rectangles returns the rectangles of claims, in the same order.
func Rectangles(claims []Claim) []fabric.Rectangle {
	rects := make([]fabric.Rectangle, len(claims))
	for i, c := range claims {
		rects[i] = c.Rectangle
	}
	return rects
}
