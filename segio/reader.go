package segio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/covtri/cover"
)

// Sentinel errors for segment input parsing.
var (
	// ErrEmptyInput indicates the input held no non-blank lines at all.
	ErrEmptyInput = errors.New("segio: input is empty")
	// ErrBadCount indicates the header line is not a non-negative integer.
	ErrBadCount = errors.New("segio: invalid segment count")
	// ErrBadSegment indicates a data line is not two whitespace-separated integers.
	ErrBadSegment = errors.New("segio: invalid segment line")
	// ErrTruncatedInput indicates the input ended before the declared count was read.
	ErrTruncatedInput = errors.New("segio: unexpected end of input")
)

// ReadSegments parses the count-prefixed two-column segment format:
// the first non-blank line declares a segment count N, then each
// subsequent non-blank line holds two whitespace-separated integers
// until N pairs have been read. Blank lines are skipped anywhere.
//
// Pairs arrive in arbitrary endpoint order and are normalized here to
// Start <= End; normalization is this reader's job, not the engine's —
// cover.MinPointCover treats unnormalized order as a contract error.
//
// Error Conditions:
//   - ErrEmptyInput     : no non-blank lines.
//   - ErrBadCount       : header not a non-negative integer (wrapped with the line).
//   - ErrBadSegment     : fewer than two fields, or non-integer fields
//     (wrapped with line number and content).
//   - ErrTruncatedInput : EOF before N pairs (wrapped with the line number).
//
// Lines beyond the N-th pair are ignored.
func ReadSegments(r io.Reader) ([]cover.Segment, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// Locate the header: the first non-blank line is the count.
	var header string
	for sc.Scan() {
		lineNo++
		header = strings.TrimSpace(sc.Text())
		if header != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("segio: read failed: %w", err)
	}
	if header == "" {
		return nil, ErrEmptyInput
	}

	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadCount, header)
	}

	segments := make([]cover.Segment, 0, count)
	for len(segments) < count && sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadSegment, lineNo, line)
		}
		a, errA := strconv.ParseInt(fields[0], 10, 64)
		b, errB := strconv.ParseInt(fields[1], 10, 64)
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadSegment, lineNo, line)
		}

		// Normalize endpoint order before the pair reaches the engine.
		if a > b {
			a, b = b, a
		}
		segments = append(segments, cover.Segment{Start: a, End: b})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("segio: read failed: %w", err)
	}
	if len(segments) < count {
		return nil, fmt.Errorf("%w: got %d of %d segments by line %d", ErrTruncatedInput, len(segments), count, lineNo)
	}

	return segments, nil
}

// ReadSegmentsFile opens path and reads it with ReadSegments.
// The file handle is scoped to this call and released on all exit paths.
func ReadSegmentsFile(path string) ([]cover.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("segio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadSegments(f)
}
