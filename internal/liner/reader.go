package liner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxLineSize is used when NewReader gets a non-positive size.
const DefaultMaxLineSize = bufio.MaxScanTokenSize

const initialBufferSize = 4096

type Reader struct {
	maxLineSize int
}

func NewReader(maxLineSize int) *Reader {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}

	return &Reader{
		maxLineSize: maxLineSize,
	}
}

func (r *Reader) scan(ctx context.Context, in io.Reader, linesChan chan<- Line) error {
	defer close(linesChan)

	// The scanner buffer also has to hold the "\n" of a line of exactly maxLineSize bytes.
	bufferSize := r.maxLineSize
	if bufferSize < math.MaxInt {
		bufferSize++
	}

	lineNumber := 1
	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, min(initialBufferSize, bufferSize)), bufferSize)

	for scan.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case linesChan <- NewLine(lineNumber, scan.Text()):
		case <-ctx.Done():
			return ctx.Err()
		}

		lineNumber++
	}

	if err := scan.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return ErrLineTooLong{No: lineNumber}
		}

		return fmt.Errorf("scan line #%d: %w", lineNumber, err)
	}

	return nil
}

// Read returns every line of in, numbered from 1, with terminators stripped.
func (r *Reader) Read(ctx context.Context, in io.Reader) ([]Line, error) {
	eg, ctx := errgroup.WithContext(ctx)
	linesChan := make(chan Line)

	eg.Go(func() error {
		return r.scan(ctx, in, linesChan)
	})

	lines := make([]Line, 0)

	eg.Go(func() error {
		for curLine := range linesChan {
			lines = append(lines, curLine)
		}

		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("eg.Wait(): %w", err)
	}

	return lines, nil
}
