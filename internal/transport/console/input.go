package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

var ErrMalformedTarget = errors.New("target must be two numbers, row and column")

// longer lines are rejected as a whole and never buffered
const maxLineLength = 256

// Input - reads human shots line by line and asks again until a valid target is entered.
type Input struct {
	logger *slog.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewInput(logger *slog.Logger, in io.Reader, out io.Writer) *Input {
	return &Input{
		logger: logger.With("component", "console-input"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (that *Input) NextTarget(ctx context.Context, shooter, _ *entity.Player) (entity.Coordinate, error) {
	log := that.logger.With("method", "NextTarget", "player", shooter.Name())

	for {
		if err := ctx.Err(); err != nil {
			return entity.Coordinate{}, fmt.Errorf("input interrupted: %w", err)
		}

		fmt.Fprintf(that.out, "%s, enter row and column (0-%d): ", shooter.Name(), entity.BoardSize-1)

		line, err := that.readLine()
		switch {
		case errors.Is(err, io.EOF):
			return entity.Coordinate{}, apperror.ErrInputClosed
		case err != nil && !errors.Is(err, ErrMalformedTarget):
			return entity.Coordinate{}, fmt.Errorf("failed to read input: %w", err)
		}

		target := entity.Coordinate{}
		if err == nil {
			target, err = ParseTarget(line)
		}
		if err != nil {
			log.Debug("rejected target", "input", line, "error", err)
			fmt.Fprintf(that.out, "Invalid target: %v\n", err)

			continue
		}

		return target, nil
	}
}

// readLine - returns the next line without its terminator. A line over maxLineLength is
// consumed up to its end and reported as ErrMalformedTarget.
func (that *Input) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
		read    bool
	)

	for {
		chunk, isPrefix, err := that.reader.ReadLine()
		if err != nil {
			// the last line had no terminator
			if errors.Is(err, io.EOF) && read {
				break
			}

			return "", err
		}
		read = true

		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				tooLong = true
				line = nil
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w: line longer than %d characters", ErrMalformedTarget, maxLineLength)
	}

	return string(line), nil
}

// ParseTarget - accepts "3 7", "3,7" or "3, 7".
func ParseTarget(line string) (entity.Coordinate, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	if len(fields) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: got %q", ErrMalformedTarget, strings.TrimSpace(line))
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: row %q", ErrMalformedTarget, fields[0])
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: column %q", ErrMalformedTarget, fields[1])
	}

	if !entity.InBounds(x, y) {
		return entity.Coordinate{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	return entity.Coordinate{X: x, Y: y}, nil
}
