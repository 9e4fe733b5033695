// Package prompt asks the user for search parameters, repeating each
// question until the answer is usable.
package prompt

import (
	"context"
	"io"
	"math"
	"strconv"

	"primehunt/internal/common/console"
	"primehunt/internal/hunt/model"
	appErr "primehunt/pkg/errors"
	"primehunt/pkg/utils/logger"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"go.uber.org/zap"
)

const (
	UpperBoundPrompt = "Enter the maximum number to search: "
	TimeoutPrompt    = "Enter timeout in minutes (e.g., 0.5 for 30 seconds): "
)

// LineReader reads one line of input after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ReadlineReader reads lines through chzyer/readline.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a reader over in and out. History is disabled;
// answers are never persisted.
func NewReadlineReader(in io.ReadCloser, out io.Writer) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  in,
		Stdout:                 out,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.InputReadFailed, "init readline failed")
	}
	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// Prompter drives the two questions of an interactive session.
type Prompter struct {
	reader  LineReader
	out     io.Writer
	palette console.Palette
}

func New(reader LineReader, out io.Writer, palette console.Palette) *Prompter {
	return &Prompter{reader: reader, out: out, palette: palette}
}

// Params asks for the upper bound and then the timeout.
func (p *Prompter) Params(ctx context.Context) (model.SearchParameters, error) {
	var params model.SearchParameters

	err := p.ask(ctx, UpperBoundPrompt, func(line string) error {
		n, err := ParseUpperBound(line)
		params.UpperBound = n
		return err
	})
	if err != nil {
		return params, err
	}

	err = p.ask(ctx, TimeoutPrompt, func(line string) error {
		minutes, err := ParseMinutes(line)
		params.Timeout = model.TimeoutFromMinutes(minutes)
		return err
	})
	if err != nil {
		return params, err
	}
	return params, nil
}

// ask repeats prompt until parse accepts the answer. Only read failures and
// unrecoverable parse errors end the loop.
func (p *Prompter) ask(ctx context.Context, prompt string, parse func(string) error) error {
	for {
		line, err := p.reader.ReadLine(prompt)
		if err != nil {
			return appErr.Wrapf(err, appErr.InputReadFailed, "read input failed")
		}
		err = parse(line)
		if err == nil {
			return nil
		}
		code := appErr.GetCode(err)
		if !code.Recoverable() {
			return err
		}
		fields := []zap.Field{zap.String("prompt", prompt), zap.String("input", line), zap.Error(err)}
		if e, ok := err.(*appErr.Error); ok && len(e.Details) > 0 {
			fields = append(fields, zap.Any("details", e.Details))
		}
		logger.Debug(ctx, "input rejected", fields...)
		if _, werr := p.palette.Failure.Fprintf(p.out, "❌ %s\n", code.Message()); werr != nil {
			return appErr.Wrap(werr, appErr.OutputWriteFailed)
		}
	}
}

// singleToken splits line with shell quoting rules and requires exactly one
// token.
func singleToken(line string) (string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return "", appErr.Wrap(err, appErr.InvalidFormat)
	}
	if len(tokens) != 1 {
		return "", appErr.Newf(appErr.InvalidFormat, "expected one value, got %d", len(tokens))
	}
	return tokens[0], nil
}

// ParseUpperBound accepts a positive base-10 integer.
func ParseUpperBound(line string) (uint64, error) {
	token, err := singleToken(line)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, appErr.Wrap(err, appErr.InvalidFormat)
	}
	if n == 0 {
		return 0, appErr.ValidationError("upper_bound", "must be positive")
	}
	return n, nil
}

// ParseMinutes accepts a positive, finite number of minutes.
func ParseMinutes(line string) (float64, error) {
	token, err := singleToken(line)
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, appErr.Wrap(err, appErr.InvalidFormat)
	}
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 {
		return 0, appErr.ValidationError("timeout", "must be positive and finite")
	}
	return minutes, nil
}
