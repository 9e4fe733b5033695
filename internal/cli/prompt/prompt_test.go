package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"primehunt/internal/cli/prompt"
	"primehunt/internal/common/console"
	"primehunt/internal/testutil"
	appErr "primehunt/pkg/errors"
	"primehunt/pkg/utils/logger"
)

// scriptedReader replays canned answers and records the prompts it was shown.
type scriptedReader struct {
	answers []string
	prompts []string
}

func (r *scriptedReader) ReadLine(p string) (string, error) {
	r.prompts = append(r.prompts, p)
	if len(r.answers) == 0 {
		return "", io.EOF
	}
	line := r.answers[0]
	r.answers = r.answers[1:]
	return line, nil
}

func TestParamsAcceptsValidAnswers(t *testing.T) {
	reader := &scriptedReader{answers: []string{"30", "0.5"}}
	var out bytes.Buffer

	params, err := prompt.New(reader, &out, console.NewPalette(false)).Params(context.Background())

	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, params.UpperBound, uint64(30))
	testutil.AssertEqual(t, params.Timeout, 30*time.Second)
	testutil.AssertEqual(t, out.String(), "")
	testutil.AssertEqual(t, len(reader.prompts), 2)
	testutil.AssertEqual(t, reader.prompts[0], prompt.UpperBoundPrompt)
	testutil.AssertEqual(t, reader.prompts[1], prompt.TimeoutPrompt)
}

func TestParamsRepromptsOnBadInput(t *testing.T) {
	reader := &scriptedReader{answers: []string{"abc", "0", "-4", " 1000 ", "soon", "-1", "2"}}
	var out bytes.Buffer

	params, err := prompt.New(reader, &out, console.NewPalette(false)).Params(context.Background())

	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, params.UpperBound, uint64(1000))
	testutil.AssertEqual(t, params.Timeout, 2*time.Minute)

	want := strings.Join([]string{
		"❌ Invalid input. Please enter a valid number.",
		"❌ Please enter a positive number.",
		"❌ Invalid input. Please enter a valid number.",
		"❌ Invalid input. Please enter a valid number.",
		"❌ Please enter a positive number.",
	}, "\n") + "\n"
	testutil.AssertEqual(t, out.String(), want)

	upperPrompts, timeoutPrompts := 0, 0
	for _, p := range reader.prompts {
		switch p {
		case prompt.UpperBoundPrompt:
			upperPrompts++
		case prompt.TimeoutPrompt:
			timeoutPrompts++
		}
	}
	testutil.AssertEqual(t, upperPrompts, 4)
	testutil.AssertEqual(t, timeoutPrompts, 3)
}

func TestRejectedInputLogsDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primehunt.log")
	if err := logger.Init(logger.Config{Level: "debug", Format: "json", OutputPath: path}); err != nil {
		t.Fatalf("init logger failed: %v", err)
	}
	t.Cleanup(func() {
		_ = logger.Init(logger.Config{OutputPath: logger.OutputDiscard})
	})
	reader := &scriptedReader{answers: []string{"0", "7", "1"}}

	_, err := prompt.New(reader, io.Discard, console.NewPalette(false)).Params(context.Background())
	testutil.AssertNil(t, err)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	testutil.AssertEqual(t, len(lines), 1)

	var entry map[string]interface{}
	testutil.MustUnmarshalJSON(t, []byte(lines[0]), &entry)
	testutil.AssertEqual(t, entry["msg"], "input rejected")
	testutil.AssertEqual(t, entry["input"], "0")
	details, ok := entry["details"].(map[string]interface{})
	testutil.AssertTrue(t, ok, "details should be logged as an object")
	testutil.AssertEqual(t, details["field"], "upper_bound")
	testutil.AssertEqual(t, details["reason"], "must be positive")
}

func TestParamsFailsOnReadError(t *testing.T) {
	reader := &scriptedReader{answers: []string{"10"}}

	_, err := prompt.New(reader, io.Discard, console.NewPalette(false)).Params(context.Background())

	testutil.AssertTrue(t, appErr.Is(err, appErr.InputReadFailed), "expected InputReadFailed")
	testutil.AssertTrue(t, errors.Is(err, io.EOF), "expected wrapped io.EOF")
}

func TestParseUpperBound(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want uint64
		code appErr.ErrorCode
	}{
		{name: "plain", line: "42", want: 42, code: appErr.Success},
		{name: "padded", line: "  42\t", want: 42, code: appErr.Success},
		{name: "quoted", line: `"42"`, want: 42, code: appErr.Success},
		{name: "max", line: "18446744073709551615", want: 18446744073709551615, code: appErr.Success},
		{name: "zero", line: "0", code: appErr.InvalidValue},
		{name: "negative", line: "-1", code: appErr.InvalidFormat},
		{name: "overflow", line: "18446744073709551616", code: appErr.InvalidFormat},
		{name: "fraction", line: "1.5", code: appErr.InvalidFormat},
		{name: "empty", line: "", code: appErr.InvalidFormat},
		{name: "two values", line: "1 2", code: appErr.InvalidFormat},
		{name: "unbalanced quote", line: `"12`, code: appErr.InvalidFormat},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := prompt.ParseUpperBound(tt.line)
			testutil.AssertEqual(t, appErr.GetCode(err), tt.code)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseMinutes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want float64
		code appErr.ErrorCode
	}{
		{name: "fraction", line: "0.5", want: 0.5, code: appErr.Success},
		{name: "integer", line: "3", want: 3, code: appErr.Success},
		{name: "exponent", line: "1e-7", want: 1e-7, code: appErr.Success},
		{name: "zero", line: "0", code: appErr.InvalidValue},
		{name: "negative", line: "-0.5", code: appErr.InvalidValue},
		{name: "infinite", line: "inf", code: appErr.InvalidValue},
		{name: "nan", line: "NaN", code: appErr.InvalidValue},
		{name: "word", line: "soon", code: appErr.InvalidFormat},
		{name: "two values", line: "1 minute", code: appErr.InvalidFormat},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := prompt.ParseMinutes(tt.line)
			testutil.AssertEqual(t, appErr.GetCode(err), tt.code)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}
