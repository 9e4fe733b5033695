package logger_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"primehunt/internal/testutil"
	"primehunt/pkg/utils/logger"

	"go.uber.org/zap"
)

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := logger.NewLogger(logger.Config{Level: "loud"})
	testutil.AssertTrue(t, err != nil, "unknown level should fail")
}

func TestFileOutputCarriesRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primehunt.log")
	if err := logger.Init(logger.Config{Level: "info", Format: "json", OutputPath: path}); err != nil {
		t.Fatalf("init logger failed: %v", err)
	}
	t.Cleanup(func() {
		_ = logger.Init(logger.Config{OutputPath: logger.OutputDiscard})
	})

	ctx := logger.WithRunID(context.Background(), "run-42")
	logger.Info(ctx, "search finished", zap.Uint64("prime_count", 10))
	logger.Debug(ctx, "filtered out")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	testutil.AssertEqual(t, len(lines), 1)

	var entry map[string]interface{}
	testutil.MustUnmarshalJSON(t, []byte(lines[0]), &entry)
	testutil.AssertEqual(t, entry["msg"], "search finished")
	testutil.AssertEqual(t, entry["run_id"], "run-42")
	testutil.AssertEqual(t, entry["prime_count"], float64(10))
	testutil.AssertTrue(t, json.Valid([]byte(lines[0])), "entry should be valid json")
}
