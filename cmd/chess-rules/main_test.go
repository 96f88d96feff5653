package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const (
	rookCheck    = "7K/8/8/8/8/8/8/k3R3 b - - 0 1"
	backRankMate = "7K/8/8/8/8/8/7R/k3R3 b - - 0 1"
)

// testConfig returns a config writing to in-memory buffers.
func testConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	b := config.NewConfigBuilder()
	applyFlags(b)
	return b.WithOutput(&out).WithLog(&logs).Build(), &out, &logs
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_FEN(t *testing.T) {
	defer saveRestoreString(fenPosition, rookCheck)()
	cfg, out, _ := testConfig()

	if err := run(context.Background(), cfg, strings.NewReader("")); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{`[Status "check"]`, "Escapes: a1a2 a1b2"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_FENInvalid(t *testing.T) {
	defer saveRestoreString(fenPosition, "8/8/8 w")()
	cfg, out, _ := testConfig()

	err := run(context.Background(), cfg, strings.NewReader(""))
	if !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("run() error = %v; want ErrInvalidFEN", err)
	}
	if !strings.Contains(out.String(), "[Error ") {
		t.Errorf("output missing error tag:\n%s", out.String())
	}
}

func TestRun_Audit(t *testing.T) {
	path := writeTempFile(t, "positions.fen", "# audit\n"+backRankMate+"\n"+rookCheck+"\n"+backRankMate+"\n")
	defer saveRestoreString(auditFile, path)()
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreInt(workers, 2)()
	cfg, out, logs := testConfig()

	if err := run(context.Background(), cfg, strings.NewReader("")); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var result output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(result.Positions) != 2 {
		t.Fatalf("positions = %d; want 2", len(result.Positions))
	}
	if !result.Positions[0].Checkmate || result.Positions[1].Checkmate {
		t.Errorf("positions = %+v, %+v", result.Positions[0], result.Positions[1])
	}
	if !strings.Contains(logs.String(), "1 duplicates") {
		t.Errorf("summary missing duplicate count: %q", logs.String())
	}
}

func TestRun_AuditStdin(t *testing.T) {
	defer saveRestoreString(auditFile, "-")()
	defer saveRestoreBool(checkmateFilter, true)()
	cfg, out, _ := testConfig()

	in := strings.NewReader(rookCheck + "\n" + backRankMate + "\n")
	if err := run(context.Background(), cfg, in); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	if strings.Count(got, "[Position ") != 1 || !strings.Contains(got, `[Position "2"]`) {
		t.Errorf("output = %s; want only position 2", got)
	}
}

func TestRun_AuditMissingFile(t *testing.T) {
	defer saveRestoreString(auditFile, filepath.Join(t.TempDir(), "missing.fen"))()
	cfg, _, _ := testConfig()

	if err := run(context.Background(), cfg, strings.NewReader("")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("run() error = %v; want os.ErrNotExist", err)
	}
}

func TestRun_Scan(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  string
	}{
		{"rook reaches king", "R.K\n...\n...\n", "Success\n"},
		{"bishop reaches king", "K..\n...\n..B\n", "Success\n"},
		{"rook misses king", "K..\n..R\n...\n", "Fail\n"},
		{"no king", "...\n.R.\n...\n", "Error: King not found.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(scanFile, "-")()
			cfg, out, _ := testConfig()

			if err := run(context.Background(), cfg, strings.NewReader(tt.board)); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q; want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRun_ScanFromFile(t *testing.T) {
	path := writeTempFile(t, "board.txt", "..K\n.P.\n...\n")
	defer saveRestoreString(scanFile, path)()
	cfg, out, _ := testConfig()

	if err := run(context.Background(), cfg, strings.NewReader("")); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out.String() != "Success\n" {
		t.Errorf("output = %q; want Success", out.String())
	}
}

func TestRun_ScanInvalidBoard(t *testing.T) {
	defer saveRestoreString(scanFile, "-")()
	cfg, _, _ := testConfig()

	err := run(context.Background(), cfg, strings.NewReader("K..\n..\n"))
	if !errors.Is(err, chesserrors.ErrInvalidBoard) {
		t.Errorf("run() error = %v; want ErrInvalidBoard", err)
	}
}

func TestRun_Play(t *testing.T) {
	cfg, out, logs := testConfig()

	if err := run(context.Background(), cfg, strings.NewReader("e2 e4\nquit\n")); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Thank you for playing! The game has ended.") {
		t.Errorf("output missing farewell:\n%s", out.String())
	}
	if !strings.Contains(logs.String(), "started") {
		t.Errorf("log missing game start: %q", logs.String())
	}
}
