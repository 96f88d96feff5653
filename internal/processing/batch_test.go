package processing

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func testLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

// batch is a mix of mates, checks, a repeat and a broken line.
var batch = []string{
	backRankMate,
	rookCheck,
	backRankMate,
	"8/8/8 w - - 0 1",
	engine.InitialFEN,
}

func testConfig(t *testing.T) (*config.Config, *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithWorkers(4).
		WithOutput(io.Discard).
		WithLog(&logBuf).
		Build()
	testutil.AssertNoError(t, cfg.Validate())
	return cfg, &logBuf
}

func indices(reports []*Report) []int {
	out := make([]int, len(reports))
	for i, r := range reports {
		out[i] = r.Index
	}
	return out
}

func TestProcessorRun(t *testing.T) {
	cfg, logBuf := testConfig(t)

	reports, stats, err := NewProcessor(cfg).Run(context.Background(), batch)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, indices(reports), []int{0, 1, 2, 3, 4})
	testutil.AssertEqual(t, stats, Stats{
		Positions:  5,
		Reported:   5,
		Checks:     3,
		Checkmates: 2,
		Errors:     1,
	})
	if !reports[0].Checkmate || !reports[1].InCheck || reports[1].Checkmate {
		t.Errorf("reports out of order:\n%s", spew.Sdump(reports[:2]))
	}
	testutil.AssertErrorIs(t, reports[3].Err, errors.ErrInvalidFEN)
	testutil.AssertContains(t, logBuf.String(), "audited 5 positions")
}

func TestProcessorRun_Dedupe(t *testing.T) {
	cfg, _ := testConfig(t)
	var dups bytes.Buffer
	cfg.Duplicate.Suppress = true
	cfg.Duplicate.DuplicateFile = &dups

	reports, stats, err := NewProcessor(cfg).Run(context.Background(), batch)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, indices(reports), []int{0, 1, 3, 4})
	testutil.AssertEqual(t, stats.Duplicates, 1)
	testutil.AssertEqual(t, stats.Checkmates, 1)
	testutil.AssertEqual(t, dups.String(), backRankMate+"\n")
}

func TestProcessorRun_DedupeSpansBatches(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Duplicate.Suppress = true
	p := NewProcessor(cfg)

	_, _, err := p.Run(context.Background(), []string{rookCheck})
	testutil.AssertNoError(t, err)
	reports, stats, err := p.Run(context.Background(), []string{rookCheck, backRankMate})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, indices(reports), []int{1})
	testutil.AssertEqual(t, stats.Duplicates, 1)
}

func TestProcessorRun_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter config.FilterConfig
		want   []int
	}{
		{"checkmate", config.FilterConfig{MatchCheckmate: true}, []int{0, 2}},
		{"check", config.FilterConfig{MatchCheck: true}, []int{0, 1, 2}},
		{"check capped", config.FilterConfig{MatchCheck: true, MaxPositions: 2}, []int{0, 1}},
		{"capped without filter", config.FilterConfig{MaxPositions: 1}, []int{0}},
		{"material", config.FilterConfig{Material: "KRR:k", MaterialExact: true}, []int{0, 2}},
		{"material minimal", config.FilterConfig{Material: "R:k"}, []int{0, 1, 2, 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, _ := testConfig(t)
			cfg.Filter = tt.filter

			reports, stats, err := NewProcessor(cfg).Run(context.Background(), batch)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, indices(reports), tt.want)
			testutil.AssertEqual(t, stats.Reported, len(tt.want))
			testutil.AssertEqual(t, stats.Positions, len(batch))
		})
	}
}

func TestProcessorRun_CrossCheck(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.CrossCheck = true
	cfg.Filter.MatchDisagreement = true
	testutil.AssertNoError(t, cfg.Validate())

	reports, stats, err := NewProcessor(cfg).Run(context.Background(),
		[]string{backRankMate, foolsMate, rookCheck})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, indices(reports), []int{1})
	testutil.AssertEqual(t, stats.Disagreements, 1)
}

func TestProcessorRun_Cancelled(t *testing.T) {
	cfg, _ := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, stats, err := NewProcessor(cfg).Run(ctx, batch)

	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertEqual(t, len(reports), 0)
	testutil.AssertEqual(t, stats.Positions, len(batch))
}

func TestProcessorRun_Progress(t *testing.T) {
	cfg, logBuf := testConfig(t)
	cfg.Verbosity = config.Quiet
	cfg.ShowProgress = true

	reports, _, err := NewProcessor(cfg).Run(context.Background(), batch)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(reports), len(batch))
	testutil.AssertTrue(t, logBuf.Len() > 0, "progress bar wrote nothing")
	testutil.AssertNotContains(t, logBuf.String(), "audited")
}

func TestProcessorRun_Trace(t *testing.T) {
	cfg, logBuf := testConfig(t)
	cfg.Verbosity = config.Trace

	_, _, err := NewProcessor(cfg).Run(context.Background(), []string{rookCheck})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, logBuf.String(), "black escapes check")
	testutil.AssertContains(t, logBuf.String(), "audited 1 positions")
}

func TestReadPositions(t *testing.T) {
	input := "# audit set\n" +
		backRankMate + "\n" +
		"\n" +
		"   " + rookCheck + "   \n" +
		"#" + foolsMate + "\n"

	fens, err := ReadPositions(strings.NewReader(input))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, fens, []string{backRankMate, rookCheck})
}

func TestStatsString(t *testing.T) {
	s := Stats{Positions: 3, Reported: 2, Checks: 1, Checkmates: 1}
	want := "3 positions: 1 in check, 1 checkmate, 0 duplicates, 0 errors, 0 disagreements, 2 reported"
	testutil.AssertEqual(t, s.String(), want)
}
