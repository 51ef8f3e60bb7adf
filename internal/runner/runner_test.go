package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rustvet/rustvet/internal/rules"
	"github.com/rustvet/rustvet/internal/syntax"
)

func testCatalog(t *testing.T) *rules.Catalog {
	t.Helper()
	cat, err := rules.DefaultCatalog()
	require.NoError(t, err)
	return cat
}

func writeFiles(t *testing.T, files [][2]string) []string {
	t.Helper()
	dir := t.TempDir()

	var paths []string
	for _, f := range files {
		p := filepath.Join(dir, f[0])
		require.NoError(t, os.WriteFile(p, []byte(f[1]), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestRunIsolatesFailures(t *testing.T) {
	paths := writeFiles(t, [][2]string{
		{"clean.rs", "fn add_one(value: u64) -> u64 {\n    value + 1\n}\n"},
		{"broken.rs", "fn incomplete( {\n"},
		{"firing.rs", "fn shout() {\n    let loudValue = 1;\n    let _ = loudValue;\n}\n"},
	})
	paths = append(paths, filepath.Join(filepath.Dir(paths[0]), "absent.rs"))

	r := New(testCatalog(t), Options{Jobs: 2})
	results, err := r.Run(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	// Results come back in input order regardless of scheduling.
	for i, res := range results {
		require.Equal(t, paths[i], res.Path, "result %d", i)
	}

	require.NoError(t, results[0].Err)
	require.True(t, results[0].Report.Empty())

	var perr *syntax.ParseError
	require.ErrorAs(t, results[1].Err, &perr)
	require.True(t, results[1].Report.Empty())

	require.NoError(t, results[2].Err)
	require.Len(t, results[2].Report.Violations, 1)
	require.Equal(t, "S1", results[2].Report.Violations[0].Rule)

	require.Error(t, results[3].Err)
}

func TestRunSequentialMatchesParallel(t *testing.T) {
	paths := writeFiles(t, [][2]string{
		{"one.rs", "fn one() {\n    let badName = 1;\n    let _ = badName;\n}\n"},
		{"two.rs", "fn two(label: String) -> usize {\n    label.len()\n}\n"},
	})
	cat := testCatalog(t)

	seq, err := New(cat, Options{Jobs: 1}).Run(context.Background(), paths)
	require.NoError(t, err)
	par, err := New(cat, Options{Jobs: 8}).Run(context.Background(), paths)
	require.NoError(t, err)

	require.Equal(t, seq, par)
}

func TestRunHonorsCancellation(t *testing.T) {
	paths := writeFiles(t, [][2]string{
		{"one.rs", "fn one() {}\n"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testCatalog(t), Options{}).Run(ctx, paths)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
