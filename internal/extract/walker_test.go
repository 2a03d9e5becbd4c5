package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Walker:
// - Walks a corpus and extracts declared symbols
// - Skips files under excluded directory segments (exact match, any depth)
// - Honors the include-extensions allow-list (immediate parent directory)
// - Duplicate declarations across files merge into one name
// - Unreadable/binary files are absorbed as warnings; run still succeeds
// - Non-.php files are ignored
// - Parallel walk produces the same aggregate as the sequential walk
// - Cancelled context aborts the walk with an error

func writeCorpusFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestWalker(t *testing.T, root string, cfg WalkerConfig) *Walker {
	t.Helper()
	w, err := NewWalker(root, cfg, newTestExtractor(), nil)
	require.NoError(t, err)
	return w
}

func TestWalk_ExtractsSymbols(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "standard/standard.php", "function foo(int $x): bool {}")

	agg, err := newTestWalker(t, root, WalkerConfig{}).Walk(context.Background())

	require.NoError(t, err)
	assert.True(t, agg.Contains(CategoryFunction, "foo"))
	assert.Equal(t, 1, agg.Count(CategoryFunction))
}

func TestWalk_SkipsExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "tests/helper.php", "function from_tests() {}")
	writeCorpusFile(t, root, "nested/tests/deep.php", "function from_nested_tests() {}")
	writeCorpusFile(t, root, "standard/ok.php", "function kept() {}")

	agg, err := newTestWalker(t, root, WalkerConfig{SkipDirs: []string{"tests"}}).Walk(context.Background())

	require.NoError(t, err)
	assert.False(t, agg.Contains(CategoryFunction, "from_tests"))
	assert.False(t, agg.Contains(CategoryFunction, "from_nested_tests"))
	assert.True(t, agg.Contains(CategoryFunction, "kept"))
}

func TestWalk_SkipDirsMatchExactSegmentsOnly(t *testing.T) {
	root := t.TempDir()
	// "tests_extra" contains "tests" as a substring but is not an exact segment.
	writeCorpusFile(t, root, "tests_extra/kept.php", "function kept_fn() {}")

	agg, err := newTestWalker(t, root, WalkerConfig{SkipDirs: []string{"tests"}}).Walk(context.Background())

	require.NoError(t, err)
	assert.True(t, agg.Contains(CategoryFunction, "kept_fn"))
}

func TestWalk_IncludeExtensionsAllowList(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "mysqli/mysqli.php", "function mysqli_connect() {}")
	writeCorpusFile(t, root, "curl/curl.php", "function curl_init() {}")

	agg, err := newTestWalker(t, root, WalkerConfig{
		IncludeExtensions: []string{"mysqli"},
	}).Walk(context.Background())

	require.NoError(t, err)
	assert.True(t, agg.Contains(CategoryFunction, "mysqli_connect"))
	assert.False(t, agg.Contains(CategoryFunction, "curl_init"))
}

func TestWalk_DuplicatesAcrossFilesMerge(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "a/one.php", "function bar() {}")
	writeCorpusFile(t, root, "b/two.php", "function bar() {}")

	agg, err := newTestWalker(t, root, WalkerConfig{}).Walk(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, agg.Count(CategoryFunction))
	assert.True(t, agg.Contains(CategoryFunction, "bar"))
}

func TestWalk_UnreadableFileIsAbsorbed(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"f0", "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9"} {
		writeCorpusFile(t, root, "std/"+name+".php", "function "+name+"_fn() {}")
	}
	// Binary content is rejected by the extractor but must not abort the run.
	require.NoError(t, os.WriteFile(filepath.Join(root, "std", "broken.php"), []byte{0x00, 0x01, 0x02}, 0644))

	agg, err := newTestWalker(t, root, WalkerConfig{}).Walk(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, agg.Count(CategoryFunction))
}

func TestWalk_IgnoresNonPHPFiles(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "std/README.md", "function not_php() {}")
	writeCorpusFile(t, root, "std/real.php", "function real_fn() {}")

	agg, err := newTestWalker(t, root, WalkerConfig{}).Walk(context.Background())

	require.NoError(t, err)
	assert.False(t, agg.Contains(CategoryFunction, "not_php"))
	assert.True(t, agg.Contains(CategoryFunction, "real_fn"))
}

func TestWalk_ParallelMatchesSequential(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "a/a.php", "function alpha() {}\nclass Alpha {}")
	writeCorpusFile(t, root, "b/b.php", "function beta() {}\nconst BETA_MAX = 1;")
	writeCorpusFile(t, root, "c/c.php", "function alpha() {}\ndefine('GAMMA_FLAG', true);")

	sequential, err := newTestWalker(t, root, WalkerConfig{Workers: 1}).Walk(context.Background())
	require.NoError(t, err)

	parallel, err := newTestWalker(t, root, WalkerConfig{Workers: 4}).Walk(context.Background())
	require.NoError(t, err)

	for _, c := range Categories() {
		assert.Equal(t, sequential.Names(c), parallel.Names(c), "category %s", c)
	}
}

func TestWalk_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "std/a.php", "function cancelled_fn() {}")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestWalker(t, root, WalkerConfig{}).Walk(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
