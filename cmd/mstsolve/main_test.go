// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstforest/config"
	"github.com/katalvlaran/mstforest/mst"
)

const squareGraph = `4
A
B
C
D
A B 1
B C 2
C D 3
A D 10
A C 5
`

const twoTriangles = `6
A
B
C
X
Y
Z
A B 1
B C 2
A C 3
X Y 4
Y Z 1
X Z 9
`

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// isolate gives each test a clean viper and an empty working directory.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	return dir
}

func run(ctx context.Context, out *syncBuffer, args ...string) error {
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&syncBuffer{})
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestSolve_Partial(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "square.txt", squareGraph)

	var out syncBuffer
	require.NoError(t, run(context.Background(), &out, "solve", path))
	assert.Equal(t, "A B 1\nC B 2\nD C 3\n# method=partial vertices=4 arcs=3 total=6 spanning=true\n", out.String())
}

func TestSolve_Kruskal(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "square.txt", squareGraph)

	var out syncBuffer
	require.NoError(t, run(context.Background(), &out, "solve", "--method", "kruskal", path))
	assert.Equal(t, "A B 1\nB C 2\nC D 3\n# method=kruskal vertices=4 arcs=3 total=6 spanning=true\n", out.String())
}

func TestSolve_PrimFromRoot(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "square.txt", squareGraph)

	var out syncBuffer
	require.NoError(t, run(context.Background(), &out, "solve", "--method", "prim", "--root", "D", path))
	assert.Equal(t, "D C 3\nC B 2\nB A 1\n# method=prim vertices=4 arcs=3 total=6 spanning=true\n", out.String())
}

func TestSolve_DisconnectedStrict(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "two.graph", twoTriangles)

	var out syncBuffer
	require.NoError(t, run(context.Background(), &out, "solve", path))
	assert.Contains(t, out.String(), "# isolated-partition: partition 2 root=C")
	assert.Contains(t, out.String(), "arcs=4 total=8 spanning=false")

	viper.Reset()
	var strict syncBuffer
	err := run(context.Background(), &strict, "solve", "--strict", path)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Contains(t, strict.String(), "spanning=false", "partial result is still printed")
}

func TestSolve_ConfigErrors(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "square.txt", squareGraph)

	err := run(context.Background(), &syncBuffer{}, "solve", "--method", "boruvka", path)
	assert.ErrorIs(t, err, config.ErrUnknownMethod)

	viper.Reset()
	t.Setenv("MSTSOLVE_LOG_FORMAT", "xml")
	err = run(context.Background(), &syncBuffer{}, "solve", path)
	assert.ErrorIs(t, err, config.ErrUnknownLogFormat)
}

func TestSolve_ConfigFileSetsMethod(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "square.txt", squareGraph)
	writeFile(t, dir, ".mstsolve.yaml", "method: kruskal\n")

	var out syncBuffer
	require.NoError(t, run(context.Background(), &out, "solve", path))
	assert.Contains(t, out.String(), "# method=kruskal")
}

func TestGenerate_Stdout(t *testing.T) {
	isolate(t)

	var out syncBuffer
	require.NoError(t, run(context.Background(), &out,
		"generate", "--kind", "path", "--n", "3", "--min-weight", "5", "--max-weight", "5"))
	assert.Equal(t, "3\n0\n1\n2\n0 1 5\n1 2 5\n", out.String())

	err := run(context.Background(), &syncBuffer{}, "generate", "--kind", "hypercube")
	assert.ErrorIs(t, err, errUnknownKind)
}

func TestGenerateThenVerify(t *testing.T) {
	dir := isolate(t)

	for _, name := range []string{"c.toml", "c.hcl", "c.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			viper.Reset()
			require.NoError(t, run(context.Background(), &syncBuffer{},
				"generate", "--kind", "components", "--k", "3", "--n", "6", "--p", "0.4",
				"--isolated", "2", "--ids", "v", "--seed", "9", "-o", path))

			viper.Reset()
			var out syncBuffer
			require.NoError(t, run(context.Background(), &out, "verify", path))
			assert.Contains(t, out.String(), "vertices:    20\n")
			assert.Contains(t, out.String(), "components:  5\n")
			assert.True(t, strings.HasSuffix(out.String(), "ok\n"))
		})
	}
}

func TestSolve_Watch(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "g.txt", "2\nA\nB\nA B 4\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, &out, "solve", "--watch", "--debounce", "20ms", path)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "total=4")
	}, 5*time.Second, 10*time.Millisecond)

	// Give the watcher time to register before the edit.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("2\nA\nB\nA B 7\n"), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "total=7")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("solve --watch did not stop on cancel")
	}
}
