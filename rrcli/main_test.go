package rrcli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cdr.dev/slog"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/util-go/assert"
	"oss.terrastruct.com/util-go/xmain"
	"oss.terrastruct.com/util-go/xos"

	"github.com/railroad-think/rrtheme/lib/log"
	"github.com/railroad-think/rrtheme/rrcli"
)

func TestCLI(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name string
		run  func(t *testing.T, ctx context.Context, dir string, env *xos.Env)
	}{
		{
			name: "stdout_css",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout, err := runStdout(t, ctx, dir, env)
				assert.Success(t, err)
				require.True(t, strings.HasPrefix(stdout, ".railroad-think {\n  --blue: #0094d0;\n  --blue-tint-1: #00aff5;\n"), stdout)
				require.Contains(t, stdout, "  --success-shade-4: #022915;\n")
			},
		},
		{
			name: "source_yaml_to_json",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "brand.yaml", `
tones: ["50", "100", "200", "300", "400", "500", "600", "700", "800", "900"]
hues:
  - name: blue
    colors: ["#e3f2fd", "#bbdefb", "#90caf9", "#64b5f6", "#42a5f5", "#2196f3", "#1e88e5", "#1976d2", "#1565c0", "#0d47a1"]
`)
				err := runTestMain(t, ctx, dir, env, "--source=brand.yaml", "--selector=#board", "theme.json")
				assert.Success(t, err)
				out := string(readFile(t, dir, "theme.json"))
				require.Contains(t, out, `"selector": "#board"`)
				require.Contains(t, out, `"blue-tint-5": "var(--blue-tint-5)"`)
				require.Contains(t, out, `"blue-tint-5": "#e3f2fd"`)
				require.Contains(t, out, `"blue-shade-4": "#0d47a1"`)
				require.NotContains(t, out, "blue-shade-5")
			},
		},
		{
			name: "format_ts",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout, err := runStdout(t, ctx, dir, env, "--prefix=rr-", "--format=ts")
				assert.Success(t, err)
				require.Contains(t, stdout, `  "gray": "var(--rr-gray)",`)
			},
		},
		{
			name: "missing_base",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "bad.json", `{"tones": ["100", "900"], "hues": [{"name": "blue", "colors": ["#eef", "#002"]}]}`)
				err := runTestMain(t, ctx, dir, env, "--source=bad.json", "out.css")
				require.Error(t, err)
				require.Contains(t, err.Error(), "missing_base")
				_, statErr := os.Stat(filepath.Join(dir, "out.css"))
				require.True(t, os.IsNotExist(statErr))
			},
		},
		{
			name: "bad_format",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				err := runTestMain(t, ctx, dir, env, "--format=scss")
				require.Error(t, err)
				require.Contains(t, err.Error(), `unknown --format "scss"`)
			},
		},
		{
			name: "tokens",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout, err := runStdout(t, ctx, dir, env, "tokens")
				assert.Success(t, err)
				lines := strings.Split(strings.TrimSpace(stdout), "\n")
				require.Len(t, lines, 63)
				require.Equal(t, []string{"red-tint-2", "var(--red-tint-2)", "#fa9e96"}, strings.Fields(lines[11]))
			},
		},
		{
			name: "catalog",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout, err := runStdout(t, ctx, dir, env, "catalog")
				assert.Success(t, err)
				require.Contains(t, stdout, "- railroad: 4 hues, tones 100,200,300,400,500,600,700,800,900 (base 500)")
			},
		},
		{
			name: "pieces",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout, err := runStdout(t, ctx, dir, env, "pieces")
				assert.Success(t, err)
				require.Contains(t, stdout, "0F  X I")
				require.Contains(t, stdout, "placeable")
			},
		},
		{
			name: "query",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout, err := runStdout(t, ctx, dir, env, "query", "https://example.com/?game=daily&debug")
				assert.Success(t, err)
				require.Equal(t, "debug=true\ngame=daily\n", stdout)
			},
		},
		{
			name: "embed",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "page.html", `<html><head></head><body><main><h1>Title</h1><p>text</p><div><div id="railroad-think"></div></div></main></body></html>`)
				err := runTestMain(t, ctx, dir, env, "embed", "page.html", "out.html")
				assert.Success(t, err)
				out := string(readFile(t, dir, "out.html"))
				require.Contains(t, out, `<h1 style="display: none;">Title</h1>`)
				require.Contains(t, out, "<style>.railroad-think {\n  --blue: #0094d0;")
			},
		},
		{
			name: "preview",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				env.Setenv("BROWSER", "0")
				err := runTestMain(t, ctx, dir, env, "preview", "swatches.html")
				assert.Success(t, err)
				out := string(readFile(t, dir, "swatches.html"))
				require.Contains(t, out, "<h2>Green</h2>")
			},
		},
		{
			name: "version",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout, err := runStdout(t, ctx, dir, env, "version")
				assert.Success(t, err)
				require.True(t, strings.HasPrefix(stdout, "v"))
			},
		},
	}

	ctx := context.Background()
	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			dir, cleanup := assert.TempDir(t)
			defer cleanup()

			env := xos.NewEnv(nil)

			tc.run(t, ctx, dir, env)
		})
	}
}

func TestWatch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dir, cleanup := assert.TempDir(t)
	defer cleanup()

	writeFile(t, dir, "brand.yaml", brandSource("#2196f3"))

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	tms := testMain(dir, xos.NewEnv(nil), "--watch", "--source=brand.yaml", "theme.css")
	tms.Start(t, runCtx)
	defer tms.Cleanup(t)

	waitForFile(t, filepath.Join(dir, "theme.css"), "--blue: #2196f3;")

	writeFile(t, dir, "brand.yaml", brandSource("#ff5722"))
	waitForFile(t, filepath.Join(dir, "theme.css"), "--blue: #ff5722;")

	// A broken source leaves the last good output in place.
	writeFile(t, dir, "brand.yaml", "tones: [\"100\"]\nhues: []\n")
	time.Sleep(time.Millisecond * 200)
	require.Contains(t, string(readFile(t, dir, "theme.css")), "--blue: #ff5722;")

	stop()
	assert.Success(t, tms.Wait(ctx))
}

func TestWatchUsage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir, cleanup := assert.TempDir(t)
	defer cleanup()

	err := runTestMain(t, ctx, dir, xos.NewEnv(nil), "--watch", "theme.css")
	require.Error(t, err)
	require.Contains(t, err.Error(), "requires a --source file")

	err = runTestMain(t, ctx, dir, xos.NewEnv(nil), "--watch", "--source=brand.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "stdout")
}

func TestDebugFlag(t *testing.T) {
	t.Parallel()

	for _, debug := range []bool{false, true} {
		debug := debug
		name := "info"
		if debug {
			name = "debug"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sink := &memorySink{}
			ctx := log.With(context.Background(), slog.Make(sink).Leveled(slog.LevelInfo))

			dir, cleanup := assert.TempDir(t)
			defer cleanup()

			args := []string{"theme.css"}
			if debug {
				args = append([]string{"--debug"}, args...)
			}
			err := runTestMain(t, ctx, dir, xos.NewEnv(nil), args...)
			assert.Success(t, err)
			require.Equal(t, debug, sink.has("deriving palettes"))
			require.Equal(t, debug, sink.has("built theme contract"))
		})
	}
}

type memorySink struct {
	mu       sync.Mutex
	messages []string
}

func (s *memorySink) LogEntry(_ context.Context, e slog.SinkEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, e.Message)
}

func (s *memorySink) Sync() {}

func (s *memorySink) has(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func brandSource(base string) string {
	return `
tones: ["400", "500", "600"]
hues:
  - name: blue
    colors: ["#64b5f6", "` + base + `", "#1e88e5"]
`
}

func waitForFile(tb testing.TB, path, substr string) {
	tb.Helper()
	deadline := time.Now().Add(time.Second * 15)
	for time.Now().Before(deadline) {
		b, err := os.ReadFile(path)
		if err == nil && strings.Contains(string(b), substr) {
			return
		}
		time.Sleep(time.Millisecond * 20)
	}
	tb.Fatalf("%s never contained %q", path, substr)
}

func testMain(dir string, env *xos.Env, args ...string) *xmain.TestState {
	return &xmain.TestState{
		Run:  rrcli.Run,
		Env:  env,
		Args: append([]string{"rrcli/rrtheme"}, args...),
		PWD:  dir,
	}
}

func runTestMain(tb testing.TB, ctx context.Context, dir string, env *xos.Env, args ...string) error {
	tms := testMain(dir, env, args...)
	tms.Start(tb, ctx)
	defer tms.Cleanup(tb)
	return tms.Wait(ctx)
}

func runStdout(tb testing.TB, ctx context.Context, dir string, env *xos.Env, args ...string) (string, error) {
	stdout := &bytes.Buffer{}
	tms := testMain(dir, env, args...)
	tms.Stdout = stdout
	tms.Start(tb, ctx)
	defer tms.Cleanup(tb)
	err := tms.Wait(ctx)
	return stdout.String(), err
}

func writeFile(tb testing.TB, dir, fp, data string) {
	tb.Helper()
	assert.WriteFile(tb, filepath.Join(dir, fp), []byte(data), 0644)
}

func readFile(tb testing.TB, dir, fp string) []byte {
	tb.Helper()
	return assert.ReadFile(tb, filepath.Join(dir, fp))
}
