package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/subtlecodec/b64/base64"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := New(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEncodeDecode(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"encode", "foobar", []string{"encode"}, "Zm9vYmFy"},
		{"encode empty", "", []string{"encode"}, ""},
		{"encode padded", "f", []string{"encode"}, "Zg=="},
		{"decode", "Zm9vYmFy", []string{"decode"}, "foobar"},
		{"decode padded", "Zm8=", []string{"decode"}, "fo"},
		{"decode lenient", "Zh==", []string{"decode"}, "f"},
		{"decode newlines", "Zm9v\r\nYmFy\n", []string{"decode", "--ignore-newlines"}, "foobar"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.input)
			res := run(t, "", append(tc.args, path)...)
			if res.err != nil {
				t.Fatalf("unexpected error: %+v", res.err)
			}
			if diff := cmp.Diff(tc.want, res.stdout); diff != "" {
				t.Fatalf("(-want, +got)\n%s", diff)
			}
		})
	}
}

func TestStdin(t *testing.T) {
	res := run(t, "Zm9vYg==", "decode", "-")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.stdout != "foob" {
		t.Fatalf("expected %q, got %q", "foob", res.stdout)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		args   []string
		reason base64.Reason
	}{
		{"padding", "A===", []string{"decode"}, base64.BadPadding},
		{"length", "Zm9vY", []string{"decode"}, base64.BadLength},
		{"character", "AB#D", []string{"decode"}, base64.BadCharacter},
		{"newline", "Zm9v\nYmF=", []string{"decode"}, base64.BadLength},
		{"strict", "Zh==", []string{"decode", "--strict"}, base64.NonCanonical},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.input)
			res := run(t, "", append(tc.args, path)...)
			var e *base64.InvalidInputError
			if !errors.As(res.err, &e) {
				t.Fatalf("expected *InvalidInputError, got %v", res.err)
			}
			if e.Reason != tc.reason {
				t.Fatalf("expected %q, got %q", tc.reason, e.Reason)
			}
			if res.stdout != "" {
				t.Fatalf("expected no output, got %q", res.stdout)
			}
			if !strings.Contains(res.stderr, "b64 failed") {
				t.Fatalf("expected the error to be logged, got %q", res.stderr)
			}
			if got := ExitCode(res.err); got != ErrInvalidInput {
				t.Fatalf("expected exit code %d, got %d", ErrInvalidInput, got)
			}
		})
	}
}

func TestStrictEnv(t *testing.T) {
	t.Setenv("B64_STRICT", "true")
	path := writeFile(t, "Zh==")
	res := run(t, "", "decode", path)
	if !errors.Is(res.err, base64.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", res.err)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		typ  flags.ErrorType
	}{
		{"unknown command", []string{"frobnicate", "file"}, flags.ErrUnknownCommand},
		{"no command", nil, flags.ErrCommandRequired},
		{"no file", []string{"encode"}, flags.ErrRequired},
		{"unknown flag", []string{"encode", "--frobnicate", "file"}, flags.ErrUnknownFlag},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := run(t, "", tc.args...)
			var flagsErr *flags.Error
			if !errors.As(res.err, &flagsErr) {
				t.Fatalf("expected *flags.Error, got %v", res.err)
			}
			if flagsErr.Type != tc.typ {
				t.Fatalf("expected %v, got %v", tc.typ, flagsErr.Type)
			}
			if got := ExitCode(res.err); got != int(tc.typ) {
				t.Fatalf("expected exit code %d, got %d", int(tc.typ), got)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	res := run(t, "", "--help")
	if got := ExitCode(res.err); got != 0 {
		t.Fatalf("expected exit code 0, got %d (%v)", got, res.err)
	}
	for _, want := range []string{"Usage", "encode", "decode"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("expected %q in help output:\n%s", want, res.stdout)
		}
	}
}

func TestMissingFile(t *testing.T) {
	res := run(t, "", "encode", filepath.Join(t.TempDir(), "missing"))
	if !os.IsNotExist(errors.Cause(res.err)) {
		t.Fatalf("expected a not-exist error, got %v", res.err)
	}
	if got := ExitCode(res.err); got != ErrGeneric {
		t.Fatalf("expected exit code %d, got %d", ErrGeneric, got)
	}
}

func TestRoundTrip(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 32; i++ {
		src := make([]byte, rng.Intn(4096))
		rng.Read(src)

		enc := run(t, string(src), "encode", "-")
		if enc.err != nil {
			t.Fatalf("#%d: encode: %v", i, enc.err)
		}
		dec := run(t, enc.stdout, "decode", "--strict", "-")
		if dec.err != nil {
			t.Fatalf("#%d: decode: %v", i, dec.err)
		}
		if !bytes.Equal(src, []byte(dec.stdout)) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(src, []byte(dec.stdout)))
		}
	}
}

func TestVerbosity(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want log.Level
	}{
		{0, log.WarnLevel},
		{1, log.InfoLevel},
		{2, log.DebugLevel},
		{3, log.TraceLevel},
		{9, log.TraceLevel},
	} {
		if got := verbosity(make([]bool, tc.n)); got != tc.want {
			t.Fatalf("%d: expected %v, got %v", tc.n, tc.want, got)
		}
	}
}

func TestDebugLog(t *testing.T) {
	path := writeFile(t, "foo")
	res := run(t, "", "-vv", "--log-format", "json", "encode", path)
	if res.err != nil {
		t.Fatal(res.err)
	}
	for _, want := range []string{`"message":"Encoded"`, `"in":3`, `"out":4`} {
		if !strings.Contains(res.stderr, want) {
			t.Fatalf("expected %s in log output:\n%s", want, res.stderr)
		}
	}
}

func TestMustErrorNilOrExit(t *testing.T) {
	defer func(fn func(int)) { exit = fn }(exit)

	code := -1
	exit = func(c int) { code = c }

	MustErrorNilOrExit(nil)
	if code != -1 {
		t.Fatalf("exited with %d on a nil error", code)
	}

	MustErrorNilOrExit(errors.New("demo"))
	if code != ErrGeneric {
		t.Fatalf("expected exit code %d, got %d", ErrGeneric, code)
	}

	MustErrorNilOrExit(errors.Wrap(&base64.InvalidInputError{Reason: base64.BadCharacter}, "decoding"))
	if code != ErrInvalidInput {
		t.Fatalf("expected exit code %d, got %d", ErrInvalidInput, code)
	}
}
