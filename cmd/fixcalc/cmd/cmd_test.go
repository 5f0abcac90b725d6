package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/govalues/fixed"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, verbose = "", false
	evalRaw, evalLocale = false, ""
	vectorsOut = ""
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			args []string
			want string
		}{
			{[]string{"eval", "* 10 + 1.25 sin 30", "/ 1 3"}, "17.5\n0.333008\n"},
			{[]string{"eval", "--raw", "1.5"}, "1.5\t1536\n"},
			{[]string{"eval", "--locale", "de", "neg 1.5"}, "-1,5\n"},
			{[]string{"eval", "--locale", "en", "neg 1.5"}, "-1.5\n"},
		}
		for _, tt := range tests {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Errorf("execute(%q) failed: %v", tt.args, err)
				continue
			}
			if got != tt.want {
				t.Errorf("execute(%q) = %q, want %q", tt.args, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := [][]string{
			{"eval"},
			{"eval", "/ 1 0"},
			{"eval", "sqrt -1"},
			{"eval", "--locale", "!!", "1"},
		}
		for _, args := range tests {
			if _, err := execute(t, args...); err == nil {
				t.Errorf("execute(%q) did not fail", args)
			}
		}
	})
}

func TestTable(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			args []string
			want []string
		}{
			{[]string{"table"}, []string{"INDEX", "90", "0.5", "1024"}},
			{[]string{"table", "sine"}, []string{"ANGLE", "0.25"}},
			{[]string{"table", "cordic"}, []string{"ITERATION", "26.56543", "46080"}},
			{[]string{"table", "factorial"}, []string{"1/N!", "0.5", "4294967296"}},
			{[]string{"table", "constants"}, []string{"MaxValue", "2097151.999023", "3.141602"}},
		}
		for _, tt := range tests {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Errorf("execute(%q) failed: %v", tt.args, err)
				continue
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("execute(%q) does not contain %q", tt.args, want)
				}
			}
		}
	})

	t.Run("sine angles", func(t *testing.T) {
		got, err := execute(t, "table", "sine")
		if err != nil {
			t.Fatalf("execute(table sine) failed: %v", err)
		}
		qs := fixed.QuarterSine()
		last := strconv.Itoa(len(qs) - 1)
		for _, line := range strings.Split(got, "\n") {
			fields := strings.Fields(strings.ReplaceAll(line, "│", " "))
			if len(fields) != 4 || fields[0] != last {
				continue
			}
			if fields[1] != "90" || fields[2] != "1" {
				t.Errorf("last sine row = %q, want angle 90 and value 1", fields)
			}
			return
		}
		t.Errorf("execute(table sine) has no row %v", last)
	})

	t.Run("error", func(t *testing.T) {
		if _, err := execute(t, "table", "cosine"); err == nil {
			t.Errorf("execute(table cosine) did not fail")
		}
	})
}

func TestVectorsVerify(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "sweep.toml")
	content := `
[sweep]
start = "0"
stop = "90"
step = "30"
functions = ["sin", "tan"]
`
	if err := os.WriteFile(cfg, []byte(content), 0o600); err != nil {
		t.Fatalf("os.WriteFile() failed: %v", err)
	}
	out := filepath.Join(dir, "vectors.yaml")

	got, err := execute(t, "vectors", "--config", cfg, "--out", out)
	if err != nil {
		t.Fatalf("execute(vectors) failed: %v", err)
	}
	if want := "8 vectors written"; !strings.Contains(got, want) {
		t.Errorf("execute(vectors) = %q, want %q", got, want)
	}

	got, err = execute(t, "verify", out)
	if err != nil {
		t.Fatalf("execute(verify) failed: %v", err)
	}
	if want := "all 8 vectors match\n"; got != want {
		t.Errorf("execute(verify) = %q, want %q", got, want)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("os.ReadFile() failed: %v", err)
	}
	tampered := strings.Replace(string(data), "result: 512", "result: 511", 1)
	if err := os.WriteFile(out, []byte(tampered), 0o600); err != nil {
		t.Fatalf("os.WriteFile() failed: %v", err)
	}
	if _, err := execute(t, "verify", out); err == nil {
		t.Errorf("execute(verify) did not fail on tampered vectors")
	}

	if _, err := execute(t, "verify", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("execute(verify) did not fail on missing file")
	}
	if _, err := execute(t, "vectors", "--config", filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("execute(vectors) did not fail on missing config")
	}
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute(version) failed: %v", err)
	}
	for _, want := range []string{"fixcalc v" + Version, "Q21.10", "CPU:"} {
		if !strings.Contains(got, want) {
			t.Errorf("execute(version) = %q, want %q", got, want)
		}
	}
}
