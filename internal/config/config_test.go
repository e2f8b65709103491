/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dxsage/dxcore/model/shape"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func generateFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("shapegen", pflag.ContinueOnError)
	GenerateFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func checkFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("shapecheck", pflag.ContinueOnError)
	CheckFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "shapegen.yaml", heredoc.Doc(`
		header: ../hack/boilerplate.go.txt
		targets:
		  - schema: types.yaml
		    output: ../sagemaker/types
		    package: types
		  - schema: /abs/operations.yaml
		    output: ../sagemaker
	`))

	cfg, err := LoadGenerate(generateFlags(t, "--config", path, "--dry-run"))
	require.NoError(t, err)

	want := &Generate{
		Header: filepath.Join(dir, "../hack/boilerplate.go.txt"),
		DryRun: true,
		Targets: []Target{
			{Schema: filepath.Join(dir, "types.yaml"), Output: filepath.Join(dir, "../sagemaker/types"), Package: "types"},
			{Schema: "/abs/operations.yaml", Output: filepath.Join(dir, "../sagemaker")},
		},
		Log: Log{Level: "info", Format: "console"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadGenerate() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGenerate_Env(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "shapegen.yaml", "targets: [{schema: a.yaml, output: out}]\nlog: {level: debug}\n")
	t.Setenv("DXSAGE_LOG_FORMAT", "json")
	t.Setenv("DXSAGE_LOG_LEVEL", "warn")

	cfg, err := LoadGenerate(generateFlags(t, "--config", path))
	require.NoError(t, err)
	require.Equal(t, Log{Level: "warn", Format: "json"}, cfg.Log)

	cfg, err = LoadGenerate(generateFlags(t, "--config", path, "--log-level", "error"))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadGenerate_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		config  string
		wantErr []string
	}{
		{
			name:    "no config flag",
			wantErr: []string{"--config is required"},
		},
		{
			name:    "missing file",
			args:    []string{"--config", filepath.Join(dir, "nope.yaml")},
			wantErr: []string{"read config"},
		},
		{
			name:   "no targets and bad level",
			config: "log: {level: loud}\n",
			wantErr: []string{
				"Generate.Targets: at least one target is needed (required)",
				`Generate.Log.Level: unknown level "loud" (enum)`,
			},
		},
		{
			name:   "incomplete target",
			config: "targets: [{package: 'not ok'}]\n",
			wantErr: []string{
				"Generate.Targets[0].Schema: must be set (required)",
				"Generate.Targets[0].Output: must be set (required)",
				"Generate.Targets[0].Package",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.config != "" {
				args = []string{"--config", writeFile(t, t.TempDir(), "shapegen.yaml", tt.config)}
			}
			_, err := LoadGenerate(generateFlags(t, args...))
			require.Error(t, err)
			for _, want := range tt.wantErr {
				require.ErrorContains(t, err, want)
			}
		})
	}
}

func TestGenerate_ReadHeader(t *testing.T) {
	dir := t.TempDir()
	cfg := &Generate{}
	header, err := cfg.ReadHeader()
	require.NoError(t, err)
	require.Empty(t, header)

	cfg.Header = writeFile(t, dir, "boilerplate.go.txt", "/* license */\n")
	header, err = cfg.ReadHeader()
	require.NoError(t, err)
	require.Equal(t, "/* license */\n", header)

	cfg.Header = filepath.Join(dir, "missing.txt")
	_, err = cfg.ReadHeader()
	require.ErrorContains(t, err, "read header")
}

func TestLoadCheck(t *testing.T) {
	cfg, err := LoadCheck(checkFlags(t,
		"--env-file", "",
		"--operation", "DescribeTrainingJob",
		"--mode", "strict",
		"--redact",
	))
	require.NoError(t, err)
	require.Equal(t, "DescribeTrainingJob", cfg.Operation)
	require.Equal(t, DirectionOutput, cfg.Direction)
	require.Equal(t, shape.Strict, cfg.DecodeMode)
	require.True(t, cfg.Redact)
	require.False(t, cfg.List)
}

func TestLoadCheck_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "DXSAGE_OPERATION=ListTags\nDXSAGE_DIRECTION=input\n")
	t.Setenv("DXSAGE_DIRECTION", "output")
	t.Cleanup(func() { os.Unsetenv("DXSAGE_OPERATION") })

	cfg, err := LoadCheck(checkFlags(t, "--env-file", envFile))
	require.NoError(t, err)
	require.Equal(t, "ListTags", cfg.Operation)
	require.Equal(t, DirectionOutput, cfg.Direction)
	require.Equal(t, shape.Lenient, cfg.DecodeMode)
}

func TestLoadCheck_MissingEnvFileIsIgnored(t *testing.T) {
	cfg, err := LoadCheck(checkFlags(t, "--env-file", filepath.Join(t.TempDir(), ".env"), "--list"))
	require.NoError(t, err)
	require.True(t, cfg.List)
}

func TestCheck_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Check
		wantErr []string
	}{
		{
			name: "valid",
			cfg:  Check{Operation: "ListTags", Direction: DirectionInput, Mode: "lenient", Log: Log{Level: "info", Format: "json"}},
		},
		{
			name: "list needs no operation",
			cfg:  Check{List: true, Mode: "strict", Log: Log{Level: "debug", Format: "console"}},
		},
		{
			name: "everything wrong",
			cfg:  Check{Direction: "sideways", Mode: "loose", Log: Log{Level: "info", Format: "xml"}},
			wantErr: []string{
				"Check.Operation: must be set (required)",
				`Check.Direction: "sideways" is neither input nor output (enum)`,
				`Check.Mode: unknown mode "loose" (enum)`,
				`Check.Log.Format: unknown format "xml" (enum)`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				require.ErrorContains(t, err, want)
			}
		})
	}
}
