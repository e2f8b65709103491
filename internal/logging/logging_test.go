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

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		enabled zapcore.Level
		muted   zapcore.Level
		wantErr string
	}{
		{name: "json info", level: "info", format: FormatJSON, enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
		{name: "console debug", level: "debug", format: FormatConsole, enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		{name: "default format", level: "warn", format: "", enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
		{name: "bad level", level: "loud", format: FormatJSON, wantErr: "log level"},
		{name: "bad format", level: "info", format: "xml", wantErr: `log format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, logger.Core().Enabled(tt.enabled))
			require.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}
