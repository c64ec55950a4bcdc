package observability

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	testCases := []struct {
		name          string
		env           string
		expectedDebug bool
	}{
		{name: "Dev keeps debug", env: "dev", expectedDebug: true},
		{name: "Prod drops debug", env: "prod", expectedDebug: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tc.env)

			logger.Debug("debug line")
			logger.Error("error line")

			out := buf.String()
			if strings.Contains(out, "debug line") != tc.expectedDebug {
				t.Errorf("Expected debug record present=%v, got %q", tc.expectedDebug, out)
			}
			if !strings.Contains(out, `"level":"ERROR"`) {
				t.Errorf("Expected error record, got %q", out)
			}
		})
	}
}
