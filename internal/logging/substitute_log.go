// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logging

import (
	"bytes"
	"log/slog"
)

// slogWriter forwards standard log output to slog, honoring a leading
// ERROR, WARN or INFO marker. Anything else is logged at debug level.
type slogWriter struct{}

var levelPrefixes = []struct {
	prefix []byte
	log    func(msg string, args ...any)
}{
	{[]byte("ERROR"), slog.Error},
	{[]byte("WARN"), slog.Warn},
	{[]byte("INFO"), slog.Info},
}

func (w *slogWriter) Write(p []byte) (n int, err error) {
	line := bytes.TrimRight(p, "\n")
	for _, lp := range levelPrefixes {
		if rest, ok := bytes.CutPrefix(line, lp.prefix); ok && len(rest) > 0 {
			lp.log(string(bytes.TrimLeft(rest, ": ")))
			return len(p), nil
		}
	}

	slog.Debug(string(line))
	return len(p), nil
}
