// SPDX-License-Identifier: MIT

package minseq

import "log/slog"

// LogPreviewLen caps the number of elements rendered by LogValue.
const LogPreviewLen = 8

// LogValue implements slog.LogValuer. A sequence logs as a group with its
// minimum, its length and up to LogPreviewLen leading elements.
func (s *Seq[T]) LogValue() slog.Value {
	if s == nil {
		return slog.GroupValue()
	}

	return slog.GroupValue(
		slog.Int("min", s.min),
		slog.Int("len", len(s.items)),
		slog.Any("items", s.items[:min(len(s.items), LogPreviewLen)]),
	)
}
