package obslog

import (
	"log/slog"

	"github.com/katalvlaran/covtri/cover"
	"github.com/katalvlaran/covtri/tripath"
)

// CoverObserver adapts the point cover engine's hooks to log records:
// one debug line per scanned segment, one info line per selected point.
// Attach with cover.MinPointCover(segs, obslog.CoverObserver(log)...).
// The observer is narration only; results are identical without it.
func CoverObserver(log *slog.Logger) []cover.Option {
	return []cover.Option{
		cover.WithOnSegment(func(pos int, seg cover.Segment, covered bool) {
			msg := msgCoverSegmentNew
			if covered {
				msg = msgCoverSegmentCovered
			}
			log.Debug(msg, "pos", pos, "start", seg.Start, "end", seg.End)
		}),
		cover.WithOnPoint(func(p int64, total int) {
			log.Info(msgCoverPointSelected, "point", p, "total", total)
		}),
	}
}

// TriPathObserver adapts the triangle path engine's hooks to log
// records: one debug line per DP row, one info line per reconstructed
// path element.
func TriPathObserver(log *slog.Logger) []tripath.Option {
	return []tripath.Option{
		tripath.WithOnRow(func(i int, dp []int64) {
			log.Debug(msgTriRowFilled, "row", i, "cells", len(dp))
		}),
		tripath.WithOnStep(func(row, col int, value int64) {
			log.Info(msgTriPathStep, "row", row, "col", col, "value", value)
		}),
	}
}
