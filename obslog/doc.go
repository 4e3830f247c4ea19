// Package obslog narrates engine progress through log/slog.
//
// The engines in cover and tripath expose data-bearing observer hooks
// and carry no log statements of their own; this package owns the
// human-readable message catalogue and bridges the hooks to a leveled,
// timestamped slog.Logger. Correctness never depends on an observer
// being attached.
//
// ⚙️ Usage:
//
//	f, _ := os.Create("run.log")
//	defer f.Close() // the file handle belongs to the caller
//
//	log := obslog.New(obslog.Tee(os.Stdout, f), slog.LevelInfo)
//	res, err := cover.MinPointCover(segs, obslog.CoverObserver(log)...)
package obslog
