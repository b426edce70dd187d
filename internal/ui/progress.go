package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress is a single bar counting finished renames.
type Progress struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	stats Stats
}

func NewProgress(w io.Writer, total int) *Progress {
	pr := &Progress{
		p: mpb.New(
			mpb.WithWidth(40),
			mpb.WithOutput(w),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
	}

	pr.bar = pr.p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name("Renaming  "),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d/%d", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				if n := pr.stats.Failed.Load(); n > 0 {
					return fmt.Sprintf(" | %d failed", n)
				}
				return ""
			}),
		),
	)

	return pr
}

func (pr *Progress) Increment(failed bool) {
	if failed {
		pr.stats.Failed.Add(1)
	} else {
		pr.stats.Renamed.Add(1)
	}
	pr.bar.Increment()
}

func (pr *Progress) Close() {
	if !pr.bar.Completed() {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}
