package util

// Progress reports how many of a fixed number of jobs have finished. Each
// finished job is reported with JobDone. Failed jobs are logged as they
// happen, and the running count is shown only with -verbose.
type Progress struct {
	what string
	errs chan error
	done chan struct{}
}

// NewProgress starts reporting on total jobs. what names the jobs in the
// running count, e.g., "rows".
func NewProgress(total int, what string) Progress {
	p := Progress{what, make(chan error), make(chan struct{})}
	go func() {
		completed, errorCount := 0, 0
		for err := range p.errs {
			if err == nil {
				completed++
			} else {
				errorCount++
				if FlagVerbose {
					Warnf("\r%s                                    \n", err)
				} else {
					Warnf("%s", err)
				}
			}

			ratio := 100.0
			if total > 0 {
				ratio = 100.0 * (float64(completed) / float64(total))
			}
			Verbosef("\r%d of %d %s complete (%0.2f%% done, %d errors)",
				completed, total, p.what, ratio, errorCount)
		}
		Verbosef("\n")
		p.done <- struct{}{}
	}()
	return p
}

func (p Progress) JobDone(err error) {
	p.errs <- err
}

// Close waits for every reported job to be counted.
func (p Progress) Close() {
	close(p.errs)
	<-p.done
}
