package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bue221/music-downloader/internal/ledger"
	"github.com/bue221/music-downloader/internal/naming"
)

// Summary aggregates the per-item outcomes of a batch run. The three
// counters partition Results exhaustively; an item carrying both flags is
// counted as an error.
type Summary struct {
	Downloaded int
	Skipped    int
	Errors     int
	Results    []Descriptor
}

// add counts and records descriptors.
func (s *Summary) add(ds ...Descriptor) {
	for _, d := range ds {
		switch {
		case d.Failed():
			s.Errors++
		case d.Skipped:
			s.Skipped++
		default:
			s.Downloaded++
		}
		s.Results = append(s.Results, d)
	}
}

// Runner drives a batch of references through the source adapters, one
// reference at a time. A failed reference becomes an error descriptor and
// the batch continues; only ledger persist failures and cancellation
// abort the run.
type Runner struct {
	youtube Adapter
	spotify Adapter
	log     *slog.Logger
}

// NewRunner creates a batch runner. The spotify adapter may be nil when
// credentials are not configured; Spotify references then fail per item.
func NewRunner(youtube, spotify Adapter, log *slog.Logger) *Runner {
	return &Runner{youtube: youtube, spotify: spotify, log: log}
}

// Run processes references sequentially and aggregates their outcomes.
// An empty platform means per-reference detection; a forced platform
// routes every reference to that adapter. Cancellation is checked between
// references, never inside an in-flight fetch.
func (r *Runner) Run(ctx context.Context, refs []string, collection string, platform naming.Platform, progress Progress) (*Summary, error) {
	summary := &Summary{}

	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		notify(progress, fmt.Sprintf("[%d/%d] %s", i+1, len(refs), ref))

		p := platform
		if p == "" {
			p = naming.Detect(ref)
		}

		adapter := r.youtube
		if p == naming.PlatformSpotify {
			adapter = r.spotify
		}
		if adapter == nil {
			notify(progress, "Error: "+ErrMissingCredentials.Error())
			summary.add(Descriptor{ID: ref, Err: ErrMissingCredentials.Error()})
			continue
		}

		descriptors, err := adapter.Download(ctx, ref, collection, progress)
		summary.add(descriptors...)
		if err != nil {
			if errors.Is(err, ledger.ErrPersist) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return summary, err
			}
			if r.log != nil {
				r.log.Warn("reference failed", "ref", ref, "error", err)
			}
			notify(progress, "Error: "+err.Error())
			summary.add(Descriptor{ID: ref, Err: err.Error()})
		}
	}
	return summary, nil
}
