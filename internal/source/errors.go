package source

import "errors"

// Sentinel errors for the source package.
var (
	// ErrUnsupportedReference is returned when a reference's URL shape is
	// not recognized by the adapter it was routed to.
	ErrUnsupportedReference = errors.New("unsupported reference")

	// ErrMissingCredentials is returned at adapter construction when
	// required API credentials are absent.
	ErrMissingCredentials = errors.New("missing catalog credentials")

	// ErrFetcherNotImplemented is returned by the Spotify track fetcher
	// delegation point, which is an explicit capability gap: the catalog
	// half of the adapter works, the byte-fetching half does not yet.
	ErrFetcherNotImplemented = errors.New("track fetcher not implemented")

	// ErrCollectionLabelUnbound is returned per album member because the
	// album output-name construction has no bound collection label. Kept
	// as a defined error until the intended naming is decided.
	ErrCollectionLabelUnbound = errors.New("album collection label unbound")
)
