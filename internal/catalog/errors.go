package catalog

import "errors"

// ErrRefreshInFlight is returned when a refresh is triggered while another
// one has not yet settled. Callers decide whether to surface or ignore it.
var ErrRefreshInFlight = errors.New("a catalog refresh is already in progress")
