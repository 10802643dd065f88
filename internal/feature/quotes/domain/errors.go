// Package domain defines domain-level errors for the quotes feature.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRateLimited indicates the upstream price provider refused the
	// request because of rate limiting. The condition is transient:
	// the caller should drop any cached entry for the affected key and
	// retry later.
	ErrRateLimited = errors.New("price provider is rate limiting requests")

	// ErrNoTickersSelected indicates an empty ticker selection. The
	// pipeline halts before any computation is attempted.
	ErrNoTickersSelected = errors.New("no tickers selected")

	// ErrSymbolRequired indicates a single-symbol operation was called
	// with an empty symbol.
	ErrSymbolRequired = errors.New("symbol is required")

	// ErrUnknownPeriod indicates a period outside the supported horizon set.
	ErrUnknownPeriod = errors.New("unknown period")
)

// NoDataError reports the tickers for which the provider returned no
// observations at all. The request fails as a whole with the tickers
// named; missing tickers are never silently dropped from a comparison.
type NoDataError struct {
	Tickers []string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for tickers: %s", strings.Join(e.Tickers, ", "))
}
