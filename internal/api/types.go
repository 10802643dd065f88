// Package api defines the request and response types shared by the HTTP
// handlers.
package api

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	// Tickers names the affected tickers for partial-data failures.
	Tickers []string `json:"tickers,omitempty"`
	// Retryable marks transient upstream conditions worth retrying.
	Retryable bool `json:"retryable,omitempty"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest is the request body for /signup. Gin binding tags enforce
// presence, email shape and minimum password length.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SymbolResponse is one catalog entry.
type SymbolResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// NormalizedRow is one long-form chart record: (date, stock, value).
type NormalizedRow struct {
	Date  string  `json:"date"`
	Stock string  `json:"stock"`
	Value float64 `json:"value"`
}

// MetricResponse is a best/worst ranking slot: the stock and its final
// normalized value, with the percent change the dashboard displays.
type MetricResponse struct {
	Stock     string  `json:"stock"`
	Final     float64 `json:"final"`
	ChangePct int     `json:"change_pct"`
}

// PeerRow is one wide-form record of a peer-comparison section.
type PeerRow struct {
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	PeerAverage float64 `json:"peer_average"`
	Delta       float64 `json:"delta"`
}

// PeerSectionResponse is one ticker's series against its peer average.
type PeerSectionResponse struct {
	Stock string    `json:"stock"`
	Rows  []PeerRow `json:"rows"`
}

// CompareResponse is the full comparison payload.
type CompareResponse struct {
	Period     string                `json:"period"`
	Stocks     []string              `json:"stocks"`
	Best       MetricResponse        `json:"best"`
	Worst      MetricResponse        `json:"worst"`
	Normalized []NormalizedRow       `json:"normalized"`
	Peers      []PeerSectionResponse `json:"peers,omitempty"`
	Notice     string                `json:"notice,omitempty"`
}

// CrossoverRow is one dated record of the golden-cross analysis. The
// moving averages are null until enough history exists; they are never
// serialized as zero.
type CrossoverRow struct {
	Date        string   `json:"date"`
	Close       float64  `json:"close"`
	MA50        *float64 `json:"ma_50"`
	MA200       *float64 `json:"ma_200"`
	GoldenCross bool     `json:"golden_cross"`
}

// CrossoverResponse is the golden-cross payload for one symbol.
type CrossoverResponse struct {
	Symbol string         `json:"symbol"`
	Period string         `json:"period"`
	Events []string       `json:"events"`
	Rows   []CrossoverRow `json:"rows"`
}

// RawRow is one record of the raw-data table. Returns are null while too
// little history exists.
type RawRow struct {
	Symbol       string   `json:"symbol"`
	Date         string   `json:"date"`
	Open         float64  `json:"open"`
	High         float64  `json:"high"`
	Low          float64  `json:"low"`
	Close        float64  `json:"close"`
	Volume       int64    `json:"volume"`
	Return1Month *float64 `json:"return_1mo"`
	Return1Year  *float64 `json:"return_1y"`
}
