package httpapi

import "golang.org/x/time/rate"

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// limiter throttles estimate requests. Nil disables throttling.
var limiter *rate.Limiter

// SetRateLimit allows rps requests per second with the given burst on the
// estimate endpoints. rps <= 0 disables the limit.
func SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		limiter = nil
		return
	}
	if burst <= 0 {
		burst = 1
	}
	limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// Page labels.
var (
	pageTitle  = "Housing Price Prediction Model"
	pageBanner string
)

// SetPageOptions sets the page title and optional banner markup. The banner is
// sanitized at render time.
func SetPageOptions(title, bannerHTML string) {
	if title != "" {
		pageTitle = title
	}
	pageBanner = bannerHTML
}
