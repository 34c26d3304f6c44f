package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the limit tier for a request. Exact path rules win over
// prefix rules; a rule whose path ends in "/" covers everything under it,
// which is how per-posting routes such as "/postings/{id}/rescore" pick up
// their tier. Returns nil when no rule applies, leaving the request on the
// limiter's default tier.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never throttled. Zero limit means no cap.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method != method || !strings.HasSuffix(configs[i].Path, "/") {
			continue
		}
		if strings.HasPrefix(path, configs[i].Path) {
			return &configs[i]
		}
	}

	return nil
}
