package loader

import (
	"fmt"
	"strings"
)

// Feature toggles the optional constants and behaviours applied by Load.
type Feature uint

const (
	// FeatureEnvironmentFile layers .env.<environment> over .env and
	// resolves the environment before any file is read.
	FeatureEnvironmentFile Feature = 1 << iota
	// FeatureCron publishes DISABLE_WP_CRON.
	FeatureCron
	// FeatureProxyHTTPS marks requests forwarded over HTTPS.
	FeatureProxyHTTPS
	// FeatureSiteURL publishes WP_SITEURL and WP_HOME.
	FeatureSiteURL
	// FeatureSES publishes the WP Offload SES credentials.
	FeatureSES
)

const (
	Minimal  Feature = 0
	Extended         = FeatureEnvironmentFile | FeatureCron | FeatureProxyHTTPS | FeatureSiteURL | FeatureSES
)

func (f Feature) Has(flag Feature) bool {
	return f&flag == flag
}

// ParseVariant maps a variant name to its feature set.
func ParseVariant(name string) (Feature, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "extended":
		return Extended, nil
	case "minimal":
		return Minimal, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want minimal or extended)", name)
	}
}

// HTTPSDetection selects how X-Forwarded-Proto is interpreted.
type HTTPSDetection int

const (
	// HTTPSStrict marks a request as HTTPS only when the header equals
	// "https", ignoring case and surrounding space.
	HTTPSStrict HTTPSDetection = iota
	// HTTPSLegacy marks a request as HTTPS whenever the header is present
	// with a value other than "" or "0", matching the historical check.
	HTTPSLegacy
)

func ParseHTTPSDetection(name string) (HTTPSDetection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "strict":
		return HTTPSStrict, nil
	case "legacy":
		return HTTPSLegacy, nil
	default:
		return 0, fmt.Errorf("unknown https detection %q (want strict or legacy)", name)
	}
}

func (d HTTPSDetection) String() string {
	if d == HTTPSLegacy {
		return "legacy"
	}
	return "strict"
}
