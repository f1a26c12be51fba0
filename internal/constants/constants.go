package constants

import "time"

const (
	// OTP issuance
	OTPLength = 6
	OTPExpiry = 10 * time.Minute

	// Access tokens
	AccessTokenExpiry = 15 * time.Minute

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Filter sentinels: clients send these to mean "no bound", so the
	// composer must skip them instead of applying them as real limits.
	PriceFilterCeiling = 999_999_999
	AreaFilterCeiling  = 999_999

	// Location directory
	LocationCacheTTL         = 5 * time.Minute
	MaxLocationCreateRetries = 3

	// Cron schedule for purging expired verification codes.
	VerificationCleanupSpec = "@every 10m"
)

// Sample location data returned by the cascading lookup endpoints when the
// store is empty and the sample_location_fallback flag is on. Development
// convenience only; never enabled in production.
var (
	SampleStates = []string{"Maharashtra", "Karnataka", "Tamil Nadu", "Delhi", "Gujarat"}

	SampleDistricts = map[string][]string{
		"Maharashtra": {"Mumbai", "Pune", "Nagpur"},
		"Karnataka":   {"Bangalore", "Mysore", "Mangalore"},
		"Tamil Nadu":  {"Chennai", "Coimbatore", "Madurai"},
		"Delhi":       {"New Delhi", "North Delhi", "South Delhi"},
		"Gujarat":     {"Ahmedabad", "Surat", "Vadodara"},
	}

	SampleSubDistricts = map[string]map[string][]string{
		"Maharashtra": {
			"Mumbai": {"Mumbai Suburban", "Mumbai City"},
		},
		"Karnataka": {
			"Bangalore": {"Bangalore Urban", "Bangalore Rural"},
		},
	}

	SampleVillages = map[string]map[string]map[string][]string{
		"Maharashtra": {
			"Mumbai": {
				"Mumbai Suburban": {"Andheri", "Bandra", "Juhu"},
			},
		},
	}

	SamplePinCodes = []string{"400058", "400050", "400049", "411001", "411045"}
)
