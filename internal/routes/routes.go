package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthRegister  = "/api/v1/auth/register"
	AuthLogin     = "/api/v1/auth/login"
	AuthVerifyOTP = "/api/v1/auth/verify-otp"
	AuthResendOTP = "/api/v1/auth/resend-otp"
	AuthUser      = "/api/v1/auth/user"

	// Properties
	Properties              = "/api/v1/properties"
	PropertyByID            = "/api/v1/properties/{id}"
	PropertyShortlist       = "/api/v1/properties/{id}/shortlist"
	PropertyRemoveShortlist = "/api/v1/properties/{id}/remove_shortlist"
	PropertiesShortlisted   = "/api/v1/properties/shortlisted"

	// Location directory (cascading dropdown lookups)
	LocationStates       = "/api/v1/locations/states"
	LocationDistricts    = "/api/v1/locations/districts"
	LocationSubDistricts = "/api/v1/locations/sub_districts"
	LocationVillages     = "/api/v1/locations/villages"
	LocationPinCodes     = "/api/v1/locations/pin_codes"

	// Static media (uploaded images)
	MediaPrefix = "/media/"
)
