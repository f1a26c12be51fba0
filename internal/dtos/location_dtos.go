package dtos

// Directory lookups wrap their lists in a keyed object so clients can
// extend them without breaking the shape.

type StatesResponse struct {
	States []string `json:"states"`
}

type DistrictsResponse struct {
	Districts []string `json:"districts"`
}

type SubDistrictsResponse struct {
	SubDistricts []string `json:"sub_districts"`
}

type VillagesResponse struct {
	Villages []string `json:"villages"`
}

type PinCodesResponse struct {
	PinCodes []string `json:"pin_codes"`
}
