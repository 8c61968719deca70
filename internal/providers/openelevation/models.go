package openelevation

// LookupRequest is the POST body for the lookup endpoint. Locations must not
// exceed the service's per-call size limit.
type LookupRequest struct {
	Locations []Location `json:"locations"`
}

// Location is one coordinate pair in a lookup request.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LookupAPIResponse is the lookup endpoint's response. Results are returned
// in request order.
type LookupAPIResponse struct {
	Results []LookupResult `json:"results"`
}

// LookupResult is one elevation value, echoing the coordinates it was looked
// up for. Elevation is in meters.
type LookupResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}
