package types

// EstimateRequest carries the four dashboard selections.
type EstimateRequest struct {
	// Location name; matched case-insensitively against the manifest.
	// example: Indiranagar
	Location string `json:"location" example:"Indiranagar"`
	// Number of bedrooms (BHK).
	// example: 3
	Bedrooms int `json:"bedrooms" example:"3"`
	// Number of bathrooms.
	// example: 2
	Bathrooms int `json:"bathrooms" example:"2"`
	// Total area in square feet.
	// example: 2000
	SquareFeet float64 `json:"square_feet" example:"2000"`
}

// EstimateResponse is a single price estimate.
type EstimateResponse struct {
	// Displayed price in Unit, two decimals.
	// example: 1.95
	Price float64 `json:"price" example:"1.95"`
	// Display unit.
	// example: Crore Rupees
	Unit string `json:"unit" example:"Crore Rupees"`
	// Price and unit ready for display.
	// example: 1.95 Crore Rupees
	Formatted string `json:"formatted" example:"1.95 Crore Rupees"`
	// Model output before scaling, two decimals.
	// example: 195.2
	RawPrediction float64 `json:"raw_prediction" example:"195.2"`
	// Normalized location used for the lookup.
	// example: indiranagar
	Location string `json:"location" example:"indiranagar"`
	// False when the location is not in the manifest; the estimate then
	// carries no location signal.
	// example: true
	LocationMatched bool `json:"location_matched" example:"true"`
	// Feature position set for the location, or -1.
	// example: 3
	LocationIndex int `json:"location_index" example:"3"`
}

// Selection is a full set of dashboard inputs.
type Selection struct {
	Location   string `json:"location" example:"indiranagar"`
	Bedrooms   int    `json:"bedrooms" example:"2"`
	Bathrooms  int    `json:"bathrooms" example:"3"`
	SquareFeet int    `json:"square_feet" example:"2000"`
}

// Range describes a slider.
type Range struct {
	Min  int `json:"min" example:"400"`
	Max  int `json:"max" example:"52272"`
	Step int `json:"step" example:"100"`
}

// DatasetSummary reports distinct values seen in the historical records.
type DatasetSummary struct {
	Rows          int   `json:"rows" example:"7251"`
	SquareFeet    []int `json:"square_feet"`
	Bedrooms      []int `json:"bedrooms"`
	Bathrooms     []int `json:"bathrooms"`
	MinSquareFeet int   `json:"min_square_feet" example:"400"`
	MaxSquareFeet int   `json:"max_square_feet" example:"52272"`
}

// OptionsResponse lists the choices offered by the dashboard.
type OptionsResponse struct {
	Locations  []string `json:"locations"`
	Bedrooms   []int    `json:"bedrooms"`
	Bathrooms  []int    `json:"bathrooms"`
	SquareFeet []int    `json:"square_feet"`
	// Set when square footage is picked with a slider instead of a list.
	SquareFeetRange *Range          `json:"square_feet_range,omitempty"`
	Defaults        Selection       `json:"defaults"`
	Unit            string          `json:"unit" example:"Crore Rupees"`
	Dataset         *DatasetSummary `json:"dataset,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Lifecycle state: loading, ready or error.
	// example: ready
	State string `json:"state" example:"ready"`
	// Load error, if any.
	Error string `json:"error,omitempty"`
	// Feature vector length.
	// example: 244
	Features int `json:"features" example:"244"`
	// Number of recognized locations.
	// example: 241
	Locations int `json:"locations" example:"241"`
	// Artifact locations as configured.
	ManifestSource   string `json:"manifest_source,omitempty"`
	ModelSource      string `json:"model_source,omitempty"`
	DatasetSource    string `json:"dataset_source,omitempty"`
	BackgroundSource string `json:"background_source,omitempty"`
	// Rows read from the dataset.
	// example: 7251
	DatasetRows int `json:"dataset_rows" example:"7251"`
	// example: 1700000000
	LoadedAtUnix int64 `json:"loaded_at_unix" example:"1700000000"`
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Estimates served since start.
	// example: 42
	EstimatesTotal uint64 `json:"estimates_total" example:"42"`
	// Estimates whose location was not in the manifest.
	// example: 1
	UnmatchedTotal uint64 `json:"unmatched_location_total" example:"1"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: bedrooms must be an integer
	Error string `json:"error" example:"bedrooms must be an integer"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
