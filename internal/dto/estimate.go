package dto

// EstimateRequest is the loosely typed payload for POST /api/estimate.
// Unknown values never fail; the estimator degrades them to defaults.
type EstimateRequest struct {
	ProjectType string   `json:"projectType"`
	Features    []string `json:"features"`
	Timeline    string   `json:"timeline"`
	Complexity  string   `json:"complexity"`
}

// EstimateBreakdown echoes the inputs the estimate was computed from.
type EstimateBreakdown struct {
	BaseProject string   `json:"baseProject"`
	Features    []string `json:"features"`
	Timeline    string   `json:"timeline"`
	Complexity  string   `json:"complexity"`
}

// EstimateResult is the computed price/duration quote.
type EstimateResult struct {
	Price     int               `json:"price"`
	Days      int               `json:"days"`
	Breakdown EstimateBreakdown `json:"breakdown"`
}
