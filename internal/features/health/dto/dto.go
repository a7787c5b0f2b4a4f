package dto

type ReadinessResponse struct {
	Ready bool `json:"ready"`
}

type LivenessResponse struct {
	Live bool `json:"live"`
}
