package models

// SelectRequest is the body for PUT /selection/asset and
// PUT /selection/zone. An empty ID clears the axis.
type SelectRequest struct {
	ID string `json:"id"`
}
