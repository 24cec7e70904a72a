package models

// RoutePoint is one geocoded activity in visitation order.
type RoutePoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Day   int     `json:"day"`
	Label string  `json:"label"`
}

// BoundingBox is the minimum enclosing lat/lng rectangle over a set of
// route points, used to frame a map view.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// RouteGeometry is the derived map geometry for a plan. Points follow
// itinerary order, not shortest-path order. Bounds is nil when the plan
// carries no geocoded activities at all.
type RouteGeometry struct {
	Points []RoutePoint `json:"points"`
	Bounds *BoundingBox `json:"bounds,omitempty"`
}

// HasGeometry reports whether the plan yielded at least one point.
func (g *RouteGeometry) HasGeometry() bool {
	return g != nil && len(g.Points) > 0
}
