package routes

import (
	"sort"

	"trip-planner/internal/models"
)

// Aggregate derives the map geometry for a plan: every geocoded activity
// as an ordered point sequence, plus the minimum enclosing lat/lng
// rectangle to frame the map view.
//
// Days are walked in ascending day order and activities in their given
// order, so the sequence reflects visitation order, not shortest-path
// order. Activities without coordinates are skipped; coordinates are
// best-effort enrichment, not a requirement of the walk. Identical plans
// always yield identical output.
func Aggregate(plan *models.TripPlan) *models.RouteGeometry {
	geo := &models.RouteGeometry{Points: []models.RoutePoint{}}
	if plan == nil {
		return geo
	}

	days := make([]models.DayPlan, len(plan.Days))
	copy(days, plan.Days)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	for _, day := range days {
		for _, act := range day.Activities {
			if act.Coordinates == nil {
				continue
			}
			geo.Points = append(geo.Points, models.RoutePoint{
				Lat:   act.Coordinates.Lat,
				Lng:   act.Coordinates.Lng,
				Day:   day.Day,
				Label: act.Location,
			})
		}
	}

	// Zero points means no geometry at all, not a degenerate empty bound.
	if len(geo.Points) == 0 {
		return geo
	}

	bounds := models.BoundingBox{
		MinLat: geo.Points[0].Lat,
		MinLng: geo.Points[0].Lng,
		MaxLat: geo.Points[0].Lat,
		MaxLng: geo.Points[0].Lng,
	}
	for _, p := range geo.Points[1:] {
		if p.Lat < bounds.MinLat {
			bounds.MinLat = p.Lat
		}
		if p.Lat > bounds.MaxLat {
			bounds.MaxLat = p.Lat
		}
		if p.Lng < bounds.MinLng {
			bounds.MinLng = p.Lng
		}
		if p.Lng > bounds.MaxLng {
			bounds.MaxLng = p.Lng
		}
	}
	geo.Bounds = &bounds

	return geo
}
