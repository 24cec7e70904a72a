package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"trip-planner/internal/models"
)

// ValidatePlan turns the backend's raw text into a TripPlan, or rejects
// it. Validation is two-stage and all-or-nothing:
//
//  1. structural parse: the text must decode into a JSON object, else a
//     MalformedResponseError;
//  2. schema conformance: every required field must be present with the
//     right kind, activity types must be one of the five known tags,
//     scores must sit in [1,10], cost estimates must be non-negative and
//     day numbers must cover 1..duration exactly once, else a
//     SchemaViolationError naming the offending field path.
//
// Nothing is coerced, defaulted or partially returned. Validating the
// serialized form of an already-valid plan reproduces it unchanged.
func ValidatePlan(raw string) (*models.TripPlan, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var tree map[string]interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, &models.MalformedResponseError{Err: err}
	}

	plan := &models.TripPlan{}
	var err error

	if plan.TripName, err = requireString(tree, "", "tripName"); err != nil {
		return nil, err
	}
	if plan.Destination, err = requireString(tree, "", "destination"); err != nil {
		return nil, err
	}
	if plan.Duration, err = requireInt(tree, "", "duration"); err != nil {
		return nil, err
	}
	if plan.Summary, err = requireString(tree, "", "summary"); err != nil {
		return nil, err
	}
	if plan.LuxuryScore, err = requireScore(tree, "", "luxuryScore"); err != nil {
		return nil, err
	}
	if plan.TimeEfficiencyScore, err = requireScore(tree, "", "timeEfficiencyScore"); err != nil {
		return nil, err
	}

	cbTree, err := requireObject(tree, "", "costBreakdown")
	if err != nil {
		return nil, err
	}
	if plan.CostBreakdown, err = validateCostBreakdown(cbTree, "costBreakdown"); err != nil {
		return nil, err
	}

	daysRaw, err := requireArray(tree, "", "days")
	if err != nil {
		return nil, err
	}

	plan.Days = make([]models.DayPlan, 0, len(daysRaw))
	seen := make(map[int]bool, len(daysRaw))
	for i, el := range daysRaw {
		path := fmt.Sprintf("days[%d]", i)
		obj, err := asObject(el, path)
		if err != nil {
			return nil, err
		}
		day, err := validateDayPlan(obj, path)
		if err != nil {
			return nil, err
		}
		if seen[day.Day] {
			return nil, violation(path+".day", fmt.Sprintf("duplicate day number %d", day.Day))
		}
		seen[day.Day] = true
		plan.Days = append(plan.Days, day)
	}

	if len(plan.Days) != plan.Duration {
		return nil, violation("days", fmt.Sprintf("plan has %d days but duration is %d", len(plan.Days), plan.Duration))
	}
	for d := 1; d <= plan.Duration; d++ {
		if !seen[d] {
			return nil, violation("days", fmt.Sprintf("day numbers must be contiguous from 1; day %d is missing", d))
		}
	}

	return plan, nil
}

func validateCostBreakdown(obj map[string]interface{}, path string) (models.CostBreakdown, error) {
	var cb models.CostBreakdown
	var err error

	if cb.Transport, err = requireNumber(obj, path, "transport"); err != nil {
		return cb, err
	}
	if cb.Accommodation, err = requireNumber(obj, path, "accommodation"); err != nil {
		return cb, err
	}
	if cb.Food, err = requireNumber(obj, path, "food"); err != nil {
		return cb, err
	}
	if cb.Activities, err = requireNumber(obj, path, "activities"); err != nil {
		return cb, err
	}
	if cb.HiddenCosts, err = requireNumber(obj, path, "hiddenCosts"); err != nil {
		return cb, err
	}
	if cb.Total, err = requireNumber(obj, path, "total"); err != nil {
		return cb, err
	}
	return cb, nil
}

func validateDayPlan(obj map[string]interface{}, path string) (models.DayPlan, error) {
	var day models.DayPlan
	var err error

	if day.Day, err = requireInt(obj, path, "day"); err != nil {
		return day, err
	}
	if day.Day < 1 {
		return day, violation(joinPath(path, "day"), "day numbers are 1-based")
	}
	if day.Theme, err = requireString(obj, path, "theme"); err != nil {
		return day, err
	}

	actsRaw, err := requireArray(obj, path, "activities")
	if err != nil {
		return day, err
	}
	day.Activities = make([]models.Activity, 0, len(actsRaw))
	for i, el := range actsRaw {
		actPath := fmt.Sprintf("%s.activities[%d]", path, i)
		actObj, err := asObject(el, actPath)
		if err != nil {
			return day, err
		}
		act, err := validateActivity(actObj, actPath)
		if err != nil {
			return day, err
		}
		day.Activities = append(day.Activities, act)
	}
	return day, nil
}

func validateActivity(obj map[string]interface{}, path string) (models.Activity, error) {
	var act models.Activity
	var err error

	if act.Time, err = requireString(obj, path, "time"); err != nil {
		return act, err
	}
	if act.Activity, err = requireString(obj, path, "activity"); err != nil {
		return act, err
	}
	if act.Description, err = requireString(obj, path, "description"); err != nil {
		return act, err
	}
	if act.CostEstimate, err = requireNumber(obj, path, "costEstimate"); err != nil {
		return act, err
	}
	if act.CostEstimate < 0 {
		return act, violation(joinPath(path, "costEstimate"), "cost estimate must not be negative")
	}

	typeTag, err := requireString(obj, path, "type")
	if err != nil {
		return act, err
	}
	act.Type = models.ActivityType(typeTag)
	if !act.Type.Valid() {
		return act, violation(joinPath(path, "type"), fmt.Sprintf("unrecognized activity type %q", typeTag))
	}

	if act.Location, err = requireString(obj, path, "location"); err != nil {
		return act, err
	}

	coordObj, err := requireObject(obj, path, "coordinates")
	if err != nil {
		return act, err
	}
	coordPath := joinPath(path, "coordinates")
	var coords models.Coordinates
	if coords.Lat, err = requireNumber(coordObj, coordPath, "lat"); err != nil {
		return act, err
	}
	if coords.Lng, err = requireNumber(coordObj, coordPath, "lng"); err != nil {
		return act, err
	}
	act.Coordinates = &coords

	return act, nil
}

// --- generic tree helpers ---

func violation(path, reason string) error {
	return &models.SchemaViolationError{Path: path, Reason: reason}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func requireValue(obj map[string]interface{}, path, key string) (interface{}, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, violation(joinPath(path, key), "required field is missing")
	}
	return v, nil
}

func requireString(obj map[string]interface{}, path, key string) (string, error) {
	v, err := requireValue(obj, path, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", violation(joinPath(path, key), "expected a string")
	}
	return s, nil
}

func requireNumber(obj map[string]interface{}, path, key string) (float64, error) {
	v, err := requireValue(obj, path, key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, violation(joinPath(path, key), "expected a number")
	}
	f, err := n.Float64()
	if err != nil {
		return 0, violation(joinPath(path, key), "expected a number")
	}
	return f, nil
}

func requireInt(obj map[string]interface{}, path, key string) (int, error) {
	v, err := requireValue(obj, path, key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, violation(joinPath(path, key), "expected an integer")
	}
	i, err := n.Int64()
	if err != nil {
		return 0, violation(joinPath(path, key), "expected an integer")
	}
	return int(i), nil
}

func requireScore(obj map[string]interface{}, path, key string) (float64, error) {
	f, err := requireNumber(obj, path, key)
	if err != nil {
		return 0, err
	}
	if f < 1 || f > 10 {
		return 0, violation(joinPath(path, key), "score must be between 1 and 10")
	}
	return f, nil
}

func requireObject(obj map[string]interface{}, path, key string) (map[string]interface{}, error) {
	v, err := requireValue(obj, path, key)
	if err != nil {
		return nil, err
	}
	return asObject(v, joinPath(path, key))
}

func requireArray(obj map[string]interface{}, path, key string) ([]interface{}, error) {
	v, err := requireValue(obj, path, key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, violation(joinPath(path, key), "expected an array")
	}
	return arr, nil
}

func asObject(v interface{}, path string) (map[string]interface{}, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, violation(path, "expected an object")
	}
	return obj, nil
}
