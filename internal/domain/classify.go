package domain

import (
	"fmt"
	"strings"
)

// Category is a semantic grouping derived from measure names.
type Category string

const (
	CategoryPeople         Category = "people"
	CategoryTrain          Category = "train"
	CategoryVehicle        Category = "vehicle"
	CategoryContainer      Category = "container"
	CategoryEmptyContainer Category = "empty-container"
)

// Categories lists every category in a fixed, report-friendly order.
var Categories = []Category{
	CategoryPeople,
	CategoryTrain,
	CategoryVehicle,
	CategoryContainer,
	CategoryEmptyContainer,
}

// vehicleMeasures is the explicit allow-list for the vehicle category.
// Substring matching would misfile "Truck Containers Loaded" under vehicles,
// so only whole measure names count.
var vehicleMeasures = map[string]bool{
	"buses":             true,
	"personal vehicles": true,
	"trucks":            true,
}

// RuleSet classifies measure names into categories. The two variants differ
// only in the people predicate; see [ConservativeRules] and [ExtendedRules].
type RuleSet struct {
	name   string
	people func(string) bool
}

// ConservativeRules matches people on "passeng" or "pedestrian" only. This is
// the default.
var ConservativeRules = RuleSet{
	name: "conservative",
	people: func(k string) bool {
		return strings.Contains(k, "passeng") || strings.Contains(k, "pedestrian")
	},
}

// ExtendedRules additionally matches "person" for the people category.
var ExtendedRules = RuleSet{
	name: "extended",
	people: func(k string) bool {
		return strings.Contains(k, "passeng") || strings.Contains(k, "pedestrian") || strings.Contains(k, "person")
	},
}

// RuleSetByName looks up a rule set by its configuration name.
func RuleSetByName(name string) (RuleSet, error) {
	switch name {
	case ConservativeRules.name:
		return ConservativeRules, nil
	case ExtendedRules.name:
		return ExtendedRules, nil
	default:
		return RuleSet{}, fmt.Errorf("unknown classifier rule set %q", name)
	}
}

// Name returns the configuration name of the rule set.
func (r RuleSet) Name() string { return r.name }

// Classify returns every category the measure belongs to, in the order of
// [Categories]. It never errors; an unmatched measure belongs to none. The
// predicates are not exclusive: "Truck Containers Empty" matches both
// container and empty-container.
func (r RuleSet) Classify(measure string) []Category {
	key := strings.ToLower(strings.TrimSpace(measure))
	var out []Category
	if r.people(key) {
		out = append(out, CategoryPeople)
	}
	if key == "trains" {
		out = append(out, CategoryTrain)
	}
	if vehicleMeasures[key] {
		out = append(out, CategoryVehicle)
	}
	if strings.Contains(key, "container") {
		out = append(out, CategoryContainer)
	}
	if strings.Contains(key, "empty") {
		out = append(out, CategoryEmptyContainer)
	}
	return out
}

// Matches reports whether the measure belongs to the given category.
func (r RuleSet) Matches(measure string, cat Category) bool {
	for _, c := range r.Classify(measure) {
		if c == cat {
			return true
		}
	}
	return false
}
