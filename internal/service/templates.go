package service

import (
	"fmt"

	"github.com/stayai/facility-desk/internal/model"
)

// ScenarioTemplates returns the five recommended auto-response scripts
// rendered with the facility name.
func ScenarioTemplates(facilityName string) []model.ScenarioTemplate {
	return []model.ScenarioTemplate{
		{
			ID:      "1",
			Title:   "Friendly reservation guide",
			Content: fmt.Sprintf("Hello, this is %s. Our line is busy right now, so our AI assistant is taking your call. Please tell us your preferred date and headcount and a staff member will get back to you right away.", facilityName),
		},
		{
			ID:      "2",
			Title:   "Professional business tone",
			Content: fmt.Sprintf("Welcome to the %s business center. To help us serve your group, please state your organization name, expected headcount and preferred dates in order.", facilityName),
		},
		{
			ID:      "3",
			Title:   "Activity and program focus",
			Content: fmt.Sprintf("This is the %s activity center, where the fun never stops! Which program are you curious about? Please tell us the activity and your group size.", facilityName),
		},
		{
			ID:      "4",
			Title:   "Short and to the point",
			Content: fmt.Sprintf("%s AI reservation assistant. Is this about lodging or facilities? State your request briefly and we will summarize it for the manager.", facilityName),
		},
		{
			ID:      "5",
			Title:   "Warm and relaxed",
			Content: fmt.Sprintf("A quiet place to rest: %s. Before we connect you to a manager, we are gathering a few details. Please feel free to describe your inquiry.", facilityName),
		},
	}
}

// DirectEntryOptions are the fixed option groups shown on the staff
// direct-response form. Headcount bands lead with digits so the record
// builder can derive a numeric headcount from the band label.
var DirectEntryOptions = map[string][]string{
	"target": {
		"kindergarten", "elementary school", "middle/high school",
		"university/corporate", "religious group", "family/friends", "other group",
	},
	"count": {
		"30 or fewer", "30-100", "100-150", "150-250", "250 or more",
	},
	"activity": {
		"day trip", "overnight leadership", "overnight retreat", "two-night retreat",
		"facility only", "zipline", "tube sledding", "water play",
	},
	"meals": {
		"no meals", "1 meal (lunch)", "2 meals (dinner/breakfast)", "2 meals (lunch/dinner)",
		"3 meals", "4 meals", "7 meals", "BBQ full set", "BBQ setup only",
	},
	"accommodation": {
		"day use", "1 night", "2 nights", "3 nights", "other (custom)",
	},
}
