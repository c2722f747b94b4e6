package wizard

import (
	"regexp"
	"strings"

	"clarity_backend/internal/leads"
)

// Field messages, identical to the site copy.
const (
	msgFullName    = "Please enter at least 3 characters."
	msgEmail       = "Please enter a valid email (e.g., name@company.com)."
	msgCompany     = "Please enter your company/startup name."
	msgProductType = "Please choose what you’re building."
	msgStage       = "Please choose a stage."
	msgTimeline    = "Please choose a timeline."
	msgBudget      = "Please select a budget."
	msgGoal        = "Please add a bit more detail (min 8 characters)."
	msgDetails     = "Please add a bit more detail (min 10 characters)."
)

// Simple but strict enough: one @, a domain, and a dot TLD.
var emailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// validateField checks one field against its rule and returns the message to
// show, or "" when the value passes.
func validateField(field string, data Answers) string {
	switch field {
	case FieldFullName:
		if !minLen(data.FullName, 3) {
			return msgFullName
		}
	case FieldEmail:
		if !emailPattern.MatchString(strings.TrimSpace(data.Email)) {
			return msgEmail
		}
	case FieldCompany:
		if !minLen(data.Company, 2) {
			return msgCompany
		}
	case FieldProductType:
		if !leads.IsProductType(data.ProductType) {
			return msgProductType
		}
	case FieldStage:
		if !leads.IsStage(data.Stage) {
			return msgStage
		}
	case FieldTimeline:
		if !leads.IsTimeline(data.Timeline) {
			return msgTimeline
		}
	case FieldBudget:
		if !leads.IsBudget(data.Budget) {
			return msgBudget
		}
	case FieldGoal:
		if !minLen(data.Goal, 8) {
			return msgGoal
		}
	case FieldDetails:
		if !minLen(data.Details, 10) {
			return msgDetails
		}
	}
	return ""
}

func minLen(s string, n int) bool {
	return len([]rune(strings.TrimSpace(s))) >= n
}
