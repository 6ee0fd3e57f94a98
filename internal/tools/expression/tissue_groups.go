package expression

import "strings"

// matchTissueGroup assigns a tissue identifier to the first matching group
// name. A tissue matches a group when its lowercased identifier contains the
// lowercased group name as a substring. The named anatomical groups are
// checked as explicit branches even though they currently reduce to the same
// substring test: a future group definition may diverge from the generic
// rule, and the branch structure keeps that change local. A tissue belongs
// to at most one group; matching stops at the first hit.
func matchTissueGroup(tissueID string, groups []string) (string, bool) {
	lower := strings.ToLower(tissueID)
	for _, group := range groups {
		g := strings.ToLower(group)
		switch g {
		case "brain":
			if strings.Contains(lower, "brain") {
				return group, true
			}
		case "heart":
			if strings.Contains(lower, "heart") {
				return group, true
			}
		case "muscle":
			if strings.Contains(lower, "muscle") {
				return group, true
			}
		case "skin":
			if strings.Contains(lower, "skin") {
				return group, true
			}
		default:
			if strings.Contains(lower, g) {
				return group, true
			}
		}
	}
	return "", false
}
