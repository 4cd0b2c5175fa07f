package wizard

import (
	"regexp"
	"strings"
)

// emailPattern is the same loose shape check the form layer applies: one @,
// something on both sides, a dot in the domain. Real verification is the
// backend's job.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validatePage runs the rule table for one page and returns field → message.
//
// Page rules:
//  1. contact: first/last name, email (shape-checked), phone, location, zip
//  2. experience: unless "no experience" is set, at least one entry needs a role
//  3. questions: none enforced (cover letter requiredness is advisory only)
//  4. demographics: none (informational, optional)
//  5. review: the terms checkbox must be checked
func validatePage(page Page, a *Answers, settings Settings) map[string]string {
	errs := map[string]string{}

	switch page {
	case PageContact:
		if strings.TrimSpace(a.FirstName) == "" {
			errs["first_name"] = "First name is required"
		}
		if strings.TrimSpace(a.LastName) == "" {
			errs["last_name"] = "Last name is required"
		}
		if strings.TrimSpace(a.Email) == "" {
			errs["email"] = "Email is required"
		} else if !emailPattern.MatchString(a.Email) {
			errs["email"] = "Email address looks invalid"
		}
		if strings.TrimSpace(a.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
		if strings.TrimSpace(a.Location) == "" {
			errs["location"] = "Location is required"
		}
		if strings.TrimSpace(a.ZipCode) == "" {
			errs["zip_code"] = "Zip code is required"
		}

	case PageExperience:
		if !a.NoExperience {
			hasRole := false
			for _, entry := range a.Experience {
				if strings.TrimSpace(entry.Role) != "" {
					hasRole = true
					break
				}
			}
			if !hasRole {
				errs["experience"] = "Add at least one experience entry with a role, or mark that you have no experience"
			}
		}

	case PageQuestions, PageDemographics:
		// No hard validation on these pages.

	case PageReview:
		if !a.AgreeTerms {
			errs["agree_terms"] = "You must agree to the terms to submit"
		}
	}

	return errs
}
