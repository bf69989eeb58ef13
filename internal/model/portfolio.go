// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models shared by the store, handlers,
// terminal engine, and AI proxy: the portfolio context document,
// contact submissions, and event log entries.
package model

import "encoding/json"

// PortfolioContext is the single editable document describing the site
// owner. Exactly one instance exists in the store; absence is treated
// as empty defaults, never an error.
type PortfolioContext struct {
	Resume          string       `json:"resume"`
	Quote           string       `json:"quote,omitempty"`
	ResumeLink      string       `json:"resumeLink,omitempty"`
	ProfilePhotoURL string       `json:"profilePhotoUrl,omitempty"`
	Projects        []Project    `json:"projects"`
	Skills          []Skill      `json:"skills"`
	Experience      []Experience `json:"experience"`
	Education       []Education  `json:"education"`
	Socials         []Social     `json:"socials"`
}

// Project is a single portfolio project entry. IDs are caller-assigned
// and unique within the document.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies"`
}

// Skill groups related skill items under a category heading.
type Skill struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Experience is a single work-history entry. An empty EndDate renders
// as "Present".
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
}

// Social is a named external profile link.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// DefaultContext returns the context served when no document has been
// saved yet.
func DefaultContext() PortfolioContext {
	return PortfolioContext{
		Resume:     "Awaiting resume information...",
		Projects:   []Project{},
		Skills:     []Skill{},
		Experience: []Experience{},
		Education:  []Education{},
		Socials:    []Social{},
	}
}

// MergeContext applies a partial update onto base. Only top-level
// fields present in the raw JSON body overwrite; everything else
// survives. This gives the update endpoint merge semantics rather than
// replace semantics.
func MergeContext(base PortfolioContext, raw json.RawMessage) (PortfolioContext, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return base, err
	}

	merged := base
	for key, val := range fields {
		var err error
		switch key {
		case "resume":
			err = json.Unmarshal(val, &merged.Resume)
		case "quote":
			err = json.Unmarshal(val, &merged.Quote)
		case "resumeLink":
			err = json.Unmarshal(val, &merged.ResumeLink)
		case "profilePhotoUrl":
			err = json.Unmarshal(val, &merged.ProfilePhotoURL)
		case "projects":
			err = json.Unmarshal(val, &merged.Projects)
		case "skills":
			err = json.Unmarshal(val, &merged.Skills)
		case "experience":
			err = json.Unmarshal(val, &merged.Experience)
		case "education":
			err = json.Unmarshal(val, &merged.Education)
		case "socials":
			err = json.Unmarshal(val, &merged.Socials)
		default:
			// Unknown fields are ignored rather than rejected so older
			// admin clients keep working.
		}
		if err != nil {
			return base, err
		}
	}
	return merged, nil
}
