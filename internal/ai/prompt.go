// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package ai

import (
	"fmt"
	"strings"

	"github.com/awatansh/portfolio-go/internal/model"
)

// BuildContextPrompt renders the portfolio document into a system
// prompt so the assistant answers in the site owner's voice, grounded
// in the resume, projects, skills, and experience on record.
func BuildContextPrompt(pc model.PortfolioContext) string {
	var b strings.Builder

	b.WriteString("You are Awatansh, a developer and researcher. Always respond in first person as yourself.\n")
	b.WriteString("Be concise, friendly, and professional. Provide insights from your experience and projects.\n")

	b.WriteString("\nRESUME:\n")
	b.WriteString(pc.Resume)
	b.WriteString("\n")

	b.WriteString("\nPROJECTS:\n")
	for _, p := range pc.Projects {
		fmt.Fprintf(&b, "- %s: %s\n", p.Title, p.Description)
	}

	b.WriteString("\nSKILLS:\n")
	for _, s := range pc.Skills {
		fmt.Fprintf(&b, "%s: %s\n", s.Category, strings.Join(s.Items, ", "))
	}

	b.WriteString("\nEXPERIENCE:\n")
	for _, e := range pc.Experience {
		fmt.Fprintf(&b, "%s - %s: %s\n", e.Company, e.Position, e.Description)
	}

	b.WriteString("\nWhen answering questions, reference relevant projects or experience from the above context.")
	return b.String()
}
