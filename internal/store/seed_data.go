// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/awatansh/portfolio-go/internal/model"

// DefaultSeedContext returns a starter portfolio document so a fresh
// install has something to render before the admin edits it.
func DefaultSeedContext() model.PortfolioContext {
	return model.PortfolioContext{
		Resume: "Developer & AI researcher. I build tools at the intersection " +
			"of language models and developer experience.",
		Quote: "Ship small, ship often.",
		Projects: []model.Project{
			{
				ID:           "portfolio-terminal",
				Title:        "Portfolio Terminal",
				Description:  "This site: a terminal-styled portfolio with an AI chat mode.",
				Technologies: []string{"Go", "SQLite", "OpenAI"},
			},
		},
		Skills: []model.Skill{
			{Category: "Backend", Items: []string{"Go", "SQL", "REST"}},
			{Category: "AI", Items: []string{"LLM prompting", "Retrieval"}},
		},
		Experience: []model.Experience{},
		Education:  []model.Education{},
		Socials: []model.Social{
			{Name: "GitHub", URL: "https://github.com/awatansh"},
		},
	}
}
