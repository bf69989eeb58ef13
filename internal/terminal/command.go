// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package terminal

// Prompt is the shell prompt shown before every echoed command.
const Prompt = "awatansh.dev"

// Command describes one dispatch-table entry. The table is data-driven
// so the help listing stays derived rather than duplicated.
type Command struct {
	Name        string
	Description string
	Usage       string
}

// Commands is the dispatch table in display order. The education entry
// is live but hidden from help output.
var Commands = []Command{
	{Name: "help", Description: "List all available commands", Usage: "help"},
	{Name: "chat", Description: "Start a chat session with AI", Usage: "chat"},
	{Name: "ask", Description: "Ask me anything via AI", Usage: `ask "your question here"`},
	{Name: "about", Description: "About me", Usage: "about"},
	{Name: "projects", Description: "My projects", Usage: "projects"},
	{Name: "skills", Description: "My skills", Usage: "skills"},
	{Name: "experience", Description: "Work experience", Usage: "experience"},
	{Name: "reachout", Description: "Send me a message", Usage: "reachout"},
	{Name: "contact", Description: "Contact information", Usage: "contact"},
	{Name: "socials", Description: "Social media links", Usage: "socials"},
	{Name: "resume", Description: "View resume", Usage: "resume"},
	{Name: "clear", Description: "Clear terminal", Usage: "clear"},
	{Name: "exit", Description: "Exit terminal", Usage: "exit"},
	{Name: "education", Description: "Education", Usage: "education"},
}

// regularCommands are the command names that escape chat mode when a
// chat line starts with one of them. Note reachout and admin are
// deliberately absent: they stay plain chat text inside chat mode.
var regularCommands = []string{
	"help", "about", "projects", "skills", "experience", "education",
	"contact", "socials", "resume", "clear", "ask",
}
