// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package terminal

import (
	"fmt"
	"strings"

	"github.com/awatansh/portfolio-go/internal/model"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n"

// Interpreter turns one line of raw input into render instructions. It
// is pure: no I/O, no state, and it never fails. Unrecognized input is
// routed to the AI fallback path rather than rejected.
type Interpreter struct {
	// FallbackResumeLink is consulted when the context document carries
	// no resume link of its own. Empty means no fallback is configured.
	FallbackResumeLink string
}

// Interpret dispatches on the first whitespace-delimited token,
// case-insensitively. A nil context is treated as empty defaults.
func (it Interpreter) Interpret(raw string, pc *model.PortfolioContext) []Instruction {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if pc == nil {
		def := model.DefaultContext()
		pc = &def
	}

	command, rest, _ := strings.Cut(trimmed, " ")

	switch strings.ToLower(command) {
	case "help":
		return helpOutput()
	case "admin":
		return adminOutput()
	case "about":
		return aboutOutput()
	case "projects":
		return projectsOutput(pc.Projects)
	case "skills":
		return skillsOutput(pc.Skills)
	case "experience":
		return experienceOutput(pc.Experience)
	case "education":
		return educationOutput(pc.Education)
	case "contact":
		return contactOutput(pc.Socials)
	case "reachout":
		return []Instruction{Navigate{Path: "/reachout"}}
	case "ask":
		return askOutput(rest)
	case "chat":
		return []Instruction{
			Text{Content: "Starting chat mode... (type 'exit' to quit)"},
			EnterMode{Mode: InteractiveChat},
		}
	case "socials":
		return socialsOutput(pc.Socials)
	case "resume":
		return it.resumeOutput(pc)
	case "clear":
		return []Instruction{ClearScreen{}}
	case "exit":
		return []Instruction{
			Text{Content: "Thanks for visiting! See you next time. 👋\n(Terminal is now read-only)"},
		}
	default:
		return []Instruction{
			EnterMode{Mode: InteractiveAskFallback, Question: trimmed},
		}
	}
}

func helpOutput() []Instruction {
	out := []Instruction{
		Text{Content: "\n📚 Command Reference\n", Style: StyleHeader},
		Text{Content: divider, Style: StyleMuted},
	}
	for _, cmd := range Commands {
		// Education stays callable but out of the menu.
		if cmd.Name == "education" {
			continue
		}
		out = append(out, Text{
			Style:        StyleHelpRow,
			ClickCommand: cmd.Name,
			Description:  cmd.Description,
		})
	}
	return append(out, Text{Content: "\n"})
}

func adminOutput() []Instruction {
	return []Instruction{
		Text{Content: "\n🔒 Admin Access\n", Style: StyleHeader},
		Text{Content: divider, Style: StyleMuted},
		Text{Content: "Admin panel is currently restricted.\n", Style: StyleDescription},
		Text{Content: "Access is limited to authorized personnel only.\n\n", Style: StyleDescription},
	}
}

func aboutOutput() []Instruction {
	return []Instruction{
		Text{Content: "\n👋 About Me\n", Style: StyleHeader},
		Text{Content: divider, Style: StyleMuted},
		Text{Content: "Hi, I'm Awatansh\n", Style: StyleTitle},
		Text{Content: "Developer & AI Researcher\n\n", Style: StyleSubtitle},
		Text{Content: "I build innovative solutions that blend creativity with technical excellence. \n", Style: StyleDescription},
		Text{Content: "When I'm not coding, you'll find me exploring new tech, contributing to \n", Style: StyleDescription},
		Text{Content: "open-source, or working on research projects.\n\n", Style: StyleDescription},
		Text{Content: "▸ Type ", Style: StyleDescription},
		Text{Content: "'projects'", Style: StyleTech},
		Text{Content: " to see my work\n", Style: StyleDescription},
		Text{Content: "▸ Type ", Style: StyleDescription},
		Text{Content: "'experience'", Style: StyleTech},
		Text{Content: " for my background\n", Style: StyleDescription},
		Text{Content: "▸ Type ", Style: StyleDescription},
		Text{Content: "'chat'", Style: StyleTech},
		Text{Content: " or ", Style: StyleDescription},
		Text{Content: "'ask'", Style: StyleTech},
		Text{Content: " to chat with me!\n\n", Style: StyleDescription},
	}
}

func projectsOutput(projects []model.Project) []Instruction {
	if len(projects) == 0 {
		return []Instruction{Text{Content: "\nNo projects added yet.\n"}}
	}
	out := []Instruction{
		Text{Content: "\n", Style: StyleHeader},
		Text{Content: "💼 My Projects\n", Style: StyleHeader},
		Text{Content: divider, Style: StyleMuted},
	}
	for i, p := range projects {
		out = append(out,
			Text{Content: fmt.Sprintf("\n┌─ %d. %s\n", i+1, p.Title), Style: StyleTitle},
			Text{Content: "│\n", Style: StyleMuted},
			Text{Content: fmt.Sprintf("│  %s\n", p.Description), Style: StyleDescription},
			Text{Content: "│\n", Style: StyleMuted},
			Text{Content: fmt.Sprintf("│  🛠️  %s\n", badges(p.Technologies)), Style: StyleTech},
		)
		if p.Link != "" {
			out = append(out,
				Text{Content: "│\n", Style: StyleMuted},
				Text{Content: "│  🔗 View Project →\n", Style: StyleLink, Link: p.Link},
			)
		}
		out = append(out, Text{Content: "└" + strings.Repeat("─", 50) + "\n\n", Style: StyleMuted})
	}
	return out
}

func skillsOutput(skills []model.Skill) []Instruction {
	if len(skills) == 0 {
		return []Instruction{Text{Content: "\nNo skills added yet.\n"}}
	}
	out := []Instruction{
		Text{Content: "\n🛠️  Technical Skills\n", Style: StyleHeader},
		Text{Content: divider, Style: StyleMuted},
	}
	for _, s := range skills {
		out = append(out,
			Text{Content: fmt.Sprintf("\n▸ %s\n", s.Category), Style: StyleSubtitle},
			Text{Content: fmt.Sprintf("  %s\n", badges(s.Items)), Style: StyleTech},
		)
	}
	return append(out, Text{Content: "\n"})
}

func experienceOutput(experience []model.Experience) []Instruction {
	if len(experience) == 0 {
		return []Instruction{Text{Content: "\nNo experience added yet.\n"}}
	}
	out := []Instruction{
		Text{Content: "\n💼 Work Experience\n", Style: StyleHeader},
		Text{Content: divider, Style: StyleMuted},
	}
	for i, e := range experience {
		end := e.EndDate
		if end == "" {
			end = "Present"
		}
		out = append(out,
			Text{Content: fmt.Sprintf("\n◉ %s\n", e.Position), Style: StyleTitle},
			Text{Content: fmt.Sprintf("  @ %s\n", e.Company), Style: StyleSubtitle},
			Text{Content: fmt.Sprintf("  📅 %s - %s\n\n", e.StartDate, end), Style: StyleDate},
			Text{Content: fmt.Sprintf("  %s\n", e.Description), Style: StyleDescription},
		)
		if i < len(experience)-1 {
			out = append(out, Text{Content: "\n  ┆\n", Style: StyleMuted})
		}
	}
	return append(out, Text{Content: "\n"})
}

func educationOutput(education []model.Education) []Instruction {
	if len(education) == 0 {
		return []Instruction{Text{Content: "\nNo education added yet.\n"}}
	}
	entries := make([]string, len(education))
	for i, e := range education {
		entries[i] = fmt.Sprintf("  %s\n  %s in %s (%s)", e.Institution, e.Degree, e.Field, e.Year)
	}
	return []Instruction{
		Text{Content: "\n🎓 Education:\n\n" + strings.Join(entries, "\n\n") + "\n"},
	}
}

func contactOutput(socials []model.Social) []Instruction {
	out := []Instruction{
		Text{Content: "\n📧 Contact Information:\n"},
		Text{Content: "\nEmail: (via form)\n"},
		Text{Content: "\n🔗 Social Links:\n"},
	}
	for _, s := range socials {
		out = append(out, Text{Content: fmt.Sprintf("  %s: %s\n", s.Name, s.URL), Link: s.URL})
	}
	return append(out, Text{Content: "\nUse 'reachout' to send a message!\n"})
}

func askOutput(rest string) []Instruction {
	if strings.TrimSpace(rest) == "" {
		return []Instruction{Text{Content: `Usage: ask "your question"`}}
	}
	return []Instruction{
		Text{Content: fmt.Sprintf("Thinking about your question: %q...", rest)},
		EnterMode{Mode: InteractiveAskFallback, Question: rest},
	}
}

func socialsOutput(socials []model.Social) []Instruction {
	if len(socials) == 0 {
		return []Instruction{Text{Content: "\nNo social links added yet.\n"}}
	}
	out := []Instruction{Text{Content: "\n🔗 Social Links:\n"}}
	for _, s := range socials {
		out = append(out, Text{Content: fmt.Sprintf("  %s: %s\n", s.Name, s.URL), Link: s.URL})
	}
	return out
}

// resumeOutput resolves the resume with a fallback chain: context link,
// then the configured fallback link, then the raw resume text. The
// first resolvable source wins.
func (it Interpreter) resumeOutput(pc *model.PortfolioContext) []Instruction {
	if pc.ResumeLink != "" {
		return resumeLinkOutput(pc.ResumeLink)
	}
	if it.FallbackResumeLink != "" {
		return resumeLinkOutput(it.FallbackResumeLink)
	}
	if pc.Resume != "" {
		return []Instruction{
			Text{Content: "\n📄 Resume:\n"},
			Text{Content: pc.Resume + "\n"},
		}
	}
	return []Instruction{Text{Content: "\nResume link not set. Add it via admin panel!\n"}}
}

func resumeLinkOutput(link string) []Instruction {
	return []Instruction{
		Text{Content: "\n📄 Resume:\n"},
		Text{Content: fmt.Sprintf("View: %s\n", link), Link: link},
	}
}

func badges(items []string) string {
	tagged := make([]string, len(items))
	for i, item := range items {
		tagged[i] = "[" + item + "]"
	}
	return strings.Join(tagged, " ")
}
