package terminal_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/awatansh/portfolio-go/internal/model"
	"github.com/awatansh/portfolio-go/internal/terminal"
)

func fullContext() *model.PortfolioContext {
	pc := model.DefaultContext()
	pc.Resume = "bio text"
	pc.ResumeLink = ""
	pc.Projects = []model.Project{
		{ID: "p1", Title: "First", Description: "The first project.", Technologies: []string{"Go"}},
		{ID: "p2", Title: "Second", Description: "The second project.", Link: "https://example.com/p2", Technologies: []string{"Go", "SQLite"}},
	}
	pc.Skills = []model.Skill{
		{Category: "Backend", Items: []string{"Go", "SQLite"}},
	}
	pc.Experience = []model.Experience{
		{Company: "Acme", Position: "Engineer", StartDate: "2023", Description: "Built tools."},
		{Company: "Initech", Position: "Intern", StartDate: "2022", EndDate: "2023", Description: "Fixed printers."},
	}
	pc.Education = []model.Education{
		{Institution: "State University", Degree: "BSc", Field: "CS", Year: "2022"},
	}
	pc.Socials = []model.Social{
		{Name: "GitHub", URL: "https://github.com/awatansh"},
	}
	return &pc
}

func textContent(instructions []terminal.Instruction) string {
	var b strings.Builder
	for _, ins := range instructions {
		if txt, ok := ins.(terminal.Text); ok {
			b.WriteString(txt.Content)
		}
	}
	return b.String()
}

func TestInterpretBlankInput(t *testing.T) {
	var it terminal.Interpreter
	for _, input := range []string{"", "   ", "\t\n"} {
		if got := it.Interpret(input, fullContext()); len(got) != 0 {
			t.Errorf("Interpret(%q) = %d instructions, want none", input, len(got))
		}
	}
}

func TestInterpretCaseInsensitive(t *testing.T) {
	var it terminal.Interpreter
	pc := fullContext()
	lower := it.Interpret("projects", pc)
	upper := it.Interpret("PROJECTS", pc)
	if !reflect.DeepEqual(lower, upper) {
		t.Error("dispatch should be case-insensitive")
	}
}

func TestInterpretUnknownFallsBackToAsk(t *testing.T) {
	var it terminal.Interpreter
	got := it.Interpret("unknown-command-xyz", fullContext())
	if len(got) != 1 {
		t.Fatalf("got %d instructions, want 1", len(got))
	}
	em, ok := got[0].(terminal.EnterMode)
	if !ok {
		t.Fatalf("got %T, want EnterMode", got[0])
	}
	if em.Mode != terminal.InteractiveAskFallback {
		t.Errorf("mode = %q, want askFallback", em.Mode)
	}
	if em.Question != "unknown-command-xyz" {
		t.Errorf("question = %q", em.Question)
	}
}

func TestHelpHidesEducation(t *testing.T) {
	var it terminal.Interpreter
	got := it.Interpret("help", fullContext())

	rows := map[string]int{}
	for _, ins := range got {
		if txt, ok := ins.(terminal.Text); ok && txt.Style == terminal.StyleHelpRow {
			rows[txt.ClickCommand]++
		}
	}

	for _, cmd := range terminal.Commands {
		if cmd.Name == "education" {
			if rows["education"] != 0 {
				t.Error("education should be hidden from help")
			}
			continue
		}
		if rows[cmd.Name] != 1 {
			t.Errorf("help rows for %q = %d, want 1", cmd.Name, rows[cmd.Name])
		}
	}
}

func TestEducationStillCallable(t *testing.T) {
	var it terminal.Interpreter
	got := textContent(it.Interpret("education", fullContext()))
	if !strings.Contains(got, "State University") || !strings.Contains(got, "BSc in CS (2022)") {
		t.Errorf("education output = %q", got)
	}
}

func TestListCommandsEmptyState(t *testing.T) {
	var it terminal.Interpreter
	empty := model.DefaultContext()

	tests := []struct {
		command string
		want    string
	}{
		{"projects", "No projects added yet."},
		{"skills", "No skills added yet."},
		{"experience", "No experience added yet."},
		{"education", "No education added yet."},
		{"socials", "No social links added yet."},
	}
	for _, tt := range tests {
		got := textContent(it.Interpret(tt.command, &empty))
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s on empty context = %q, want %q", tt.command, got, tt.want)
		}
	}
}

func TestProjectsInsertionOrder(t *testing.T) {
	var it terminal.Interpreter
	got := textContent(it.Interpret("projects", fullContext()))

	first := strings.Index(got, "1. First")
	second := strings.Index(got, "2. Second")
	if first < 0 || second < 0 || first > second {
		t.Errorf("projects should render in insertion order, got %q", got)
	}
	if !strings.Contains(got, "[Go] [SQLite]") {
		t.Errorf("technology badges missing: %q", got)
	}
}

func TestExperiencePresentForOpenEnded(t *testing.T) {
	var it terminal.Interpreter
	got := textContent(it.Interpret("experience", fullContext()))
	if !strings.Contains(got, "2023 - Present") {
		t.Errorf("open-ended entry should show Present: %q", got)
	}
	if !strings.Contains(got, "2022 - 2023") {
		t.Errorf("closed entry should show its end date: %q", got)
	}
}

func TestResumeFallbackChain(t *testing.T) {
	tests := []struct {
		name         string
		contextLink  string
		fallbackLink string
		resume       string
		want         string
	}{
		{"context link wins", "https://ctx.example/resume", "https://env.example/resume", "bio text", "https://ctx.example/resume"},
		{"fallback link next", "", "https://env.example/resume", "bio text", "https://env.example/resume"},
		{"resume text next", "", "", "bio text", "bio text"},
		{"nothing set", "", "", "", "Resume link not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := terminal.Interpreter{FallbackResumeLink: tt.fallbackLink}
			pc := fullContext()
			pc.ResumeLink = tt.contextLink
			pc.Resume = tt.resume

			got := textContent(it.Interpret("resume", pc))
			if !strings.Contains(got, tt.want) {
				t.Errorf("resume output = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestAskCommand(t *testing.T) {
	var it terminal.Interpreter

	t.Run("empty question yields usage", func(t *testing.T) {
		got := it.Interpret("ask", fullContext())
		if len(got) != 1 {
			t.Fatalf("got %d instructions, want 1", len(got))
		}
		if !strings.Contains(textContent(got), "Usage: ask") {
			t.Errorf("want usage message, got %q", textContent(got))
		}
	})

	t.Run("question routes to ask fallback", func(t *testing.T) {
		got := it.Interpret("ask what do you build?", fullContext())
		var em *terminal.EnterMode
		for _, ins := range got {
			if v, ok := ins.(terminal.EnterMode); ok {
				em = &v
			}
		}
		if em == nil {
			t.Fatal("ask should emit an EnterMode instruction")
		}
		if em.Mode != terminal.InteractiveAskFallback || em.Question != "what do you build?" {
			t.Errorf("EnterMode = %+v", *em)
		}
	})
}

func TestChatCommandEntersChatMode(t *testing.T) {
	var it terminal.Interpreter
	got := it.Interpret("chat", fullContext())
	var found bool
	for _, ins := range got {
		if em, ok := ins.(terminal.EnterMode); ok && em.Mode == terminal.InteractiveChat {
			found = true
		}
	}
	if !found {
		t.Error("chat should emit EnterMode{chat}")
	}
}

func TestReachoutNavigates(t *testing.T) {
	var it terminal.Interpreter
	got := it.Interpret("reachout", fullContext())
	if len(got) != 1 {
		t.Fatalf("got %d instructions, want 1", len(got))
	}
	nav, ok := got[0].(terminal.Navigate)
	if !ok || nav.Path != "/reachout" {
		t.Errorf("got %+v, want Navigate{/reachout}", got[0])
	}
}

func TestClearEmitsClearScreen(t *testing.T) {
	var it terminal.Interpreter
	got := it.Interpret("clear", fullContext())
	if len(got) != 1 {
		t.Fatalf("got %d instructions, want 1", len(got))
	}
	if _, ok := got[0].(terminal.ClearScreen); !ok {
		t.Errorf("got %T, want ClearScreen", got[0])
	}
}

func TestNilContextUsesDefaults(t *testing.T) {
	var it terminal.Interpreter
	got := textContent(it.Interpret("projects", nil))
	if !strings.Contains(got, "No projects added yet.") {
		t.Errorf("nil context should behave as empty defaults, got %q", got)
	}
}
