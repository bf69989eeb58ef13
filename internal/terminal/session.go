// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package terminal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/awatansh/portfolio-go/internal/model"
)

// Mode is the session state. Modes are mutually exclusive.
type Mode int

const (
	// ModeNormal hands input to the command interpreter.
	ModeNormal Mode = iota
	// ModeGuidedInput collects the contact form one field per line.
	ModeGuidedInput
	// ModeChat sends each line to the AI with the full transcript.
	ModeChat
	// ModeExited accepts no further input; only a reload recovers.
	ModeExited
)

var (
	// ErrSessionEnded is returned for input after the exit command.
	ErrSessionEnded = errors.New("session has ended")
	// ErrBusy is returned while a previous submission is still being
	// processed. Input is rejected, not queued.
	ErrBusy = errors.New("session is busy")
)

// welcomeText seeds the transcript and replaces it after a clear.
const welcomeText = "Welcome to my AI-powered chat! 🤖\n\n" +
	"I can help answer questions about me, my work, and more.\n" +
	"Type your message to start chatting, or use commands like \"help\".\n"

// ChatMessage is one turn of the chat transcript. The session is the
// source of truth for history; the server stores nothing.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ContactForm is the record built up across guided-input turns.
type ContactForm struct {
	Name         string `json:"name"`
	Designation  string `json:"designation"`
	Message      string `json:"message"`
	SocialHandle string `json:"socialHandle"`
}

// Submitter delivers a completed contact form. The returned message is
// shown to the visitor verbatim.
type Submitter interface {
	SubmitContact(ctx context.Context, form ContactForm) (string, error)
}

// Assistant answers chat transcripts and one-shot questions.
type Assistant interface {
	Chat(ctx context.Context, transcript []ChatMessage) (string, error)
	Ask(ctx context.Context, question string) (string, error)
}

// Navigator performs client-side route changes. Optional: a session
// without one handles /reachout inline via the guided form.
type Navigator interface {
	Navigate(path string)
}

// LineKind distinguishes echoed commands from produced output.
type LineKind int

const (
	LineCommand LineKind = iota
	LineOutput
)

// Line is one rendered transcript entry. The transcript is append-only
// and ordered; only ClearScreen truncates it.
type Line struct {
	ID           string
	Kind         LineKind
	Text         string
	Style        Style
	Link         string
	ClickCommand string
	Description  string
	Timestamp    time.Time
}

// Config wires a session to its host.
type Config struct {
	Interpreter Interpreter
	Context     *model.PortfolioContext
	Submitter   Submitter
	Assistant   Assistant
	Navigator   Navigator
	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is the terminal session controller. Not safe for concurrent
// use: hosts submit one line at a time, and the busy flag rejects
// reentrant submissions rather than queuing them.
type Session struct {
	interp    Interpreter
	pc        *model.PortfolioContext
	submitter Submitter
	assistant Assistant
	nav       Navigator
	now       func() time.Time

	mode  Mode
	busy  bool
	lines []Line
	chat  []ChatMessage

	form      ContactForm
	formField int
}

// guidedFields is the fixed collection order. There is no backward
// navigation: a field cannot be edited once advanced past.
var guidedFields = []string{"name", "designation", "message", "socialHandle"}

var guidedPrompts = map[string]string{
	"name":         "Enter your name:",
	"designation":  "Enter your designation:",
	"message":      "Enter your message:",
	"socialHandle": "How should they keep in touch with you? (e.g., Twitter/GitHub/LinkedIn handle):",
}

// NewSession creates a session with a welcome transcript entry.
func NewSession(cfg Config) *Session {
	s := &Session{
		interp:    cfg.Interpreter,
		pc:        cfg.Context,
		submitter: cfg.Submitter,
		assistant: cfg.Assistant,
		nav:       cfg.Navigator,
		now:       cfg.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.lines = []Line{s.welcomeLine()}
	return s
}

// Mode reports the current session mode.
func (s *Session) Mode() Mode { return s.mode }

// Lines returns the full transcript in render order.
func (s *Session) Lines() []Line { return s.lines }

// ChatTranscript returns the accumulated chat history.
func (s *Session) ChatTranscript() []ChatMessage { return s.chat }

// Submit processes one line of user input and returns the transcript
// entries appended this turn. Blank input is a no-op. Each submission
// runs to completion, including any network call, before the next is
// accepted.
func (s *Session) Submit(ctx context.Context, input string) ([]Line, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	if s.mode == ModeExited {
		return nil, ErrSessionEnded
	}
	if s.busy {
		return nil, ErrBusy
	}
	s.busy = true
	defer func() { s.busy = false }()

	start := len(s.lines)
	s.addCommand(trimmed)

	switch s.mode {
	case ModeGuidedInput:
		s.handleGuidedInput(ctx, trimmed)
	case ModeChat:
		s.handleChat(ctx, trimmed)
	default:
		s.handleCommand(ctx, trimmed)
	}

	// A clear truncates the transcript below the start marker.
	if start > len(s.lines) {
		start = 0
	}
	return s.lines[start:], nil
}

func (s *Session) handleCommand(ctx context.Context, input string) {
	for _, ins := range s.interp.Interpret(input, s.pc) {
		switch v := ins.(type) {
		case Text:
			s.lines = append(s.lines, Line{
				ID:           uuid.NewString(),
				Kind:         LineOutput,
				Text:         v.Content,
				Style:        v.Style,
				Link:         v.Link,
				ClickCommand: v.ClickCommand,
				Description:  v.Description,
				Timestamp:    s.now(),
			})
		case ClearScreen:
			s.lines = []Line{s.welcomeLine()}
		case Navigate:
			// Anything queued after a navigate is dropped.
			s.navigate(v.Path)
			return
		case RequestInput:
			s.beginGuidedInput()
		case EnterMode:
			switch v.Mode {
			case InteractiveChat:
				s.mode = ModeChat
				s.addOutput("Chat mode started. Type your message or 'exit' to quit.")
			case InteractiveAskFallback:
				s.ask(ctx, v.Question)
			}
		}
	}

	if strings.ToLower(input) == "exit" {
		s.mode = ModeExited
	}
}

func (s *Session) handleGuidedInput(ctx context.Context, input string) {
	switch guidedFields[s.formField] {
	case "name":
		s.form.Name = input
	case "designation":
		s.form.Designation = input
	case "message":
		s.form.Message = input
	case "socialHandle":
		s.form.SocialHandle = input
	}

	if s.formField+1 < len(guidedFields) {
		s.formField++
		s.addOutput(guidedPrompts[guidedFields[s.formField]])
		return
	}

	message, err := s.submitter.SubmitContact(ctx, s.form)
	if err != nil {
		// Stay on the last field so retyping it retries the submit.
		s.form.SocialHandle = ""
		s.addOutput("Error submitting contact form. Please try again.")
		return
	}
	s.addOutput(message)
	s.mode = ModeNormal
	s.form = ContactForm{}
	s.formField = 0
}

func (s *Session) handleChat(ctx context.Context, input string) {
	lower := strings.ToLower(input)
	if lower == "exit" {
		s.mode = ModeNormal
		s.addOutput("Exiting chat mode...")
		return
	}
	for _, cmd := range regularCommands {
		if strings.HasPrefix(lower, cmd) {
			// Leave chat and run the same line as a normal command.
			s.mode = ModeNormal
			s.handleCommand(ctx, input)
			return
		}
	}

	s.chat = append(s.chat, ChatMessage{Role: RoleUser, Content: input})
	response, err := s.assistant.Chat(ctx, s.chat)
	if err != nil {
		s.addOutput("Error: Failed to get response from AI")
		return
	}
	s.addOutput(response)
	s.chat = append(s.chat, ChatMessage{Role: RoleAssistant, Content: response})
}

func (s *Session) ask(ctx context.Context, question string) {
	response, err := s.assistant.Ask(ctx, question)
	if err != nil {
		s.addOutput("Error executing command")
		return
	}
	s.addOutput(response)
}

func (s *Session) navigate(path string) {
	if s.nav != nil {
		s.nav.Navigate(path)
		return
	}
	// Headless hosts have no pages; the reachout route becomes the
	// inline guided form.
	if path == "/reachout" {
		s.beginGuidedInput()
	}
}

func (s *Session) beginGuidedInput() {
	s.mode = ModeGuidedInput
	s.form = ContactForm{}
	s.formField = 0
	s.addOutput(guidedPrompts["name"])
}

func (s *Session) addCommand(input string) {
	s.lines = append(s.lines, Line{
		ID:        uuid.NewString(),
		Kind:      LineCommand,
		Text:      Prompt + "> " + input,
		Timestamp: s.now(),
	})
}

func (s *Session) addOutput(text string) {
	s.lines = append(s.lines, Line{
		ID:        uuid.NewString(),
		Kind:      LineOutput,
		Text:      text,
		Timestamp: s.now(),
	})
}

func (s *Session) welcomeLine() Line {
	return Line{
		ID:        uuid.NewString(),
		Kind:      LineOutput,
		Text:      welcomeText,
		Timestamp: s.now(),
	}
}
