// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

// Package terminal implements the portfolio terminal engine: a command
// interpreter that turns raw input into render instructions, and a
// session controller that owns the transcript, the guided contact-form
// flow, and AI chat mode. Side effects are injected via interfaces so
// the engine can be hosted by any frontend or client.
package terminal

// Style tags attached to Text instructions. Renderers map these to
// presentation; the engine only guarantees the tag vocabulary.
type Style string

const (
	StyleHeader      Style = "header"
	StyleTitle       Style = "title"
	StyleSubtitle    Style = "subtitle"
	StyleDescription Style = "description"
	StyleTech        Style = "tech"
	StyleDate        Style = "date"
	StyleMuted       Style = "muted"
	StyleLink        Style = "link"
	StyleHelpRow     Style = "help-row"
)

// InteractiveMode names the interactive mode an EnterMode instruction
// requests.
type InteractiveMode string

const (
	// InteractiveChat starts a multi-turn AI chat session.
	InteractiveChat InteractiveMode = "chat"
	// InteractiveAskFallback routes unrecognized input to one-shot AI
	// question answering.
	InteractiveAskFallback InteractiveMode = "askFallback"
)

// Instruction is one step of interpreter output. It is a closed union:
// consumers switch exhaustively over Text, Navigate, RequestInput,
// EnterMode, and ClearScreen.
type Instruction interface {
	isInstruction()
}

// Text renders one span of output. Style is optional. Link marks the
// span clickable as an external URL; ClickCommand marks it clickable as
// a command to re-run; Description carries the second column of a
// help-row span.
type Text struct {
	Content      string
	Style        Style
	Link         string
	ClickCommand string
	Description  string
}

// Navigate requests a client-side route change. It short-circuits any
// instructions remaining in the same batch.
type Navigate struct {
	Path string
}

// RequestInput begins guided contact-form collection at the named
// field. The session controller walks the remaining fields itself.
type RequestInput struct {
	Field string
}

// EnterMode switches the session into an interactive mode. Question is
// set only for InteractiveAskFallback.
type EnterMode struct {
	Mode     InteractiveMode
	Question string
}

// ClearScreen truncates the transcript back to a fresh welcome entry.
type ClearScreen struct{}

func (Text) isInstruction()         {}
func (Navigate) isInstruction()     {}
func (RequestInput) isInstruction() {}
func (EnterMode) isInstruction()    {}
func (ClearScreen) isInstruction()  {}
