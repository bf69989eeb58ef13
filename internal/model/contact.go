// Copyright (c) 2025-2026 Awatansh
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// ContactRetention is how long contact submissions are kept before the
// scheduler's sweep deletes them.
const ContactRetention = 365 * 24 * time.Hour

// ContactSubmission is a message left through the terminal's guided
// contact form. Created by visitors, read and deleted only by the
// admin. Read is settable to true only; CreatedAt is immutable.
type ContactSubmission struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Designation  string    `json:"designation"`
	Message      string    `json:"message"`
	SocialHandle string    `json:"socialHandle,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Read         bool      `json:"read"`
}
