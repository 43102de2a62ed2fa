package notify

import (
	_ "embed"
)

// Embedded email bodies. Templates are plain text; placeholder syntax and the
// available filters are documented in pkg/tplengine.
//
//go:embed templates/judge_welcome.txt
var judgeWelcomeBody string

//go:embed templates/judging_begun.txt
var judgingBegunBody string

//go:embed templates/judging_reminder.txt
var judgingReminderBody string

//go:embed templates/judging_complete.txt
var judgingCompleteBody string

// builtinTemplates maps template names to their embedded sources.
func builtinTemplates() map[string]string {
	return map[string]string{
		"judge_welcome":    judgeWelcomeBody,
		"judging_begun":    judgingBegunBody,
		"judging_reminder": judgingReminderBody,
		"judging_complete": judgingCompleteBody,
	}
}
