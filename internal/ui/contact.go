package ui

import "time"

// ButtonStep is one state of the contact form's submit button.
type ButtonStep struct {
	Label string
	Icon  string
	Hold  time.Duration // how long the step stays before the next one
}

// ContactButtonSteps is the sequence the submit button goes through after
// a submission: sending, sent, then back to idle.
func ContactButtonSteps(idleLabel string) []ButtonStep {
	return []ButtonStep{
		{Label: "Enviando...", Icon: "fas fa-spinner fa-spin", Hold: 2 * time.Second},
		{Label: "¡Mensaje enviado!", Icon: "fas fa-check", Hold: 3 * time.Second},
		{Label: idleLabel, Icon: "fas fa-paper-plane"},
	}
}
