package model

import "fmt"

// Assessment holds the fields of a reCAPTCHA Enterprise assessment the relay acts on.
type Assessment struct {
	Valid         bool
	InvalidReason string
	Action        string
	Score         float32
	Reasons       []string
}

type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("The parameter %s must be provided.", e.Name)
}
