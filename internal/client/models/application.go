package models

import (
	"encoding/json"
	"time"
)

// ApplicationStatus is the backend's (German) status vocabulary.
type ApplicationStatus string

const (
	StatusEntwurf       ApplicationStatus = "entwurf"
	StatusInBearbeitung ApplicationStatus = "in_bearbeitung"
	StatusEingereicht   ApplicationStatus = "eingereicht"
	StatusGenehmigt     ApplicationStatus = "genehmigt"
	StatusAbgelehnt     ApplicationStatus = "abgelehnt"
)

// Deletable reports whether an application in this status may still be
// deleted. Only the initial draft status qualifies; the backend enforces
// the same rule, the client checks it first so the request is never sent.
func (s ApplicationStatus) Deletable() bool {
	return s == StatusEntwurf
}

// Application is a grant application owned by a school.
type Application struct {
	ApplicationID       string            `json:"application_id"`
	FundingID           string            `json:"funding_id"`
	SchoolID            string            `json:"school_id,omitempty"`
	Title               string            `json:"title"`
	Projektbeschreibung string            `json:"projektbeschreibung,omitempty"`
	Status              ApplicationStatus `json:"status"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           *time.Time        `json:"updated_at,omitempty"`
}

func (a *Application) UnmarshalJSON(data []byte) error {
	type plain Application
	aux := struct {
		*plain
		ID string `json:"id"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if a.ApplicationID == "" {
		a.ApplicationID = aux.ID
	}
	return nil
}
