package models

import "time"

// StatusResponse describes the refresh state of the catalog.
type StatusResponse struct {
	Loading     bool       `json:"loading"`
	Settled     bool       `json:"settled"`
	Error       string     `json:"error,omitempty"`
	Count       int        `json:"count"`
	LastRefresh *time.Time `json:"last_refresh,omitempty"`
}

// PlanetListResponse contains a filtered view over the collection.
type PlanetListResponse struct {
	Planets []Planet `json:"planets"`
	Count   int      `json:"count"`
}

// TerrainsResponse contains the unique terrain set.
type TerrainsResponse struct {
	Terrains []string `json:"terrains"`
}

// RefreshResponse acknowledges a refresh trigger.
type RefreshResponse struct {
	Message string `json:"message"`
}
