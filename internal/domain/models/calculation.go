package models

import (
	"encoding/json"
	"time"
)

// CalculationKind identifies which engine produced a calculation log entry.
type CalculationKind string

const (
	KindRange  CalculationKind = "range"
	KindOffset CalculationKind = "offset"
)

// CalculationLog is one persisted calculation.
//
// Fields:
//   - ID: UUID assigned by the service.
//   - Kind: "range" or "offset".
//   - Request: the normalized request as JSON.
//   - Result: the response returned to the caller as JSON.
//   - CreatedAt: when the calculation ran.
//
// Custom holiday text is stored only as part of the request snapshot; it is
// never reloaded into later calculations.
//
// swagger:model CalculationLog
type CalculationLog struct {
	ID        string          `json:"id" example:"0b0e5e0a-5f0e-4a53-9d5c-3f1ab0b7b9a4"`
	Kind      CalculationKind `json:"kind" example:"range"`
	Request   json.RawMessage `json:"request" swaggertype:"object"`
	Result    json.RawMessage `json:"result" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}
