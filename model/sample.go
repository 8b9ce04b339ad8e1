package model

import (
	"time"

	"github.com/viant/fixture/internal/clock"
	"github.com/viant/fixture/internal/idgen"
)

// Sample is a single generated value.
type Sample struct {
	ID          string    `json:"id" yaml:"id"`
	Function    string    `json:"function" yaml:"function"`
	Value       string    `json:"value" yaml:"value"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
}

// NewSample stamps a generated value with an id and time
func NewSample(function, value string) *Sample {
	return &Sample{
		ID:          idgen.New(),
		Function:    function,
		Value:       value,
		GeneratedAt: clock.Now(),
	}
}
