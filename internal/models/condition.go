// ABOUTME: ConditionRecord model with overall score, symptoms, and mood.
// ABOUTME: Symptoms are fixed named flags; NoSymptom excludes all others.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Symptoms is the fixed set of symptom flags for a condition entry.
// NoSymptom is mutually exclusive with every other flag.
type Symptoms struct {
	NoSymptom       bool `json:"no_symptom"`
	DumpingSyndrome bool `json:"dumping_syndrome"`
	Pain            bool `json:"pain"`
	Fatigue         bool `json:"fatigue"`
	Indigestion     bool `json:"indigestion"`
	Nausea          bool `json:"nausea"`
	AppetiteLoss    bool `json:"appetite_loss"`
}

// SymptomName identifies a named (non-NoSymptom) symptom flag.
type SymptomName string

const (
	SymptomDumpingSyndrome SymptomName = "dumping_syndrome"
	SymptomPain            SymptomName = "pain"
	SymptomFatigue         SymptomName = "fatigue"
	SymptomIndigestion     SymptomName = "indigestion"
	SymptomNausea          SymptomName = "nausea"
	SymptomAppetiteLoss    SymptomName = "appetite_loss"
)

// SymptomCatalog lists named symptoms in display order. Report tie-breaking
// follows this order.
var SymptomCatalog = []SymptomName{
	SymptomDumpingSyndrome,
	SymptomPain,
	SymptomFatigue,
	SymptomIndigestion,
	SymptomNausea,
	SymptomAppetiteLoss,
}

// SymptomLabels maps symptom names to display labels.
var SymptomLabels = map[SymptomName]string{
	SymptomDumpingSyndrome: "dumping syndrome",
	SymptomPain:            "pain",
	SymptomFatigue:         "fatigue",
	SymptomIndigestion:     "indigestion",
	SymptomNausea:          "nausea",
	SymptomAppetiteLoss:    "appetite loss",
}

// Has reports whether the named symptom flag is set.
func (s Symptoms) Has(name SymptomName) bool {
	switch name {
	case SymptomDumpingSyndrome:
		return s.DumpingSyndrome
	case SymptomPain:
		return s.Pain
	case SymptomFatigue:
		return s.Fatigue
	case SymptomIndigestion:
		return s.Indigestion
	case SymptomNausea:
		return s.Nausea
	case SymptomAppetiteLoss:
		return s.AppetiteLoss
	}
	return false
}

// Set turns the named symptom flag on and clears NoSymptom.
func (s *Symptoms) Set(name SymptomName) {
	switch name {
	case SymptomDumpingSyndrome:
		s.DumpingSyndrome = true
	case SymptomPain:
		s.Pain = true
	case SymptomFatigue:
		s.Fatigue = true
	case SymptomIndigestion:
		s.Indigestion = true
	case SymptomNausea:
		s.Nausea = true
	case SymptomAppetiteLoss:
		s.AppetiteLoss = true
	default:
		return
	}
	s.NoSymptom = false
}

// SetNoSymptom marks the entry symptom-free, clearing every named flag.
func (s *Symptoms) SetNoSymptom() {
	*s = Symptoms{NoSymptom: true}
}

// Normalize enforces NoSymptom exclusivity: if NoSymptom is set alongside any
// named flag, the named flags win and NoSymptom is cleared.
func (s *Symptoms) Normalize() {
	if s.NoSymptom && s.anyNamed() {
		s.NoSymptom = false
	}
}

func (s Symptoms) anyNamed() bool {
	for _, name := range SymptomCatalog {
		if s.Has(name) {
			return true
		}
	}
	return false
}

// ParseSymptom resolves a user-supplied symptom name, accepting the canonical
// snake_case form.
func ParseSymptom(raw string) (SymptomName, error) {
	name := SymptomName(raw)
	for _, known := range SymptomCatalog {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown symptom: %s", raw)
}

// ConditionLabels maps 1-5 scores to display text. Index 0 is unused.
var ConditionLabels = []string{"", "very bad", "bad", "okay", "good", "very good"}

// ConditionRecord is a single daily condition entry. Multiple records per
// calendar date are allowed; Date plus Timestamp order them.
type ConditionRecord struct {
	ID               uuid.UUID `json:"id"`
	Date             string    `json:"date"` // YYYY-MM-DD
	Timestamp        int64     `json:"timestamp"` // epoch milliseconds
	OverallCondition int       `json:"overall_condition"` // 1-5
	Symptoms         Symptoms  `json:"symptoms"`
	Mood             int       `json:"mood"` // 1-5
	MealCount        int       `json:"meal_count"`
	Note             *string   `json:"note,omitempty"`
}

// NewConditionRecord creates a record for the given date with generated UUID
// and current timestamp.
func NewConditionRecord(date string, overall, mood int) *ConditionRecord {
	return &ConditionRecord{
		ID:               uuid.New(),
		Date:             date,
		Timestamp:        time.Now().UnixMilli(),
		OverallCondition: overall,
		Mood:             mood,
	}
}

// WithSymptoms sets the symptom flags, normalizing NoSymptom exclusivity.
func (c *ConditionRecord) WithSymptoms(s Symptoms) *ConditionRecord {
	s.Normalize()
	c.Symptoms = s
	return c
}

// WithMealCount sets the number of meals eaten.
func (c *ConditionRecord) WithMealCount(n int) *ConditionRecord {
	c.MealCount = n
	return c
}

// WithNote sets the free-text note.
func (c *ConditionRecord) WithNote(note string) *ConditionRecord {
	c.Note = &note
	return c
}

// Validate rejects out-of-range scores before anything is persisted.
func (c *ConditionRecord) Validate() error {
	if c.OverallCondition < 1 || c.OverallCondition > 5 {
		return fmt.Errorf("overall condition must be 1-5, got %d", c.OverallCondition)
	}
	if c.Mood < 1 || c.Mood > 5 {
		return fmt.Errorf("mood must be 1-5, got %d", c.Mood)
	}
	if c.MealCount < 0 {
		return fmt.Errorf("meal count must be non-negative, got %d", c.MealCount)
	}
	return nil
}
