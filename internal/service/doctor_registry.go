package service

import (
	"context"

	"clinic-scheduler/config"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// defaultColors is the fallback palette used when no color row is configured
// for a provider.
var defaultColors = map[string]string{
	"dr-omar": "#3B82F6",
	"dr-lina": "#10B981",
	"on-call": "#F59E0B",
	"default": "#6B7280",
}

// DoctorChoice is one bookable provider: a stable slug id and the display
// label it was derived from.
type DoctorChoice struct {
	ID    string `json:"doctor_id"`
	Label string `json:"label"`
}

// DoctorChoiceWithColor adds the resolved calendar color for admin views.
type DoctorChoiceWithColor struct {
	DoctorChoice
	Color string `json:"color"`
}

// DoctorRegistry is the read-only provider registry the scheduler depends
// on: an ordered list of booking choices plus a color lookup. Choices come
// from configuration; colors from the doctor_colors table merged over the
// default palette.
type DoctorRegistry interface {
	Choices() []DoctorChoice
	IsKnown(doctorID string) bool
	// LabelFor returns the display label for a provider, falling back to the
	// id itself for providers no longer offered.
	LabelFor(doctorID string) string
	Colors(ctx context.Context) map[string]string
	ChoicesWithColors(ctx context.Context) ([]DoctorChoiceWithColor, error)
	SetColor(ctx context.Context, doctorID, color string) error
	DeleteColor(ctx context.Context, doctorID string) error
}

type doctorRegistry struct {
	db        *gorm.DB
	log       *logrus.Logger
	colorRepo repository.DoctorColorRepository
	choices   []DoctorChoice
}

func NewDoctorRegistry(db *gorm.DB, log *logrus.Logger, colorRepo repository.DoctorColorRepository, cfg config.SchedulingConfig) DoctorRegistry {
	return &doctorRegistry{
		db:        db,
		log:       log,
		colorRepo: colorRepo,
		choices:   buildChoices(cfg.Doctors),
	}
}

// buildChoices slugs the configured display names into stable doctor ids,
// preserving order. An empty list falls back to a single synthetic provider.
func buildChoices(names []string) []DoctorChoice {
	if len(names) == 0 {
		names = []string{"On Call"}
	}
	choices := make([]DoctorChoice, 0, len(names))
	for _, name := range names {
		id := slug.Make(name)
		if id == "" {
			id = "doctor"
		}
		choices = append(choices, DoctorChoice{ID: id, Label: name})
	}
	return choices
}

func (s *doctorRegistry) Choices() []DoctorChoice {
	out := make([]DoctorChoice, len(s.choices))
	copy(out, s.choices)
	return out
}

func (s *doctorRegistry) IsKnown(doctorID string) bool {
	for _, choice := range s.choices {
		if choice.ID == doctorID {
			return true
		}
	}
	return false
}

func (s *doctorRegistry) LabelFor(doctorID string) string {
	for _, choice := range s.choices {
		if choice.ID == doctorID {
			return choice.Label
		}
	}
	return doctorID
}

// Colors returns the configured rows merged over the default palette. A
// storage failure degrades to the defaults rather than failing the read path.
func (s *doctorRegistry) Colors(ctx context.Context) map[string]string {
	merged := make(map[string]string, len(defaultColors))
	for id, color := range defaultColors {
		merged[id] = color
	}

	rows, err := s.colorRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		s.log.Warnf("Failed to load doctor colors, using defaults: %+v", err)
		return merged
	}
	for _, row := range rows {
		merged[row.DoctorID] = row.Color
	}
	return merged
}

func (s *doctorRegistry) ChoicesWithColors(ctx context.Context) ([]DoctorChoiceWithColor, error) {
	colors := s.Colors(ctx)
	out := make([]DoctorChoiceWithColor, 0, len(s.choices))
	for _, choice := range s.choices {
		color, ok := colors[choice.ID]
		if !ok {
			color = colors["default"]
		}
		out = append(out, DoctorChoiceWithColor{DoctorChoice: choice, Color: color})
	}
	return out, nil
}

func (s *doctorRegistry) SetColor(ctx context.Context, doctorID, color string) error {
	return s.colorRepo.Upsert(s.db.WithContext(ctx), &entity.DoctorColor{DoctorID: doctorID, Color: color})
}

func (s *doctorRegistry) DeleteColor(ctx context.Context, doctorID string) error {
	return s.colorRepo.Delete(s.db.WithContext(ctx), doctorID)
}
