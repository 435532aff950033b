package stackup

import (
	"fmt"

	"go.uber.org/zap"

	"diffimp/internal/domain"
	model "diffimp/internal/stackup"
)

// Service holds one stackup and its selected signal layer.
type Service struct {
	store     domain.StackupStore
	templates model.Templates
	log       *zap.Logger

	current  domain.Stackup
	selected string
}

var _ domain.StackupService = (*Service)(nil)

// New returns an empty session backed by store. Call Regenerate or Load
// before use.
func New(store domain.StackupStore, templates model.Templates, log *zap.Logger) *Service {
	return &Service{store: store, templates: templates, log: log}
}

// Regenerate replaces the stackup with a fresh template of copperCount
// layers and selects its first signal layer.
func (s *Service) Regenerate(copperCount int) error {
	next, err := model.Generate(copperCount, s.templates)
	if err != nil {
		return err
	}
	s.current = next
	s.selected = model.Reselect(next, "")
	s.log.Info("stackup generated",
		zap.Int("copper_count", copperCount),
		zap.Int("layers", len(next.Layers)),
		zap.String("selected", s.selected),
	)
	return nil
}

// SetField edits one layer field; see stackup.SetField for accepted values.
func (s *Service) SetField(index int, field, value string) error {
	if err := model.SetField(&s.current, index, field, value); err != nil {
		return err
	}
	s.reselect()
	s.log.Debug("layer field set",
		zap.Int("index", index),
		zap.String("field", field),
		zap.String("value", value),
	)
	return nil
}

// Select makes name the layer used for calculation.
func (s *Service) Select(name string) error {
	for _, n := range model.SignalLayerNames(s.current) {
		if n == name {
			s.selected = name
			return nil
		}
	}
	return &domain.InputValidationError{
		Field:  "Signal Layer",
		Reason: fmt.Sprintf("%q is not a signal layer; select a valid signal layer", name),
	}
}

func (s *Service) Selected() string { return s.selected }

func (s *Service) SignalLayers() []string { return model.SignalLayerNames(s.current) }

func (s *Service) TotalThickness() float64 { return model.TotalThickness(s.current) }

// Stackup returns a copy of the session stackup.
func (s *Service) Stackup() domain.Stackup { return s.current.Clone() }

// Load replaces the stackup with the one stored at path, whatever its
// copper count.
func (s *Service) Load(path string) error {
	next, err := s.store.LoadStackup(path)
	if err != nil {
		return err
	}
	s.current = next
	s.reselect()
	s.log.Info("stackup loaded",
		zap.String("path", path),
		zap.Int("copper_count", next.CopperCount),
	)
	return nil
}

// Import copies layer values from path into the current stackup. The file
// must hold exactly one row per existing layer.
func (s *Service) Import(path string) error {
	rows, err := s.store.ReadRows(path)
	if err != nil {
		return err
	}
	if err := model.ApplyRows(&s.current, rows); err != nil {
		s.log.Warn("stackup import rejected", zap.String("path", path), zap.Error(err))
		return err
	}
	s.reselect()
	s.log.Info("stackup imported", zap.String("path", path), zap.Int("rows", len(rows)))
	return nil
}

// Export writes the current stackup to path.
func (s *Service) Export(path string) error {
	if err := s.store.SaveStackup(path, s.current); err != nil {
		return err
	}
	s.log.Info("stackup exported", zap.String("path", path))
	return nil
}

func (s *Service) reselect() {
	prev := s.selected
	s.selected = model.Reselect(s.current, prev)
	if prev != "" && s.selected != prev {
		s.log.Debug("selection moved", zap.String("from", prev), zap.String("to", s.selected))
	}
}
