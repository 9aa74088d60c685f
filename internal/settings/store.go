// Package settings holds the runtime-adjustable pricing assumptions. Values
// live in memory only and reset to the configured defaults on restart.
package settings

import (
	"sync"

	"github.com/arkose/analytics-api/internal/models"
)

// Store guards the current assumptions so a rendering request always sees a
// consistent snapshot while another request updates them.
type Store struct {
	mu      sync.RWMutex
	pricing models.PricingAssumptions
	mix     models.MixAssumptions
}

func NewStore(pricing models.PricingAssumptions, mix models.MixAssumptions) *Store {
	return &Store{pricing: pricing, mix: mix}
}

func (s *Store) Pricing() models.PricingAssumptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pricing
}

func (s *Store) SetPricing(p models.PricingAssumptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricing = p
}

func (s *Store) Mix() models.MixAssumptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mix
}

func (s *Store) SetMix(m models.MixAssumptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mix = m
}
