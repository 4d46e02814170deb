package strategy

import (
	"slices"
	"sync"

	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
)

// Factory builds a strategy from its configuration.
type Factory func(config StrategyConfig) (Strategy, error)

// StrategyRegistry maps strategy types to factories.
type StrategyRegistry interface {
	Register(strategyType StrategyType, factory Factory) error
	Build(config StrategyConfig) (Strategy, error)
	List() []StrategyType
}

// StrategyRegistryV1 is the default thread-safe registry.
type StrategyRegistryV1 struct {
	factories map[StrategyType]Factory
	mu        sync.RWMutex
}

// NewStrategyRegistry creates a registry holding the built-in strategies.
func NewStrategyRegistry() StrategyRegistry {
	r := &StrategyRegistryV1{
		factories: make(map[StrategyType]Factory),
		mu:        sync.RWMutex{},
	}

	// built-ins never collide
	_ = r.Register(StrategyTypeBuyAndHold, newBuyAndHoldFromConfig)
	_ = r.Register(StrategyTypeSMACrossover, newSMACrossoverFromConfig)

	return r
}

// Register adds a factory for a strategy type.
func (r *StrategyRegistryV1) Register(strategyType StrategyType, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[strategyType]; exists {
		return errors.Newf(errors.ErrCodeStrategyAlreadyExists, "strategy %s already registered", strategyType)
	}

	r.factories[strategyType] = factory

	return nil
}

// Build creates a strategy from its configuration.
func (r *StrategyRegistryV1) Build(config StrategyConfig) (Strategy, error) {
	r.mu.RLock()
	factory, exists := r.factories[config.Type]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrCodeUnsupportedStrategy, "unsupported strategy type: %q", config.Type)
	}

	return factory(config)
}

// List returns the registered strategy types in sorted order.
func (r *StrategyRegistryV1) List() []StrategyType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]StrategyType, 0, len(r.factories))
	for strategyType := range r.factories {
		types = append(types, strategyType)
	}

	slices.Sort(types)

	return types
}

// New builds a strategy with the built-in registry.
func New(config StrategyConfig) (Strategy, error) {
	return NewStrategyRegistry().Build(config)
}

func newBuyAndHoldFromConfig(config StrategyConfig) (Strategy, error) {
	s, err := NewBuyAndHold(orDefault(config.InitialCash, DefaultInitialCash))
	if err != nil {
		return nil, err
	}

	return s, nil
}

func newSMACrossoverFromConfig(config StrategyConfig) (Strategy, error) {
	s, err := NewMovingAverageCrossover(
		orDefault(config.ShortWindow, DefaultShortWindow),
		orDefault(config.LongWindow, DefaultLongWindow),
		orDefault(config.InitialCapital, DefaultInitialCapital),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}
