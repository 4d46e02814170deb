package strategy

// StrategyConfig selects and parameterizes one strategy. Zero values fall back
// to the defaults of the selected type.
type StrategyConfig struct {
	Type StrategyType `yaml:"type" json:"type" validate:"required,oneof=buy_and_hold sma_crossover" jsonschema:"title=Type,description=Strategy implementation,enum=buy_and_hold,enum=sma_crossover"`
	// InitialCash is used by buy_and_hold.
	InitialCash float64 `yaml:"initial_cash,omitempty" json:"initial_cash,omitempty" validate:"gte=0" jsonschema:"title=Initial Cash,description=Starting cash for buy_and_hold,minimum=0"`
	// ShortWindow and LongWindow are used by sma_crossover.
	ShortWindow int `yaml:"short_window,omitempty" json:"short_window,omitempty" validate:"gte=0" jsonschema:"title=Short Window,description=Short SMA window in steps,minimum=0"`
	LongWindow  int `yaml:"long_window,omitempty" json:"long_window,omitempty" validate:"gte=0" jsonschema:"title=Long Window,description=Long SMA window in steps,minimum=0"`
	// InitialCapital is used by sma_crossover.
	InitialCapital float64 `yaml:"initial_capital,omitempty" json:"initial_capital,omitempty" validate:"gte=0" jsonschema:"title=Initial Capital,description=Starting equity for sma_crossover,minimum=0"`
}

func orDefault[T int | float64](value, fallback T) T {
	if value == 0 {
		return fallback
	}

	return value
}
