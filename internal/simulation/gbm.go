package simulation

import (
	"context"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/rxtech-lab/argo-montecarlo/internal/logger"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Simulator produces an ensemble of price paths from process parameters.
type Simulator interface {
	Simulate(ctx context.Context, params types.ProcessParams) (types.Ensemble, error)
}

// Config controls how the simulator schedules work. It never affects the output.
type Config struct {
	// Workers is the number of paths generated concurrently. Zero means runtime.NumCPU().
	Workers int `yaml:"workers" json:"workers"`
}

// GBMSimulator samples geometric Brownian motion with the log-Euler scheme.
//
// Random numbers come from one PCG substream per path: path i reads its
// standard normals, in step order, from PCG(seed, splitmix64(i)). The output
// is therefore bit-identical for a given seed whatever the worker count.
type GBMSimulator struct {
	config Config
	log    *logger.Logger
}

// NewGBMSimulator creates a simulator. log may be nil.
func NewGBMSimulator(config Config, log *logger.Logger) *GBMSimulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}

	return &GBMSimulator{
		config: config,
		log:    logger.OrNop(log),
	}
}

// Simulate implements Simulator.
func (s *GBMSimulator) Simulate(ctx context.Context, params types.ProcessParams) (types.Ensemble, error) {
	if err := params.Validate(); err != nil {
		return types.Ensemble{}, err
	}

	seed := resolveSeed(params)
	drift := (params.Drift - 0.5*params.Volatility*params.Volatility) * params.StepSize
	diffusion := params.Volatility * math.Sqrt(params.StepSize)

	s.log.Debug("Simulating GBM ensemble",
		zap.Int("paths", params.PathCount),
		zap.Int("steps", params.StepCount),
		zap.Uint64("seed", seed),
		zap.Bool("seeded", params.Seed.IsSome()),
		zap.Int("workers", s.config.Workers),
	)

	paths := make([]types.PricePath, params.PathCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range paths {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			paths[i] = simulatePath(pathSource(seed, i), params.InitialPrice, drift, diffusion, params.StepCount)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return types.Ensemble{}, errors.Wrap(errors.ErrCodeRunCancelled, "simulation cancelled", err)
	}

	if err := ctx.Err(); err != nil {
		return types.Ensemble{}, errors.Wrap(errors.ErrCodeRunCancelled, "simulation cancelled", err)
	}

	s.log.Debug("GBM ensemble simulated",
		zap.Int("paths", len(paths)),
		zap.Uint64("seed", seed),
	)

	return types.Ensemble{
		Params: params,
		Seed:   seed,
		Paths:  paths,
	}, nil
}

// simulatePath builds S_t = S_0 * exp(sum of log-returns up to t).
// Step 0 is exactly S_0.
func simulatePath(rng *rand.Rand, initialPrice, drift, diffusion float64, steps int) types.PricePath {
	path := make(types.PricePath, steps+1)
	path[0] = initialPrice

	cumulative := 0.0
	for t := 1; t <= steps; t++ {
		cumulative += drift + diffusion*rng.NormFloat64()
		path[t] = initialPrice * math.Exp(cumulative)
	}

	return path
}

// pathSource returns the substream for one path.
func pathSource(seed uint64, path int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, splitmix64(uint64(path))))
}

func resolveSeed(params types.ProcessParams) uint64 {
	if params.Seed.IsSome() {
		return uint64(params.Seed.Unwrap())
	}

	return rand.Uint64()
}

// splitmix64 spreads consecutive path indices over the whole 64-bit space.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
