package mocks

//go:generate mockgen -destination=./mock_strategy.go -package=mocks github.com/rxtech-lab/argo-montecarlo/internal/strategy Strategy
//go:generate mockgen -destination=./mock_result_store.go -package=mocks github.com/rxtech-lab/argo-montecarlo/internal/storage ResultStore
//go:generate mockgen -destination=./mock_simulator.go -package=mocks github.com/rxtech-lab/argo-montecarlo/internal/simulation Simulator
