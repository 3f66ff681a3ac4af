package synthesizing

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource fornece valores aleatórios limitados para a síntese
type RandomSource interface {
	// UniformFloat retorna um valor em [min, max)
	UniformFloat(min, max float64) float64
	// UniformInt retorna um inteiro em [min, max], inclusivo nas duas pontas
	UniformInt(min, max int) int
}

type seededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource cria uma fonte com semente fixa. Semente 0 usa o relógio.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &seededSource{
		rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

func (s *seededSource) UniformFloat(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rnd.Float64()*(max-min)
}

func (s *seededSource) UniformInt(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rnd.IntN(max-min+1)
}
