package synthesizing

import (
	"time"

	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

// scriptedSource devolve valores pré-definidos na ordem em que são pedidos
type scriptedSource struct {
	floats     []float64
	ints       []int
	floatCalls int
	intCalls   int
}

func (s *scriptedSource) UniformFloat(min, max float64) float64 {
	if s.floatCalls >= len(s.floats) {
		panic("scriptedSource: floats esgotados")
	}
	v := s.floats[s.floatCalls]
	s.floatCalls++
	return v
}

func (s *scriptedSource) UniformInt(min, max int) int {
	if s.intCalls >= len(s.ints) {
		panic("scriptedSource: ints esgotados")
	}
	v := s.ints[s.intCalls]
	s.intCalls++
	return v
}

func unixDate(date string) int64 {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return t.Unix()
}

func observation(date string, clicks int) domain.RawObservation {
	return domain.RawObservation{
		Date:       unixDate(date),
		Platform:   "Android",
		ClickCount: clicks,
	}
}

func staticMetadata() domain.Metadata {
	return domain.Metadata{
		domain.MetadataPageID:       "1234",
		domain.MetadataPageName:     "Página Teste",
		domain.MetadataCampaignName: "Campanha",
		domain.MetadataCampaignLink: "https://example.com/c",
	}
}
