package synthesizing

import (
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

// Merge aplica os metadados estáticos na linha.
// Precedência: formulário > campo já presente na linha ou observação > "N/A".
// Os campos numéricos não são alterados.
func Merge(row domain.SyntheticRow, static domain.Metadata, observed map[string]string) domain.SyntheticRow {
	merged := make(domain.Metadata, len(domain.MetadataFields)+len(static))

	for _, key := range static.Keys() {
		merged[key] = firstNonEmpty(static[key], row.Metadata[key], observed[key], domain.NotAvailable)
	}

	row.Metadata = merged
	return row
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
