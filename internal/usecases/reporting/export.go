package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// WriteCSV escreve os registros com o cabeçalho do primeiro registro.
// Todos os registros precisam ter o mesmo conjunto de campos.
func WriteCSV(w io.Writer, records []domain.Record) error {
	if len(records) == 0 {
		return ErrEmptyExport
	}

	writer := csv.NewWriter(w)

	header := records[0].Names()
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, record := range records {
		if !slices.Equal(header, record.Names()) {
			return fmt.Errorf("registro %d com campos diferentes do cabeçalho", i)
		}
		if err := writer.Write(record.Strings()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
