package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV lee un CSV UTF-8 con encabezado en la primera fila.
// Se tolera un número variable de campos por fila; la validación de columnas
// requeridas ocurre en el pipeline de ingestión, no aquí.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	return tableFrom(records)
}
