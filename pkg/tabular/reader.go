// Package tabular lee archivos de importación masiva (CSV UTF-8 o XLSX) y los
// normaliza a un encabezado más filas de texto, que es lo que consume el
// pipeline de ingestión de facturas.
package tabular

import (
	"fmt"
	"io"
	"strings"
)

// Table encabezado + filas crudas de un archivo de importación.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex devuelve la posición de cada encabezado (normalizado a
// minúsculas y sin espacios alrededor).
func (t *Table) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// Cell devuelve la celda (fila, col) o cadena vacía si la fila es corta.
// Las filas XLSX suelen venir recortadas cuando las últimas celdas están vacías.
func (t *Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Read detecta el formato por el nombre del archivo y devuelve la tabla.
// filename vacío o sin extensión conocida se trata como CSV.
func Read(r io.Reader, filename string) (*Table, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

func tableFrom(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("archivo vacío, se esperaba al menos el encabezado")
	}
	return &Table{Headers: records[0], Rows: records[1:]}, nil
}
