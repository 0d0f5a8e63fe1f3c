package tabular_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-pro/pkg/tabular"
)

func TestReadCSV_EncabezadoYFilas(t *testing.T) {
	csv := strings.Join([]string{
		"numero_factura,proveedor,fecha_emision,fecha_vencimiento,monto_total,estado",
		"F-001,ACME,2026-01-10,2026-02-10,1500.00,Pending",
		"F-002,Globex,2026-01-12,2026-02-12,320.50,",
	}, "\n")

	tbl, err := tabular.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Len(t, tbl.Headers, 6, "el encabezado debe tener 6 columnas")
	assert.Len(t, tbl.Rows, 2, "deben quedar 2 filas de datos")

	idx := tbl.ColumnIndex()
	assert.Equal(t, 0, idx["numero_factura"])
	assert.Equal(t, 4, idx["monto_total"])
	assert.Equal(t, "ACME", tbl.Cell(tbl.Rows[0], idx["proveedor"]))
}

func TestReadCSV_ColumnIndexNormalizaEncabezados(t *testing.T) {
	csv := "Numero_Factura ,  PROVEEDOR , monto_total\nF-1,ACME,10"

	tbl, err := tabular.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	idx := tbl.ColumnIndex()
	assert.Contains(t, idx, "numero_factura",
		"el índice debe normalizar mayúsculas y espacios del encabezado")
	assert.Contains(t, idx, "proveedor")
}

func TestReadCSV_FilasCortas_CellDevuelveVacio(t *testing.T) {
	csv := "a,b,c\nx"

	tbl, err := tabular.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)

	assert.Equal(t, "x", tbl.Cell(tbl.Rows[0], 0))
	assert.Equal(t, "", tbl.Cell(tbl.Rows[0], 2), "columna fuera de rango debe ser vacía")
	assert.Equal(t, "", tbl.Cell(tbl.Rows[0], -1))
}

func TestReadCSV_ArchivoVacio_Error(t *testing.T) {
	_, err := tabular.ReadCSV(strings.NewReader(""))
	assert.Error(t, err, "un archivo sin encabezado debe fallar")
}

func TestRead_DespachaPorExtension(t *testing.T) {
	// Sin extensión .xlsx el contenido se trata como CSV.
	tbl, err := tabular.Read(strings.NewReader("a,b\n1,2"), "facturas.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers)

	// Un CSV disfrazado de .xlsx debe fallar al abrirse como libro.
	_, err = tabular.Read(strings.NewReader("a,b\n1,2"), "facturas.xlsx")
	assert.Error(t, err)
}
