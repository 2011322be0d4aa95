package constants

// RecordColumns is the fixed column schema downstream consumers (sheet
// uploader, report formatter, notifier) expect, in order.
var RecordColumns = []string{
	"Numero Orden",
	"Fecha",
	"Proveedor",
	"Direccion Proveedor",
	"RNC",
	"Terminos",
	"Moneda",
	"Codigo Suplidor",
	"Codigo Producto",
	"Descripcion",
	"Cantidad",
	"Unidad",
	"Precio",
	"Descuento %",
	"Impuesto %",
	"Importe",
	"Monto Descuento",
	"Monto Impuesto",
	"Total por Producto",
	"Subtotal",
	"Total",
}

// Control columns the upload workflow appends after the record schema.
const (
	ColFingerprint  = "Hash_OC"
	ColLastModified = "Fecha_Ultima_Mod"
	ColRowStatus    = "Estado"
)

// RowStatusActive is the status stamped on freshly uploaded rows.
const RowStatusActive = "Activa"
