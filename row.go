package fluentdb

import (
	"github.com/jmoiron/sqlx"
)

// Row, bir sonuç satırını kolon sırasını koruyarak temsil eder.
//
// Değerler sürücünün döndürdüğü skalerlerdir; yalnızca []byte değerler string'e
// çevrilir. Boolean kolonların native bool olarak dönmesi beklenmemelidir.
type Row struct {
	columns []string
	values  []any
	index   map[string]int
}

func newRow(columns []string, values []any) Row {
	index := make(map[string]int, len(columns))
	for i := len(columns) - 1; i >= 0; i-- {
		index[columns[i]] = i
	}
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return Row{columns: columns, values: values, index: index}
}

// Columns, kolon adlarını sorgudaki sırayla döndürür.
func (r Row) Columns() []string {
	return r.columns
}

// Values, değerleri kolon sırasıyla döndürür.
func (r Row) Values() []any {
	return r.values
}

// Len, kolon sayısını döndürür.
func (r Row) Len() int {
	return len(r.columns)
}

// Get, kolonun değerini ve kolonun var olup olmadığını döndürür.
// Aynı isimde birden fazla kolon varsa ilki döner.
func (r Row) Get(column string) (any, bool) {
	i, ok := r.index[column]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Value, kolonun değerini döndürür; kolon yoksa nil.
func (r Row) Value(column string) any {
	v, _ := r.Get(column)
	return v
}

// Map, satırı sırasız bir map'e kopyalar.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.columns))
	for i := len(r.columns) - 1; i >= 0; i-- {
		m[r.columns[i]] = r.values[i]
	}
	return m
}

// scanRows, sqlx.Rows'u SliceScan ile okuyarak sıralı satırlara çevirir.
func scanRows(rs *sqlx.Rows) ([]Row, error) {
	columns, err := rs.Columns()
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0)
	for rs.Next() {
		values, err := rs.SliceScan()
		if err != nil {
			return nil, err
		}
		rows = append(rows, newRow(columns, values))
	}

	return rows, rs.Err()
}
