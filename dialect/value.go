package dialect

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// TimestampLayout, zaman değerlerinin bağlama öncesi çevrildiği ortak biçimdir.
const TimestampLayout = "2006-01-02 15:04:05"

// Kind, bağlanabilir bir değerin türüdür.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindText
	KindRawFloat
)

// Value, veritabanına bağlanmaya hazır, sürücüden bağımsız bir değerdir.
// Sıfır değeri NULL'dur. Float değerler hassasiyet kaybı olmaması için
// ondalık metin olarak taşınır ve metin olarak bağlanır.
//
// Value paket dışında yalnızca Cast ile üretilir; sıfır değeri dışında
// elle kurulamaz.
type Value struct {
	kind Kind
	i    int64
	s    string
}

func null() Value { return Value{} }

func integer(i int64) Value { return Value{kind: KindInteger, i: i} }

func text(s string) Value { return Value{kind: KindText, s: s} }

// rawFloat, float değerini ondalık metni olarak taşır.
func rawFloat(s string) Value { return Value{kind: KindRawFloat, s: s} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload; zero unless Kind is KindInteger.
func (v Value) Int() int64 { return v.i }

// Str returns the text payload of Text and RawFloat values.
func (v Value) Str() string { return v.s }

// Value, database/sql için driver.Valuer implementasyonudur.
func (v Value) Value() (driver.Value, error) {
	switch v.kind {
	case KindInteger:
		return v.i, nil
	case KindText, KindRawFloat:
		return v.s, nil
	default:
		return nil, nil
	}
}

// String, değerin okunabilir gösterimini döndürür (loglama ve hata mesajları için).
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindText:
		return strconv.Quote(v.s)
	case KindRawFloat:
		return v.s
	default:
		return "NULL"
	}
}

// Args, Value dilimini database/sql'in kabul ettiği argüman listesine çevirir.
func Args(values []Value) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// Cast, çağıranın verdiği dinamik bir değeri bağlanabilir Value'ya dönüştürür.
//
// Kurallar:
//   - nil ve nil pointer            -> NULL
//   - time.Time                     -> "2006-01-02 15:04:05" metni
//   - bool                          -> 1 / 0
//   - tamsayılar                    -> Integer (int64'e sığmayan uint metin olur)
//   - float32 / float64             -> ondalık metin (RawFloat)
//   - string / []byte               -> Text
//   - driver.Valuer                 -> ürettiği değer üzerinden tekrar dönüştürülür
//   - fmt.Stringer                  -> Text
//   - diğer her şey                 -> fmt.Sprint metni
func Cast(value any) Value {
	switch v := value.(type) {
	case nil:
		return null()
	case Value:
		return v
	case time.Time:
		return text(v.Format(TimestampLayout))
	case *time.Time:
		if v == nil {
			return null()
		}
		return text(v.Format(TimestampLayout))
	case bool:
		if v {
			return integer(1)
		}
		return integer(0)
	case int:
		return integer(int64(v))
	case int8:
		return integer(int64(v))
	case int16:
		return integer(int64(v))
	case int32:
		return integer(int64(v))
	case int64:
		return integer(v)
	case uint:
		return castUint(uint64(v))
	case uint8:
		return integer(int64(v))
	case uint16:
		return integer(int64(v))
	case uint32:
		return integer(int64(v))
	case uint64:
		return castUint(v)
	case float32:
		return rawFloat(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return rawFloat(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		return text(v)
	case []byte:
		if v == nil {
			return null()
		}
		return text(string(v))
	case driver.Valuer:
		return castValuer(v)
	case fmt.Stringer:
		return text(v.String())
	}

	return castReflect(reflect.ValueOf(value))
}

func castUint(u uint64) Value {
	if u > math.MaxInt64 {
		return text(strconv.FormatUint(u, 10))
	}
	return integer(int64(u))
}

func castValuer(v driver.Valuer) Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return null()
	}
	inner, err := v.Value()
	if err != nil {
		return text(fmt.Sprint(v))
	}
	if _, again := inner.(driver.Valuer); again {
		return text(fmt.Sprint(inner))
	}
	return Cast(inner)
}

// castReflect, pointer'ları ve adlandırılmış türleri (type Status string gibi) altta yatan türe indirger.
func castReflect(rv reflect.Value) Value {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return null()
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Cast(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return castUint(rv.Uint())
	case reflect.Float32:
		return rawFloat(strconv.FormatFloat(rv.Float(), 'f', -1, 32))
	case reflect.Float64:
		return rawFloat(strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	case reflect.String:
		return text(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			if rv.IsNil() {
				return null()
			}
			return text(string(rv.Bytes()))
		}
	case reflect.Invalid:
		return null()
	}

	if rv.CanInterface() {
		iv := rv.Interface()
		switch t := iv.(type) {
		case time.Time, driver.Valuer, fmt.Stringer:
			return Cast(t)
		}
		return text(fmt.Sprint(iv))
	}
	return text(fmt.Sprint(rv))
}
