// Package validation, SQL sorgularında kullanılan operatörlerin doğrulanması ve normalizasyonu
// işlemlerini sağlayan dahili yardımcı fonksiyonları içerir. Operatörler prepared statement
// ile bağlanamadığı için beyaz liste, operatör pozisyonundaki tek enjeksiyon savunmasıdır.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidOperator is matched by every *OperatorError through errors.Is.
var ErrInvalidOperator = errors.New("fluentdb: invalid SQL operator")

// allowedOperators, güvenli kabul edilen SQL operatörlerini tanımlar.
// Yalnızca bu operatörler WHERE cümlelerinde kullanılabilir.
var allowedOperators = map[string]struct{}{
	// Karşılaştırma operatörleri
	"=":  {},
	"!=": {},
	"<>": {},
	"<":  {},
	">":  {},
	"<=": {},
	">=": {},

	// Desen eşleştirme operatörleri
	"LIKE":       {},
	"NOT LIKE":   {},
	"ILIKE":      {},
	"REGEXP":     {},
	"NOT REGEXP": {},
	"RLIKE":      {},

	// PostgreSQL POSIX regex operatörleri
	"~":   {},
	"~*":  {},
	"!~":  {},
	"!~*": {},

	// NULL kontrolü operatörleri
	"IS":     {},
	"IS NOT": {},

	// Set operatörleri (değerleri ayrıca placeholder olarak bağlanır)
	"IN":          {},
	"NOT IN":      {},
	"BETWEEN":     {},
	"NOT BETWEEN": {},
}

// Operator, beyaz listeden geçmiş ve normalize edilmiş bir karşılaştırma operatörüdür.
// Alanı dışa kapalıdır; bu paketin dışında yalnızca ValidateOperator ile üretilebilir.
type Operator struct {
	name string
}

// Equal is the implied operator of the two-argument Where form.
var Equal = Operator{name: "="}

// String returns the normalized SQL spelling of the operator.
func (o Operator) String() string {
	if o.name == "" {
		return Equal.name
	}
	return o.name
}

// IsNullCheck reports whether the operator is IS or IS NOT.
func (o Operator) IsNullCheck() bool {
	return o.name == "IS" || o.name == "IS NOT"
}

// IsList reports whether the operator is IN or NOT IN.
func (o Operator) IsList() bool {
	return o.name == "IN" || o.name == "NOT IN"
}

// IsRange reports whether the operator is BETWEEN or NOT BETWEEN.
func (o Operator) IsRange() bool {
	return o.name == "BETWEEN" || o.name == "NOT BETWEEN"
}

// Negated reports whether the operator carries a NOT prefix.
func (o Operator) Negated() bool {
	return strings.HasPrefix(o.name, "NOT ") || o.name == "IS NOT"
}

// normalize, operatörü kırpar, büyük harfe çevirir ve iç boşlukları teke indirir.
func normalize(op string) string {
	return strings.Join(strings.Fields(strings.ToUpper(op)), " ")
}

// ValidateOperator, verilen operatörün izin verilen listede olup olmadığını kontrol eder
// ve normalize edilmiş Operator değerini döndürür.
// Operatörler, kontrol öncesinde büyük harfe çevrilir ve boşlukları kırpılır.
func ValidateOperator(op string) (Operator, error) {
	normalized := normalize(op)

	if _, ok := allowedOperators[normalized]; !ok {
		return Operator{}, &OperatorError{
			Operator: op,
			Reason:   "operator not in allowed list",
		}
	}

	return Operator{name: normalized}, nil
}

// AllowedOperators, izin verilen tüm operatörleri sıralı olarak döndürür.
// Dokümantasyon veya hata mesajları için faydalıdır.
func AllowedOperators() []string {
	ops := make([]string, 0, len(allowedOperators))
	for op := range allowedOperators {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// OperatorError, operatör doğrulama hatasını temsil eder.
type OperatorError struct {
	Operator string
	Reason   string
}

// Error, error arayüzünü uygular ve hatayı açıklayıcı string olarak döner.
func (e *OperatorError) Error() string {
	return "fluentdb: invalid operator '" + e.Operator + "': " + e.Reason
}

// Is, errors.Is(err, ErrInvalidOperator) eşleşmesini sağlar.
func (e *OperatorError) Is(target error) bool {
	return target == ErrInvalidOperator
}
