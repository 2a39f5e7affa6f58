package dialect

/*
 * ----------------------------------------------------------------------------
 * MYSQL GRAMMAR IMPLEMENTATION
 * ----------------------------------------------------------------------------
 *
 * MySQL/MariaDB için SQL üretimi. Identifier'lar backtick (`) ile sarılır,
 * yer tutucu olarak sıralı soru işareti (?) kullanılır.
 *
 * MySQL, LIMIT olmadan OFFSET kabul etmez; bu durumda belgelenen en büyük
 * unsigned değer limit olarak yazılır.
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

// MySQLGrammar, Grammar arayüzünü MySQL ve MariaDB veritabanları için implemente eder.
type MySQLGrammar struct {
	BaseGrammar
}

// NewMySQLGrammar, yeni bir MySQL dilbilgisi örneği oluşturur.
func NewMySQLGrammar() *MySQLGrammar {
	return &MySQLGrammar{
		BaseGrammar: BaseGrammar{
			name:            "mysql",
			driver:          MySQL,
			offsetOnlyLimit: "18446744073709551615",
		},
	}
}

var _ Grammar = (*MySQLGrammar)(nil)
