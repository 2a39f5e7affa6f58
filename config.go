package fluentdb

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"

	"github.com/biyonik/go-fluent-db/dialect"
)

/*
 * ----------------------------------------------------------------------------
 * CONFIGURATION
 * ----------------------------------------------------------------------------
 *
 * Bağlantı yapılandırması "db" bölümü altındaki anahtarlardan okunur:
 *
 *	db:
 *	  driver: pgsql
 *	  host: localhost
 *	  port: 5432
 *	  name: app
 *	  user: app
 *	  pass: secret
 *
 * Seçilen sürücü için gerekli anahtarların eksik olması başlangıçta ölümcül
 * bir hatadır; varsayılan değerle sessizce devam edilmez.
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

// Config, veritabanı bağlantısının yapılandırma şemasıdır.
type Config struct {
	Driver dialect.Driver `yaml:"driver"` // mysql, pgsql veya sqlite
	Host   string         `yaml:"host"`   // Sunucu adresi (IP veya domain)
	Port   int            `yaml:"port"`   // Bağlantı portu
	Name   string         `yaml:"name"`   // Veritabanı adı; SQLite için dosya yolu veya :memory:
	User   string         `yaml:"user"`   // Kullanıcı adı
	Pass   string         `yaml:"pass"`   // Parola

	Prefix string `yaml:"prefix"` // Tablo isimlerinin önüne eklenecek önek

	MaxOpenConns    int           `yaml:"max_open_conns"`     // 0 = sınırsız
	MaxIdleConns    int           `yaml:"max_idle_conns"`     // Boşta bekletilecek bağlantı sayısı
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`  // Bir bağlantının yaşam süresi
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"` // Boşta kalabileceği maksimum süre
}

// LoadConfig, "db" bölümünü içeren bir YAML belgesinden yapılandırma okur ve doğrular.
// Belgedeki diğer üst düzey bölümler (app, session vb.) yok sayılır; "db"
// bölümünün içinde ise bilinmeyen anahtarlar hata olarak raporlanır.
func LoadConfig(r io.Reader) (*Config, error) {
	var sections map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&sections); err != nil {
		if err == io.EOF {
			return nil, &ConfigError{Reason: "empty configuration document"}
		}
		return nil, &ConfigError{Reason: err.Error()}
	}

	var cfg Config
	if node, ok := sections["db"]; ok {
		if err := decodeStrict(&node, &cfg); err != nil {
			return nil, &ConfigError{Reason: err.Error()}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeStrict, tek bir YAML düğümünü bilinmeyen alanları reddederek çözer.
// yaml.Node.Decode KnownFields seçeneğini taşımadığı için düğüm yeniden
// serileştirilip katı bir decoder'dan geçirilir.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// LoadConfigFile, verilen yoldaki YAML dosyasından yapılandırma okur.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fluentdb: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate, seçilen sürücü için gerekli anahtarların varlığını kontrol eder.
// MySQL ve PostgreSQL için host, port, name, user; SQLite için yalnızca name gerekir.
func (c *Config) Validate() error {
	if c.Driver == "" {
		return &ConfigError{Missing: []string{"db.driver"}}
	}
	if !c.Driver.IsValid() {
		return &ConfigError{Driver: c.Driver, Reason: "unsupported driver '" + string(c.Driver) + "'"}
	}

	var missing []string
	if c.Driver != dialect.SQLite {
		if c.Host == "" {
			missing = append(missing, "db.host")
		}
		if c.Port <= 0 {
			missing = append(missing, "db.port")
		}
	}
	if c.Name == "" {
		missing = append(missing, "db.name")
	}
	if c.Driver != dialect.SQLite && c.User == "" {
		missing = append(missing, "db.user")
	}

	if len(missing) > 0 {
		return &ConfigError{Driver: c.Driver, Missing: missing}
	}
	return nil
}

// DSN, sürücünün anlayacağı bağlantı dizesini oluşturur.
//
//   - MySQL: go-sql-driver/mysql Config.FormatDSN (parseTime açık, utf8mb4).
//   - PostgreSQL: lib/pq'nun kabul ettiği postgres:// URL'i.
//   - SQLite: yalnızca name (dosya yolu veya :memory:).
func (c *Config) DSN() string {
	switch c.Driver {
	case dialect.Postgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.User, c.Pass),
			Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
			Path:   "/" + c.Name,
		}
		if c.Pass == "" {
			u.User = url.User(c.User)
		}
		return u.String()

	case dialect.SQLite:
		if c.Name == "" {
			return ":memory:"
		}
		return c.Name

	default:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Pass
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Name
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	}
}
