package fluentdb

import (
	"context"
	"sync"

	"github.com/biyonik/go-fluent-db/dialect"
)

// Manager, bir iş birimi (worker, istek işleyici) için tek bir Connection'ı tembel
// olarak oluşturup saklayan sahip nesnesidir. Gizli bir global yerine açıkça
// oluşturulur ve ihtiyaç duyan bileşenlere referansla geçirilir.
//
// SetConnection, Reset ve Fake test ve operasyon kolaylıklarıdır; canlı sorgularla
// eş zamanlı çağrılmamalıdır.
type Manager struct {
	cfg  *Config
	opts []Option

	mu   sync.Mutex
	conn *Connection
}

// NewManager, verilen yapılandırma ile bağlantıyı ilk kullanımda açacak bir Manager oluşturur.
func NewManager(cfg *Config, opts ...Option) *Manager {
	return &Manager{cfg: cfg, opts: opts}
}

// Fake, bellek içi SQLite veritabanına bağlı bir Manager döndürür.
// Testlerde izolasyon için kullanılır.
//
// Örnek:
//
//	m, err := fluentdb.Fake()
//	require.NoError(t, err)
//	defer m.Reset()
func Fake(opts ...Option) (*Manager, error) {
	cfg := &Config{Driver: dialect.SQLite, Name: ":memory:"}
	m := NewManager(cfg, opts...)
	if _, err := m.Connection(context.Background()); err != nil {
		return nil, err
	}
	return m, nil
}

// Connection, bağlantıyı döndürür; ilk çağrıda yapılandırmadan oluşturur.
// Başarısız bir açılış saklanmaz; hata doğrudan çağırana döner.
func (m *Manager) Connection(ctx context.Context) (*Connection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return m.conn, nil
	}

	conn, err := Open(ctx, m.cfg, m.opts...)
	if err != nil {
		return nil, err
	}
	m.conn = conn
	return conn, nil
}

// SetConnection, saklanan bağlantıyı verilenle değiştirir. Önceki bağlantı kapatılmaz.
func (m *Manager) SetConnection(conn *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conn = conn
}

// Reset, saklanan bağlantıyı kapatır ve unutur. Sonraki Connection çağrısı yeniden açar.
func (m *Manager) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}

// Table, bağlantı üzerinden yeni bir Query Builder başlatır.
// Bağlantı açılamazsa hata builder üzerinde taşınır ve ilk terminal çağrıda döner.
func (m *Manager) Table(name string) *Builder {
	return m.TableContext(context.Background(), name)
}

// TableContext, Table'ın context alan versiyonudur; ctx yalnızca bağlantı açılışında kullanılır.
func (m *Manager) TableContext(ctx context.Context, name string) *Builder {
	conn, err := m.Connection(ctx)
	if err != nil {
		b := &Builder{table: name, primaryKey: defaultPrimaryKey}
		b.setErr(err)
		return b
	}
	return conn.Table(name)
}

// Transaction, bağlantı üzerinde Connection.Transaction çalıştırır.
func (m *Manager) Transaction(ctx context.Context, fn func(*Connection) error) error {
	conn, err := m.Connection(ctx)
	if err != nil {
		return err
	}
	return conn.Transaction(ctx, fn)
}
