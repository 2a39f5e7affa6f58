package fluentdb

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// -----------------------------------------------------------------------------
//  Transaction Coordinator
//
//  İç içe transaction'lar tek bir derinlik sayacı üzerinden yönetilir:
//
//   • depth == 0  → transaction yok
//   • depth == 1  → üst seviye transaction aktif (gerçek BEGIN)
//   • depth == N  → N-1 adet iç içe savepoint aktif
//
//  İç seviyeler "savepoint_<derinlik>" adıyla konumsal olarak adlandırılır.
//  Sıra dışı (LIFO olmayan) kapanışlar sayacı bozar ve programcı hatasıdır.
//
//  Sayaç Connection'a aittir ve yalnızca bu dosyadaki metotlar tarafından
//  okunur veya değiştirilir.
//
//  -- @author   Ahmet ALTUN
//  -- @github   github.com/biyonik
//  -- @linkedin linkedin.com/in/biyonik
//  -- @email    ahmet.altun60@gmail.com
// -----------------------------------------------------------------------------

// BeginTransaction, derinlik 0 ise gerçek bir transaction başlatır, aksi hâlde
// "SAVEPOINT savepoint_<depth>" çalıştırır. Derinlik yalnızca başarıda artar.
//
// ctx transaction'ın ömrünü belirler: ctx iptal edilirse sürücü transaction'ı geri alır.
func (c *Connection) BeginTransaction(ctx context.Context) error {
	st, err := c.begin(ctx)
	c.report(ctx, st)
	return err
}

// Commit, derinliği azaltır; sonuç 0 ise gerçek COMMIT, aksi hâlde
// "RELEASE SAVEPOINT savepoint_<yeni derinlik>" çalıştırır.
// Açık transaction yoksa ErrNoActiveTransaction döner.
func (c *Connection) Commit(ctx context.Context) error {
	st, err := c.commit(ctx)
	c.report(ctx, st)
	return err
}

// Rollback, Commit'in simetriğidir: derinliği azaltır; sonuç 0 ise gerçek ROLLBACK,
// aksi hâlde "ROLLBACK TO SAVEPOINT savepoint_<yeni derinlik>" çalıştırır.
// Açık transaction yoksa ErrNoActiveTransaction döner.
func (c *Connection) Rollback(ctx context.Context) error {
	st, err := c.rollback(ctx)
	c.report(ctx, st)
	return err
}

// begin, commit ve rollback derinliği c.mu altında değiştirir. Çalıştırdıkları
// ifadeyi raporlamadan döndürürler; logger ve hook kilit bırakıldıktan sonra çağrılır.

func (c *Connection) begin(ctx context.Context) (*statement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrConnectionClosed
	}

	if c.depth == 0 {
		start := time.Now()
		tx, err := c.db.BeginTxx(ctx, nil)
		st := c.measure("BEGIN", nil, start, err, false)
		if err != nil {
			return &st, NewQueryError("begin transaction", "", "BEGIN", nil, err)
		}
		c.tx = tx
		c.depth++
		return &st, nil
	}

	stmt := c.grammar.CompileSavepoint(c.depth)
	_, st, err := c.execMeasured(ctx, c.tx, stmt, nil)
	if err != nil {
		return &st, NewQueryError("savepoint", "", stmt, nil, err)
	}
	c.depth++
	return &st, nil
}

func (c *Connection) commit(ctx context.Context) (*statement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.depth == 0 {
		return nil, ErrNoActiveTransaction
	}

	c.depth--
	if c.depth == 0 {
		tx := c.tx
		c.tx = nil

		start := time.Now()
		err := tx.Commit()
		st := c.measure("COMMIT", nil, start, err, false)
		if err != nil {
			return &st, NewQueryError("commit", "", "COMMIT", nil, err)
		}
		return &st, nil
	}

	stmt := c.grammar.CompileReleaseSavepoint(c.depth)
	_, st, err := c.execMeasured(ctx, c.tx, stmt, nil)
	if err != nil {
		return &st, NewQueryError("release savepoint", "", stmt, nil, err)
	}
	return &st, nil
}

func (c *Connection) rollback(ctx context.Context) (*statement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.depth == 0 {
		return nil, ErrNoActiveTransaction
	}

	c.depth--
	if c.depth == 0 {
		tx := c.tx
		c.tx = nil

		start := time.Now()
		err := tx.Rollback()
		if errors.Is(err, sql.ErrTxDone) {
			err = nil
		}
		st := c.measure("ROLLBACK", nil, start, err, false)
		if err != nil {
			return &st, NewQueryError("rollback", "", "ROLLBACK", nil, err)
		}
		return &st, nil
	}

	stmt := c.grammar.CompileRollbackToSavepoint(c.depth)
	_, st, err := c.execMeasured(ctx, c.tx, stmt, nil)
	if err != nil {
		return &st, NewQueryError("rollback to savepoint", "", stmt, nil, err)
	}
	return &st, nil
}

// Transaction, verilen fonksiyonu bir transaction (veya iç içe ise savepoint) içinde çalıştırır.
// Başarılı olursa commit, hata veya panic durumunda rollback yapar ve hatayı/panic'i
// değiştirmeden yeniden yükseltir. Rollback da başarısız olursa iki hata birleştirilir;
// orijinal hata errors.Is ile erişilebilir kalır.
//
// Örnek:
//
//	err := conn.Transaction(ctx, func(tx *fluentdb.Connection) error {
//	    if _, err := tx.Table("accounts").Where("id", 1).UpdateContext(ctx, debit); err != nil {
//	        return err
//	    }
//	    _, err := tx.Table("accounts").Where("id", 2).UpdateContext(ctx, credit)
//	    return err
//	})
func (c *Connection) Transaction(ctx context.Context, fn func(*Connection) error) error {
	if err := c.BeginTransaction(ctx); err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = c.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(c); err != nil {
		if rbErr := c.Rollback(ctx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return c.Commit(ctx)
}
