package config

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedGormLogger(level gormlogger.LogLevel) (gormlogger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewGormLogger(log, level), &buf
}

func selectOne() (string, int64) { return "SELECT 1", 1 }

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed query is an error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(gormlogger.Warn)
		l.Trace(ctx, time.Now(), selectOne, stderrors.New("relation does not exist"))
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "component=gorm")
		assert.Contains(t, buf.String(), "relation does not exist")
	})

	t.Run("missing record is quiet", func(t *testing.T) {
		l, buf := newBufferedGormLogger(gormlogger.Warn)
		l.Trace(ctx, time.Now(), selectOne, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query is a warning", func(t *testing.T) {
		l, buf := newBufferedGormLogger(gormlogger.Warn)
		l.Trace(ctx, time.Now().Add(-time.Second), selectOne, nil)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "slow query")
	})

	t.Run("fast query only at info", func(t *testing.T) {
		l, buf := newBufferedGormLogger(gormlogger.Warn)
		l.Trace(ctx, time.Now(), selectOne, nil)
		assert.Empty(t, buf.String())

		l.LogMode(gormlogger.Info).Trace(ctx, time.Now(), selectOne, nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(gormlogger.Silent)
		l.Trace(ctx, time.Now(), selectOne, stderrors.New("boom"))
		l.Warn(ctx, "ignored %d", 1)
		assert.Empty(t, buf.String())
	})
}

func TestGormLogger_Printf(t *testing.T) {
	l, buf := newBufferedGormLogger(gormlogger.Info)
	l.Info(context.Background(), "migrated %d tables", 4)
	assert.Contains(t, buf.String(), "migrated 4 tables")
}
