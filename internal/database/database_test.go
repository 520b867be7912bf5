package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestOptionsWithDefaults(t *testing.T) {
	t.Run("nil options", func(t *testing.T) {
		var opts *Options
		got := opts.withDefaults()

		assert.Equal(t, logger.Error, got.LogLevel)
		assert.Equal(t, 20, got.MaxOpenConns)
		assert.Equal(t, 10, got.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, got.ConnMaxLifetime)
		assert.Equal(t, 10*time.Minute, got.ConnMaxIdleTime)
		assert.False(t, got.SkipMigrate)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		opts := &Options{LogLevel: logger.Silent, MaxOpenConns: 3, SkipMigrate: true}
		got := opts.withDefaults()

		assert.Equal(t, logger.Silent, got.LogLevel)
		assert.Equal(t, 3, got.MaxOpenConns)
		assert.Equal(t, 10, got.MaxIdleConns)
		assert.True(t, got.SkipMigrate)
		assert.Equal(t, 0, opts.MaxIdleConns)
	})
}
