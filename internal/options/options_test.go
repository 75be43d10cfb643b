package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type encoderConfig struct {
	compression uint8
	bigEndian   bool
}

func withCompression(c uint8) Option[*encoderConfig] {
	return New(func(cfg *encoderConfig) error {
		if c == 0 {
			return errors.New("invalid compression")
		}
		cfg.compression = c

		return nil
	})
}

func withBigEndian() Option[*encoderConfig] {
	return NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

func TestApply(t *testing.T) {
	cfg := &encoderConfig{}
	err := Apply(cfg, withCompression(2), withBigEndian())
	require.NoError(t, err)
	require.Equal(t, uint8(2), cfg.compression)
	require.True(t, cfg.bigEndian)
}

func TestApply_StopsOnError(t *testing.T) {
	cfg := &encoderConfig{}
	err := Apply(cfg, withCompression(0), withBigEndian())
	require.Error(t, err)
	// options after the failing one are not applied
	require.False(t, cfg.bigEndian)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &encoderConfig{}
	require.NoError(t, Apply(cfg))
}
