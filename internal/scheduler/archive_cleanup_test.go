package scheduler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/store-deck-api/internal/config"
)

func writeDeckFile(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("pptx"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))

	return path
}

func TestCleanupExpiredDecks(t *testing.T) {
	outputDir := t.TempDir()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	expired := writeDeckFile(t, outputDir, "investment-deck-2024-01-01-abc123.pptx", now.AddDate(0, 0, -40))
	recent := writeDeckFile(t, outputDir, "investment-deck-2024-02-25-def456.pptx", now.AddDate(0, 0, -5))
	// Arquivos que não são decks nunca são tocados
	other := writeDeckFile(t, outputDir, "notas.txt", now.AddDate(0, 0, -100))

	cfg := &config.Config{
		Deck: config.Deck{OutputDir: outputDir},
		ArchiveCleanup: config.ArchiveCleanup{
			CronSchedule:  "0 5 * * *",
			RetentionDays: 30,
			Enabled:       true,
		},
	}

	service := NewArchiveCleanupService(cfg)
	service.nowFn = func() time.Time { return now }

	service.cleanupExpiredDecks()

	_, err := os.Stat(expired)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(recent)
	assert.NoError(t, err)

	_, err = os.Stat(other)
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_cleanup_removed_count"])
	assert.Equal(t, 30, status["retention_days"])
}

func TestCleanupMissingOutputDir(t *testing.T) {
	cfg := &config.Config{
		Deck: config.Deck{OutputDir: filepath.Join(t.TempDir(), "inexistente")},
		ArchiveCleanup: config.ArchiveCleanup{
			RetentionDays: 30,
			Enabled:       true,
		},
	}

	service := NewArchiveCleanupService(cfg)

	// Diretório ausente não derruba o job
	service.cleanupExpiredDecks()

	status := service.GetStatus()
	assert.Equal(t, 0, status["last_cleanup_removed_count"])
}
