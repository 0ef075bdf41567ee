package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-deck-api/internal/config"
)

// ArchiveCleanupConfig representa a configuração do agendador de retenção de decks
type ArchiveCleanupConfig struct {
	CronSchedule   string
	RetentionDays  int
	CleanupEnabled bool
}

// ArchiveCleanupService gerencia o agendamento e execução da limpeza dos decks publicados
type ArchiveCleanupService struct {
	scheduler              *gocron.Scheduler
	config                 ArchiveCleanupConfig
	appConfig              *config.Config
	cleanupRunning         bool
	cleanupMutex           sync.Mutex
	lastCleanupStartedAt   time.Time
	lastCleanupCompletedAt time.Time
	lastRemovedCount       int

	// nowFn permite fixar o relógio nos testes
	nowFn func() time.Time
}

// NewArchiveCleanupService cria uma nova instância do serviço de limpeza de decks
func NewArchiveCleanupService(appConfig *config.Config) *ArchiveCleanupService {
	cleanupConfig := ArchiveCleanupConfig{
		CronSchedule:   appConfig.ArchiveCleanup.CronSchedule,
		RetentionDays:  appConfig.ArchiveCleanup.RetentionDays,
		CleanupEnabled: appConfig.ArchiveCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"retention_days":  cleanupConfig.RetentionDays,
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
	}).Info("Configuração do agendador de limpeza de decks carregada")

	return &ArchiveCleanupService{
		scheduler:      scheduler,
		config:         cleanupConfig,
		appConfig:      appConfig,
		cleanupRunning: false,
		nowFn:          time.Now,
	}
}

// Start inicia o agendador
func (s *ArchiveCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de decks desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de decks")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredDecks()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de decks: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de decks")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupExpiredDecks remove do diretório de publicação os arquivos .pptx mais
// antigos que a janela de retenção
func (s *ArchiveCleanupService) cleanupExpiredDecks() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de decks já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := s.nowFn()
	s.lastCleanupStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	cutoff := startTime.AddDate(0, 0, -s.config.RetentionDays)
	outputDir := s.appConfig.Deck.OutputDir

	logrus.WithFields(logrus.Fields{
		"output_dir": outputDir,
		"cutoff":     cutoff.Format("2006-01-02"),
	}).Info("Iniciando limpeza de decks expirados")

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar diretório de decks publicados")
		return
	}

	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pptx") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logrus.WithError(err).WithField("deck_file", entry.Name()).
				Warn("Erro ao consultar metadados do deck, ignorando")
			continue
		}

		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(outputDir, entry.Name())); err != nil {
			logrus.WithError(err).WithField("deck_file", entry.Name()).
				Error("Erro ao remover deck expirado")
			continue
		}

		removed++
	}

	s.lastCleanupCompletedAt = s.nowFn()
	s.lastRemovedCount = removed

	logrus.WithFields(logrus.Fields{
		"removed_count": removed,
		"duration":      time.Since(startTime).String(),
	}).Info("Limpeza de decks expirados concluída")
}

// TriggerManualCleanup inicia manualmente uma limpeza de decks expirados
func (s *ArchiveCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de decks já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de decks expirados")
	go s.cleanupExpiredDecks()
}

// GetStatus retorna o status atual do agendador
func (s *ArchiveCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":            s.config.CleanupEnabled,
		"cleanup_cron":               s.config.CronSchedule,
		"retention_days":             s.config.RetentionDays,
		"last_cleanup_started_at":    s.lastCleanupStartedAt,
		"last_cleanup_completed_at":  s.lastCleanupCompletedAt,
		"last_cleanup_removed_count": s.lastRemovedCount,
	}
}
