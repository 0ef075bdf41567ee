package narrative

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-deck-api/infrastructure/integrator/narrative/narrativeclient"
	"github.com/vfg2006/store-deck-api/internal/config"
)

// NarrativeIntegrator define a interface para o serviço externo de geração de texto
type NarrativeIntegrator interface {
	GenerateNarrative(ctx context.Context, prompt string) (string, error)
}

type Integrator struct {
	cfg    *config.Config
	client narrativeclient.Client
}

func New(cfg *config.Config, client narrativeclient.Client) NarrativeIntegrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

// GenerateNarrative delega para o cliente HTTP e registra falhas sem mascarar o erro
func (i *Integrator) GenerateNarrative(ctx context.Context, prompt string) (string, error) {
	text, err := i.client.GenerateText(ctx, prompt)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao gerar narrativa no serviço externo")
		return "", errors.Wrap(err, "erro ao gerar narrativa")
	}

	return text, nil
}
