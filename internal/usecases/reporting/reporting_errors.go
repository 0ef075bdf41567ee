package reporting

import "errors"

var (
	// ErrNarrativeGeneration indica falha no serviço externo de narrativa;
	// o deck segue com o fallback somente de métricas
	ErrNarrativeGeneration = errors.New("falha na geração da narrativa")

	// ErrDeckGeneration indica falha na orquestração da geração do deck
	ErrDeckGeneration = errors.New("falha na geração do deck")
)
