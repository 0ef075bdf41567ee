package aggregating

import "errors"

var (
	// ErrDataSourceUnavailable indica que o banco de dados da loja está inacessível.
	// Resultados vazios não produzem este erro: ausência de dados é resultado válido.
	ErrDataSourceUnavailable = errors.New("fonte de dados indisponível")

	// ErrInvalidWindow indica uma janela de dias não positiva
	ErrInvalidWindow = errors.New("janela de dias deve ser um inteiro positivo")
)
