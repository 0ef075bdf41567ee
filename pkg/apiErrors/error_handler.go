package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados retornados pela API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer        = "SRV_001" // Erro interno do servidor
	ErrDataSourceUnavailable = "SRV_002" // Banco de dados inacessível
	ErrExternalService       = "SRV_003" // Erro em serviço externo (narrativa)

	// Erros de geração de deck (6000-6999)
	ErrDeckFinalized    = "DECK_001" // Deck já finalizado
	ErrPackageWrite     = "DECK_002" // Falha ao gravar o pacote .pptx
	ErrDeckGeneration   = "DECK_003" // Falha geral na geração do deck
	ErrNarrativeFailure = "DECK_004" // Narrativa indisponível e fallback desabilitado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDataSourceUnavailable: http.StatusServiceUnavailable,
	ErrExternalService:       http.StatusBadGateway,
	ErrDeckFinalized:         http.StatusConflict,
	ErrPackageWrite:          http.StatusInternalServerError,
	ErrDeckGeneration:        http.StatusInternalServerError,
	ErrNarrativeFailure:      http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
