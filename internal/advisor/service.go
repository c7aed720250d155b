// Package advisor answers shopper questions about a product through a
// text-completion model. Every failure mode resolves to a friendly
// Portuguese message; the endpoint itself never errors.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecosistens/nexusshop-backend/internal/catalog"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
)

const (
	msgNotConfigured = "Desculpe, a chave de API não foi configurada. Não posso consultar o especialista no momento."
	msgEmptyAnswer   = "Desculpe, não consegui analisar sua pergunta agora."
	msgUpstreamError = "Ocorreu um erro ao conectar com nosso assistente virtual. Tente novamente mais tarde."
)

type completer interface {
	CompleteText(ctx context.Context, prompt string) (string, error)
}

type Service interface {
	Advise(ctx context.Context, product catalog.Product, question string) string
	Configured() bool
}

type service struct {
	model completer
	log   *logger.Logger
}

// NewService wires the completion client. model may be nil when no
// API key is configured; the advisor then always returns the
// not-configured message.
func NewService(model completer, log *logger.Logger) Service {
	return &service{model: model, log: log}
}

func (s *service) Configured() bool {
	return s != nil && s.model != nil
}

// Advise asks the model about the product. The reply is always a
// usable message: model errors and empty completions fall back to
// fixed texts instead of propagating.
func (s *service) Advise(ctx context.Context, product catalog.Product, question string) string {
	if !s.Configured() {
		return msgNotConfigured
	}

	answer, err := s.model.CompleteText(ctx, buildPrompt(product, question))
	if err != nil {
		if s.log != nil {
			s.log.Error(s.log.WithProductID(ctx, product.ID), "advisor completion failed", err)
		}
		return msgUpstreamError
	}
	if strings.TrimSpace(answer) == "" {
		return msgEmptyAnswer
	}
	return answer
}

// buildPrompt frames the model as a store sales expert and embeds the
// product sheet plus the shopper's question.
func buildPrompt(product catalog.Product, question string) string {
	var b strings.Builder
	b.WriteString("Você é um especialista de vendas da loja EcoSistens, expert em tecnologia e eletrônicos.\n")
	b.WriteString("Você está ajudando um cliente com dúvidas sobre o seguinte produto:\n\n")
	fmt.Fprintf(&b, "Nome: %s\n", product.Name)
	fmt.Fprintf(&b, "Preço: R$ %s\n", product.Price.StringFixed(2))
	fmt.Fprintf(&b, "Descrição: %s\n", product.Description)
	fmt.Fprintf(&b, "Características: %s\n\n", strings.Join(product.Features, ", "))
	fmt.Fprintf(&b, "Pergunta do cliente: %q\n\n", question)
	b.WriteString("Responda de forma curta, útil, persuasiva e amigável (máximo 3 frases). Fale em Português do Brasil.")
	return b.String()
}
