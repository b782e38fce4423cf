package notifier

import "errors"

var (
	// ErrInternal retornado em erros internos do cliente de webhook
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse retornado quando o webhook responde fora de 2xx
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
