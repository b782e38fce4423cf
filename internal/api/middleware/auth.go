package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers"
)

type contextKey string

const companyIDKey contextKey = "companyID"

// HeaderCompanyID cabeçalho de identificação da empresa, preenchido pelo
// gateway após a autenticação; este serviço apenas confia nele
const HeaderCompanyID = "X-Company-ID"

// Auth exige o cabeçalho X-Company-ID e injeta a empresa no contexto
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderCompanyID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "cabeçalho X-Company-ID ausente")
			return
		}

		companyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || companyID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "cabeçalho X-Company-ID inválido")
			return
		}

		ctx := context.WithValue(r.Context(), companyIDKey, companyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CompanyIDFromContext recupera a empresa injetada pelo Auth
func CompanyIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(companyIDKey).(int64)
	return id, ok
}
