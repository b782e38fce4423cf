package ptr

// Ptr retorna um ponteiro para o valor informado.
// Útil para montar filtros e campos opcionais sem variáveis intermediárias.
func Ptr[T any](v T) *T {
	return &v
}
