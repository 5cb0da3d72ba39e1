package appointment

// Valores aplicados quando o cliente não informa endereço/observações.
const (
	FallbackAddress = "Dirección a definir"
	DefaultNotes    = "Cita agendada"
)

// ResolveAddress aplica o fallback de endereço: o endereço explícito da
// requisição vence; senão o endereço cadastrado do usuário; senão o sentinel.
func ResolveAddress(requested, userAddress string) string {
	if requested != "" {
		return requested
	}
	if userAddress != "" {
		return userAddress
	}
	return FallbackAddress
}

func ResolveNotes(requested string) string {
	if requested != "" {
		return requested
	}
	return DefaultNotes
}
