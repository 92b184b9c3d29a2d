package format

const defaultStatusClass = "bg-gray-100 text-gray-800"

var statusClasses = map[string]string{
	"Agendado":       "bg-blue-100 text-blue-800",
	"Confirmado":     "bg-green-100 text-green-800",
	"Cancelado":      "bg-red-100 text-red-800",
	"Concluído":      "bg-purple-100 text-purple-800",
	"Não Compareceu": "bg-yellow-100 text-yellow-800",
}

// StatusClass devolve as classes do badge de status.
func StatusClass(status string) string {
	if c, ok := statusClasses[status]; ok {
		return c
	}
	return defaultStatusClass
}
