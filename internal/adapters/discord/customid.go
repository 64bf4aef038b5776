package discord

import (
	"fmt"
	"strings"
)

// Toda la correlación del flujo viaja en los custom_id: no hay sesión en
// memoria por usuario, así el proceso puede reiniciarse a mitad de un
// pedido sin perder contexto. Formato: "<kind>" o "<kind>:<payload>".

type componentKind string

const (
	compOrder    componentKind = "order"    // botón "encargar" del mensaje de tienda
	compContinue componentKind = "continue" // botón "continuar" del DM (payload = guildID)
	compNotify   componentKind = "notify"   // botón "avisar" del staff (payload = orderID)

	modalOrderForm = "order_form" // modal del formulario (payload = guildID)
)

func continueCustomID(guildID string) string  { return string(compContinue) + ":" + guildID }
func notifyCustomID(orderID int) string       { return fmt.Sprintf("%s:%d", compNotify, orderID) }
func orderFormCustomID(guildID string) string { return modalOrderForm + ":" + guildID }

// decodeCustomID separa "qué clase de evento es" de "cuál es su payload";
// los handlers no vuelven a parsear strings crudos.
func decodeCustomID(customID string) (componentKind, string) {
	if k, payload, ok := strings.Cut(customID, ":"); ok {
		return componentKind(k), payload
	}
	return componentKind(customID), ""
}
