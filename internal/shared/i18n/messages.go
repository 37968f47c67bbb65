// Package i18n produces the user-facing detail strings carried in error
// responses. Spanish is the default tenant language; English is kept for
// operator tooling.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Handlers and use cases reference these instead of raw strings
// so every phrasing lives in one place.
const (
	MsgApartmentRequired    = "resident requires apartment number"
	MsgBadgeRequired        = "guard requires badge number"
	MsgPlateInvalid         = "invalid vehicle plate"
	MsgVisitorInside        = "visitor is inside"
	MsgInvalidCredentials   = "invalid credentials"
	MsgTooManyAttempts      = "too many login attempts"
	MsgModuleDisabled       = "module disabled"
	MsgEntryNotFound        = "entry not found or already exited"
	MsgAuthorizationMissing = "authorization not found"
	MsgPendingUpgradeExists = "a pending seat upgrade request already exists"
	MsgRequestDecided       = "request already decided"
	MsgInvalidSeatPrice     = "seat price must be greater than zero"
	MsgUnsupportedCurrency  = "unsupported currency"
	MsgDuplicateEmail       = "email already registered"
	MsgShiftNotFound        = "shift not found"
	MsgExportForbidden      = "audit export not allowed for this role"
)

var defaultLang = language.Spanish

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(defaultLang))

	set := func(key, es, en string) {
		b.SetString(language.Spanish, key, es)
		b.SetString(language.English, key, en)
	}

	set(MsgApartmentRequired,
		"el residente requiere número de apartamento",
		"resident requires an apartment number")
	set(MsgBadgeRequired,
		"el guardia requiere número de placa",
		"guard requires a badge number")
	set(MsgPlateInvalid,
		"placa de vehículo inválida",
		"invalid vehicle plate")
	set(MsgVisitorInside,
		"no se puede eliminar: el visitante está dentro del condominio",
		"cannot delete: the visitor is inside the premises")
	set(MsgInvalidCredentials,
		"credenciales inválidas",
		"invalid credentials")
	set(MsgTooManyAttempts,
		"demasiados intentos de inicio de sesión, intente más tarde",
		"too many login attempts, try again later")
	set(MsgModuleDisabled,
		"módulo deshabilitado para este condominio",
		"module disabled for this condominium")
	set(MsgEntryNotFound,
		"entrada no encontrada o ya registró salida",
		"entry not found or already exited")
	set(MsgAuthorizationMissing,
		"autorización no encontrada",
		"authorization not found")
	set(MsgPendingUpgradeExists,
		"ya existe una solicitud de asientos pendiente",
		"a pending seat upgrade request already exists")
	set(MsgRequestDecided,
		"la solicitud ya fue decidida",
		"the request has already been decided")
	set(MsgInvalidSeatPrice,
		"el precio por asiento debe ser mayor que cero",
		"seat price must be greater than zero")
	set(MsgUnsupportedCurrency,
		"moneda no soportada",
		"unsupported currency")
	set(MsgDuplicateEmail,
		"el correo electrónico ya está registrado",
		"email already registered")
	set(MsgShiftNotFound,
		"turno no encontrado",
		"shift not found")
	set(MsgExportForbidden,
		"exportación de auditoría no permitida para este rol",
		"audit export not allowed for this role")

	return b
}

var printers = buildPrinters()

func buildPrinters() map[language.Tag]*message.Printer {
	c := buildCatalog()
	return map[language.Tag]*message.Printer{
		language.Spanish: message.NewPrinter(language.Spanish, message.Catalog(c)),
		language.English: message.NewPrinter(language.English, message.Catalog(c)),
	}
}

// T translates a message key for the given language preference, falling back
// to Spanish when the preference cannot be matched.
func T(lang string, key string) string {
	p := printers[defaultLang]
	if lang != "" {
		tag, _, conf := matcher.Match(language.Make(lang))
		if conf > language.No {
			if base, _ := tag.Base(); base.String() == "en" {
				p = printers[language.English]
			}
		}
	}
	return p.Sprintf(key)
}

// Default translates a message key in the default tenant language.
func Default(key string) string {
	return printers[defaultLang].Sprintf(key)
}
