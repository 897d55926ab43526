package exercise

import "github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"

// Verb inventory grouped by morphological behavior. Selection filters
// against the rule table at runtime, so entries unknown to a custom
// table are simply skipped.

var regularVerbs = []string{
	"hablar", "estudiar", "trabajar", "cantar", "bailar", "escuchar",
	"caminar", "comprar", "cocinar", "viajar",
	"comer", "beber", "aprender", "correr", "leer", "vender",
	"vivir", "escribir", "abrir", "recibir", "decidir", "compartir",
}

var stemChangeVerbs = []string{
	"pensar", "querer", "empezar", "entender", "perder", "cerrar", "despertar",
	"dormir", "morir", "poder", "volver", "contar", "encontrar", "soñar", "recordar",
	"sentir", "preferir", "mentir",
	"pedir", "servir", "repetir", "vestir",
}

var irregularVerbs = []string{
	"ser", "estar", "ir", "haber", "saber", "dar", "ver",
	"tener", "poner", "venir", "hacer", "salir",
	"decir", "traer", "oír",
}

// triggers are subjunctive-requiring lead-ins, grouped by the tense they
// set up.
var triggers = map[conjugation.Tense][]string{
	conjugation.TensePresent: {
		"Espero que",
		"Ojalá que",
		"Es importante que",
		"Dudo que",
		"No creo que",
		"Quiero que",
	},
	conjugation.TenseImperfectRa: {
		"Quería que",
		"Era posible que",
		"Dudaba que",
		"Me gustaría que",
	},
	conjugation.TenseImperfectSe: {
		"Esperaba que",
		"No creía que",
		"Temía que",
	},
	conjugation.TensePresentPerfect: {
		"Me alegra que",
		"Es bueno que",
		"No creo que",
	},
	conjugation.TensePluperfect: {
		"Sentí que",
		"Dudaba que",
		"Ojalá que",
	},
}
