package conjugation

// Builtin rule-table seed: irregular paradigm overrides, stem-change tags,
// irregular participles, and the indicative lookup used by the error
// analyzer's mood heuristic.
//
// Irregular paradigms that follow a uniform irregular stem (tenga, tengas,
// tengamos...) are assembled from that stem; forms with shifting accents or
// suppletion (esté, dé, soy) are written out in full. Either way the table
// validator sees a complete six-person paradigm.

func sixFrom(stem string, endings Paradigm) Paradigm {
	var p Paradigm
	for i, e := range endings {
		p[i] = stem + e
	}
	return p
}

// presentSubj builds a present-subjunctive paradigm from an irregular stem.
func presentSubj(stem string) Paradigm {
	return sixFrom(stem, Paradigm{"a", "as", "a", "amos", "áis", "an"})
}

// imperfRa / imperfSe build imperfect paradigms from a preterite stem.
func imperfRa(stem string) Paradigm {
	return sixFrom(stem, Paradigm{"iera", "ieras", "iera", "iéramos", "ierais", "ieran"})
}

func imperfSe(stem string) Paradigm {
	return sixFrom(stem, Paradigm{"iese", "ieses", "iese", "iésemos", "ieseis", "iesen"})
}

// imperfRaJ / imperfSeJ are the j-stem variants (dijera, trajese): the i of
// the ending is absorbed after j.
func imperfRaJ(stem string) Paradigm {
	return sixFrom(stem, Paradigm{"era", "eras", "era", "éramos", "erais", "eran"})
}

func imperfSeJ(stem string) Paradigm {
	return sixFrom(stem, Paradigm{"ese", "eses", "ese", "ésemos", "eseis", "esen"})
}

// strongPret builds a strong preterite (stem-stressed, unaccented endings).
func strongPret(stem string) Paradigm {
	return sixFrom(stem, Paradigm{"e", "iste", "o", "imos", "isteis", "ieron"})
}

func strongPretJ(stem string) Paradigm {
	return sixFrom(stem, Paradigm{"e", "iste", "o", "imos", "isteis", "eron"})
}

// subjOverride builds the three simple-tense overrides shared by most
// irregular verbs: an irregular present stem plus a preterite stem.
func subjOverride(presentStem, pretStem string) map[Tense]Paradigm {
	return map[Tense]Paradigm{
		TensePresent:     presentSubj(presentStem),
		TenseImperfectRa: imperfRa(pretStem),
		TenseImperfectSe: imperfSe(pretStem),
	}
}

// SeedTableData returns the builtin conjugation data.
func SeedTableData() TableData {
	irregular := map[string]map[Tense]Paradigm{
		"ser":   subjOverride("se", "fu"),
		"ir":    subjOverride("vay", "fu"),
		"haber": subjOverride("hay", "hub"),
		"saber": subjOverride("sep", "sup"),
		"tener": subjOverride("teng", "tuv"),
		"poner": subjOverride("pong", "pus"),
		"venir": subjOverride("veng", "vin"),
		"hacer": subjOverride("hag", "hic"),
		"estar": {
			TensePresent:     {"esté", "estés", "esté", "estemos", "estéis", "estén"},
			TenseImperfectRa: imperfRa("estuv"),
			TenseImperfectSe: imperfSe("estuv"),
		},
		"dar": {
			TensePresent:     {"dé", "des", "dé", "demos", "deis", "den"},
			TenseImperfectRa: imperfRa("d"),
			TenseImperfectSe: imperfSe("d"),
		},
		"decir": {
			TensePresent:     presentSubj("dig"),
			TenseImperfectRa: imperfRaJ("dij"),
			TenseImperfectSe: imperfSeJ("dij"),
		},
		"traer": {
			TensePresent:     presentSubj("traig"),
			TenseImperfectRa: imperfRaJ("traj"),
			TenseImperfectSe: imperfSeJ("traj"),
		},
		"ver": {
			TensePresent:     presentSubj("ve"),
			TenseImperfectRa: imperfRa("v"),
			TenseImperfectSe: imperfSe("v"),
		},
		"oír": {
			TensePresent:     presentSubj("oig"),
			TenseImperfectRa: imperfRaJ("oy"),
			TenseImperfectSe: imperfSeJ("oy"),
		},
		"salir": {
			TensePresent: presentSubj("salg"),
		},
		// Stem-changing in the present (regular application), strong stems
		// in the imperfect.
		"poder": {
			TenseImperfectRa: imperfRa("pud"),
			TenseImperfectSe: imperfSe("pud"),
		},
		"querer": {
			TenseImperfectRa: imperfRa("quis"),
			TenseImperfectSe: imperfSe("quis"),
		},
		// Vowel-stem -er verbs take y in the imperfect (leyera); the j-stem
		// builders fit because the i of -iera is likewise absorbed.
		"leer": {
			TenseImperfectRa: imperfRaJ("ley"),
			TenseImperfectSe: imperfSeJ("ley"),
		},
		"creer": {
			TenseImperfectRa: imperfRaJ("crey"),
			TenseImperfectSe: imperfSeJ("crey"),
		},
		// jugar's present subjunctive carries both the u>ue alternation and
		// the g>gu spelling change; simplest as a full override.
		"jugar": {
			TensePresent: {"juegue", "juegues", "juegue", "juguemos", "juguéis", "jueguen"},
		},
	}

	stemChanges := map[string]StemChange{
		"pensar":    {Type: StemChangeEIe, From: "e", BootTo: "ie"},
		"cerrar":    {Type: StemChangeEIe, From: "e", BootTo: "ie"},
		"empezar":   {Type: StemChangeEIe, From: "e", BootTo: "ie"},
		"despertar": {Type: StemChangeEIe, From: "e", BootTo: "ie"},
		"entender":  {Type: StemChangeEIe, From: "e", BootTo: "ie"},
		"perder":    {Type: StemChangeEIe, From: "e", BootTo: "ie"},
		"querer":    {Type: StemChangeEIe, From: "e", BootTo: "ie"},
		"sentir":    {Type: StemChangeEIe, From: "e", BootTo: "ie", RaisedTo: "i"},
		"preferir":  {Type: StemChangeEIe, From: "e", BootTo: "ie", RaisedTo: "i"},
		"mentir":    {Type: StemChangeEIe, From: "e", BootTo: "ie", RaisedTo: "i"},
		"contar":    {Type: StemChangeOUe, From: "o", BootTo: "ue"},
		"soñar":     {Type: StemChangeOUe, From: "o", BootTo: "ue"},
		"encontrar": {Type: StemChangeOUe, From: "o", BootTo: "ue"},
		"recordar":  {Type: StemChangeOUe, From: "o", BootTo: "ue"},
		"volver":    {Type: StemChangeOUe, From: "o", BootTo: "ue"},
		"poder":     {Type: StemChangeOUe, From: "o", BootTo: "ue"},
		"dormir":    {Type: StemChangeOUe, From: "o", BootTo: "ue", RaisedTo: "u"},
		"morir":     {Type: StemChangeOUe, From: "o", BootTo: "ue", RaisedTo: "u"},
		"pedir":     {Type: StemChangeEI, From: "e", BootTo: "i", RaisedTo: "i"},
		"servir":    {Type: StemChangeEI, From: "e", BootTo: "i", RaisedTo: "i"},
		"repetir":   {Type: StemChangeEI, From: "e", BootTo: "i", RaisedTo: "i"},
		"vestir":    {Type: StemChangeEI, From: "e", BootTo: "i", RaisedTo: "i"},
	}

	participles := map[string]string{
		"hacer":    "hecho",
		"decir":    "dicho",
		"escribir": "escrito",
		"ver":      "visto",
		"poner":    "puesto",
		"volver":   "vuelto",
		"abrir":    "abierto",
		"morir":    "muerto",
		"romper":   "roto",
		"resolver": "resuelto",
		"cubrir":   "cubierto",
		"leer":     "leído",
		"creer":    "creído",
		"traer":    "traído",
		"oír":      "oído",
	}

	indOverride := map[string]map[IndicativeTense]Paradigm{
		"ser": {
			IndicativePresent:   {"soy", "eres", "es", "somos", "sois", "son"},
			IndicativePreterite: {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
		},
		"ir": {
			IndicativePresent:   {"voy", "vas", "va", "vamos", "vais", "van"},
			IndicativePreterite: {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
		},
		"estar": {
			IndicativePresent:   {"estoy", "estás", "está", "estamos", "estáis", "están"},
			IndicativePreterite: strongPret("estuv"),
		},
		"haber": {
			IndicativePresent:   {"he", "has", "ha", "hemos", "habéis", "han"},
			IndicativePreterite: strongPret("hub"),
		},
		"saber": {
			IndicativePresent:   {"sé", "sabes", "sabe", "sabemos", "sabéis", "saben"},
			IndicativePreterite: strongPret("sup"),
		},
		"dar": {
			IndicativePresent:   {"doy", "das", "da", "damos", "dais", "dan"},
			IndicativePreterite: {"di", "diste", "dio", "dimos", "disteis", "dieron"},
		},
		"tener": {
			IndicativePresent:   {"tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen"},
			IndicativePreterite: strongPret("tuv"),
		},
		"hacer": {
			IndicativePresent:   {"hago", "haces", "hace", "hacemos", "hacéis", "hacen"},
			IndicativePreterite: {"hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron"},
		},
		"poner": {
			IndicativePresent:   {"pongo", "pones", "pone", "ponemos", "ponéis", "ponen"},
			IndicativePreterite: strongPret("pus"),
		},
		"venir": {
			IndicativePresent:   {"vengo", "vienes", "viene", "venimos", "venís", "vienen"},
			IndicativePreterite: strongPret("vin"),
		},
		"decir": {
			IndicativePresent:   {"digo", "dices", "dice", "decimos", "decís", "dicen"},
			IndicativePreterite: strongPretJ("dij"),
		},
		"traer": {
			IndicativePresent:   {"traigo", "traes", "trae", "traemos", "traéis", "traen"},
			IndicativePreterite: strongPretJ("traj"),
		},
		"ver": {
			IndicativePresent:   {"veo", "ves", "ve", "vemos", "veis", "ven"},
			IndicativePreterite: {"vi", "viste", "vio", "vimos", "visteis", "vieron"},
		},
		"oír": {
			IndicativePresent:   {"oigo", "oyes", "oye", "oímos", "oís", "oyen"},
			IndicativePreterite: {"oí", "oíste", "oyó", "oímos", "oísteis", "oyeron"},
		},
		"salir": {
			IndicativePresent: {"salgo", "sales", "sale", "salimos", "salís", "salen"},
		},
		"poder": {
			IndicativePreterite: strongPret("pud"),
		},
		"querer": {
			IndicativePreterite: strongPret("quis"),
		},
	}

	return TableData{
		Irregular:   irregular,
		StemChanges: stemChanges,
		Participles: participles,
		IndOverride: indOverride,
	}
}

// DefaultRuleTable builds the table from the builtin seed alone.
func DefaultRuleTable() (*RuleTable, error) {
	return NewRuleTable(SeedTableData())
}
