package dateparser

import "regexp"

// builtinLocaleOrder is the declared scan order used when no locale hint is
// given. Kept as an explicit slice so dispatch stays deterministic.
var builtinLocaleOrder = []string{"zh", "en", "es", "fr", "de", "ja", "ru", "it", "pt", "ko"}

// builtinLocales holds the compiled grammar for every supported locale.
// Patterns anchor at the start of the trimmed input only; trailing content
// after a valid match is ignored.
var builtinLocales = map[string]LocaleConfig{
	"zh": {
		Code:            "zh",
		WeekdayPattern:  regexp.MustCompile(`^(上|下|本|这)周(?:星期)?([一二三四五六日天1234567])`),
		MonthDayPattern: regexp.MustCompile(`^(上|下|本|这)(?:个)?月([一二三四五六七八九十]+|[0-9]+)(?:号|日)`),
		QualifierOffsets: map[string]int{
			"上": -1, "下": 1, "本": 0, "这": 0,
		},
		WeekdayIndex: map[string]int{
			"一": 0, "二": 1, "三": 2, "四": 3, "五": 4, "六": 5, "日": 6, "天": 6,
			"1": 0, "2": 1, "3": 2, "4": 3, "5": 4, "6": 5, "7": 6,
		},
		NumeralWords: map[string]int{
			"一": 1, "二": 2, "三": 3, "四": 4, "五": 5,
			"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
			"十一": 11, "十二": 12, "十三": 13, "十四": 14, "十五": 15,
			"十六": 16, "十七": 17, "十八": 18, "十九": 19, "二十": 20,
			"二十一": 21, "二十二": 22, "二十三": 23, "二十四": 24, "二十五": 25,
			"二十六": 26, "二十七": 27, "二十八": 28, "二十九": 29, "三十": 30,
			"三十一": 31,
		},
	},
	"en": {
		Code:            "en",
		WeekdayPattern:  regexp.MustCompile(`(?i)^(last|next|this)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
		MonthDayPattern: regexp.MustCompile(`(?i)^(last|next|this)\s+month\s+(\d{1,2})(?:st|nd|rd|th)?`),
		QualifierOffsets: map[string]int{
			"last": -1, "next": 1, "this": 0,
		},
		WeekdayIndex: map[string]int{
			"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
			"friday": 4, "saturday": 5, "sunday": 6,
		},
	},
	"es": {
		Code:            "es",
		WeekdayPattern:  regexp.MustCompile(`(?i)^(pasado|próximo|este)\s+(lunes|martes|miércoles|jueves|viernes|sábado|domingo)`),
		MonthDayPattern: regexp.MustCompile(`(?i)^(pasado|próximo|este)\s+mes\s+(\d{1,2})`),
		QualifierOffsets: map[string]int{
			"pasado": -1, "próximo": 1, "este": 0,
		},
		WeekdayIndex: map[string]int{
			"lunes": 0, "martes": 1, "miércoles": 2, "jueves": 3,
			"viernes": 4, "sábado": 5, "domingo": 6,
		},
	},
	"fr": {
		Code:            "fr",
		WeekdayPattern:  regexp.MustCompile(`(?i)^(dernier|prochain|ce)\s+(lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche)`),
		MonthDayPattern: regexp.MustCompile(`(?i)^(dernier|prochain|ce)\s+mois\s+(\d{1,2})`),
		QualifierOffsets: map[string]int{
			"dernier": -1, "prochain": 1, "ce": 0,
		},
		WeekdayIndex: map[string]int{
			"lundi": 0, "mardi": 1, "mercredi": 2, "jeudi": 3,
			"vendredi": 4, "samedi": 5, "dimanche": 6,
		},
	},
	"de": {
		Code:            "de",
		WeekdayPattern:  regexp.MustCompile(`(?i)^(letzten|nächsten|diesen)\s+(montag|dienstag|mittwoch|donnerstag|freitag|samstag|sonntag)`),
		MonthDayPattern: regexp.MustCompile(`(?i)^(letzten|nächsten|diesen)\s+monat\s+(\d{1,2})`),
		QualifierOffsets: map[string]int{
			"letzten": -1, "nächsten": 1, "diesen": 0,
		},
		WeekdayIndex: map[string]int{
			"montag": 0, "dienstag": 1, "mittwoch": 2, "donnerstag": 3,
			"freitag": 4, "samstag": 5, "sonntag": 6,
		},
	},
	"ja": {
		Code:            "ja",
		WeekdayPattern:  regexp.MustCompile(`^(先|来|今)週の?(月|火|水|木|金|土|日)曜日?`),
		MonthDayPattern: regexp.MustCompile(`^(先|来|今)月(\d{1,2})日`),
		QualifierOffsets: map[string]int{
			"先": -1, "来": 1, "今": 0,
		},
		WeekdayIndex: map[string]int{
			"月": 0, "火": 1, "水": 2, "木": 3, "金": 4, "土": 5, "日": 6,
		},
	},
	"ru": {
		Code:            "ru",
		WeekdayPattern:  regexp.MustCompile(`(?i)^(прошлый|следующий|этот)\s+(понедельник|вторник|среда|четверг|пятница|суббота|воскресенье)`),
		MonthDayPattern: regexp.MustCompile(`(?i)^(прошлый|следующий|этот)\s+месяц\s+(\d{1,2})`),
		QualifierOffsets: map[string]int{
			"прошлый": -1, "следующий": 1, "этот": 0,
		},
		WeekdayIndex: map[string]int{
			"понедельник": 0, "вторник": 1, "среда": 2, "четверг": 3,
			"пятница": 4, "суббота": 5, "воскресенье": 6,
		},
	},
	"it": {
		Code:            "it",
		WeekdayPattern:  regexp.MustCompile(`(?i)^(scorso|prossimo|questo)\s+(lunedì|martedì|mercoledì|giovedì|venerdì|sabato|domenica)`),
		MonthDayPattern: regexp.MustCompile(`(?i)^(scorso|prossimo|questo)\s+mese\s+(\d{1,2})`),
		QualifierOffsets: map[string]int{
			"scorso": -1, "prossimo": 1, "questo": 0,
		},
		WeekdayIndex: map[string]int{
			"lunedì": 0, "martedì": 1, "mercoledì": 2, "giovedì": 3,
			"venerdì": 4, "sabato": 5, "domenica": 6,
		},
	},
	"pt": {
		Code:            "pt",
		WeekdayPattern:  regexp.MustCompile(`(?i)^(passado|próximo|este)\s+(segunda|terça|quarta|quinta|sexta|sábado|domingo)`),
		MonthDayPattern: regexp.MustCompile(`(?i)^(passado|próximo|este)\s+mês\s+(\d{1,2})`),
		QualifierOffsets: map[string]int{
			"passado": -1, "próximo": 1, "este": 0,
		},
		WeekdayIndex: map[string]int{
			"segunda": 0, "terça": 1, "quarta": 2, "quinta": 3,
			"sexta": 4, "sábado": 5, "domingo": 6,
		},
	},
	"ko": {
		Code:            "ko",
		WeekdayPattern:  regexp.MustCompile(`^(지난|다음|이번)\s*주?\s*(월|화|수|목|금|토|일)요일`),
		MonthDayPattern: regexp.MustCompile(`^(지난|다음|이번)\s*달\s*(\d{1,2})일`),
		QualifierOffsets: map[string]int{
			"지난": -1, "다음": 1, "이번": 0,
		},
		WeekdayIndex: map[string]int{
			"월": 0, "화": 1, "수": 2, "목": 3, "금": 4, "토": 5, "일": 6,
		},
	},
}

// builtinAliases maps accepted locale code variants to canonical keys.
// Variant sets are pairwise disjoint; lookups outside all sets are unknown.
var builtinAliases = map[string][]string{
	"zh": {"zh", "zh-cn", "zh-hans", "zh-tw", "zh-hant"},
	"en": {"en", "en-us", "en-gb", "en-au"},
	"es": {"es", "es-es", "es-mx", "es-ar"},
	"fr": {"fr", "fr-fr", "fr-ca"},
	"de": {"de", "de-de", "de-at"},
	"it": {"it", "it-it"},
	"pt": {"pt", "pt-pt", "pt-br"},
	"ru": {"ru", "ru-ru"},
	"ja": {"ja", "ja-jp"},
	"ko": {"ko", "ko-kr"},
}
