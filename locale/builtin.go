package locale

import (
	"strconv"

	"github.com/kairos-go/kairos/holiday"
)

func plain(day int) string { return strconv.Itoa(day) }

func ordinalDot(day int) string { return strconv.Itoa(day) + "." }

// RegisterBuiltins registers the ten shipped locale data sets spec.md
// §4.14 names into s. Holiday rule sets are transcribed from the
// teacher's per-country providers (countries/{us,de,fr,es,it,br,ru,cn,
// jp,tr}.go), converting each hardcoded time.Time construction into a
// holiday.Rule tagged value interpreted by the shared engine, rather
// than one hand-written Go function per country.
func RegisterBuiltins(s *Store) {
	s.Register("en-US", enUS())
	s.Register("de-DE", deDE())
	s.Register("fr-FR", frFR())
	s.Register("es-ES", esES())
	s.Register("it-IT", itIT())
	s.Register("pt-BR", ptBR())
	s.Register("ru-RU", ruRU())
	s.Register("zh-CN", zhCN())
	s.Register("ja-JP", jaJP())
	s.Register("tr-TR", trTR())
}

var enMonths = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
var enMonthsShort = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
var enWeekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var enWeekdaysShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
var enWeekdaysMin = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

var defaultFormatShortcuts = FormatShortcuts{
	"L":  "MM/DD/YYYY",
	"LL": "MMMM D, YYYY",
	"LT": "h:mm A",
}

func enUS() Locale {
	return Locale{
		Code:            "en-US",
		Months:          enMonths,
		MonthsShort:     enMonthsShort,
		Weekdays:        enWeekdays,
		WeekdaysShort:   enWeekdaysShort,
		WeekdaysMin:     enWeekdaysMin,
		FormatShortcuts: defaultFormatShortcuts,
		Ordinal:         defaultOrdinalEnglish,
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  0,
		Holidays: []holiday.Rule{
			{Name: "New Year's Day", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "federal",
				Observed: &holiday.ObservedRule{Type: holiday.SubstitutionSubstitute, Direction: holiday.DirectionNearest}},
			{Name: "Martin Luther King Jr. Day", Type: holiday.TypeNthWeekday, Active: true, Month: 1, Weekday: 1, Nth: 3, Category: "federal"},
			{Name: "Presidents' Day", Type: holiday.TypeNthWeekday, Active: true, Month: 2, Weekday: 1, Nth: 3, Category: "federal"},
			{Name: "Memorial Day", Type: holiday.TypeNthWeekday, Active: true, Month: 5, Weekday: 1, Nth: -1, Category: "federal"},
			{Name: "Juneteenth", Type: holiday.TypeFixed, Active: true, Month: 6, Day: 19, Category: "federal",
				Observed: &holiday.ObservedRule{Type: holiday.SubstitutionSubstitute, Direction: holiday.DirectionNearest}},
			{Name: "Independence Day", Type: holiday.TypeFixed, Active: true, Month: 7, Day: 4, Category: "federal",
				Observed: &holiday.ObservedRule{Type: holiday.SubstitutionSubstitute, Direction: holiday.DirectionBackward}},
			{Name: "Labor Day", Type: holiday.TypeNthWeekday, Active: true, Month: 9, Weekday: 1, Nth: 1, Category: "federal"},
			{Name: "Veterans Day", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 11, Category: "federal",
				Observed: &holiday.ObservedRule{Type: holiday.SubstitutionSubstitute, Direction: holiday.DirectionNearest}},
			{Name: "Thanksgiving", Type: holiday.TypeNthWeekday, Active: true, Month: 11, Weekday: 4, Nth: 4, Category: "federal"},
			{Name: "Christmas Day", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 25, Category: "federal",
				Observed: &holiday.ObservedRule{Type: holiday.SubstitutionSubstitute, Direction: holiday.DirectionNearest}},
		},
	}
}

func deDE() Locale {
	return Locale{
		Code:            "de-DE",
		Months:          [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthsShort:     [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		Weekdays:        [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		WeekdaysShort:   [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		WeekdaysMin:     [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		FormatShortcuts: FormatShortcuts{"L": "DD.MM.YYYY", "LL": "D. MMMM YYYY", "LT": "HH:mm"},
		Ordinal:         func(day int) string { return ordinalDot(day) },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  1,
		Holidays: []holiday.Rule{
			{Name: "Neujahr", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "Heilige Drei Könige", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 6, Category: "religious", Regions: []string{"BW", "BY", "ST"}},
			{Name: "Karfreitag", Type: holiday.TypeEasterBased, Active: true, OffsetDays: -2, Category: "religious"},
			{Name: "Ostersonntag", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 0, Category: "religious"},
			{Name: "Ostermontag", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 1, Category: "religious"},
			{Name: "Tag der Arbeit", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "Christi Himmelfahrt", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 39, Category: "religious"},
			{Name: "Pfingstsonntag", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 49, Category: "religious"},
			{Name: "Pfingstmontag", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 50, Category: "religious"},
			{Name: "Tag der Deutschen Einheit", Type: holiday.TypeFixed, Active: true, Month: 10, Day: 3, Category: "national"},
			{Name: "Allerheiligen", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 1, Category: "religious", Regions: []string{"BW", "BY", "NW", "RP", "SL"}},
			{Name: "Heiligabend", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 24, Category: "observance"},
			{Name: "1. Weihnachtsfeiertag", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 25, Category: "national"},
			{Name: "2. Weihnachtsfeiertag", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 26, Category: "national"},
			{Name: "Silvester", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 31, Category: "observance"},
		},
	}
}

func frFR() Locale {
	return Locale{
		Code:            "fr-FR",
		Months:          [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthsShort:     [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		Weekdays:        [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		WeekdaysShort:   [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		WeekdaysMin:     [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
		FormatShortcuts: FormatShortcuts{"L": "DD/MM/YYYY", "LL": "D MMMM YYYY", "LT": "HH:mm"},
		Ordinal:         func(day int) string { if day == 1 { return "1er" }; return plain(day) },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  1,
		Holidays: []holiday.Rule{
			{Name: "Jour de l'An", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "Pâques", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 0, Category: "religious"},
			{Name: "Lundi de Pâques", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 1, Category: "religious"},
			{Name: "Fête du Travail", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "Victoire 1945", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 8, Category: "national"},
			{Name: "Ascension", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 39, Category: "religious"},
			{Name: "Pentecôte", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 49, Category: "religious"},
			{Name: "Lundi de Pentecôte", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 50, Category: "religious"},
			{Name: "Fête Nationale", Type: holiday.TypeFixed, Active: true, Month: 7, Day: 14, Category: "national"},
			{Name: "Assomption", Type: holiday.TypeFixed, Active: true, Month: 8, Day: 15, Category: "religious"},
			{Name: "Toussaint", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 1, Category: "religious"},
			{Name: "Armistice 1918", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 11, Category: "national"},
			{Name: "Noël", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 25, Category: "national"},
		},
	}
}

func esES() Locale {
	return Locale{
		Code:            "es-ES",
		Months:          [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthsShort:     [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		Weekdays:        [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		WeekdaysShort:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		WeekdaysMin:     [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
		FormatShortcuts: FormatShortcuts{"L": "DD/MM/YYYY", "LL": "D [de] MMMM [de] YYYY", "LT": "H:mm"},
		Ordinal:         func(day int) string { return plain(day) + "º" },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  1,
		Holidays: []holiday.Rule{
			{Name: "Año Nuevo", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "Epifanía del Señor", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 6, Category: "religious"},
			{Name: "Jueves Santo", Type: holiday.TypeEasterBased, Active: true, OffsetDays: -3, Category: "religious"},
			{Name: "Viernes Santo", Type: holiday.TypeEasterBased, Active: true, OffsetDays: -2, Category: "religious"},
			{Name: "Fiesta del Trabajo", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "Asunción de la Virgen", Type: holiday.TypeFixed, Active: true, Month: 8, Day: 15, Category: "religious"},
			{Name: "Fiesta Nacional de España", Type: holiday.TypeFixed, Active: true, Month: 10, Day: 12, Category: "national"},
			{Name: "Todos los Santos", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 1, Category: "religious"},
			{Name: "Día de la Constitución", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 6, Category: "national"},
			{Name: "Inmaculada Concepción", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 8, Category: "religious"},
			{Name: "Navidad", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 25, Category: "national"},
		},
	}
}

func itIT() Locale {
	return Locale{
		Code:            "it-IT",
		Months:          [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		MonthsShort:     [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		Weekdays:        [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		WeekdaysShort:   [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		WeekdaysMin:     [7]string{"do", "lu", "ma", "me", "gi", "ve", "sa"},
		FormatShortcuts: FormatShortcuts{"L": "DD/MM/YYYY", "LL": "D MMMM YYYY", "LT": "HH:mm"},
		Ordinal:         func(day int) string { return plain(day) + "º" },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  1,
		Holidays: []holiday.Rule{
			{Name: "Capodanno", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "Epifania", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 6, Category: "religious"},
			{Name: "Pasqua", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 0, Category: "religious"},
			{Name: "Lunedì dell'Angelo", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 1, Category: "religious"},
			{Name: "Festa della Liberazione", Type: holiday.TypeFixed, Active: true, Month: 4, Day: 25, Category: "national"},
			{Name: "Festa del Lavoro", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "Festa della Repubblica", Type: holiday.TypeFixed, Active: true, Month: 6, Day: 2, Category: "national"},
			{Name: "Assunzione di Maria Vergine", Type: holiday.TypeFixed, Active: true, Month: 8, Day: 15, Category: "religious"},
			{Name: "Tutti i Santi", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 1, Category: "religious"},
			{Name: "Immacolata Concezione", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 8, Category: "religious"},
			{Name: "Natale", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 25, Category: "national"},
			{Name: "Santo Stefano", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 26, Category: "national"},
		},
	}
}

func ptBR() Locale {
	return Locale{
		Code:            "pt-BR",
		Months:          [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		MonthsShort:     [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		Weekdays:        [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		WeekdaysShort:   [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
		WeekdaysMin:     [7]string{"do", "se", "te", "qu", "qu", "se", "sá"},
		FormatShortcuts: FormatShortcuts{"L": "DD/MM/YYYY", "LL": "D [de] MMMM [de] YYYY", "LT": "HH:mm"},
		Ordinal:         func(day int) string { return plain(day) + "º" },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  0,
		Holidays: []holiday.Rule{
			{Name: "Confraternização Universal", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "Segunda-feira de Carnaval", Type: holiday.TypeEasterBased, Active: true, OffsetDays: -48, Category: "observance"},
			{Name: "Terça-feira de Carnaval", Type: holiday.TypeEasterBased, Active: true, OffsetDays: -47, Category: "observance"},
			{Name: "Sexta-feira Santa", Type: holiday.TypeEasterBased, Active: true, OffsetDays: -2, Category: "religious"},
			{Name: "Tiradentes", Type: holiday.TypeFixed, Active: true, Month: 4, Day: 21, Category: "national"},
			{Name: "Dia do Trabalho", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "Corpus Christi", Type: holiday.TypeEasterBased, Active: true, OffsetDays: 60, Category: "religious"},
			{Name: "Independência do Brasil", Type: holiday.TypeFixed, Active: true, Month: 9, Day: 7, Category: "national"},
			{Name: "Nossa Senhora Aparecida", Type: holiday.TypeFixed, Active: true, Month: 10, Day: 12, Category: "religious"},
			{Name: "Finados", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 2, Category: "religious"},
			{Name: "Proclamação da República", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 15, Category: "national"},
			{Name: "Natal", Type: holiday.TypeFixed, Active: true, Month: 12, Day: 25, Category: "national"},
		},
	}
}

func ruRU() Locale {
	return Locale{
		Code:            "ru-RU",
		Months:          [12]string{"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
		MonthsShort:     [12]string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
		Weekdays:        [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		WeekdaysShort:   [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		WeekdaysMin:     [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		FormatShortcuts: FormatShortcuts{"L": "DD.MM.YYYY", "LL": "D MMMM YYYY г.", "LT": "HH:mm"},
		Ordinal:         func(day int) string { return plain(day) + "-й" },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  1,
		Holidays: []holiday.Rule{
			{Name: "Новый год", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "Рождество Христово", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 7, Category: "religious"},
			{Name: "День защитника Отечества", Type: holiday.TypeFixed, Active: true, Month: 2, Day: 23, Category: "national"},
			{Name: "Международный женский день", Type: holiday.TypeFixed, Active: true, Month: 3, Day: 8, Category: "national"},
			{Name: "Праздник Весны и Труда", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "День Победы", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 9, Category: "national"},
			{Name: "День России", Type: holiday.TypeFixed, Active: true, Month: 6, Day: 12, Category: "national"},
			{Name: "День народного единства", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 4, Category: "national"},
		},
	}
}

func zhCN() Locale {
	return Locale{
		Code:            "zh-CN",
		Months:          [12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"},
		MonthsShort:     [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		Weekdays:        [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
		WeekdaysShort:   [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		WeekdaysMin:     [7]string{"日", "一", "二", "三", "四", "五", "六"},
		FormatShortcuts: FormatShortcuts{"L": "YYYY/MM/DD", "LL": "YYYY年M月D日", "LT": "HH:mm"},
		Ordinal:         func(day int) string { return plain(day) + "日" },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  1,
		Holidays: []holiday.Rule{
			{Name: "元旦", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "春节", Type: holiday.TypeLunar, Active: true, Calendar: "chinese", Month: 1, Day: 1, Category: "national"},
			{Name: "国际妇女节", Type: holiday.TypeFixed, Active: true, Month: 3, Day: 8, Category: "observance"},
			{Name: "国际劳动节", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "五四青年节", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 4, Category: "observance"},
			{Name: "国际儿童节", Type: holiday.TypeFixed, Active: true, Month: 6, Day: 1, Category: "observance"},
			{Name: "建军节", Type: holiday.TypeFixed, Active: true, Month: 8, Day: 1, Category: "observance"},
			{Name: "国庆节", Type: holiday.TypeFixed, Active: true, Month: 10, Day: 1, Category: "national"},
		},
	}
}

func jaJP() Locale {
	return Locale{
		Code:            "ja-JP",
		Months:          [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		MonthsShort:     [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		Weekdays:        [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		WeekdaysShort:   [7]string{"日", "月", "火", "水", "木", "金", "土"},
		WeekdaysMin:     [7]string{"日", "月", "火", "水", "木", "金", "土"},
		FormatShortcuts: FormatShortcuts{"L": "YYYY/MM/DD", "LL": "YYYY年M月D日", "LT": "HH:mm"},
		Ordinal:         func(day int) string { return plain(day) + "日" },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  0,
		Holidays: []holiday.Rule{
			{Name: "元日", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "成人の日", Type: holiday.TypeNthWeekday, Active: true, Month: 1, Weekday: 1, Nth: 2, Category: "national"},
			{Name: "建国記念の日", Type: holiday.TypeFixed, Active: true, Month: 2, Day: 11, Category: "national"},
			{Name: "昭和の日", Type: holiday.TypeFixed, Active: true, Month: 4, Day: 29, Category: "national"},
			{Name: "憲法記念日", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 3, Category: "national"},
			{Name: "みどりの日", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 4, Category: "national"},
			{Name: "こどもの日", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 5, Category: "national"},
			{Name: "海の日", Type: holiday.TypeNthWeekday, Active: true, Month: 7, Weekday: 1, Nth: 3, Category: "national"},
			{Name: "山の日", Type: holiday.TypeFixed, Active: true, Month: 8, Day: 11, Category: "national"},
			{Name: "敬老の日", Type: holiday.TypeNthWeekday, Active: true, Month: 9, Weekday: 1, Nth: 3, Category: "national"},
			{Name: "スポーツの日", Type: holiday.TypeNthWeekday, Active: true, Month: 10, Weekday: 1, Nth: 2, Category: "national"},
			{Name: "文化の日", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 3, Category: "national"},
			{Name: "勤労感謝の日", Type: holiday.TypeFixed, Active: true, Month: 11, Day: 23, Category: "national"},
		},
	}
}

func trTR() Locale {
	return Locale{
		Code:            "tr-TR",
		Months:          [12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
		MonthsShort:     [12]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},
		Weekdays:        [7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
		WeekdaysShort:   [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"},
		WeekdaysMin:     [7]string{"Pz", "Pt", "Sa", "Ça", "Pe", "Cu", "Ct"},
		FormatShortcuts: FormatShortcuts{"L": "DD.MM.YYYY", "LL": "D MMMM YYYY", "LT": "HH:mm"},
		Ordinal:         func(day int) string { return plain(day) + "." },
		Meridiem:        defaultMeridiemEnglish,
		FirstDayOfWeek:  1,
		Holidays: []holiday.Rule{
			{Name: "Yılbaşı", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1, Category: "national"},
			{Name: "Ulusal Egemenlik ve Çocuk Bayramı", Type: holiday.TypeFixed, Active: true, Month: 4, Day: 23, Category: "national"},
			{Name: "Emek ve Dayanışma Günü", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 1, Category: "national"},
			{Name: "Atatürk'ü Anma, Gençlik ve Spor Bayramı", Type: holiday.TypeFixed, Active: true, Month: 5, Day: 19, Category: "national"},
			{Name: "Demokrasi ve Milli Birlik Günü", Type: holiday.TypeFixed, Active: true, Month: 7, Day: 15, Category: "national"},
			{Name: "Zafer Bayramı", Type: holiday.TypeFixed, Active: true, Month: 8, Day: 30, Category: "national"},
			{Name: "Cumhuriyet Bayramı", Type: holiday.TypeFixed, Active: true, Month: 10, Day: 29, Category: "national"},
		},
	}
}
