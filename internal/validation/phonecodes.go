package validation

// CountryPhoneRule правило длины национального номера для телефонного кода страны
type CountryPhoneRule struct {
	Code      string // Код страны без "+"
	Country   string
	MinDigits int // Минимальная длина национального номера (без кода)
	MaxDigits int // Максимальная длина национального номера (без кода)
}

// countryPhoneRules таблица телефонных кодов стран
// Поиск идет по префиксу: сперва 3-значные коды, затем 2-значные, затем 1-значные
var countryPhoneRules = map[string]CountryPhoneRule{
	// 3-значные коды
	"212": {Code: "212", Country: "Morocco", MinDigits: 9, MaxDigits: 9},
	"234": {Code: "234", Country: "Nigeria", MinDigits: 10, MaxDigits: 10},
	"254": {Code: "254", Country: "Kenya", MinDigits: 9, MaxDigits: 9},
	"380": {Code: "380", Country: "Ukraine", MinDigits: 9, MaxDigits: 9},
	"420": {Code: "420", Country: "Czech Republic", MinDigits: 9, MaxDigits: 9},
	"880": {Code: "880", Country: "Bangladesh", MinDigits: 10, MaxDigits: 10},
	"966": {Code: "966", Country: "Saudi Arabia", MinDigits: 9, MaxDigits: 9},
	"971": {Code: "971", Country: "United Arab Emirates", MinDigits: 9, MaxDigits: 9},
	"972": {Code: "972", Country: "Israel", MinDigits: 9, MaxDigits: 9},
	"994": {Code: "994", Country: "Azerbaijan", MinDigits: 9, MaxDigits: 9},
	"998": {Code: "998", Country: "Uzbekistan", MinDigits: 9, MaxDigits: 9},

	// 2-значные коды
	"20": {Code: "20", Country: "Egypt", MinDigits: 10, MaxDigits: 10},
	"27": {Code: "27", Country: "South Africa", MinDigits: 9, MaxDigits: 9},
	"30": {Code: "30", Country: "Greece", MinDigits: 10, MaxDigits: 10},
	"31": {Code: "31", Country: "Netherlands", MinDigits: 9, MaxDigits: 9},
	"33": {Code: "33", Country: "France", MinDigits: 9, MaxDigits: 9},
	"34": {Code: "34", Country: "Spain", MinDigits: 9, MaxDigits: 9},
	"39": {Code: "39", Country: "Italy", MinDigits: 9, MaxDigits: 10},
	"44": {Code: "44", Country: "United Kingdom", MinDigits: 10, MaxDigits: 10},
	"49": {Code: "49", Country: "Germany", MinDigits: 10, MaxDigits: 11},
	"52": {Code: "52", Country: "Mexico", MinDigits: 10, MaxDigits: 10},
	"55": {Code: "55", Country: "Brazil", MinDigits: 10, MaxDigits: 11},
	"61": {Code: "61", Country: "Australia", MinDigits: 9, MaxDigits: 9},
	"62": {Code: "62", Country: "Indonesia", MinDigits: 9, MaxDigits: 12},
	"63": {Code: "63", Country: "Philippines", MinDigits: 10, MaxDigits: 10},
	"66": {Code: "66", Country: "Thailand", MinDigits: 9, MaxDigits: 9},
	"81": {Code: "81", Country: "Japan", MinDigits: 10, MaxDigits: 10},
	"82": {Code: "82", Country: "South Korea", MinDigits: 9, MaxDigits: 10},
	"84": {Code: "84", Country: "Vietnam", MinDigits: 9, MaxDigits: 9},
	"86": {Code: "86", Country: "China", MinDigits: 11, MaxDigits: 11},
	"90": {Code: "90", Country: "Turkey", MinDigits: 10, MaxDigits: 10},
	"91": {Code: "91", Country: "India", MinDigits: 10, MaxDigits: 10},
	"92": {Code: "92", Country: "Pakistan", MinDigits: 10, MaxDigits: 10},
	"98": {Code: "98", Country: "Iran", MinDigits: 10, MaxDigits: 10},

	// 1-значные коды
	"1": {Code: "1", Country: "USA/Canada", MinDigits: 10, MaxDigits: 10},
	"7": {Code: "7", Country: "Russia/Kazakhstan", MinDigits: 10, MaxDigits: 10},
}

// lookupCountryPhoneRule ищет правило по префиксу номера (только цифры, без "+")
// Сначала проверяются 3-значные коды, затем 2-значные, затем 1-значные
func lookupCountryPhoneRule(digits string) (CountryPhoneRule, bool) {
	for _, prefixLen := range []int{3, 2, 1} {
		if len(digits) < prefixLen {
			continue
		}
		if rule, ok := countryPhoneRules[digits[:prefixLen]]; ok {
			return rule, true
		}
	}
	return CountryPhoneRule{}, false
}
