package store

// unMemberStates lists the 193 UN member states with ISO-3166 alpha-2 codes.
// Names are the Russian forms the UI displays, sorted alphabetically.
var unMemberStates = [...]struct{ name, code string }{
	{"Австралия", "AU"}, {"Австрия", "AT"}, {"Азербайджан", "AZ"},
	{"Албания", "AL"}, {"Алжир", "DZ"}, {"Ангола", "AO"},
	{"Андорра", "AD"}, {"Антигуа и Барбуда", "AG"}, {"Аргентина", "AR"},
	{"Армения", "AM"}, {"Афганистан", "AF"}, {"Багамы", "BS"},
	{"Бангладеш", "BD"}, {"Барбадос", "BB"}, {"Бахрейн", "BH"},
	{"Беларусь", "BY"}, {"Белиз", "BZ"}, {"Бельгия", "BE"},
	{"Бенин", "BJ"}, {"Болгария", "BG"}, {"Боливия", "BO"},
	{"Босния и Герцеговина", "BA"}, {"Ботсвана", "BW"}, {"Бразилия", "BR"},
	{"Бруней", "BN"}, {"Буркина-Фасо", "BF"}, {"Бурунди", "BI"},
	{"Бутан", "BT"}, {"Вануату", "VU"}, {"Великобритания", "GB"},
	{"Венгрия", "HU"}, {"Венесуэла", "VE"},
	{"Восточный Тимор", "TL"}, {"Вьетнам", "VN"}, {"Габон", "GA"},
	{"Гаити", "HT"}, {"Гайана", "GY"}, {"Гамбия", "GM"},
	{"Гана", "GH"}, {"Гватемала", "GT"}, {"Гвинея", "GN"},
	{"Гвинея-Бисау", "GW"}, {"Германия", "DE"}, {"Гондурас", "HN"},
	{"Гренада", "GD"}, {"Греция", "GR"}, {"Грузия", "GE"},
	{"Дания", "DK"}, {"Джибути", "DJ"}, {"Доминика", "DM"},
	{"Доминиканская Республика", "DO"}, {"Египет", "EG"}, {"Замбия", "ZM"},
	{"Зимбабве", "ZW"}, {"Израиль", "IL"}, {"Индия", "IN"},
	{"Индонезия", "ID"}, {"Иордания", "JO"}, {"Ирак", "IQ"},
	{"Иран", "IR"}, {"Ирландия", "IE"}, {"Исландия", "IS"},
	{"Испания", "ES"}, {"Италия", "IT"}, {"Йемен", "YE"},
	{"Кабо-Верде", "CV"}, {"Казахстан", "KZ"}, {"Камбоджа", "KH"},
	{"Камерун", "CM"}, {"Канада", "CA"}, {"Катар", "QA"},
	{"Кения", "KE"}, {"Кипр", "CY"}, {"Киргизия", "KG"},
	{"Кирибати", "KI"}, {"Китай", "CN"}, {"Колумбия", "CO"},
	{"Коморы", "KM"}, {"Конго", "CG"}, {"ДР Конго", "CD"},
	{"Коста-Рика", "CR"}, {"Кот-д'Ивуар", "CI"}, {"Куба", "CU"},
	{"Кувейт", "KW"}, {"Лаос", "LA"}, {"Латвия", "LV"},
	{"Лесото", "LS"}, {"Либерия", "LR"}, {"Ливан", "LB"},
	{"Ливия", "LY"}, {"Литва", "LT"}, {"Лихтенштейн", "LI"},
	{"Люксембург", "LU"}, {"Маврикий", "MU"}, {"Мавритания", "MR"},
	{"Мадагаскар", "MG"}, {"Малави", "MW"}, {"Малайзия", "MY"},
	{"Мали", "ML"}, {"Мальдивы", "MV"}, {"Мальта", "MT"},
	{"Марокко", "MA"}, {"Маршалловы Острова", "MH"}, {"Мексика", "MX"},
	{"Мозамбик", "MZ"}, {"Молдова", "MD"}, {"Монако", "MC"},
	{"Монголия", "MN"}, {"Мьянма", "MM"}, {"Намибия", "NA"},
	{"Науру", "NR"}, {"Непал", "NP"}, {"Нигер", "NE"},
	{"Нигерия", "NG"}, {"Нидерланды", "NL"}, {"Никарагуа", "NI"},
	{"Новая Зеландия", "NZ"}, {"Норвегия", "NO"}, {"ОАЭ", "AE"},
	{"Оман", "OM"}, {"Пакистан", "PK"}, {"Палау", "PW"},
	{"Панама", "PA"}, {"Папуа — Новая Гвинея", "PG"}, {"Парагвай", "PY"},
	{"Перу", "PE"}, {"Польша", "PL"}, {"Португалия", "PT"},
	{"Россия", "RU"}, {"Руанда", "RW"}, {"Румыния", "RO"},
	{"Сальвадор", "SV"}, {"Самоа", "WS"}, {"Сан-Марино", "SM"},
	{"Сан-Томе и Принсипи", "ST"}, {"Саудовская Аравия", "SA"}, {"Северная Корея", "KP"},
	{"Северная Македония", "MK"}, {"Сейшелы", "SC"}, {"Сенегал", "SN"},
	{"Сент-Винсент и Гренадины", "VC"}, {"Сент-Китс и Невис", "KN"}, {"Сент-Люсия", "LC"},
	{"Сербия", "RS"}, {"Сингапур", "SG"}, {"Сирия", "SY"},
	{"Словакия", "SK"}, {"Словения", "SI"}, {"Соломоновы Острова", "SB"},
	{"Сомали", "SO"}, {"Судан", "SD"}, {"Суринам", "SR"},
	{"США", "US"}, {"Сьерра-Леоне", "SL"}, {"Таджикистан", "TJ"},
	{"Таиланд", "TH"}, {"Танзания", "TZ"}, {"Того", "TG"},
	{"Тонга", "TO"}, {"Тринидад и Тобаго", "TT"}, {"Тувалу", "TV"},
	{"Тунис", "TN"}, {"Туркменистан", "TM"}, {"Турция", "TR"},
	{"Уганда", "UG"}, {"Узбекистан", "UZ"}, {"Украина", "UA"},
	{"Уругвай", "UY"}, {"Федеративные Штаты Микронезии", "FM"}, {"Фиджи", "FJ"},
	{"Филиппины", "PH"}, {"Финляндия", "FI"}, {"Франция", "FR"},
	{"Хорватия", "HR"}, {"ЦАР", "CF"}, {"Чад", "TD"},
	{"Черногория", "ME"}, {"Чехия", "CZ"}, {"Чили", "CL"},
	{"Швейцария", "CH"}, {"Швеция", "SE"}, {"Шри-Ланка", "LK"},
	{"Эквадор", "EC"}, {"Экваториальная Гвинея", "GQ"}, {"Эритрея", "ER"},
	{"Эсватини", "SZ"}, {"Эстония", "EE"}, {"Эфиопия", "ET"},
	{"ЮАР", "ZA"}, {"Южная Корея", "KR"}, {"Южный Судан", "SS"},
	{"Ямайка", "JM"}, {"Япония", "JP"},
}
