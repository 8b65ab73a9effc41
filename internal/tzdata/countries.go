package tzdata

// Country maps a country and its capital to the capital's IANA timezone.
// The table backs the interactive picker and `timein zones --countries`.
type Country struct {
	Name    string
	Capital string
	Zone    string
}

var countries = []Country{
	{"Afghanistan", "Kabul", "Asia/Kabul"},
	{"Albania", "Tirana", "Europe/Tirane"},
	{"Algeria", "Algiers", "Africa/Algiers"},
	{"Argentina", "Buenos Aires", "America/Argentina/Buenos_Aires"},
	{"Armenia", "Yerevan", "Asia/Yerevan"},
	{"Australia", "Canberra", "Australia/Sydney"},
	{"Austria", "Vienna", "Europe/Vienna"},
	{"Azerbaijan", "Baku", "Asia/Baku"},
	{"Bangladesh", "Dhaka", "Asia/Dhaka"},
	{"Belarus", "Minsk", "Europe/Minsk"},
	{"Belgium", "Brussels", "Europe/Brussels"},
	{"Bolivia", "La Paz", "America/La_Paz"},
	{"Bosnia and Herzegovina", "Sarajevo", "Europe/Sarajevo"},
	{"Botswana", "Gaborone", "Africa/Gaborone"},
	{"Brazil", "Brasilia", "America/Sao_Paulo"},
	{"Bulgaria", "Sofia", "Europe/Sofia"},
	{"Cambodia", "Phnom Penh", "Asia/Phnom_Penh"},
	{"Cameroon", "Yaounde", "Africa/Douala"},
	{"Canada", "Ottawa", "America/Toronto"},
	{"Chile", "Santiago", "America/Santiago"},
	{"China", "Beijing", "Asia/Shanghai"},
	{"Colombia", "Bogota", "America/Bogota"},
	{"Costa Rica", "San Jose", "America/Costa_Rica"},
	{"Croatia", "Zagreb", "Europe/Zagreb"},
	{"Cuba", "Havana", "America/Havana"},
	{"Cyprus", "Nicosia", "Asia/Nicosia"},
	{"Czechia", "Prague", "Europe/Prague"},
	{"Denmark", "Copenhagen", "Europe/Copenhagen"},
	{"Dominican Republic", "Santo Domingo", "America/Santo_Domingo"},
	{"Ecuador", "Quito", "America/Guayaquil"},
	{"Egypt", "Cairo", "Africa/Cairo"},
	{"El Salvador", "San Salvador", "America/El_Salvador"},
	{"Estonia", "Tallinn", "Europe/Tallinn"},
	{"Ethiopia", "Addis Ababa", "Africa/Addis_Ababa"},
	{"Fiji", "Suva", "Pacific/Fiji"},
	{"Finland", "Helsinki", "Europe/Helsinki"},
	{"France", "Paris", "Europe/Paris"},
	{"Georgia", "Tbilisi", "Asia/Tbilisi"},
	{"Germany", "Berlin", "Europe/Berlin"},
	{"Ghana", "Accra", "Africa/Accra"},
	{"Greece", "Athens", "Europe/Athens"},
	{"Guatemala", "Guatemala City", "America/Guatemala"},
	{"Honduras", "Tegucigalpa", "America/Tegucigalpa"},
	{"Hungary", "Budapest", "Europe/Budapest"},
	{"Iceland", "Reykjavik", "Atlantic/Reykjavik"},
	{"India", "New Delhi", "Asia/Kolkata"},
	{"Indonesia", "Jakarta", "Asia/Jakarta"},
	{"Iran", "Tehran", "Asia/Tehran"},
	{"Iraq", "Baghdad", "Asia/Baghdad"},
	{"Ireland", "Dublin", "Europe/Dublin"},
	{"Israel", "Jerusalem", "Asia/Jerusalem"},
	{"Italy", "Rome", "Europe/Rome"},
	{"Jamaica", "Kingston", "America/Jamaica"},
	{"Japan", "Tokyo", "Asia/Tokyo"},
	{"Jordan", "Amman", "Asia/Amman"},
	{"Kazakhstan", "Astana", "Asia/Almaty"},
	{"Kenya", "Nairobi", "Africa/Nairobi"},
	{"Kuwait", "Kuwait City", "Asia/Kuwait"},
	{"Laos", "Vientiane", "Asia/Vientiane"},
	{"Latvia", "Riga", "Europe/Riga"},
	{"Lebanon", "Beirut", "Asia/Beirut"},
	{"Libya", "Tripoli", "Africa/Tripoli"},
	{"Lithuania", "Vilnius", "Europe/Vilnius"},
	{"Luxembourg", "Luxembourg", "Europe/Luxembourg"},
	{"Madagascar", "Antananarivo", "Indian/Antananarivo"},
	{"Malaysia", "Kuala Lumpur", "Asia/Kuala_Lumpur"},
	{"Mexico", "Mexico City", "America/Mexico_City"},
	{"Mongolia", "Ulaanbaatar", "Asia/Ulaanbaatar"},
	{"Morocco", "Rabat", "Africa/Casablanca"},
	{"Myanmar", "Naypyidaw", "Asia/Yangon"},
	{"Nepal", "Kathmandu", "Asia/Kathmandu"},
	{"Netherlands", "Amsterdam", "Europe/Amsterdam"},
	{"New Zealand", "Wellington", "Pacific/Auckland"},
	{"Nicaragua", "Managua", "America/Managua"},
	{"Nigeria", "Abuja", "Africa/Lagos"},
	{"North Korea", "Pyongyang", "Asia/Pyongyang"},
	{"Norway", "Oslo", "Europe/Oslo"},
	{"Oman", "Muscat", "Asia/Muscat"},
	{"Pakistan", "Islamabad", "Asia/Karachi"},
	{"Panama", "Panama City", "America/Panama"},
	{"Paraguay", "Asuncion", "America/Asuncion"},
	{"Peru", "Lima", "America/Lima"},
	{"Philippines", "Manila", "Asia/Manila"},
	{"Poland", "Warsaw", "Europe/Warsaw"},
	{"Portugal", "Lisbon", "Europe/Lisbon"},
	{"Qatar", "Doha", "Asia/Qatar"},
	{"Romania", "Bucharest", "Europe/Bucharest"},
	{"Russia", "Moscow", "Europe/Moscow"},
	{"Saudi Arabia", "Riyadh", "Asia/Riyadh"},
	{"Senegal", "Dakar", "Africa/Dakar"},
	{"Serbia", "Belgrade", "Europe/Belgrade"},
	{"Singapore", "Singapore", "Asia/Singapore"},
	{"Slovakia", "Bratislava", "Europe/Bratislava"},
	{"Slovenia", "Ljubljana", "Europe/Ljubljana"},
	{"Somalia", "Mogadishu", "Africa/Mogadishu"},
	{"South Africa", "Pretoria", "Africa/Johannesburg"},
	{"South Korea", "Seoul", "Asia/Seoul"},
	{"Spain", "Madrid", "Europe/Madrid"},
	{"Sri Lanka", "Colombo", "Asia/Colombo"},
	{"Sudan", "Khartoum", "Africa/Khartoum"},
	{"Sweden", "Stockholm", "Europe/Stockholm"},
	{"Switzerland", "Bern", "Europe/Zurich"},
	{"Taiwan", "Taipei", "Asia/Taipei"},
	{"Tanzania", "Dodoma", "Africa/Dar_es_Salaam"},
	{"Thailand", "Bangkok", "Asia/Bangkok"},
	{"Tunisia", "Tunis", "Africa/Tunis"},
	{"Turkey", "Ankara", "Europe/Istanbul"},
	{"Uganda", "Kampala", "Africa/Kampala"},
	{"Ukraine", "Kyiv", "Europe/Kyiv"},
	{"United Arab Emirates", "Abu Dhabi", "Asia/Dubai"},
	{"United Kingdom", "London", "Europe/London"},
	{"United States", "Washington", "America/New_York"},
	{"Uruguay", "Montevideo", "America/Montevideo"},
	{"Uzbekistan", "Tashkent", "Asia/Tashkent"},
	{"Venezuela", "Caracas", "America/Caracas"},
	{"Vietnam", "Hanoi", "Asia/Ho_Chi_Minh"},
	{"Yemen", "Sanaa", "Asia/Aden"},
	{"Zambia", "Lusaka", "Africa/Lusaka"},
	{"Zimbabwe", "Harare", "Africa/Harare"},
}
