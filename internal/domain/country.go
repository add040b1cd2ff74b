package domain

// Country is the country of origin of a product.
type Country string

// Frequently referenced countries.
const (
	CountryBosniaAndHerzegovina Country = "BOSNA_I_HERCEGOVINA"
	CountryCroatia              Country = "HRVATSKA"
	CountrySerbia               Country = "SRBIJA"
	CountryGermany              Country = "NJEMACKA"
	CountryChina                Country = "KINA"
	CountryUSA                  Country = "AMERIKA"
)

type countryInfo struct {
	code Country
	name string
}

var countries = []countryInfo{
	// Balkans
	{"BOSNA_I_HERCEGOVINA", "Bosna i Hercegovina"},
	{"CRNA_GORA", "Crna Gora"},
	{"HRVATSKA", "Hrvatska"},
	{"SRBIJA", "Srbija"},
	{"SLOVENIJA", "Slovenija"},
	{"MAKEDONIJA", "Sjeverna Makedonija"},
	{"ALBANIJA", "Albanija"},
	{"KOSOVO", "Kosovo"},

	// Europe
	{"AUSTRIJA", "Austrija"},
	{"NJEMACKA", "Njemačka"},
	{"FRANCUSKA", "Francuska"},
	{"ITALIJA", "Italija"},
	{"SPANIJA", "Španija"},
	{"ENGLESKA", "Engleska"},
	{"IRSKA", "Irska"},
	{"SKOTSKA", "Škotska"},
	{"PORTUGAL", "Portugal"},
	{"HOLANDIJA", "Holandija"},
	{"BELGIJA", "Belgija"},
	{"SVAJCARSKA", "Švajcarska"},
	{"GRCKA", "Grčka"},
	{"TURSKA", "Turska"},
	{"POLJSKA", "Poljska"},
	{"CESKA", "Češka"},
	{"SLOVACKA", "Slovačka"},
	{"MADJARSKA", "Mađarska"},
	{"RUMUNIJA", "Rumunija"},
	{"BUGARSKA", "Bugarska"},
	{"NORVESKA", "Norveška"},
	{"SVEDSKA", "Švedska"},
	{"FINSKA", "Finska"},
	{"DANSKA", "Danska"},
	{"ISLAND", "Island"},
	{"UKRAJINA", "Ukrajina"},

	// Asia
	{"KINA", "Kina"},
	{"JAPAN", "Japan"},
	{"JUZNA_KOREJA", "Južna Koreja"},
	{"INDIJA", "Indija"},
	{"TAJLAND", "Tajland"},
	{"VIJETNAM", "Vijetnam"},
	{"INDONEZIJA", "Indonezija"},
	{"MALEZIJA", "Malezija"},
	{"SINGAPUR", "Singapur"},
	{"FILIPINI", "Filipini"},
	{"PAKISTAN", "Pakistan"},
	{"BANGLADES", "Bangladeš"},
	{"SAUDIJSKA_ARABIJA", "Saudijska Arabija"},
	{"UAE", "Ujedinjeni Arapski Emirati"},
	{"IZRAEL", "Izrael"},
	{"IRAN", "Iran"},
	{"IRAK", "Irak"},

	// Americas
	{"AMERIKA", "Sjedinjene Američke Države"},
	{"KANADA", "Kanada"},
	{"MEKSIKO", "Meksiko"},
	{"BRAZIL", "Brazil"},
	{"ARGENTINA", "Argentina"},
	{"CILE", "Čile"},
	{"KOLUMBIJA", "Kolumbija"},
	{"VENEZUELA", "Venezuela"},
	{"PERU", "Peru"},

	// Africa
	{"JUZNOAFRICKA_REPUBLIKA", "Južnoafrička Republika"},
	{"EGIPAT", "Egipat"},
	{"MAROKO", "Maroko"},
	{"NIGERIJA", "Nigerija"},
	{"KENIJA", "Kenija"},
	{"ETIOPIJA", "Etiopija"},
	{"GANA", "Gana"},

	// Oceania
	{"AUSTRALIJA", "Australija"},
	{"NOVI_ZELAND", "Novi Zeland"},

	// Russia and neighbours
	{"RUSIJA", "Rusija"},
	{"BJELORUSIJA", "Bjelorusija"},
	{"KAZAHSTAN", "Kazahstan"},
	{"GRUZIJA", "Gruzija"},
	{"JERMENIJA", "Jermenija"},
	{"AZERBEJDZAN", "Azerbejdžan"},

	// Other
	{"LUKSEMBURG", "Luksemburg"},
	{"MONAKO", "Monako"},
	{"LIHTENSTAJN", "Lihtenštajn"},
	{"MALTA", "Malta"},
	{"KIPAR", "Kipar"},
	{"ESTONIJA", "Estonija"},
	{"LATVIJA", "Latvija"},
	{"LITVANIJA", "Litvanija"},
}

var countryNames = func() map[Country]string {
	m := make(map[Country]string, len(countries))
	for _, c := range countries {
		m[c.code] = c.name
	}
	return m
}()

func (c Country) String() string { return string(c) }

func (c Country) IsValid() bool {
	_, ok := countryNames[c]
	return ok
}

// DisplayName returns the local name of the country.
func (c Country) DisplayName() string {
	if name, ok := countryNames[c]; ok {
		return name
	}
	return string(c)
}

// AllCountries returns every supported country in declaration order.
func AllCountries() []Country {
	out := make([]Country, len(countries))
	for i, c := range countries {
		out[i] = c.code
	}
	return out
}
