package cli

import (
	"strings"

	"flagquiz-service/internal/domain"
)

// sampleCountries is the embedded minimal dataset used when no Postgres
// backend is configured and by the play command.
func sampleCountries() []domain.CountryRecord {
	return []domain.CountryRecord{
		country("US", "United States", "Americas", "Northern America", 38.0, -97.0, 331900000),
		country("GB", "United Kingdom", "Europe", "Northern Europe", 54.0, -2.0, 67330000),
		country("FR", "France", "Europe", "Western Europe", 46.0, 2.0, 67750000),
		country("DE", "Germany", "Europe", "Western Europe", 51.0, 9.0, 83200000),
		country("IT", "Italy", "Europe", "Southern Europe", 42.8, 12.8, 59110000),
		country("ES", "Spain", "Europe", "Southern Europe", 40.0, -4.0, 47420000),
		country("CA", "Canada", "Americas", "Northern America", 60.0, -95.0, 38250000),
		country("BR", "Brazil", "Americas", "South America", -10.0, -55.0, 214300000),
		country("MX", "Mexico", "Americas", "North America", 23.0, -102.0, 126700000),
		country("AR", "Argentina", "Americas", "South America", -34.0, -64.0, 45810000),
		country("NL", "Netherlands", "Europe", "Western Europe", 52.5, 5.75, 17530000),
		country("PT", "Portugal", "Europe", "Southern Europe", 39.5, -8.0, 10330000),
		country("PL", "Poland", "Europe", "Central Europe", 52.0, 20.0, 37750000),
		country("SE", "Sweden", "Europe", "Northern Europe", 62.0, 15.0, 10420000),
		country("NO", "Norway", "Europe", "Northern Europe", 62.0, 10.0, 5408000),
		country("FI", "Finland", "Europe", "Northern Europe", 64.0, 26.0, 5541000),
		country("DK", "Denmark", "Europe", "Northern Europe", 56.0, 10.0, 5857000),
		country("CH", "Switzerland", "Europe", "Western Europe", 47.0, 8.0, 8703000),
		country("AT", "Austria", "Europe", "Central Europe", 47.3, 13.3, 8956000),
		country("BE", "Belgium", "Europe", "Western Europe", 50.8, 4.0, 11590000),
		country("GR", "Greece", "Europe", "Southern Europe", 39.0, 22.0, 10640000),
		country("IE", "Ireland", "Europe", "Northern Europe", 53.0, -8.0, 5033000),
		country("CZ", "Czechia", "Europe", "Central Europe", 49.75, 15.5, 10510000),
		country("RO", "Romania", "Europe", "Eastern Europe", 46.0, 25.0, 19120000),
		country("HU", "Hungary", "Europe", "Central Europe", 47.0, 20.0, 9710000),
		country("UA", "Ukraine", "Europe", "Eastern Europe", 49.0, 32.0, 43790000),
		country("CO", "Colombia", "Americas", "South America", 4.0, -72.0, 51520000),
		country("PE", "Peru", "Americas", "South America", -10.0, -76.0, 33720000),
		country("CL", "Chile", "Americas", "South America", -30.0, -71.0, 19490000),
		country("VE", "Venezuela", "Americas", "South America", 8.0, -66.0, 28200000),
		country("EC", "Ecuador", "Americas", "South America", -2.0, -77.5, 17800000),
		country("CU", "Cuba", "Americas", "Caribbean", 21.5, -80.0, 11260000),
		country("CN", "China", "Asia", "Eastern Asia", 35.0, 105.0, 1412000000),
		country("IN", "India", "Asia", "Southern Asia", 20.0, 77.0, 1408000000),
		country("JP", "Japan", "Asia", "Eastern Asia", 36.0, 138.0, 125700000),
		country("KR", "South Korea", "Asia", "Eastern Asia", 37.0, 127.5, 51740000),
		country("ID", "Indonesia", "Asia", "South-Eastern Asia", -5.0, 120.0, 273800000),
		country("TH", "Thailand", "Asia", "South-Eastern Asia", 15.0, 100.0, 71600000),
		country("VN", "Vietnam", "Asia", "South-Eastern Asia", 16.2, 107.8, 97470000),
		country("NG", "Nigeria", "Africa", "Western Africa", 10.0, 8.0, 213400000),
		country("EG", "Egypt", "Africa", "Northern Africa", 27.0, 30.0, 109300000),
		country("ZA", "South Africa", "Africa", "Southern Africa", -29.0, 24.0, 59390000),
		country("KE", "Kenya", "Africa", "Eastern Africa", 1.0, 38.0, 53010000),
		country("MA", "Morocco", "Africa", "Northern Africa", 32.0, -5.0, 37080000),
		country("AU", "Australia", "Oceania", "Australia and New Zealand", -27.0, 133.0, 25690000),
		country("NZ", "New Zealand", "Oceania", "Australia and New Zealand", -41.0, 174.0, 5123000),
	}
}

func country(id, name, region, subregion string, lat, lng float64, population int64) domain.CountryRecord {
	return domain.CountryRecord{
		ID:         id,
		Names:      map[string]string{domain.DefaultLanguage: name},
		Region:     region,
		Subregion:  subregion,
		Coords:     domain.Coordinates{Lat: lat, Lng: lng},
		FlagRef:    "https://flagcdn.com/w320/" + strings.ToLower(id) + ".png",
		Population: population,
	}
}
