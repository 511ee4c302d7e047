// Package places holds the static catalog of destinations and its ranked
// free-text search. The catalog is a process-wide read-only dataset loaded
// once; Search is a pure function over it.
package places

// Place is one searchable destination: a city, the airport it is usually
// reached through, the IATA code, and a coarse region.
type Place struct {
	City    string
	Airport string
	Code    string
	Region  string
}

// Catalog is the full destination dataset in canonical order. Search tier
// results preserve this order, so keep it alphabetical by city.
var Catalog = []Place{
	{City: "Amsterdam", Airport: "Schiphol", Code: "AMS", Region: "Europe"},
	{City: "Athens", Airport: "Eleftherios Venizelos", Code: "ATH", Region: "Europe"},
	{City: "Bangkok", Airport: "Suvarnabhumi", Code: "BKK", Region: "Asia"},
	{City: "Barcelona", Airport: "El Prat", Code: "BCN", Region: "Europe"},
	{City: "Berlin", Airport: "Brandenburg", Code: "BER", Region: "Europe"},
	{City: "Bogota", Airport: "El Dorado", Code: "BOG", Region: "South America"},
	{City: "Boston", Airport: "Logan", Code: "BOS", Region: "North America"},
	{City: "Budapest", Airport: "Ferenc Liszt", Code: "BUD", Region: "Europe"},
	{City: "Buenos Aires", Airport: "Ezeiza", Code: "EZE", Region: "South America"},
	{City: "Cairo", Airport: "Cairo International", Code: "CAI", Region: "Africa"},
	{City: "Cape Town", Airport: "Cape Town International", Code: "CPT", Region: "Africa"},
	{City: "Chicago", Airport: "O'Hare", Code: "ORD", Region: "North America"},
	{City: "Copenhagen", Airport: "Kastrup", Code: "CPH", Region: "Europe"},
	{City: "Delhi", Airport: "Indira Gandhi", Code: "DEL", Region: "Asia"},
	{City: "Dubai", Airport: "Dubai International", Code: "DXB", Region: "Middle East"},
	{City: "Dublin", Airport: "Dublin Airport", Code: "DUB", Region: "Europe"},
	{City: "Hanoi", Airport: "Noi Bai", Code: "HAN", Region: "Asia"},
	{City: "Hong Kong", Airport: "Chek Lap Kok", Code: "HKG", Region: "Asia"},
	{City: "Istanbul", Airport: "Istanbul Airport", Code: "IST", Region: "Europe"},
	{City: "Lima", Airport: "Jorge Chavez", Code: "LIM", Region: "South America"},
	{City: "Lisbon", Airport: "Humberto Delgado", Code: "LIS", Region: "Europe"},
	{City: "London", Airport: "Heathrow", Code: "LHR", Region: "Europe"},
	{City: "Los Angeles", Airport: "LAX International", Code: "LAX", Region: "North America"},
	{City: "Madrid", Airport: "Barajas", Code: "MAD", Region: "Europe"},
	{City: "Marrakesh", Airport: "Menara", Code: "RAK", Region: "Africa"},
	{City: "Melbourne", Airport: "Tullamarine", Code: "MEL", Region: "Oceania"},
	{City: "Mexico City", Airport: "Benito Juarez", Code: "MEX", Region: "North America"},
	{City: "Miami", Airport: "Miami International", Code: "MIA", Region: "North America"},
	{City: "Montreal", Airport: "Trudeau", Code: "YUL", Region: "North America"},
	{City: "Mumbai", Airport: "Chhatrapati Shivaji", Code: "BOM", Region: "Asia"},
	{City: "Nairobi", Airport: "Jomo Kenyatta", Code: "NBO", Region: "Africa"},
	{City: "New York", Airport: "John F. Kennedy", Code: "JFK", Region: "North America"},
	{City: "Osaka", Airport: "Kansai", Code: "KIX", Region: "Asia"},
	{City: "Oslo", Airport: "Gardermoen", Code: "OSL", Region: "Europe"},
	{City: "Paris", Airport: "Charles de Gaulle", Code: "CDG", Region: "Europe"},
	{City: "Prague", Airport: "Vaclav Havel", Code: "PRG", Region: "Europe"},
	{City: "Reykjavik", Airport: "Keflavik", Code: "KEF", Region: "Europe"},
	{City: "Rio de Janeiro", Airport: "Galeao", Code: "GIG", Region: "South America"},
	{City: "Rome", Airport: "Fiumicino", Code: "FCO", Region: "Europe"},
	{City: "San Francisco", Airport: "SFO International", Code: "SFO", Region: "North America"},
	{City: "Seoul", Airport: "Incheon", Code: "ICN", Region: "Asia"},
	{City: "Singapore", Airport: "Changi", Code: "SIN", Region: "Asia"},
	{City: "Stockholm", Airport: "Arlanda", Code: "ARN", Region: "Europe"},
	{City: "Sydney", Airport: "Kingsford Smith", Code: "SYD", Region: "Oceania"},
	{City: "Tokyo", Airport: "Haneda", Code: "HND", Region: "Asia"},
	{City: "Toronto", Airport: "Pearson", Code: "YYZ", Region: "North America"},
	{City: "Vancouver", Airport: "Vancouver International", Code: "YVR", Region: "North America"},
	{City: "Vienna", Airport: "Schwechat", Code: "VIE", Region: "Europe"},
}

// DisplayValue is the canonical committed form of a place: "City (CODE)".
func (p Place) DisplayValue() string {
	return p.City + " (" + p.Code + ")"
}
