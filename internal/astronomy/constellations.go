// Package astronomy implements the unprotected sample Astronomy API.
package astronomy

// Constellation is the API model: a group of stars forming a recognizable
// pattern that is traditionally named after its apparent form or identified
// with a mythological figure.
type Constellation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConstellationsResponse returns a list of constellations.
type ConstellationsResponse struct {
	Value []Constellation `json:"value"`
}

// constellationData is the raw data table, keyed by the IAU abbreviation.
type constellationData struct {
	abbr string
	name string
}

// The 88 modern constellations as recognized by the IAU.
var constellationTable = []constellationData{
	{"And", "Andromeda"},
	{"Ant", "Antlia"},
	{"Aps", "Apus"},
	{"Aqr", "Aquarius"},
	{"Aql", "Aquila"},
	{"Ara", "Ara"},
	{"Ari", "Aries"},
	{"Aur", "Auriga"},
	{"Boo", "Boötes"},
	{"Cae", "Caelum"},
	{"Cam", "Camelopardalis"},
	{"Cnc", "Cancer"},
	{"CVn", "Canes Venatici"},
	{"CMa", "Canis Major"},
	{"CMi", "Canis Minor"},
	{"Cap", "Capricornus"},
	{"Car", "Carina"},
	{"Cas", "Cassiopeia"},
	{"Cen", "Centaurus"},
	{"Cep", "Cepheus"},
	{"Cet", "Cetus"},
	{"Cha", "Chamaeleon"},
	{"Cir", "Circinus"},
	{"Col", "Columba"},
	{"Com", "Coma Berenices"},
	{"CrA", "Corona Australis"},
	{"CrB", "Corona Borealis"},
	{"Crv", "Corvus"},
	{"Crt", "Crater"},
	{"Cru", "Crux"},
	{"Cyg", "Cygnus"},
	{"Del", "Delphinus"},
	{"Dor", "Dorado"},
	{"Dra", "Draco"},
	{"Equ", "Equuleus"},
	{"Eri", "Eridanus"},
	{"For", "Fornax"},
	{"Gem", "Gemini"},
	{"Gru", "Grus"},
	{"Her", "Hercules"},
	{"Hor", "Horologium"},
	{"Hya", "Hydra"},
	{"Hyi", "Hydrus"},
	{"Ind", "Indus"},
	{"Lac", "Lacerta"},
	{"Leo", "Leo"},
	{"LMi", "Leo Minor"},
	{"Lep", "Lepus"},
	{"Lib", "Libra"},
	{"Lup", "Lupus"},
	{"Lyn", "Lynx"},
	{"Lyr", "Lyra"},
	{"Men", "Mensa"},
	{"Mic", "Microscopium"},
	{"Mon", "Monoceros"},
	{"Mus", "Musca"},
	{"Nor", "Norma"},
	{"Oct", "Octans"},
	{"Oph", "Ophiuchus"},
	{"Ori", "Orion"},
	{"Pav", "Pavo"},
	{"Peg", "Pegasus"},
	{"Per", "Perseus"},
	{"Phe", "Phoenix"},
	{"Pic", "Pictor"},
	{"Psc", "Pisces"},
	{"PsA", "Piscis Austrinus"},
	{"Pup", "Puppis"},
	{"Pyx", "Pyxis"},
	{"Ret", "Reticulum"},
	{"Sge", "Sagitta"},
	{"Sgr", "Sagittarius"},
	{"Sco", "Scorpius"},
	{"Scl", "Sculptor"},
	{"Sct", "Scutum"},
	{"Ser", "Serpens"},
	{"Sex", "Sextans"},
	{"Tau", "Taurus"},
	{"Tel", "Telescopium"},
	{"Tri", "Triangulum"},
	{"TrA", "Triangulum Australe"},
	{"Tuc", "Tucana"},
	{"UMa", "Ursa Major"},
	{"UMi", "Ursa Minor"},
	{"Vel", "Vela"},
	{"Vir", "Virgo"},
	{"Vol", "Volans"},
	{"Vul", "Vulpecula"},
}

// Constellations maps the raw data table to the API model.
func Constellations() []Constellation {
	out := make([]Constellation, len(constellationTable))
	for i, c := range constellationTable {
		out[i] = Constellation{ID: c.abbr, Name: c.name}
	}
	return out
}
