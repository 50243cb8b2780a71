// Package gazetteer holds the fixed list of neighborhood names offered by
// the area autocomplete, plus the suggestion and tag-selection logic behind
// the search filter's area selector.
package gazetteer

import "strings"

// MaxSuggestions caps the dropdown length.
const MaxSuggestions = 8

// Areas is the static neighborhood gazetteer (Hyderabad).
var Areas = []string{
	"A.S. Rao Nagar", "Abids", "Adikmet", "Alwal", "Amberpet",
	"Ameerpet", "Attapur", "Bachupally", "Balanagar", "Balapur",
	"Banjara Hills", "Basheerbagh", "Begumpet", "Bharat Nagar", "Boduppal",
	"Bolarum", "Bowenpally", "Chaitanyapuri", "Chanda Nagar", "Charminar",
	"Chikkadpally", "Chilkur", "Dammaiguda", "Dilsukhnagar", "Dundigal",
	"ECIL", "Erragadda", "Falaknuma", "Film Nagar", "Financial District",
	"Gachibowli", "Gajularamaram", "Gandipet", "Ghatkesar", "Gopanpally",
	"Gowlidoddi", "Habsiguda", "Hafeezpet", "Hayathnagar", "Himayatnagar",
	"Hitech City", "Ibrahimpatnam", "Isnapur", "Jagadgirigutta", "Jeedimetla",
	"Jubilee Hills", "Kachiguda", "Kapra", "Karkhana", "Karmanghat",
	"Keesara", "Khairatabad", "Kismatpur", "Kokapet", "Kollur",
	"Kompally", "Kondapur", "Koti", "Kothapet", "KPHB Colony",
	"Kukatpally", "Kushaiguda", "Lakdikapul", "Langar Houz", "LB Nagar",
	"Lingampally", "Madhapur", "Madinaguda", "Mallampet", "Mallapur",
	"Malkajgiri", "Mamidipally", "Manikonda", "Masab Tank", "Medchal",
	"Mehdipatnam", "Miyapur", "Mokila", "Moosapet", "Moti Nagar",
	"Moula Ali", "Musheerabad", "Nacharam", "Nagole", "Nallagandla",
	"Nampally", "Nanakramguda", "Narayanguda", "Narsingi", "Neknampur",
	"Nizampet", "Old Alwal", "Osman Nagar", "Padmarao Nagar", "Panjagutta",
	"Patancheru", "Peerancheruvu", "Peerzadiguda", "Pocharam", "Pragathi Nagar",
	"Puppalaguda", "Quthbullapur", "Rajendranagar", "Ramachandrapuram", "Ramanthapur",
	"Ramnagar", "Rampally", "Red Hills", "Saidabad", "Sainikpuri",
	"Sanath Nagar", "Santosh Nagar", "Saroornagar", "Secunderabad", "Serilingampally",
	"Shadnagar", "Shaikpet", "Shamirpet", "Shamshabad", "Shankarpally",
	"Sitaphalmandi", "Somajiguda", "Sri Nagar Colony", "Suchitra", "Suraram",
	"Tarnaka", "Tellapur", "Thumkunta", "Tolichowki", "Toli Chowki Extension",
	"Trimulgherry", "Turkayamjal", "Uppal", "Uppuguda", "Vanasthalipuram",
	"Velimela", "Vidyanagar", "Vikarabad Road", "Warasiguda", "West Marredpally",
	"Yapral", "Yousufguda", "Zaheerabad Road", "Adibatla", "Bandlaguda",
	"Bongloor", "Chandrayangutta", "Gandimaisamma", "Kandlakoya", "Kothaguda",
	"Mallikarjuna Nagar", "Nagaram", "Pashamylaram", "Raviryal", "Turkapally",
}

// Suggest returns up to MaxSuggestions gazetteer entries containing the
// query (case-insensitive), skipping already-selected names. An empty query
// yields nothing: the dropdown stays hidden until the user types.
func Suggest(query string, selected []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	chosen := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		chosen[strings.ToLower(s)] = struct{}{}
	}

	q := strings.ToLower(query)
	var out []string
	for _, area := range Areas {
		if _, taken := chosen[strings.ToLower(area)]; taken {
			continue
		}
		if strings.Contains(strings.ToLower(area), q) {
			out = append(out, area)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// TagSet tracks the multi-selected area tags. Selection is
// case-insensitively unique; selecting a duplicate is a no-op.
type TagSet struct {
	tags []string
}

// Select adds a tag and reports whether it was newly added.
func (t *TagSet) Select(area string) bool {
	area = strings.TrimSpace(area)
	if area == "" {
		return false
	}
	for _, existing := range t.tags {
		if strings.EqualFold(existing, area) {
			return false
		}
	}
	t.tags = append(t.tags, area)
	return true
}

// Remove drops a tag, reporting whether it was present.
func (t *TagSet) Remove(area string) bool {
	for i, existing := range t.tags {
		if strings.EqualFold(existing, area) {
			t.tags = append(t.tags[:i], t.tags[i+1:]...)
			return true
		}
	}
	return false
}

// Tags returns the selected areas in selection order.
func (t *TagSet) Tags() []string { return t.tags }
