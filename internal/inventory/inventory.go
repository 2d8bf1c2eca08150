// Package inventory is the fixed list of real Dubai infrastructure that seeds
// every generation run. Each entry carries classification tags so the
// generator's rule tables never inspect names.
package inventory

import "github.com/mr1hm/dubai-infra-gen/internal/models"

// Tag classifies an inventory entry for the generator's rule tables.
type Tag uint16

const (
	TagSheikhZayed Tag = 1 << iota
	TagDIFC
	TagDowntown
	TagDEWA
	TagMetro
	TagWaterCanal
	TagBusinessBay
)

func (t Tag) Has(other Tag) bool {
	return t&other != 0
}

type Entry struct {
	Name       string
	Type       models.AssetType
	Latitude   float64
	Longitude  float64
	DailyUsage int
	Tags       Tag
}

func (e Entry) Has(tag Tag) bool {
	return e.Tags.Has(tag)
}

// Entries returns a copy of the inventory: roads, then bridges, utilities and tunnels.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func Len() int {
	return len(entries)
}

const (
	road    = models.AssetTypeRoad
	bridge  = models.AssetTypeBridge
	utility = models.AssetTypeUtility
	tunnel  = models.AssetTypeTunnel
)

var entries = []Entry{
	{"Sheikh Zayed Road E11 - Trade Centre", road, 25.2326, 55.2928, 280000, TagSheikhZayed},
	{"Sheikh Zayed Road E11 - Financial Centre", road, 25.2138, 55.2824, 265000, TagSheikhZayed},
	{"Sheikh Zayed Road E11 - Business Bay", road, 25.1877, 55.2439, 250000, TagSheikhZayed | TagBusinessBay},
	{"Sheikh Zayed Road E11 - Downtown", road, 25.1972, 55.2744, 290000, TagSheikhZayed | TagDowntown},
	{"Al Khaleej Road D89 - Deira", road, 25.2697, 55.3095, 120000, 0},
	{"Dubai Marina Boulevard", road, 25.0781, 55.1370, 85000, 0},
	{"Jumeirah Beach Road - JBR", road, 25.0867, 55.1324, 65000, 0},
	{"Jumeirah Beach Road - Jumeirah", road, 25.2285, 55.2593, 45000, 0},
	{"Dubai-Al Ain Road E66", road, 25.1207, 55.3825, 95000, 0},
	{"Airport Road E44", road, 25.2532, 55.3657, 135000, 0},
	{"Business Bay Crossing", road, 25.1877, 55.2439, 110000, TagBusinessBay},
	{"The Walk JBR Promenade", road, 25.0825, 55.1304, 25000, 0},
	{"Palm Jumeirah Trunk Road", road, 25.1124, 55.1390, 75000, 0},
	{"JLT Main Boulevard", road, 25.0694, 55.1441, 55000, 0},
	{"Al Barsha Road", road, 25.0958, 55.1928, 70000, 0},
	{"Mall of Emirates Access", road, 25.1183, 55.2006, 85000, 0},
	{"Dubai Mall Boulevard", road, 25.1972, 55.2796, 120000, 0},
	{"Financial Centre Road DIFC", road, 25.2138, 55.2824, 95000, TagDIFC},
	{"Trade Centre Road", road, 25.2326, 55.2928, 105000, 0},
	{"Zabeel Road", road, 25.2285, 55.2970, 65000, 0},
	{"Al Garhoud Road", road, 25.2532, 55.3418, 80000, 0},
	{"Silicon Oasis Boulevard", road, 25.1207, 55.3825, 35000, 0},
	{"Academic City Road", road, 25.1050, 55.4086, 25000, 0},
	{"Dubai Festival City Access", road, 25.2217, 55.3538, 40000, 0},
	{"Mohammed Bin Rashid Boulevard", road, 25.1972, 55.2744, 90000, 0},

	{"Business Bay Bridge", bridge, 25.1877, 55.2439, 95000, TagBusinessBay},
	{"Al Maktoum Bridge", bridge, 25.2697, 55.3260, 75000, 0},
	{"Al Garhoud Bridge", bridge, 25.2532, 55.3418, 85000, 0},
	{"Floating Bridge Al Shindagha", bridge, 25.2697, 55.2995, 45000, 0},
	{"Dubai Water Canal Bridge Sheikh Zayed", bridge, 25.2138, 55.2824, 180000, TagWaterCanal | TagSheikhZayed},
	{"Dubai Water Canal Bridge Al Wasl", bridge, 25.2090, 55.2650, 65000, TagWaterCanal},
	{"Dubai Water Canal Bridge Jumeirah", bridge, 25.2200, 55.2580, 55000, TagWaterCanal},
	{"Creek Crossing Extension", bridge, 25.2600, 55.3100, 35000, 0},
	{"Palm Jumeirah Bridge", bridge, 25.1124, 55.1390, 60000, 0},
	{"Dubai Hills Bridge Mohammed Bin Rashid City", bridge, 25.0958, 55.2500, 45000, 0},
	{"Trade Centre Overpass", bridge, 25.2326, 55.2928, 85000, 0},

	{"DEWA Substation Downtown Dubai", utility, 25.1972, 55.2744, 85000, TagDEWA | TagDowntown},
	{"DEWA Substation Dubai Marina", utility, 25.0781, 55.1370, 65000, TagDEWA},
	{"DEWA Substation Deira", utility, 25.2697, 55.3095, 120000, TagDEWA},
	{"DEWA Substation JLT", utility, 25.0694, 55.1441, 35000, TagDEWA},
	{"DEWA Substation Business Bay", utility, 25.1877, 55.2439, 45000, TagDEWA | TagBusinessBay},
	{"Dubai Water Pumping Station Jumeirah", utility, 25.2285, 55.2593, 78000, 0},
	{"Dubai Water Treatment Plant Jebel Ali", utility, 25.0126, 55.0775, 2800000, 0},
	{"Empower District Cooling Downtown", utility, 25.1972, 55.2744, 85000, TagDowntown},
	{"Empower District Cooling DIFC", utility, 25.2138, 55.2824, 15000, TagDIFC},
	{"DU Telecommunications Hub TECOM", utility, 25.0958, 55.1700, 500000, 0},
	{"Etisalat Central Exchange Karama", utility, 25.2400, 55.3030, 800000, 0},
	{"Dubai Gas Distribution Center Al Qusais", utility, 25.2854, 55.3924, 150000, 0},
	{"Dubai Municipality Water Network Control", utility, 25.2285, 55.2970, 2500000, 0},
	{"Smart City Infrastructure Hub DIFC", utility, 25.2138, 55.2824, 15000, TagDIFC},
	{"DEWA Solar Park Connection Mohammed Bin Rashid", utility, 24.8607, 55.3756, 1800000, TagDEWA},

	{"Shindagha Tunnel", tunnel, 25.2697, 55.2995, 85000, 0},
	{"Airport Tunnel DXB", tunnel, 25.2532, 55.3657, 95000, 0},
	{"Dubai Metro Red Line Tunnel DIFC", tunnel, 25.2138, 55.2824, 125000, TagMetro | TagDIFC},
	{"Dubai Metro Red Line Tunnel BurJuman", tunnel, 25.2534, 55.3040, 110000, TagMetro},
	{"Business Bay Underpass", tunnel, 25.1877, 55.2439, 75000, TagBusinessBay},
	{"Trade Centre Underpass", tunnel, 25.2326, 55.2928, 65000, 0},
}
