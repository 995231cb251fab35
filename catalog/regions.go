package catalog

import "strings"

// Region is one node of the geographic hierarchy
// (country -> region -> city -> district). IDs are stable and are the
// values stored on each venue's region_id field.
type Region struct {
	ID      string
	Name    string
	Parent  string
	Aliases []string
}

var regions = []Region{
	{ID: "vn", Name: "Vietnam", Aliases: []string{"viet nam"}},

	{ID: "vn-north", Name: "Northern Vietnam", Parent: "vn"},
	{ID: "vn-central", Name: "Central Vietnam", Parent: "vn"},
	{ID: "vn-south", Name: "Southern Vietnam", Parent: "vn"},

	{ID: "hanoi", Name: "Hà Nội", Parent: "vn-north", Aliases: []string{"ha noi", "hanoi"}},
	{ID: "ha-long", Name: "Hạ Long", Parent: "vn-north", Aliases: []string{"ha long", "halong", "halong bay"}},
	{ID: "sapa", Name: "Sa Pa", Parent: "vn-north", Aliases: []string{"sa pa", "sapa"}},

	{ID: "da-nang", Name: "Đà Nẵng", Parent: "vn-central", Aliases: []string{"da nang", "danang"}},
	{ID: "hue", Name: "Huế", Parent: "vn-central", Aliases: []string{"hue"}},
	{ID: "hoi-an", Name: "Hội An", Parent: "vn-central", Aliases: []string{"hoi an", "hoian"}},
	{ID: "nha-trang", Name: "Nha Trang", Parent: "vn-central", Aliases: []string{"nha trang", "nhatrang"}},
	{ID: "da-lat", Name: "Đà Lạt", Parent: "vn-central", Aliases: []string{"da lat", "dalat"}},

	{ID: "ho-chi-minh", Name: "Hồ Chí Minh", Parent: "vn-south", Aliases: []string{"ho chi minh", "ho chi minh city", "hcmc", "saigon", "sai gon", "tp hcm"}},
	{ID: "phu-quoc", Name: "Phú Quốc", Parent: "vn-south", Aliases: []string{"phu quoc", "phuquoc"}},
	{ID: "can-tho", Name: "Cần Thơ", Parent: "vn-south", Aliases: []string{"can tho", "cantho"}},

	// Districts
	{ID: "hoan-kiem", Name: "Hoàn Kiếm", Parent: "hanoi", Aliases: []string{"hoan kiem"}},
	{ID: "ba-dinh", Name: "Ba Đình", Parent: "hanoi", Aliases: []string{"ba dinh"}},
	{ID: "tay-ho", Name: "Tây Hồ", Parent: "hanoi", Aliases: []string{"tay ho", "west lake"}},
	{ID: "dong-da", Name: "Đống Đa", Parent: "hanoi", Aliases: []string{"dong da"}},

	{ID: "hai-chau", Name: "Hải Châu", Parent: "da-nang", Aliases: []string{"hai chau"}},
	{ID: "son-tra", Name: "Sơn Trà", Parent: "da-nang", Aliases: []string{"son tra"}},
	{ID: "ngu-hanh-son", Name: "Ngũ Hành Sơn", Parent: "da-nang", Aliases: []string{"ngu hanh son", "marble mountains"}},
	{ID: "my-khe", Name: "Mỹ Khê", Parent: "da-nang", Aliases: []string{"my khe", "my khe beach"}},

	{ID: "district-1", Name: "Quận 1", Parent: "ho-chi-minh", Aliases: []string{"quan 1", "district 1"}},
	{ID: "district-3", Name: "Quận 3", Parent: "ho-chi-minh", Aliases: []string{"quan 3", "district 3"}},
	{ID: "binh-thanh", Name: "Bình Thạnh", Parent: "ho-chi-minh", Aliases: []string{"binh thanh"}},
	{ID: "thu-duc", Name: "Thủ Đức", Parent: "ho-chi-minh", Aliases: []string{"thu duc"}},

	{ID: "old-town", Name: "Phố Cổ Hội An", Parent: "hoi-an", Aliases: []string{"pho co", "ancient town", "old town"}},
}

var regionsByID = func() map[string]Region {
	m := make(map[string]Region, len(regions))
	for _, r := range regions {
		m[r.ID] = r
	}
	return m
}()

// vietnameseFolding maps accented Vietnamese letters to their ASCII base
// so "Đà Nẵng", "Da Nang" and "danang" all resolve to the same region.
var vietnameseFolding = map[rune]rune{
	'à': 'a', 'á': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'è': 'e', 'é': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	'ì': 'i', 'í': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',
	'ò': 'o', 'ó': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'ù': 'u', 'ú': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	'ỳ': 'y', 'ý': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',
	'đ': 'd',
}

// Normalize lowercases and strips Vietnamese diacritics.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := vietnameseFolding[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Resolve maps a free-text destination to a region node. The second
// return is false when the destination matches no known region, in which
// case callers degrade to a plain substring match.
func Resolve(destination string) (Region, bool) {
	needle := Normalize(destination)
	if needle == "" {
		return Region{}, false
	}
	for _, r := range regions {
		if Normalize(r.Name) == needle {
			return r, true
		}
		for _, alias := range r.Aliases {
			if Normalize(alias) == needle {
				return r, true
			}
		}
	}
	// Accept "Đà Nẵng, Vietnam" style inputs by containment on aliases.
	for _, r := range regions {
		if r.Parent == "" {
			continue // never resolve to the whole country by containment
		}
		for _, alias := range append(r.Aliases, r.Name) {
			a := Normalize(alias)
			if a != "" && strings.Contains(needle, a) {
				return r, true
			}
		}
	}
	return Region{}, false
}

// Descendants returns the region's own ID plus every descendant ID, so
// filtering by a city includes all of its districts.
func Descendants(id string) []string {
	ids := []string{id}
	for i := 0; i < len(ids); i++ {
		for _, r := range regions {
			if r.Parent == ids[i] {
				ids = append(ids, r.ID)
			}
		}
	}
	return ids
}

// RegionName returns the display name for a region ID, or the ID itself.
func RegionName(id string) string {
	if r, ok := regionsByID[id]; ok {
		return r.Name
	}
	return id
}
