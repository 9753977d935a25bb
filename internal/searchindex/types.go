package searchindex

// ItemType identifies which collection of the search document an item came from.
type ItemType string

const (
	TypePost             ItemType = "post"
	TypePage             ItemType = "page"
	TypeComponent        ItemType = "component"
	TypeUnityIntegration ItemType = "unity_integration"
)

// Types lists the item types in the order their collections are flattened.
var Types = []ItemType{TypePost, TypePage, TypeComponent, TypeUnityIntegration}

// RawItem is one element of a collection array in search.json. It carries no
// type; the type is assigned from the array it was found in.
type RawItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt,omitempty"`
	URL     string `json:"url"`
}

// Document is the search.json resource: four homogeneous collections.
type Document struct {
	Posts             []RawItem `json:"posts"`
	Pages             []RawItem `json:"pages"`
	Components        []RawItem `json:"components"`
	UnityIntegrations []RawItem `json:"unity_integrations"`
}

// Collection returns the raw items for the given type.
func (d *Document) Collection(t ItemType) []RawItem {
	switch t {
	case TypePost:
		return d.Posts
	case TypePage:
		return d.Pages
	case TypeComponent:
		return d.Components
	case TypeUnityIntegration:
		return d.UnityIntegrations
	default:
		return nil
	}
}

// Add appends a raw item to the collection for the given type.
// Unknown types are ignored.
func (d *Document) Add(t ItemType, item RawItem) {
	switch t {
	case TypePost:
		d.Posts = append(d.Posts, item)
	case TypePage:
		d.Pages = append(d.Pages, item)
	case TypeComponent:
		d.Components = append(d.Components, item)
	case TypeUnityIntegration:
		d.UnityIntegrations = append(d.UnityIntegrations, item)
	}
}

// Item is a searchable entry tagged with its origin type. Items are never
// mutated after loading.
type Item struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Excerpt string   `json:"excerpt,omitempty"`
	URL     string   `json:"url"`
	Type    ItemType `json:"type"`
}

// CountByType tallies items per type. Every known type is present in the map.
func CountByType(items []Item) map[ItemType]int {
	counts := make(map[ItemType]int, len(Types))
	for _, t := range Types {
		counts[t] = 0
	}
	for _, it := range items {
		counts[it.Type]++
	}
	return counts
}
