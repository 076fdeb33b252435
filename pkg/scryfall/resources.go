package scryfall

// Card represents a single card printing.
type Card struct {
	Object `yaml:",inline"`

	ID              string            `json:"id"                         yaml:"id"`
	OracleID        string            `json:"oracle_id,omitempty"        yaml:"oracle_id,omitempty"`
	Name            string            `json:"name"                       yaml:"name"`
	Lang            string            `json:"lang,omitempty"             yaml:"lang,omitempty"`
	ReleasedAt      string            `json:"released_at,omitempty"      yaml:"released_at,omitempty"`
	URI             string            `json:"uri,omitempty"              yaml:"uri,omitempty"`
	ScryfallURI     string            `json:"scryfall_uri,omitempty"     yaml:"scryfall_uri,omitempty"`
	Layout          string            `json:"layout,omitempty"           yaml:"layout,omitempty"`
	ManaCost        string            `json:"mana_cost,omitempty"        yaml:"mana_cost,omitempty"`
	CMC             float64           `json:"cmc"                        yaml:"cmc"`
	TypeLine        string            `json:"type_line,omitempty"        yaml:"type_line,omitempty"`
	OracleText      string            `json:"oracle_text,omitempty"      yaml:"oracle_text,omitempty"`
	Power           string            `json:"power,omitempty"            yaml:"power,omitempty"`
	Toughness       string            `json:"toughness,omitempty"        yaml:"toughness,omitempty"`
	Loyalty         string            `json:"loyalty,omitempty"          yaml:"loyalty,omitempty"`
	Colors          []string          `json:"colors,omitempty"           yaml:"colors,omitempty"`
	ColorIdentity   []string          `json:"color_identity,omitempty"   yaml:"color_identity,omitempty"`
	Keywords        []string          `json:"keywords,omitempty"         yaml:"keywords,omitempty"`
	Set             string            `json:"set,omitempty"              yaml:"set,omitempty"`
	SetName         string            `json:"set_name,omitempty"         yaml:"set_name,omitempty"`
	CollectorNumber string            `json:"collector_number,omitempty" yaml:"collector_number,omitempty"`
	Rarity          string            `json:"rarity,omitempty"           yaml:"rarity,omitempty"`
	Artist          string            `json:"artist,omitempty"           yaml:"artist,omitempty"`
	RulingsURI      string            `json:"rulings_uri,omitempty"      yaml:"rulings_uri,omitempty"`
	ImageURIs       map[string]string `json:"image_uris,omitempty"       yaml:"image_uris,omitempty"`
	Legalities      map[string]string `json:"legalities,omitempty"       yaml:"legalities,omitempty"`
	Prices          map[string]string `json:"prices,omitempty"           yaml:"prices,omitempty"`
	CardFaces       []CardFace        `json:"card_faces,omitempty"       yaml:"card_faces,omitempty"`
}

// CardFace represents one face of a multi-faced card.
type CardFace struct {
	Name       string            `json:"name"                  yaml:"name"`
	ManaCost   string            `json:"mana_cost,omitempty"   yaml:"mana_cost,omitempty"`
	TypeLine   string            `json:"type_line,omitempty"   yaml:"type_line,omitempty"`
	OracleText string            `json:"oracle_text,omitempty" yaml:"oracle_text,omitempty"`
	Power      string            `json:"power,omitempty"       yaml:"power,omitempty"`
	Toughness  string            `json:"toughness,omitempty"   yaml:"toughness,omitempty"`
	ImageURIs  map[string]string `json:"image_uris,omitempty"  yaml:"image_uris,omitempty"`
}

// CardIdentifier identifies a card in a collection request.
type CardIdentifier struct {
	ID string `json:"id"`
}

// CollectionRequest is the body of a card collection lookup.
type CollectionRequest struct {
	Identifiers []CardIdentifier `json:"identifiers"`
}

// NewCollectionRequest builds a collection request for the given card IDs.
func NewCollectionRequest(ids []string) *CollectionRequest {
	identifiers := make([]CardIdentifier, 0, len(ids))
	for _, id := range ids {
		identifiers = append(identifiers, CardIdentifier{ID: id})
	}

	return &CollectionRequest{Identifiers: identifiers}
}

// Set represents a card set.
type Set struct {
	Object `yaml:",inline"`

	ID          string `json:"id"                     yaml:"id"`
	Code        string `json:"code"                   yaml:"code"`
	Name        string `json:"name"                   yaml:"name"`
	SetType     string `json:"set_type,omitempty"     yaml:"set_type,omitempty"`
	ReleasedAt  string `json:"released_at,omitempty"  yaml:"released_at,omitempty"`
	BlockCode   string `json:"block_code,omitempty"   yaml:"block_code,omitempty"`
	Block       string `json:"block,omitempty"        yaml:"block,omitempty"`
	ParentCode  string `json:"parent_set_code,omitempty" yaml:"parent_set_code,omitempty"`
	CardCount   int    `json:"card_count"             yaml:"card_count"`
	Digital     bool   `json:"digital"                yaml:"digital"`
	FoilOnly    bool   `json:"foil_only"              yaml:"foil_only"`
	IconSVGURI  string `json:"icon_svg_uri,omitempty" yaml:"icon_svg_uri,omitempty"`
	SearchURI   string `json:"search_uri,omitempty"   yaml:"search_uri,omitempty"`
	ScryfallURI string `json:"scryfall_uri,omitempty" yaml:"scryfall_uri,omitempty"`
}

// Ruling represents an official ruling or note about a card.
type Ruling struct {
	Object `yaml:",inline"`

	OracleID    string `json:"oracle_id,omitempty" yaml:"oracle_id,omitempty"`
	Source      string `json:"source"              yaml:"source"`
	PublishedAt string `json:"published_at"        yaml:"published_at"`
	Comment     string `json:"comment"             yaml:"comment"`
}

// CardSymbol represents a symbol that may appear in mana costs or rules text.
type CardSymbol struct {
	Object `yaml:",inline"`

	Symbol                string   `json:"symbol"                        yaml:"symbol"`
	LooseVariant          string   `json:"loose_variant,omitempty"       yaml:"loose_variant,omitempty"`
	English               string   `json:"english"                       yaml:"english"`
	Transposable          bool     `json:"transposable"                  yaml:"transposable"`
	RepresentsMana        bool     `json:"represents_mana"               yaml:"represents_mana"`
	ManaValue             float64  `json:"mana_value,omitempty"          yaml:"mana_value,omitempty"`
	AppearsInManaCosts    bool     `json:"appears_in_mana_costs"         yaml:"appears_in_mana_costs"`
	Funny                 bool     `json:"funny"                         yaml:"funny"`
	Colors                []string `json:"colors"                        yaml:"colors"`
	GathererAlternates    []string `json:"gatherer_alternates,omitempty" yaml:"gatherer_alternates,omitempty"`
	SVGURI                string   `json:"svg_uri,omitempty"             yaml:"svg_uri,omitempty"`
}

// ManaCost is the parsed form of a mana cost string.
type ManaCost struct {
	Object `yaml:",inline"`

	Cost         string   `json:"cost"         yaml:"cost"`
	CMC          float64  `json:"cmc"          yaml:"cmc"`
	Colors       []string `json:"colors"       yaml:"colors"`
	Colorless    bool     `json:"colorless"    yaml:"colorless"`
	Monocolored  bool     `json:"monocolored"  yaml:"monocolored"`
	Multicolored bool     `json:"multicolored" yaml:"multicolored"`
}

// BulkData describes a downloadable bulk export.
type BulkData struct {
	Object `yaml:",inline"`

	ID              string `json:"id"                         yaml:"id"`
	Type            string `json:"type"                       yaml:"type"`
	Name            string `json:"name"                       yaml:"name"`
	Description     string `json:"description,omitempty"      yaml:"description,omitempty"`
	DownloadURI     string `json:"download_uri"               yaml:"download_uri"`
	UpdatedAt       string `json:"updated_at"                 yaml:"updated_at"`
	Size            int64  `json:"size"                       yaml:"size"`
	ContentType     string `json:"content_type,omitempty"     yaml:"content_type,omitempty"`
	ContentEncoding string `json:"content_encoding,omitempty" yaml:"content_encoding,omitempty"`
}
