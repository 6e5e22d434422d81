package models

// Country describes one of the tracked markets in the company directory.
type Country struct {
	Name        string `json:"name"`
	Flag        string `json:"flag"`
	Exchange    string `json:"exchange"`
	Currency    string `json:"currency"`
	PEAEligible bool   `json:"pea_eligible"`
}

// Company is one directory entry from companies.json.
type Company struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Currency    string `json:"currency,omitempty"`
	Exchange    string `json:"exchange,omitempty"`
	ISIN        string `json:"isin,omitempty"`
	PEAEligible bool   `json:"pea_eligible,omitempty"`
	Nominatif   string `json:"nominatif,omitempty"` // loyalty benefit for registered shares, when offered
	Sector      string `json:"sector,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// Directory is the full companies.json payload: the country table plus the
// flat company list. It is the one mandatory resource; everything else
// degrades per panel.
type Directory struct {
	Countries map[string]Country `json:"countries"`
	Companies []Company          `json:"companies"`
}

// FindTicker returns the company with the given ticker, or nil.
func (d *Directory) FindTicker(ticker string) *Company {
	for i := range d.Companies {
		if d.Companies[i].Ticker == ticker {
			return &d.Companies[i]
		}
	}
	return nil
}

// CountryFor resolves the country record for a company, if present.
func (d *Directory) CountryFor(c *Company) (Country, bool) {
	country, ok := d.Countries[c.Country]
	return country, ok
}
