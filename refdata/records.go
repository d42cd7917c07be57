package refdata

import (
	"sort"
	"strings"
)

// ServiceRecord describes one government service guide. Name is the match
// key; all other fields are optional and render only when present.
type ServiceRecord struct {
	Name              string            `json:"name"`
	Fees              map[string]string `json:"fees,omitempty"`
	Procedure         []string          `json:"procedure,omitempty"`
	DocumentsRequired []string          `json:"documents_required,omitempty"`
	OfficialLink      string            `json:"official_link,omitempty"`
}

// FeeTypes returns the record's fee types in ascending order.
// JSON objects decode into Go maps with no stable order, so rendering
// iterates this instead to keep output byte-identical across calls.
func (r ServiceRecord) FeeTypes() []string {
	if len(r.Fees) == 0 {
		return nil
	}
	types := make([]string, 0, len(r.Fees))
	for feeType := range r.Fees {
		types = append(types, feeType)
	}
	sort.Strings(types)
	return types
}

// SchemeRecord describes one welfare scheme.
type SchemeRecord struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	EligibilityCriteria string   `json:"eligibility_criteria,omitempty"`
	Benefits            []string `json:"benefits,omitempty"`
	OfficialLink        string   `json:"official_link,omitempty"`
}

// SearchText returns the lowercased text a keyword query is matched
// against: category, name, and description joined by single spaces.
func (r SchemeRecord) SearchText() string {
	return strings.ToLower(r.Category + " " + r.Name + " " + r.Description)
}

// ServiceNames returns the names of all records in table order.
func ServiceNames(records []ServiceRecord) []string {
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}
	return names
}
