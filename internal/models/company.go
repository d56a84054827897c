// Package models defines the normalized JSON structures returned to MCP
// callers. Field names match the Pappers-derived wire output: French keys
// (siren, denomination, siege, dirigeants) are kept so results read the same
// as the upstream registry.
package models

// SearchResult is the normalized payload for the search_companies tool.
// Page and PerPage echo the caller's requested pagination, even when the
// upstream page size was clamped.
type SearchResult struct {
	Total     int              `json:"total"`
	Page      int              `json:"page"`
	PerPage   int              `json:"per_page"`
	Companies []CompanySummary `json:"companies"`
}

// CompanySummary is one search hit. Missing upstream fields default to
// empty strings.
type CompanySummary struct {
	Siren        string         `json:"siren"`
	Denomination string         `json:"denomination"`
	Siege        SummaryAddress `json:"siege"`
	DateCreation string         `json:"date_creation"`
	Statut       string         `json:"statut"`
}

// SummaryAddress holds the registered-address fragments shown in search
// results.
type SummaryAddress struct {
	Adresse    string `json:"adresse"`
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville"`
}

// CompanyDetail is the normalized payload for the get_company_details tool.
// Numeric financials are pointers so that fields absent from the upstream
// response serialize as null rather than zero.
type CompanyDetail struct {
	Siren                string        `json:"siren"`
	Denomination         string        `json:"denomination"`
	FormeJuridique       string        `json:"forme_juridique"`
	DateCreation         string        `json:"date_creation"`
	StatutRCS            string        `json:"statut_rcs"`
	EntrepriseCessee     bool          `json:"entreprise_cessee"`
	Capital              *float64      `json:"capital"`
	ChiffreAffaires      *float64      `json:"chiffre_affaires"`
	Resultat             *float64      `json:"resultat"`
	Siege                DetailAddress `json:"siege"`
	CodeNAF              string        `json:"code_naf"`
	LibelleCodeNAF       string        `json:"libelle_code_naf"`
	Dirigeants           []Dirigeant   `json:"dirigeants"`
	NombreEtablissements *int          `json:"nombre_etablissements"`
}

// DetailAddress is the full registered address of the head office.
type DetailAddress struct {
	Adresse    string `json:"adresse"`
	Complement string `json:"complement"`
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville"`
	Pays       string `json:"pays"`
}

// Dirigeant is a company representative. The detail view keeps at most the
// first five.
type Dirigeant struct {
	Nom              string `json:"nom"`
	Prenom           string `json:"prenom"`
	Qualite          string `json:"qualite"`
	DatePriseDePoste string `json:"date_prise_de_poste"`
}
