package pappers

import (
	"github.com/bmarchand/pappers-mcp/internal/models"
)

// maxDirigeants bounds the representative list in the detail view.
const maxDirigeants = 5

// searchResponse is the upstream shape of GET /recherche.
type searchResponse struct {
	Total     int            `json:"total"`
	Resultats []searchResult `json:"resultats"`
}

// searchResult is one raw search hit.
type searchResult struct {
	Siren            string        `json:"siren"`
	NomEntreprise    string        `json:"nom_entreprise"`
	Siege            siegeResponse `json:"siege"`
	DateCreation     string        `json:"date_creation"`
	EntrepriseCessee bool          `json:"entreprise_cessee"`
}

// siegeResponse is the upstream head-office address fragment, shared by
// search hits and the company detail.
type siegeResponse struct {
	AdresseLigne1 string `json:"adresse_ligne_1"`
	AdresseLigne2 string `json:"adresse_ligne_2"`
	CodePostal    string `json:"code_postal"`
	Ville         string `json:"ville"`
	Pays          string `json:"pays"`
}

// companyResponse is the upstream shape of GET /entreprise.
type companyResponse struct {
	Siren                    string                 `json:"siren"`
	NomEntreprise            string                 `json:"nom_entreprise"`
	FormeJuridique           string                 `json:"forme_juridique"`
	DateCreation             string                 `json:"date_creation"`
	StatutRCS                string                 `json:"statut_rcs"`
	EntrepriseCessee         bool                   `json:"entreprise_cessee"`
	Capital                  *float64               `json:"capital"`
	DerniersChiffresAffaires *float64               `json:"derniers_chiffres_affaires"`
	DerniersResultats        *float64               `json:"derniers_resultats"`
	Siege                    siegeResponse          `json:"siege"`
	CodeNAF                  string                 `json:"code_naf"`
	LibelleCodeNAF           string                 `json:"libelle_code_naf"`
	Representants            []representantResponse `json:"representants"`
	NombreEtablissements     *int                   `json:"nombre_etablissements"`
}

// representantResponse is one raw company representative.
type representantResponse struct {
	Nom              string `json:"nom"`
	Prenom           string `json:"prenom"`
	Qualite          string `json:"qualite"`
	DatePriseDePoste string `json:"date_prise_de_poste"`
}

// toSummary maps a raw search hit into the normalized summary. The status
// flag becomes a human-readable label.
func (r searchResult) toSummary() models.CompanySummary {
	return models.CompanySummary{
		Siren:        r.Siren,
		Denomination: r.NomEntreprise,
		Siege: models.SummaryAddress{
			Adresse:    r.Siege.AdresseLigne1,
			CodePostal: r.Siege.CodePostal,
			Ville:      r.Siege.Ville,
		},
		DateCreation: r.DateCreation,
		Statut:       statusLabel(r.EntrepriseCessee),
	}
}

// toDetail maps the raw company payload into the normalized detail view,
// truncating the representative list to the first five entries.
func (r *companyResponse) toDetail() *models.CompanyDetail {
	reps := r.Representants
	if len(reps) > maxDirigeants {
		reps = reps[:maxDirigeants]
	}
	dirigeants := make([]models.Dirigeant, 0, len(reps))
	for _, d := range reps {
		dirigeants = append(dirigeants, models.Dirigeant{
			Nom:              d.Nom,
			Prenom:           d.Prenom,
			Qualite:          d.Qualite,
			DatePriseDePoste: d.DatePriseDePoste,
		})
	}

	return &models.CompanyDetail{
		Siren:            r.Siren,
		Denomination:     r.NomEntreprise,
		FormeJuridique:   r.FormeJuridique,
		DateCreation:     r.DateCreation,
		StatutRCS:        r.StatutRCS,
		EntrepriseCessee: r.EntrepriseCessee,
		Capital:          r.Capital,
		ChiffreAffaires:  r.DerniersChiffresAffaires,
		Resultat:         r.DerniersResultats,
		Siege: models.DetailAddress{
			Adresse:    r.Siege.AdresseLigne1,
			Complement: r.Siege.AdresseLigne2,
			CodePostal: r.Siege.CodePostal,
			Ville:      r.Siege.Ville,
			Pays:       r.Siege.Pays,
		},
		CodeNAF:              r.CodeNAF,
		LibelleCodeNAF:       r.LibelleCodeNAF,
		Dirigeants:           dirigeants,
		NombreEtablissements: r.NombreEtablissements,
	}
}

// statusLabel renders the ceased flag the way the registry displays it.
func statusLabel(cessee bool) string {
	if cessee {
		return "cessée"
	}
	return "actif"
}
